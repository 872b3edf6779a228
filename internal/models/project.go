package models

import (
	"time"

	"github.com/google/uuid"
)

type ProjectStatus string

const (
	ProjectStatusOpen       ProjectStatus = "Open"
	ProjectStatusInProgress ProjectStatus = "In Progress"
	ProjectStatusCompleted  ProjectStatus = "Completed"
)

// Project is a real-time work item students can join until capacity is
// reached.
type Project struct {
	ID              uuid.UUID     `db:"id"`
	MentorID        *uuid.UUID    `db:"mentor_id"`
	Title           string        `db:"title"`
	Description     string        `db:"description"`
	Technologies    []string      `db:"technologies"`
	Difficulty      string        `db:"difficulty"`
	Status          ProjectStatus `db:"status"`
	MaxParticipants int           `db:"max_participants"`
	StartDate       *time.Time    `db:"start_date"`
	IsActive        bool          `db:"is_active"`
	Participants    []uuid.UUID   `db:"-"`
	CreatedAt       time.Time     `db:"created_at"`
	UpdatedAt       time.Time     `db:"updated_at"`
}

func (p *Project) IsFull() bool {
	return len(p.Participants) >= p.MaxParticipants
}

func (p *Project) HasParticipant(userID uuid.UUID) bool {
	for _, id := range p.Participants {
		if id == userID {
			return true
		}
	}
	return false
}
