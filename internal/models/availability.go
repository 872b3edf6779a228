package models

import (
	"time"

	"github.com/google/uuid"
)

// WeeklySlot is one recurring availability window in a mentor's weekly
// template. Day holds the English weekday name ("Monday"), StartTime and
// EndTime hold "HH:MM" clock strings.
type WeeklySlot struct {
	ID        uuid.UUID `db:"id"`
	MentorID  string    `db:"mentor_id"`
	Day       string    `db:"day"`
	StartTime string    `db:"start_time"`
	EndTime   string    `db:"end_time"`
	IsActive  bool      `db:"is_active"`
}

// OverrideSlot blocks (or annotates) a specific calendar date, taking
// precedence over the weekly template.
type OverrideSlot struct {
	ID        uuid.UUID `db:"id"`
	MentorID  string    `db:"mentor_id"`
	Date      time.Time `db:"date"`
	IsBlocked bool      `db:"is_blocked"`
	Reason    string    `db:"reason"`
}
