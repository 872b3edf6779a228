package dtos

import (
	"time"

	"github.com/aureeture/careerhub/internal/models"
)

type ProjectResponse struct {
	ID              string     `json:"id"`
	MentorID        string     `json:"mentorId,omitempty"`
	Title           string     `json:"title"`
	Description     string     `json:"description,omitempty"`
	Technologies    []string   `json:"technologies"`
	Difficulty      string     `json:"difficulty,omitempty"`
	Status          string     `json:"status"`
	MaxParticipants int        `json:"maxParticipants"`
	Participants    int        `json:"participants"`
	StartDate       *time.Time `json:"startDate,omitempty"`
}

type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

type ProjectListResponse struct {
	Projects   []ProjectResponse `json:"projects"`
	Pagination Pagination        `json:"pagination"`
}

func NewProjectResponse(p *models.Project) ProjectResponse {
	resp := ProjectResponse{
		ID:              p.ID.String(),
		Title:           p.Title,
		Description:     p.Description,
		Technologies:    p.Technologies,
		Difficulty:      p.Difficulty,
		Status:          string(p.Status),
		MaxParticipants: p.MaxParticipants,
		Participants:    len(p.Participants),
		StartDate:       p.StartDate,
	}
	if p.MentorID != nil {
		resp.MentorID = p.MentorID.String()
	}
	return resp
}
