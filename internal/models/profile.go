package models

import (
	"time"

	"github.com/google/uuid"
)

type WorkHistoryEntry struct {
	Company     string     `json:"company"`
	Role        string     `json:"role"`
	From        time.Time  `json:"from"`
	To          *time.Time `json:"to,omitempty"`
	Description string     `json:"description,omitempty"`
}

type EducationEntry struct {
	Institution string     `json:"institution"`
	Degree      string     `json:"degree"`
	From        time.Time  `json:"from"`
	To          *time.Time `json:"to,omitempty"`
}

type ProjectEntry struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Link        string `json:"link,omitempty"`
}

type SalaryRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

type Preferences struct {
	Location          []string    `json:"location"`
	WorkModel         string      `json:"workModel"` // Remote, Hybrid, On-site
	SalaryRange       SalaryRange `json:"salaryRange"`
	OpenToInternships bool        `json:"openToInternships"`
}

// Profile holds free-form career data, one per user.
type Profile struct {
	ID                 uuid.UUID          `db:"id"`
	UserID             uuid.UUID          `db:"user_id"`
	CareerStage        string             `db:"career_stage"`
	LongTermGoal       string             `db:"long_term_goal"`
	Phone              string             `db:"phone"`
	LinkedIn           string             `db:"linkedin"`
	Skills             []string           `db:"skills"`
	WorkHistory        []WorkHistoryEntry `db:"work_history"`
	Education          []EducationEntry   `db:"education"`
	Projects           []ProjectEntry     `db:"projects"`
	Preferences        Preferences        `db:"preferences"`
	OnboardingComplete bool               `db:"onboarding_complete"`
	CreatedAt          time.Time          `db:"created_at"`
	UpdatedAt          time.Time          `db:"updated_at"`
}
