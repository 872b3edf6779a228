package dtos

import "github.com/aureeture/careerhub/internal/models"

type ProfileRequest struct {
	CareerStage        *string                   `json:"careerStage"`
	LongTermGoal       *string                   `json:"longTermGoal"`
	Phone              *string                   `json:"phone"`
	LinkedIn           *string                   `json:"linkedIn"`
	Skills             []string                  `json:"skills"`
	WorkHistory        []models.WorkHistoryEntry `json:"workHistory"`
	Education          []models.EducationEntry   `json:"education"`
	Projects           []models.ProjectEntry     `json:"projects"`
	Preferences        *models.Preferences       `json:"preferences"`
	OnboardingComplete *bool                     `json:"onboardingComplete"`
}

type ProfileUser struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatar,omitempty"`
}

type ProfileResponse struct {
	ID                 string                    `json:"id"`
	User               ProfileUser               `json:"user"`
	CareerStage        string                    `json:"careerStage,omitempty"`
	LongTermGoal       string                    `json:"longTermGoal,omitempty"`
	Phone              string                    `json:"phone,omitempty"`
	LinkedIn           string                    `json:"linkedIn,omitempty"`
	Skills             []string                  `json:"skills"`
	WorkHistory        []models.WorkHistoryEntry `json:"workHistory"`
	Education          []models.EducationEntry   `json:"education"`
	Projects           []models.ProjectEntry     `json:"projects"`
	Preferences        models.Preferences        `json:"preferences"`
	OnboardingComplete bool                      `json:"onboardingComplete"`
}

func NewProfileResponse(p *models.Profile, u *models.User) ProfileResponse {
	return ProfileResponse{
		ID: p.ID.String(),
		User: ProfileUser{
			Name:      u.Name,
			Email:     u.Email,
			AvatarURL: u.AvatarURL,
		},
		CareerStage:        p.CareerStage,
		LongTermGoal:       p.LongTermGoal,
		Phone:              p.Phone,
		LinkedIn:           p.LinkedIn,
		Skills:             p.Skills,
		WorkHistory:        p.WorkHistory,
		Education:          p.Education,
		Projects:           p.Projects,
		Preferences:        p.Preferences,
		OnboardingComplete: p.OnboardingComplete,
	}
}
