package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/aureeture/careerhub/internal/dtos"
	"github.com/aureeture/careerhub/internal/models"
)

// ProfileStore is satisfied by repositories.ProfileRepository.
type ProfileStore interface {
	Create(ctx context.Context, p *models.Profile) error
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Profile, error)
	Update(ctx context.Context, p *models.Profile) error
}

type ProfileService struct {
	store ProfileStore
}

func NewProfileService(store ProfileStore) *ProfileService {
	return &ProfileService{store: store}
}

func (s *ProfileService) Get(ctx context.Context, user *models.User) (*dtos.ProfileResponse, error) {
	p, err := s.store.GetByUserID(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	resp := dtos.NewProfileResponse(p, user)
	return &resp, nil
}

func (s *ProfileService) Create(ctx context.Context, user *models.User, req *dtos.ProfileRequest) (*dtos.ProfileResponse, error) {
	p := &models.Profile{
		ID:          uuid.New(),
		UserID:      user.ID,
		Skills:      []string{},
		WorkHistory: []models.WorkHistoryEntry{},
		Education:   []models.EducationEntry{},
		Projects:    []models.ProjectEntry{},
	}
	applyProfileRequest(p, req)

	if err := s.store.Create(ctx, p); err != nil {
		return nil, err
	}
	resp := dtos.NewProfileResponse(p, user)
	return &resp, nil
}

// Update applies only the fields the request carries.
func (s *ProfileService) Update(ctx context.Context, user *models.User, req *dtos.ProfileRequest) (*dtos.ProfileResponse, error) {
	p, err := s.store.GetByUserID(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	applyProfileRequest(p, req)

	if err := s.store.Update(ctx, p); err != nil {
		return nil, err
	}
	resp := dtos.NewProfileResponse(p, user)
	return &resp, nil
}

func applyProfileRequest(p *models.Profile, req *dtos.ProfileRequest) {
	if req.CareerStage != nil {
		p.CareerStage = *req.CareerStage
	}
	if req.LongTermGoal != nil {
		p.LongTermGoal = *req.LongTermGoal
	}
	if req.Phone != nil {
		p.Phone = *req.Phone
	}
	if req.LinkedIn != nil {
		p.LinkedIn = *req.LinkedIn
	}
	if req.Skills != nil {
		p.Skills = req.Skills
	}
	if req.WorkHistory != nil {
		p.WorkHistory = req.WorkHistory
	}
	if req.Education != nil {
		p.Education = req.Education
	}
	if req.Projects != nil {
		p.Projects = req.Projects
	}
	if req.Preferences != nil {
		p.Preferences = *req.Preferences
	}
	if req.OnboardingComplete != nil {
		p.OnboardingComplete = *req.OnboardingComplete
	}
}
