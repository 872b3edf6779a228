package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/aureeture/careerhub/internal/dtos"
	"github.com/aureeture/careerhub/internal/models"
	"github.com/aureeture/careerhub/internal/repositories"
)

var (
	ErrProjectClosed    = errors.New("project is not open for joining")
	ErrProjectFull      = errors.New("project is full")
	ErrAlreadyInProject = errors.New("already a participant")
)

// ProjectStore is the persistence surface project operations depend on.
type ProjectStore interface {
	ListOpen(ctx context.Context, filters repositories.ProjectFilters, page, limit int) ([]*models.Project, int, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Project, error)
	AddParticipant(ctx context.Context, projectID, userID uuid.UUID) error
	UpdateStatus(ctx context.Context, projectID uuid.UUID, status models.ProjectStatus) error
	ListForUser(ctx context.Context, userID uuid.UUID) ([]*models.Project, error)
}

type ProjectService struct {
	store ProjectStore
}

func NewProjectService(store ProjectStore) *ProjectService {
	return &ProjectService{store: store}
}

func (s *ProjectService) List(ctx context.Context, filters repositories.ProjectFilters, page, limit int) (*dtos.ProjectListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 50 {
		limit = 10
	}

	projects, total, err := s.store.ListOpen(ctx, filters, page, limit)
	if err != nil {
		return nil, err
	}

	resp := &dtos.ProjectListResponse{
		Projects: make([]dtos.ProjectResponse, 0, len(projects)),
		Pagination: dtos.Pagination{
			Page:  page,
			Limit: limit,
			Total: total,
			Pages: (total + limit - 1) / limit,
		},
	}
	for _, p := range projects {
		resp.Projects = append(resp.Projects, dtos.NewProjectResponse(p))
	}
	return resp, nil
}

func (s *ProjectService) Get(ctx context.Context, id uuid.UUID) (*dtos.ProjectResponse, error) {
	p, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := dtos.NewProjectResponse(p)
	return &resp, nil
}

// Join adds the user to an open project. Filling the final seat flips the
// project to In Progress.
func (s *ProjectService) Join(ctx context.Context, projectID, userID uuid.UUID) (*dtos.ProjectResponse, error) {
	p, err := s.store.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if p.Status != models.ProjectStatusOpen {
		return nil, ErrProjectClosed
	}
	if p.HasParticipant(userID) {
		return nil, ErrAlreadyInProject
	}
	if p.IsFull() {
		return nil, ErrProjectFull
	}

	if err := s.store.AddParticipant(ctx, projectID, userID); err != nil {
		return nil, err
	}
	p.Participants = append(p.Participants, userID)

	if p.IsFull() {
		if err := s.store.UpdateStatus(ctx, projectID, models.ProjectStatusInProgress); err != nil {
			return nil, err
		}
		p.Status = models.ProjectStatusInProgress
	}

	resp := dtos.NewProjectResponse(p)
	return &resp, nil
}

func (s *ProjectService) ListForUser(ctx context.Context, userID uuid.UUID) ([]dtos.ProjectResponse, error) {
	projects, err := s.store.ListForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]dtos.ProjectResponse, 0, len(projects))
	for _, p := range projects {
		out = append(out, dtos.NewProjectResponse(p))
	}
	return out, nil
}
