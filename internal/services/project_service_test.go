package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aureeture/careerhub/internal/models"
	"github.com/aureeture/careerhub/internal/repositories"
)

type fakeProjectStore struct {
	projects map[uuid.UUID]*models.Project
	statuses map[uuid.UUID]models.ProjectStatus
}

func newFakeProjectStore(projects ...*models.Project) *fakeProjectStore {
	store := &fakeProjectStore{
		projects: map[uuid.UUID]*models.Project{},
		statuses: map[uuid.UUID]models.ProjectStatus{},
	}
	for _, p := range projects {
		store.projects[p.ID] = p
	}
	return store
}

func (f *fakeProjectStore) ListOpen(ctx context.Context, filters repositories.ProjectFilters, page, limit int) ([]*models.Project, int, error) {
	var out []*models.Project
	for _, p := range f.projects {
		if p.Status == models.ProjectStatusOpen && p.IsActive {
			out = append(out, p)
		}
	}
	return out, len(out), nil
}

func (f *fakeProjectStore) GetByID(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	p, ok := f.projects[id]
	if !ok {
		return nil, repositories.ErrProjectNotFound
	}
	return p, nil
}

func (f *fakeProjectStore) AddParticipant(ctx context.Context, projectID, userID uuid.UUID) error {
	return nil
}

func (f *fakeProjectStore) UpdateStatus(ctx context.Context, projectID uuid.UUID, status models.ProjectStatus) error {
	f.statuses[projectID] = status
	return nil
}

func (f *fakeProjectStore) ListForUser(ctx context.Context, userID uuid.UUID) ([]*models.Project, error) {
	var out []*models.Project
	for _, p := range f.projects {
		if p.HasParticipant(userID) {
			out = append(out, p)
		}
	}
	return out, nil
}

func openProject(max int, participants ...uuid.UUID) *models.Project {
	return &models.Project{
		ID:              uuid.New(),
		Title:           "Realtime Chat Platform",
		Technologies:    []string{"go", "postgres"},
		Difficulty:      "Intermediate",
		Status:          models.ProjectStatusOpen,
		MaxParticipants: max,
		IsActive:        true,
		Participants:    participants,
	}
}

func TestJoinProject(t *testing.T) {
	project := openProject(3)
	store := newFakeProjectStore(project)
	svc := NewProjectService(store)

	userID := uuid.New()
	resp, err := svc.Join(context.Background(), project.ID, userID)
	require.NoError(t, err)

	assert.Equal(t, 1, resp.Participants)
	assert.Equal(t, "Open", resp.Status)
	assert.Empty(t, store.statuses)
}

func TestJoinProjectFillsCapacity(t *testing.T) {
	project := openProject(2, uuid.New())
	store := newFakeProjectStore(project)
	svc := NewProjectService(store)

	resp, err := svc.Join(context.Background(), project.ID, uuid.New())
	require.NoError(t, err)

	assert.Equal(t, "In Progress", resp.Status)
	assert.Equal(t, models.ProjectStatusInProgress, store.statuses[project.ID])
}

func TestJoinProjectRejections(t *testing.T) {
	member := uuid.New()

	closed := openProject(3)
	closed.Status = models.ProjectStatusCompleted

	full := openProject(1, uuid.New())

	joined := openProject(3, member)

	store := newFakeProjectStore(closed, full, joined)
	svc := NewProjectService(store)

	_, err := svc.Join(context.Background(), closed.ID, uuid.New())
	assert.ErrorIs(t, err, ErrProjectClosed)

	_, err = svc.Join(context.Background(), full.ID, uuid.New())
	assert.ErrorIs(t, err, ErrProjectFull)

	_, err = svc.Join(context.Background(), joined.ID, member)
	assert.ErrorIs(t, err, ErrAlreadyInProject)

	_, err = svc.Join(context.Background(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, repositories.ErrProjectNotFound)
}

func TestListProjectsPagination(t *testing.T) {
	store := newFakeProjectStore(openProject(3), openProject(4))
	svc := NewProjectService(store)

	resp, err := svc.List(context.Background(), repositories.ProjectFilters{}, 0, 100)
	require.NoError(t, err)

	// Out-of-range inputs fall back to defaults.
	assert.Equal(t, 1, resp.Pagination.Page)
	assert.Equal(t, 10, resp.Pagination.Limit)
	assert.Equal(t, 2, resp.Pagination.Total)
	assert.Equal(t, 1, resp.Pagination.Pages)
	assert.Len(t, resp.Projects, 2)
}
