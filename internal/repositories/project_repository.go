package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strconv"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/aureeture/careerhub/internal/models"
)

var ErrProjectNotFound = errors.New("project not found")

// ProjectFilters narrows the open-project listing.
type ProjectFilters struct {
	Difficulty   string
	Technologies []string
}

type ProjectRepository struct {
	db *sql.DB
}

func NewProjectRepository(db *sql.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

const projectColumns = `
	id, mentor_id, title, description, technologies, difficulty, status,
	max_participants, start_date, is_active, created_at, updated_at`

// ListOpen returns active open projects ordered by start date, paginated.
func (r *ProjectRepository) ListOpen(ctx context.Context, filters ProjectFilters, page, limit int) ([]*models.Project, int, error) {
	query := `SELECT` + projectColumns + `
	FROM projects
	WHERE is_active = TRUE AND status = $1`
	countQuery := `SELECT COUNT(*) FROM projects WHERE is_active = TRUE AND status = $1`
	args := []interface{}{models.ProjectStatusOpen}

	if filters.Difficulty != "" {
		args = append(args, filters.Difficulty)
		query += ` AND difficulty = $2`
		countQuery += ` AND difficulty = $2`
	}
	if len(filters.Technologies) > 0 {
		args = append(args, pq.Array(filters.Technologies))
		n := len(args)
		query += ` AND technologies && $` + strconv.Itoa(n)
		countQuery += ` AND technologies && $` + strconv.Itoa(n)
	}

	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	args = append(args, limit, offset)
	query += ` ORDER BY start_date ASC NULLS LAST LIMIT $` + strconv.Itoa(len(args)-1) + ` OFFSET $` + strconv.Itoa(len(args))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	projects, err := r.scanAll(rows)
	if err != nil {
		return nil, 0, err
	}

	for _, p := range projects {
		if err := r.loadParticipants(ctx, p); err != nil {
			return nil, 0, err
		}
	}
	return projects, total, nil
}

func (r *ProjectRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	query := `SELECT` + projectColumns + ` FROM projects WHERE id = $1 LIMIT 1`

	rows, err := r.db.QueryContext(ctx, query, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	projects, err := r.scanAll(rows)
	if err != nil {
		return nil, err
	}
	if len(projects) == 0 {
		return nil, ErrProjectNotFound
	}

	p := projects[0]
	if err := r.loadParticipants(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *ProjectRepository) AddParticipant(ctx context.Context, projectID, userID uuid.UUID) error {
	const query = `
	INSERT INTO project_participants (project_id, user_id, joined_at)
	VALUES ($1, $2, NOW())
	`

	_, err := r.db.ExecContext(ctx, query, projectID, userID)
	return err
}

func (r *ProjectRepository) UpdateStatus(ctx context.Context, projectID uuid.UUID, status models.ProjectStatus) error {
	const query = `
	UPDATE projects
	SET status = $1, updated_at = NOW()
	WHERE id = $2
	`

	_, err := r.db.ExecContext(ctx, query, status, projectID)
	return err
}

// ListForUser returns projects the user participates in or mentors,
// newest start date first.
func (r *ProjectRepository) ListForUser(ctx context.Context, userID uuid.UUID) ([]*models.Project, error) {
	query := `SELECT` + projectColumns + `
	FROM projects
	WHERE mentor_id = $1
	   OR id IN (SELECT project_id FROM project_participants WHERE user_id = $1)
	ORDER BY start_date DESC NULLS LAST`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	projects, err := r.scanAll(rows)
	if err != nil {
		return nil, err
	}
	for _, p := range projects {
		if err := r.loadParticipants(ctx, p); err != nil {
			return nil, err
		}
	}
	return projects, nil
}

func (r *ProjectRepository) loadParticipants(ctx context.Context, p *models.Project) error {
	const query = `
	SELECT user_id FROM project_participants WHERE project_id = $1 ORDER BY joined_at
	`

	rows, err := r.db.QueryContext(ctx, query, p.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	p.Participants = p.Participants[:0]
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return err
		}
		p.Participants = append(p.Participants, id)
	}
	return rows.Err()
}

func (r *ProjectRepository) scanAll(rows *sql.Rows) ([]*models.Project, error) {
	var projects []*models.Project
	for rows.Next() {
		var p models.Project
		err := rows.Scan(
			&p.ID,
			&p.MentorID,
			&p.Title,
			&p.Description,
			pq.Array(&p.Technologies),
			&p.Difficulty,
			&p.Status,
			&p.MaxParticipants,
			&p.StartDate,
			&p.IsActive,
			&p.CreatedAt,
			&p.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		projects = append(projects, &p)
	}
	return projects, rows.Err()
}
