package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/aureeture/careerhub/internal/models"
)

var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrProfileExists   = errors.New("profile already exists")
)

type ProfileRepository struct {
	db *sql.DB
}

func NewProfileRepository(db *sql.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

func (r *ProfileRepository) Create(ctx context.Context, p *models.Profile) error {
	const query = `
	INSERT INTO profiles (
		id, user_id, career_stage, long_term_goal, phone, linkedin,
		skills, work_history, education, projects, preferences,
		onboarding_complete, created_at, updated_at
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW(), NOW())
	RETURNING created_at, updated_at
	`

	workHistory, education, projects, preferences, err := marshalProfileJSON(p)
	if err != nil {
		return err
	}

	err = r.db.QueryRowContext(
		ctx,
		query,
		p.ID,
		p.UserID,
		p.CareerStage,
		p.LongTermGoal,
		p.Phone,
		p.LinkedIn,
		pq.Array(p.Skills),
		workHistory,
		education,
		projects,
		preferences,
		p.OnboardingComplete,
	).Scan(&p.CreatedAt, &p.UpdatedAt)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return ErrProfileExists
		}
		return err
	}
	return nil
}

func (r *ProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	const query = `
	SELECT
		id, user_id, career_stage, long_term_goal, phone, linkedin,
		skills, work_history, education, projects, preferences,
		onboarding_complete, created_at, updated_at
	FROM profiles
	WHERE user_id = $1
	LIMIT 1
	`

	var (
		p           models.Profile
		workHistory []byte
		education   []byte
		projects    []byte
		preferences []byte
	)

	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&p.ID,
		&p.UserID,
		&p.CareerStage,
		&p.LongTermGoal,
		&p.Phone,
		&p.LinkedIn,
		pq.Array(&p.Skills),
		&workHistory,
		&education,
		&projects,
		&preferences,
		&p.OnboardingComplete,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(workHistory, &p.WorkHistory); err != nil {
		return nil, fmt.Errorf("decode work history: %w", err)
	}
	if err := json.Unmarshal(education, &p.Education); err != nil {
		return nil, fmt.Errorf("decode education: %w", err)
	}
	if err := json.Unmarshal(projects, &p.Projects); err != nil {
		return nil, fmt.Errorf("decode projects: %w", err)
	}
	if err := json.Unmarshal(preferences, &p.Preferences); err != nil {
		return nil, fmt.Errorf("decode preferences: %w", err)
	}

	return &p, nil
}

func (r *ProfileRepository) Update(ctx context.Context, p *models.Profile) error {
	const query = `
	UPDATE profiles
	SET
		career_stage = $1,
		long_term_goal = $2,
		phone = $3,
		linkedin = $4,
		skills = $5,
		work_history = $6,
		education = $7,
		projects = $8,
		preferences = $9,
		onboarding_complete = $10,
		updated_at = NOW()
	WHERE user_id = $11
	RETURNING updated_at
	`

	workHistory, education, projects, preferences, err := marshalProfileJSON(p)
	if err != nil {
		return err
	}

	err = r.db.QueryRowContext(
		ctx,
		query,
		p.CareerStage,
		p.LongTermGoal,
		p.Phone,
		p.LinkedIn,
		pq.Array(p.Skills),
		workHistory,
		education,
		projects,
		preferences,
		p.OnboardingComplete,
		p.UserID,
	).Scan(&p.UpdatedAt)

	if err == sql.ErrNoRows {
		return ErrProfileNotFound
	}
	return err
}

func marshalProfileJSON(p *models.Profile) (workHistory, education, projects, preferences []byte, err error) {
	if workHistory, err = json.Marshal(p.WorkHistory); err != nil {
		return
	}
	if education, err = json.Marshal(p.Education); err != nil {
		return
	}
	if projects, err = json.Marshal(p.Projects); err != nil {
		return
	}
	preferences, err = json.Marshal(p.Preferences)
	return
}
