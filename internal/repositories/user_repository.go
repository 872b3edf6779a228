package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/aureeture/careerhub/internal/models"
)

var ErrUserNotFound = errors.New("user not found")

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	const query = `
	INSERT INTO users (id, external_id, email, name, avatar_url, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
	ON CONFLICT (external_id) DO NOTHING
	`

	_, err := r.db.ExecContext(ctx, query, user.ID, user.ExternalID, user.Email, user.Name, user.AvatarURL)
	return err
}

func (r *UserRepository) FindByExternalID(ctx context.Context, externalID string) (*models.User, error) {
	const query = `
	SELECT id, external_id, email, name, avatar_url, created_at, updated_at
	FROM users
	WHERE external_id = $1
	LIMIT 1
	`

	return r.scanOne(r.db.QueryRowContext(ctx, query, externalID))
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	const query = `
	SELECT id, external_id, email, name, avatar_url, created_at, updated_at
	FROM users
	WHERE id = $1
	LIMIT 1
	`

	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

func (r *UserRepository) scanOne(row *sql.Row) (*models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.ExternalID, &u.Email, &u.Name, &u.AvatarURL, &u.CreatedAt, &u.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}
