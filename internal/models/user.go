package models

import (
	"time"

	"github.com/google/uuid"
)

// User mirrors an identity-provider account. Rows are created lazily the
// first time an authenticated request is seen for an external ID.
type User struct {
	ID         uuid.UUID `db:"id"`
	ExternalID string    `db:"external_id"`
	Email      string    `db:"email"`
	Name       string    `db:"name"`
	AvatarURL  string    `db:"avatar_url"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}
