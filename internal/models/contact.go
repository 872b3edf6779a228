package models

import (
	"time"

	"github.com/google/uuid"
)

// Lead, EnterpriseDemo and Message are write-only contact-form submissions.

type Lead struct {
	ID        uuid.UUID `db:"id"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	Mobile    string    `db:"mobile"`
	UTM       string    `db:"utm"`
	Page      string    `db:"page"`
	Source    string    `db:"source"`
	CreatedAt time.Time `db:"created_at"`
}

type EnterpriseDemo struct {
	ID        uuid.UUID `db:"id"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	Company   string    `db:"company"`
	Page      string    `db:"page"`
	CreatedAt time.Time `db:"created_at"`
}

type Message struct {
	ID        uuid.UUID `db:"id"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	Phone     string    `db:"phone"`
	Subject   string    `db:"subject"`
	Message   string    `db:"message"`
	CreatedAt time.Time `db:"created_at"`
}
