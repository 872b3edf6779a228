package repositories

import (
	"context"
	"database/sql"

	"github.com/aureeture/careerhub/internal/models"
)

type ContactRepository struct {
	db *sql.DB
}

func NewContactRepository(db *sql.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

func (r *ContactRepository) InsertLead(ctx context.Context, lead *models.Lead) error {
	const query = `
	INSERT INTO leads (id, name, email, mobile, utm, page, source, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
	RETURNING created_at
	`

	return r.db.QueryRowContext(ctx, query,
		lead.ID, lead.Name, lead.Email, lead.Mobile, lead.UTM, lead.Page, lead.Source,
	).Scan(&lead.CreatedAt)
}

func (r *ContactRepository) InsertEnterpriseDemo(ctx context.Context, demo *models.EnterpriseDemo) error {
	const query = `
	INSERT INTO enterprise_demos (id, name, email, company, page, created_at)
	VALUES ($1, $2, $3, $4, $5, NOW())
	RETURNING created_at
	`

	return r.db.QueryRowContext(ctx, query,
		demo.ID, demo.Name, demo.Email, demo.Company, demo.Page,
	).Scan(&demo.CreatedAt)
}

func (r *ContactRepository) InsertMessage(ctx context.Context, msg *models.Message) error {
	const query = `
	INSERT INTO messages (id, name, email, phone, subject, message, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, NOW())
	RETURNING created_at
	`

	return r.db.QueryRowContext(ctx, query,
		msg.ID, msg.Name, msg.Email, msg.Phone, msg.Subject, msg.Message,
	).Scan(&msg.CreatedAt)
}
