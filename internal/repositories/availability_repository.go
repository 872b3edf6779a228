package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/aureeture/careerhub/internal/models"
)

var ErrAvailabilityNotFound = errors.New("mentor availability not found")

type AvailabilityRepository struct {
	db *sql.DB
}

func NewAvailabilityRepository(db *sql.DB) *AvailabilityRepository {
	return &AvailabilityRepository{db: db}
}

func (r *AvailabilityRepository) ListWeeklySlots(ctx context.Context, mentorID string) ([]*models.WeeklySlot, error) {
	const query = `
	SELECT id, mentor_id, day, start_time, end_time, is_active
	FROM weekly_slots
	WHERE mentor_id = $1
	ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query, mentorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var slots []*models.WeeklySlot
	for rows.Next() {
		var s models.WeeklySlot
		if err := rows.Scan(&s.ID, &s.MentorID, &s.Day, &s.StartTime, &s.EndTime, &s.IsActive); err != nil {
			return nil, err
		}
		slots = append(slots, &s)
	}
	return slots, rows.Err()
}

func (r *AvailabilityRepository) ListOverrideSlots(ctx context.Context, mentorID string) ([]*models.OverrideSlot, error) {
	const query = `
	SELECT id, mentor_id, date, is_blocked, reason
	FROM override_slots
	WHERE mentor_id = $1
	ORDER BY date
	`

	rows, err := r.db.QueryContext(ctx, query, mentorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var slots []*models.OverrideSlot
	for rows.Next() {
		var s models.OverrideSlot
		if err := rows.Scan(&s.ID, &s.MentorID, &s.Date, &s.IsBlocked, &s.Reason); err != nil {
			return nil, err
		}
		slots = append(slots, &s)
	}
	return slots, rows.Err()
}

// Replace swaps out a mentor's whole availability (weekly template plus
// overrides) in one transaction.
func (r *AvailabilityRepository) Replace(ctx context.Context, mentorID string, weekly []*models.WeeklySlot, overrides []*models.OverrideSlot) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM weekly_slots WHERE mentor_id = $1`, mentorID); err != nil {
		return fmt.Errorf("clear weekly slots: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM override_slots WHERE mentor_id = $1`, mentorID); err != nil {
		return fmt.Errorf("clear override slots: %w", err)
	}

	const insertWeekly = `
	INSERT INTO weekly_slots (id, mentor_id, day, start_time, end_time, is_active)
	VALUES ($1, $2, $3, $4, $5, $6)
	`
	for _, s := range weekly {
		if s.ID == uuid.Nil {
			s.ID = uuid.New()
		}
		if _, err := tx.ExecContext(ctx, insertWeekly, s.ID, mentorID, s.Day, s.StartTime, s.EndTime, s.IsActive); err != nil {
			return fmt.Errorf("insert weekly slot: %w", err)
		}
	}

	const insertOverride = `
	INSERT INTO override_slots (id, mentor_id, date, is_blocked, reason)
	VALUES ($1, $2, $3, $4, $5)
	`
	for _, s := range overrides {
		if s.ID == uuid.Nil {
			s.ID = uuid.New()
		}
		if _, err := tx.ExecContext(ctx, insertOverride, s.ID, mentorID, s.Date, s.IsBlocked, s.Reason); err != nil {
			return fmt.Errorf("insert override slot: %w", err)
		}
	}

	return tx.Commit()
}

// HasAvailability reports whether the mentor has any weekly template at all.
func (r *AvailabilityRepository) HasAvailability(ctx context.Context, mentorID string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM weekly_slots WHERE mentor_id = $1)`

	var exists bool
	err := r.db.QueryRowContext(ctx, query, mentorID).Scan(&exists)
	if err == sql.ErrNoRows {
		return false, nil
	}
	return exists, err
}
