package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/aureeture/careerhub/internal/models"
)

var ErrSessionNotFound = errors.New("session not found")

// SessionScope selects the time partition for session listings.
type SessionScope string

const (
	ScopeAll      SessionScope = "all"
	ScopeUpcoming SessionScope = "upcoming"
	ScopePast     SessionScope = "past"
)

const sessionColumns = `
	id,
	mentor_id,
	student_id,
	student_name,
	student_email,
	title,
	description,
	start_time,
	end_time,
	started_at,
	ended_at,
	duration_minutes,
	status,
	payment_status,
	booking_type,
	meeting_link,
	channel,
	recording_url,
	notes,
	reschedule_count,
	amount,
	currency,
	payment_id,
	created_at,
	updated_at`

type SessionRepository struct {
	db *sql.DB
}

func NewSessionRepository(db *sql.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

func (r *SessionRepository) Create(ctx context.Context, s *models.MentorSession) error {
	const query = `
	INSERT INTO mentor_sessions (
		id,
		mentor_id,
		student_id,
		student_name,
		student_email,
		title,
		description,
		start_time,
		end_time,
		duration_minutes,
		status,
		payment_status,
		booking_type,
		meeting_link,
		channel,
		amount,
		currency,
		payment_id,
		created_at,
		updated_at
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, COALESCE(NULLIF($17, ''), 'INR'), $18, NOW(), NOW())
	RETURNING created_at, updated_at
	`

	return r.db.QueryRowContext(
		ctx,
		query,
		s.ID,
		s.MentorID,
		nullString(s.StudentID),
		s.StudentName,
		nullString(s.StudentEmail),
		s.Title,
		nullString(s.Description),
		s.StartTime,
		s.EndTime,
		s.DurationMinutes,
		s.Status,
		s.PaymentStatus,
		s.BookingType,
		s.MeetingLink,
		s.Channel,
		s.Amount,
		s.Currency,
		s.PaymentID,
	).Scan(&s.CreatedAt, &s.UpdatedAt)
}

func (r *SessionRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.MentorSession, error) {
	query := `SELECT` + sessionColumns + ` FROM mentor_sessions WHERE id = $1 LIMIT 1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

// GetForMentor loads a session only when it belongs to the given mentor.
func (r *SessionRepository) GetForMentor(ctx context.Context, id uuid.UUID, mentorID string) (*models.MentorSession, error) {
	query := `SELECT` + sessionColumns + ` FROM mentor_sessions WHERE id = $1 AND mentor_id = $2 LIMIT 1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id, mentorID))
}

// ListByMentor returns a mentor's sessions ordered by start time. The scope
// narrows the result to upcoming (start >= now) or past (end < now) sessions.
func (r *SessionRepository) ListByMentor(ctx context.Context, mentorID string, scope SessionScope, now time.Time) ([]*models.MentorSession, error) {
	query := `SELECT` + sessionColumns + ` FROM mentor_sessions WHERE mentor_id = $1`
	args := []interface{}{mentorID}

	switch scope {
	case ScopeUpcoming:
		query += ` AND start_time >= $2`
		args = append(args, now)
	case ScopePast:
		query += ` AND end_time < $2`
		args = append(args, now)
	}
	query += ` ORDER BY start_time ASC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return r.scanAll(rows)
}

// ListByMentorDesc returns all of a mentor's sessions, newest first. Used by
// the mentee roster aggregation.
func (r *SessionRepository) ListByMentorDesc(ctx context.Context, mentorID string) ([]*models.MentorSession, error) {
	query := `SELECT` + sessionColumns + ` FROM mentor_sessions WHERE mentor_id = $1 ORDER BY start_time DESC`

	rows, err := r.db.QueryContext(ctx, query, mentorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return r.scanAll(rows)
}

// ListByMentorAndStudent matches sessions by student ID or, failing that, by
// a case-insensitive student-name match.
func (r *SessionRepository) ListByMentorAndStudent(ctx context.Context, mentorID, student string) ([]*models.MentorSession, error) {
	query := `SELECT` + sessionColumns + `
	FROM mentor_sessions
	WHERE mentor_id = $1 AND (student_id = $2 OR student_name ILIKE '%' || $2 || '%')
	ORDER BY start_time DESC`

	rows, err := r.db.QueryContext(ctx, query, mentorID, student)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return r.scanAll(rows)
}

func (r *SessionRepository) CountByMentor(ctx context.Context, mentorID string) (int, error) {
	const query = `SELECT COUNT(*) FROM mentor_sessions WHERE mentor_id = $1`

	var count int
	err := r.db.QueryRowContext(ctx, query, mentorID).Scan(&count)
	return count, err
}

// UpdateFields applies a partial update built from the PATCH payload.
// Column names come from a fixed whitelist in the service layer, never from
// client input.
func (r *SessionRepository) UpdateFields(ctx context.Context, id uuid.UUID, mentorID string, fields map[string]interface{}) (*models.MentorSession, error) {
	if len(fields) == 0 {
		return r.GetForMentor(ctx, id, mentorID)
	}

	set := make([]string, 0, len(fields)+1)
	args := make([]interface{}, 0, len(fields)+2)
	i := 1
	for col, val := range fields {
		set = append(set, fmt.Sprintf("%s = $%d", col, i))
		args = append(args, val)
		i++
	}
	set = append(set, "updated_at = NOW()")

	query := fmt.Sprintf(
		`UPDATE mentor_sessions SET %s WHERE id = $%d AND mentor_id = $%d RETURNING`+sessionColumns,
		strings.Join(set, ", "), i, i+1,
	)
	args = append(args, id, mentorID)

	return r.scanOne(r.db.QueryRowContext(ctx, query, args...))
}

func (r *SessionRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status models.SessionStatus) error {
	const query = `
	UPDATE mentor_sessions
	SET status = $1, updated_at = NOW()
	WHERE id = $2
	`

	_, err := r.db.ExecContext(ctx, query, status, id)
	return err
}

// MarkOngoing transitions a scheduled session to ongoing and stamps the
// actual start. The status guard keeps repeated joins from resetting it.
func (r *SessionRepository) MarkOngoing(ctx context.Context, id uuid.UUID, startedAt time.Time) error {
	const query = `
	UPDATE mentor_sessions
	SET status = $1, started_at = $2, updated_at = NOW()
	WHERE id = $3 AND status = $4
	`

	_, err := r.db.ExecContext(ctx, query, models.SessionStatusOngoing, startedAt, id, models.SessionStatusScheduled)
	return err
}

// SetChannel persists a lazily generated video channel identifier.
func (r *SessionRepository) SetChannel(ctx context.Context, id uuid.UUID, channel string) error {
	const query = `
	UPDATE mentor_sessions
	SET channel = $1, updated_at = NOW()
	WHERE id = $2 AND channel = ''
	`

	_, err := r.db.ExecContext(ctx, query, channel, id)
	return err
}

func (r *SessionRepository) Complete(ctx context.Context, id uuid.UUID, mentorID string) (*models.MentorSession, error) {
	query := `
	UPDATE mentor_sessions
	SET status = $1, ended_at = NOW(), updated_at = NOW()
	WHERE id = $2 AND mentor_id = $3
	RETURNING` + sessionColumns

	return r.scanOne(r.db.QueryRowContext(ctx, query, models.SessionStatusCompleted, id, mentorID))
}

func (r *SessionRepository) Delete(ctx context.Context, id uuid.UUID, mentorID string) error {
	const query = `DELETE FROM mentor_sessions WHERE id = $1 AND mentor_id = $2`

	res, err := r.db.ExecContext(ctx, query, id, mentorID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrSessionNotFound
	}
	return nil
}

// HasBookedBetween reports whether any joinable session for the mentor
// starts inside [from, to).
func (r *SessionRepository) HasBookedBetween(ctx context.Context, mentorID string, from, to time.Time) (bool, error) {
	const query = `
	SELECT EXISTS (
		SELECT 1 FROM mentor_sessions
		WHERE mentor_id = $1
		  AND start_time >= $2 AND start_time < $3
		  AND status IN ($4, $5)
	)
	`

	var exists bool
	err := r.db.QueryRowContext(ctx, query, mentorID, from, to,
		models.SessionStatusScheduled, models.SessionStatusOngoing).Scan(&exists)
	return exists, err
}

func (r *SessionRepository) scanOne(row *sql.Row) (*models.MentorSession, error) {
	var (
		s            models.MentorSession
		studentID    sql.NullString
		studentEmail sql.NullString
		description  sql.NullString
	)

	err := row.Scan(
		&s.ID,
		&s.MentorID,
		&studentID,
		&s.StudentName,
		&studentEmail,
		&s.Title,
		&description,
		&s.StartTime,
		&s.EndTime,
		&s.StartedAt,
		&s.EndedAt,
		&s.DurationMinutes,
		&s.Status,
		&s.PaymentStatus,
		&s.BookingType,
		&s.MeetingLink,
		&s.Channel,
		&s.RecordingURL,
		&s.Notes,
		&s.RescheduleCount,
		&s.Amount,
		&s.Currency,
		&s.PaymentID,
		&s.CreatedAt,
		&s.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}

	s.StudentID = studentID.String
	s.StudentEmail = studentEmail.String
	s.Description = description.String
	return &s, nil
}

func (r *SessionRepository) scanAll(rows *sql.Rows) ([]*models.MentorSession, error) {
	var sessions []*models.MentorSession
	for rows.Next() {
		var (
			s            models.MentorSession
			studentID    sql.NullString
			studentEmail sql.NullString
			description  sql.NullString
		)
		err := rows.Scan(
			&s.ID,
			&s.MentorID,
			&studentID,
			&s.StudentName,
			&studentEmail,
			&s.Title,
			&description,
			&s.StartTime,
			&s.EndTime,
			&s.StartedAt,
			&s.EndedAt,
			&s.DurationMinutes,
			&s.Status,
			&s.PaymentStatus,
			&s.BookingType,
			&s.MeetingLink,
			&s.Channel,
			&s.RecordingURL,
			&s.Notes,
			&s.RescheduleCount,
			&s.Amount,
			&s.Currency,
			&s.PaymentID,
			&s.CreatedAt,
			&s.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		s.StudentID = studentID.String
		s.StudentEmail = studentEmail.String
		s.Description = description.String
		sessions = append(sessions, &s)
	}
	return sessions, rows.Err()
}

func nullString(v string) sql.NullString {
	return sql.NullString{String: v, Valid: v != ""}
}
