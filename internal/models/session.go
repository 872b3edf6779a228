package models

import (
	"time"

	"github.com/google/uuid"
)

type SessionStatus string

const (
	SessionStatusScheduled           SessionStatus = "scheduled"
	SessionStatusOngoing             SessionStatus = "ongoing"
	SessionStatusCompleted           SessionStatus = "completed"
	SessionStatusCancelled           SessionStatus = "cancelled"
	SessionStatusRescheduleRequested SessionStatus = "reschedule_requested"
)

func (s SessionStatus) Valid() bool {
	switch s {
	case SessionStatusScheduled, SessionStatusOngoing, SessionStatusCompleted,
		SessionStatusCancelled, SessionStatusRescheduleRequested:
		return true
	}
	return false
}

// Joinable reports whether a session in this status can still be joined.
func (s SessionStatus) Joinable() bool {
	return s == SessionStatusScheduled || s == SessionStatusOngoing
}

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

type BookingType string

const (
	BookingTypePaid BookingType = "paid"
	BookingTypeFree BookingType = "free"
)

// MentorSession is a scheduled meeting between a mentor and a student.
// MentorID and StudentID carry the external identity provider's user IDs.
type MentorSession struct {
	ID           uuid.UUID `db:"id"`
	MentorID     string    `db:"mentor_id"`
	StudentID    string    `db:"student_id"`
	StudentName  string    `db:"student_name"`
	StudentEmail string    `db:"student_email"`
	Title        string    `db:"title"`
	Description  string    `db:"description"`

	StartTime time.Time  `db:"start_time"`
	EndTime   time.Time  `db:"end_time"`
	StartedAt *time.Time `db:"started_at"`
	EndedAt   *time.Time `db:"ended_at"`

	DurationMinutes int           `db:"duration_minutes"`
	Status          SessionStatus `db:"status"`
	PaymentStatus   PaymentStatus `db:"payment_status"`
	BookingType     BookingType   `db:"booking_type"`

	MeetingLink  string  `db:"meeting_link"`
	Channel      string  `db:"channel"`
	RecordingURL *string `db:"recording_url"`
	Notes        *string `db:"notes"`

	RescheduleCount int     `db:"reschedule_count"`
	Amount          *int64  `db:"amount"`
	Currency        string  `db:"currency"`
	PaymentID       *string `db:"payment_id"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
