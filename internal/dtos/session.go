package dtos

import (
	"time"

	"github.com/aureeture/careerhub/internal/models"
)

// Create session request
type CreateSessionRequest struct {
	MentorID     string    `json:"mentorId" binding:"required"`
	StudentID    string    `json:"studentId"`
	StudentName  string    `json:"studentName" binding:"required"`
	StudentEmail string    `json:"studentEmail"`
	Title        string    `json:"title" binding:"required"`
	Description  string    `json:"description"`
	StartTime    time.Time `json:"startTime" binding:"required"`
	EndTime      time.Time `json:"endTime" binding:"required"`
	MeetingLink  string    `json:"meetingLink"`
}

// Partial update / reschedule request
type UpdateSessionRequest struct {
	Status       *string    `json:"status"`
	StartTime    *time.Time `json:"startTime"`
	EndTime      *time.Time `json:"endTime"`
	Notes        *string    `json:"notes"`
	MeetingLink  *string    `json:"meetingLink"`
	RecordingURL *string    `json:"recordingUrl"`
}

// Paid booking confirmation request
type ConfirmPaymentRequest struct {
	MentorID     string    `json:"mentorId" binding:"required"`
	StudentID    string    `json:"studentId"`
	StudentName  string    `json:"studentName" binding:"required"`
	StudentEmail string    `json:"studentEmail"`
	Title        string    `json:"title" binding:"required"`
	Description  string    `json:"description"`
	StartTime    time.Time `json:"startTime" binding:"required"`
	EndTime      time.Time `json:"endTime" binding:"required"`
	Amount       *int64    `json:"amount"`
	PaymentID    string    `json:"paymentId"`
	MentorEmail  string    `json:"mentorEmail"`
	MentorName   string    `json:"mentorName"`
}

// Join request for the video call token endpoint
type JoinSessionRequest struct {
	SessionID string `json:"sessionId" binding:"required"`
	UserID    string `json:"userId" binding:"required"`
}

// Join response carrying the minted RTC credential
type JoinSessionResponse struct {
	SessionID        string `json:"sessionId"`
	ChannelName      string `json:"channelName"`
	Token            string `json:"agoraToken"`
	UID              string `json:"uid"`
	Role             string `json:"role"` // "mentor" or "mentee"
	RecordingEnabled bool   `json:"recordingEnabled"`
	AppID            string `json:"agoraAppId"`
}

// Verify-join response
type VerifyJoinResponse struct {
	CanJoin          bool   `json:"canJoin"`
	Message          string `json:"message,omitempty"`
	MinutesUntilJoin int    `json:"minutesUntilJoin,omitempty"`
	MeetingLink      string `json:"meetingLink,omitempty"`
	SessionID        string `json:"sessionId,omitempty"`
	ChannelName      string `json:"channelName,omitempty"`
	Role             string `json:"role,omitempty"`
}

// Session list partitioned by time/status
type SessionListResponse struct {
	Upcoming []SessionResponse `json:"upcoming"`
	Past     []SessionResponse `json:"past"`
}

type SessionResponse struct {
	ID              string     `json:"id"`
	MentorID        string     `json:"mentorId"`
	StudentID       string     `json:"studentId,omitempty"`
	StudentName     string     `json:"studentName"`
	StudentEmail    string     `json:"studentEmail,omitempty"`
	Title           string     `json:"title"`
	Description     string     `json:"description,omitempty"`
	StartTime       time.Time  `json:"startTime"`
	EndTime         time.Time  `json:"endTime"`
	StartedAt       *time.Time `json:"startedAt,omitempty"`
	EndedAt         *time.Time `json:"endedAt,omitempty"`
	DurationMinutes int        `json:"durationMinutes"`
	Status          string     `json:"status"`
	PaymentStatus   string     `json:"paymentStatus"`
	BookingType     string     `json:"bookingType"`
	MeetingLink     string     `json:"meetingLink,omitempty"`
	Channel         string     `json:"agoraChannel,omitempty"`
	RecordingURL    *string    `json:"recordingUrl,omitempty"`
	Notes           *string    `json:"notes,omitempty"`
	Amount          *int64     `json:"amount,omitempty"`
	Currency        string     `json:"currency,omitempty"`
	PaymentID       *string    `json:"paymentId,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

func NewSessionResponse(s *models.MentorSession) SessionResponse {
	return SessionResponse{
		ID:              s.ID.String(),
		MentorID:        s.MentorID,
		StudentID:       s.StudentID,
		StudentName:     s.StudentName,
		StudentEmail:    s.StudentEmail,
		Title:           s.Title,
		Description:     s.Description,
		StartTime:       s.StartTime,
		EndTime:         s.EndTime,
		StartedAt:       s.StartedAt,
		EndedAt:         s.EndedAt,
		DurationMinutes: s.DurationMinutes,
		Status:          string(s.Status),
		PaymentStatus:   string(s.PaymentStatus),
		BookingType:     string(s.BookingType),
		MeetingLink:     s.MeetingLink,
		Channel:         s.Channel,
		RecordingURL:    s.RecordingURL,
		Notes:           s.Notes,
		Amount:          s.Amount,
		Currency:        s.Currency,
		PaymentID:       s.PaymentID,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

func NewSessionResponses(sessions []*models.MentorSession) []SessionResponse {
	out := make([]SessionResponse, 0, len(sessions))
	for _, s := range sessions {
		out = append(out, NewSessionResponse(s))
	}
	return out
}

// Recording control response (provider integration is out of scope; these
// endpoints stay stable for the frontend)
type RecordingResponse struct {
	SessionID    string  `json:"sessionId"`
	Recording    string  `json:"recording"` // "started" or "stopped"
	RecordingURL *string `json:"recordingUrl"`
}
