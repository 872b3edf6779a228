package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/aureeture/careerhub/internal/dtos"
	"github.com/aureeture/careerhub/internal/models"
	"github.com/aureeture/careerhub/internal/repositories"
	"github.com/aureeture/careerhub/internal/utils"
)

const (
	// Participants may join starting this long before the scheduled start.
	JoinWindow = 15 * time.Minute

	// Lifetime of a minted call credential.
	TokenTTL = time.Hour

	// Mentors are seeded up to this many example sessions for dashboard demos.
	demoSessionFloor = 3
)

var (
	ErrInvalidTimeRange   = errors.New("endTime must be after startTime")
	ErrInvalidStatus      = errors.New("invalid status value")
	ErrPartialReschedule  = errors.New("both startTime and endTime are required when rescheduling")
	ErrNotParticipant     = errors.New("not a participant of this session")
	ErrMentorOnly         = errors.New("only the mentor can perform this action")
	ErrSessionNotJoinable = errors.New("session cannot be joined")
)

// SessionStore is the persistence surface the session workflow needs.
// *repositories.SessionRepository satisfies it.
type SessionStore interface {
	Create(ctx context.Context, s *models.MentorSession) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.MentorSession, error)
	GetForMentor(ctx context.Context, id uuid.UUID, mentorID string) (*models.MentorSession, error)
	ListByMentor(ctx context.Context, mentorID string, scope repositories.SessionScope, now time.Time) ([]*models.MentorSession, error)
	ListByMentorDesc(ctx context.Context, mentorID string) ([]*models.MentorSession, error)
	CountByMentor(ctx context.Context, mentorID string) (int, error)
	UpdateFields(ctx context.Context, id uuid.UUID, mentorID string, fields map[string]interface{}) (*models.MentorSession, error)
	MarkOngoing(ctx context.Context, id uuid.UUID, startedAt time.Time) error
	SetChannel(ctx context.Context, id uuid.UUID, channel string) error
	Complete(ctx context.Context, id uuid.UUID, mentorID string) (*models.MentorSession, error)
	Delete(ctx context.Context, id uuid.UUID, mentorID string) error
}

// Mailer delivers transactional mail. Best-effort, single attempt.
type Mailer interface {
	SendSessionConfirmation(to, recipientName, title, otherPartyName string, start, end time.Time, meetingLink string, toMentor bool) error
}

// PaymentVerifier checks a payment with the payment provider before a paid
// booking is recorded.
type PaymentVerifier interface {
	VerifyPayment(ctx context.Context, paymentID string) error
}

// RTCConfig carries the video provider app credentials.
type RTCConfig struct {
	AppID   string
	AppCert string
}

type SessionService struct {
	store    SessionStore
	mailer   Mailer
	payments PaymentVerifier
	rtc      RTCConfig
	now      func() time.Time
}

func NewSessionService(store SessionStore, mailer Mailer, payments PaymentVerifier, rtc RTCConfig) *SessionService {
	return &SessionService{
		store:    store,
		mailer:   mailer,
		payments: payments,
		rtc:      rtc,
		now:      time.Now,
	}
}

// DurationMinutes derives the stored duration from a session's time window.
func DurationMinutes(start, end time.Time) int {
	return int(math.Round(end.Sub(start).Minutes()))
}

// Create validates and persists a new scheduled session.
func (s *SessionService) Create(ctx context.Context, req *dtos.CreateSessionRequest) (*models.MentorSession, error) {
	if !req.EndTime.After(req.StartTime) {
		return nil, ErrInvalidTimeRange
	}

	session := &models.MentorSession{
		ID:              uuid.New(),
		MentorID:        req.MentorID,
		StudentID:       req.StudentID,
		StudentName:     req.StudentName,
		StudentEmail:    req.StudentEmail,
		Title:           req.Title,
		Description:     req.Description,
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
		DurationMinutes: DurationMinutes(req.StartTime, req.EndTime),
		Status:          models.SessionStatusScheduled,
		PaymentStatus:   models.PaymentStatusPending,
		BookingType:     models.BookingTypePaid,
		MeetingLink:     req.MeetingLink,
	}

	if err := s.store.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	return session, nil
}

// List returns a mentor's sessions partitioned into upcoming and past.
// Demo sessions are seeded first so fresh mentor dashboards are not empty.
func (s *SessionService) List(ctx context.Context, mentorID string, scope repositories.SessionScope) (*dtos.SessionListResponse, error) {
	if err := s.EnsureDemoSessions(ctx, mentorID, false); err != nil {
		log.Warn().Err(err).Str("mentor_id", mentorID).Msg("demo session seeding failed")
	}

	now := s.now()
	sessions, err := s.store.ListByMentor(ctx, mentorID, scope, now)
	if err != nil {
		return nil, err
	}

	resp := &dtos.SessionListResponse{
		Upcoming: []dtos.SessionResponse{},
		Past:     []dtos.SessionResponse{},
	}
	for _, sess := range sessions {
		if !sess.StartTime.Before(now) || sess.Status.Joinable() {
			resp.Upcoming = append(resp.Upcoming, dtos.NewSessionResponse(sess))
		}
		if sess.EndTime.Before(now) || sess.Status == models.SessionStatusCompleted || sess.Status == models.SessionStatusCancelled {
			resp.Past = append(resp.Past, dtos.NewSessionResponse(sess))
		}
	}
	return resp, nil
}

func (s *SessionService) Get(ctx context.Context, id uuid.UUID, mentorID string) (*models.MentorSession, error) {
	return s.store.GetForMentor(ctx, id, mentorID)
}

// Update applies a partial update. Status values are validated against the
// lifecycle enum; reschedules must supply both endpoints and recompute the
// duration.
func (s *SessionService) Update(ctx context.Context, id uuid.UUID, mentorID string, req *dtos.UpdateSessionRequest) (*models.MentorSession, error) {
	fields := map[string]interface{}{}

	if req.Status != nil {
		status := models.SessionStatus(*req.Status)
		if !status.Valid() {
			return nil, ErrInvalidStatus
		}
		fields["status"] = status
	}

	if req.StartTime != nil || req.EndTime != nil {
		if req.StartTime == nil || req.EndTime == nil {
			return nil, ErrPartialReschedule
		}
		if !req.EndTime.After(*req.StartTime) {
			return nil, ErrInvalidTimeRange
		}
		fields["start_time"] = *req.StartTime
		fields["end_time"] = *req.EndTime
		fields["duration_minutes"] = DurationMinutes(*req.StartTime, *req.EndTime)
	}

	if req.Notes != nil {
		fields["notes"] = *req.Notes
	}
	if req.MeetingLink != nil {
		fields["meeting_link"] = *req.MeetingLink
	}
	if req.RecordingURL != nil {
		fields["recording_url"] = *req.RecordingURL
	}

	return s.store.UpdateFields(ctx, id, mentorID, fields)
}

func (s *SessionService) Complete(ctx context.Context, id uuid.UUID, mentorID string) (*models.MentorSession, error) {
	return s.store.Complete(ctx, id, mentorID)
}

func (s *SessionService) Delete(ctx context.Context, id uuid.UUID, mentorID string) error {
	return s.store.Delete(ctx, id, mentorID)
}

// VerifyJoin computes join eligibility for the mentor dashboard. An eligible
// first join moves a scheduled session to ongoing and lazily assigns the
// video channel.
func (s *SessionService) VerifyJoin(ctx context.Context, id uuid.UUID, mentorID string) (*dtos.VerifyJoinResponse, error) {
	session, err := s.store.GetForMentor(ctx, id, mentorID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	earliestJoin := session.StartTime.Add(-JoinWindow)

	if session.PaymentStatus != models.PaymentStatusPaid {
		return &dtos.VerifyJoinResponse{
			CanJoin: false,
			Message: "Payment not confirmed. Cannot join session until payment is confirmed.",
		}, nil
	}
	if !session.Status.Joinable() {
		return &dtos.VerifyJoinResponse{
			CanJoin: false,
			Message: fmt.Sprintf("Session is %s. Cannot join.", session.Status),
		}, nil
	}
	if now.After(session.EndTime) {
		return &dtos.VerifyJoinResponse{
			CanJoin: false,
			Message: "Session has ended.",
		}, nil
	}
	if now.Before(earliestJoin) {
		untilJoin := earliestJoin.Sub(now)
		return &dtos.VerifyJoinResponse{
			CanJoin:          false,
			Message:          "Session hasn't started yet. You can join 15 minutes before the scheduled time.",
			MinutesUntilJoin: int(math.Ceil(untilJoin.Minutes())),
		}, nil
	}

	if session.Status == models.SessionStatusScheduled {
		if err := s.store.MarkOngoing(ctx, session.ID, now); err != nil {
			return nil, fmt.Errorf("mark ongoing: %w", err)
		}
		session.Status = models.SessionStatusOngoing
	}

	channel, err := s.ensureChannel(ctx, session)
	if err != nil {
		return nil, err
	}

	return &dtos.VerifyJoinResponse{
		CanJoin:     true,
		MeetingLink: session.MeetingLink,
		SessionID:   session.ID.String(),
		ChannelName: channel,
		Role:        "host",
	}, nil
}

// Join mints a per-participant call credential. The caller must be the
// session's mentor or student.
func (s *SessionService) Join(ctx context.Context, sessionID uuid.UUID, userID string) (*dtos.JoinSessionResponse, error) {
	session, err := s.store.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	isMentor := session.MentorID == userID
	isMentee := session.StudentID == userID
	if !isMentor && !isMentee {
		return nil, ErrNotParticipant
	}
	if !session.Status.Joinable() {
		return nil, fmt.Errorf("%w: session is %s", ErrSessionNotJoinable, session.Status)
	}

	channel, err := s.ensureChannel(ctx, session)
	if err != nil {
		return nil, err
	}

	role := "mentee"
	if isMentor {
		role = "mentor"
	}

	token, err := utils.BuildRTCToken(s.rtc.AppID, s.rtc.AppCert, channel, userID, role, TokenTTL)
	if err != nil {
		return nil, err
	}

	// First mentor join starts the session clock.
	if isMentor && session.Status == models.SessionStatusScheduled {
		if err := s.store.MarkOngoing(ctx, session.ID, s.now()); err != nil {
			log.Error().Err(err).Str("session_id", session.ID.String()).Msg("failed to mark session ongoing")
		}
	}

	return &dtos.JoinSessionResponse{
		SessionID:        session.ID.String(),
		ChannelName:      channel,
		Token:            token,
		UID:              userID,
		Role:             role,
		RecordingEnabled: isMentor,
		AppID:            s.rtc.AppID,
	}, nil
}

// Recording start/stop keep a stable surface for the frontend; provider
// integration does not exist in this deployment.
func (s *SessionService) Recording(ctx context.Context, sessionID uuid.UUID, userID, action string) (*dtos.RecordingResponse, error) {
	session, err := s.store.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.MentorID != userID {
		return nil, ErrMentorOnly
	}

	return &dtos.RecordingResponse{
		SessionID:    session.ID.String(),
		Recording:    action,
		RecordingURL: session.RecordingURL,
	}, nil
}

// ConfirmPayment records a paid booking and notifies both parties. When a
// payment verifier is configured the provider payment is checked first.
func (s *SessionService) ConfirmPayment(ctx context.Context, req *dtos.ConfirmPaymentRequest) (*models.MentorSession, error) {
	if !req.EndTime.After(req.StartTime) {
		return nil, ErrInvalidTimeRange
	}

	if s.payments != nil && req.PaymentID != "" {
		if err := s.payments.VerifyPayment(ctx, req.PaymentID); err != nil {
			return nil, fmt.Errorf("payment verification failed: %w", err)
		}
	}

	stamp := s.now().UnixMilli()
	meetingLink := fmt.Sprintf("https://meet.jit.si/aureeture-session-%d", stamp)
	channel := fmt.Sprintf("session-%d-%s", stamp, idSuffix(req.MentorID))

	session := &models.MentorSession{
		ID:              uuid.New(),
		MentorID:        req.MentorID,
		StudentID:       req.StudentID,
		StudentName:     req.StudentName,
		StudentEmail:    req.StudentEmail,
		Title:           req.Title,
		Description:     req.Description,
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
		DurationMinutes: DurationMinutes(req.StartTime, req.EndTime),
		Status:          models.SessionStatusScheduled,
		PaymentStatus:   models.PaymentStatusPaid,
		BookingType:     models.BookingTypePaid,
		MeetingLink:     meetingLink,
		Channel:         channel,
		Amount:          req.Amount,
	}
	if req.PaymentID != "" {
		session.PaymentID = &req.PaymentID
	}

	if err := s.store.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("create paid session: %w", err)
	}

	if s.mailer != nil {
		mentorName := req.MentorName
		if mentorName == "" {
			mentorName = "Your Mentor"
		}
		if req.StudentEmail != "" {
			if err := s.mailer.SendSessionConfirmation(req.StudentEmail, req.StudentName, req.Title, mentorName, req.StartTime, req.EndTime, meetingLink, false); err != nil {
				log.Warn().Err(err).Str("to", req.StudentEmail).Msg("student confirmation email failed")
			}
		}
		if req.MentorEmail != "" {
			if err := s.mailer.SendSessionConfirmation(req.MentorEmail, mentorName, req.Title, req.StudentName, req.StartTime, req.EndTime, meetingLink, true); err != nil {
				log.Warn().Err(err).Str("to", req.MentorEmail).Msg("mentor confirmation email failed")
			}
		}
	}

	return session, nil
}

// EnsureDemoSessions idempotently seeds example sessions for a mentor. This
// is a UI convenience guarded by a count threshold, not a correctness
// mechanism.
func (s *SessionService) EnsureDemoSessions(ctx context.Context, mentorID string, force bool) error {
	count, err := s.store.CountByMentor(ctx, mentorID)
	if err != nil {
		return err
	}
	if count >= demoSessionFloor && !force {
		return nil
	}

	now := s.now()
	stamp := now.UnixMilli()
	suffix := idSuffix(mentorID)

	amount1, amount2, amount3 := int64(1500), int64(2000), int64(1000)
	recording := "https://recordings.aureeture.ai/aditi-1"
	notes := "Strong on fundamentals. Needs crisper trade-off communication."
	pastStart := now.Add(-2 * time.Hour)
	pastEnd := now.Add(-1 * time.Hour)

	demos := []*models.MentorSession{
		{
			ID:              uuid.New(),
			MentorID:        mentorID,
			StudentID:       "student_rishabh_123",
			StudentName:     "Rishabh Jain",
			StudentEmail:    "rishabh@example.com",
			Title:           "Frontend Portfolio Review",
			Description:     "Deep dive on React portfolio and project storytelling.",
			StartTime:       now.Add(30 * time.Minute),
			EndTime:         now.Add(75 * time.Minute),
			DurationMinutes: 45,
			Status:          models.SessionStatusScheduled,
			PaymentStatus:   models.PaymentStatusPaid,
			BookingType:     models.BookingTypePaid,
			MeetingLink:     "https://meet.aureeture.ai/session/rishabh-1",
			Channel:         fmt.Sprintf("session-%d-%s-1", stamp, suffix),
			Amount:          &amount1,
		},
		{
			ID:              uuid.New(),
			MentorID:        mentorID,
			StudentID:       "student_aditi_456",
			StudentName:     "Aditi Rao",
			StudentEmail:    "aditi@example.com",
			Title:           "System Design Mock Interview",
			Description:     "Practice high-signal system design interview questions.",
			StartTime:       pastStart,
			EndTime:         pastEnd,
			StartedAt:       &pastStart,
			EndedAt:         &pastEnd,
			DurationMinutes: 60,
			Status:          models.SessionStatusCompleted,
			PaymentStatus:   models.PaymentStatusPaid,
			BookingType:     models.BookingTypePaid,
			MeetingLink:     "https://meet.aureeture.ai/session/aditi-1",
			Channel:         fmt.Sprintf("session-%d-%s-2", stamp, suffix),
			RecordingURL:    &recording,
			Notes:           &notes,
			Amount:          &amount2,
		},
		{
			ID:              uuid.New(),
			MentorID:        mentorID,
			StudentID:       "student_karan_789",
			StudentName:     "Karan Patel",
			StudentEmail:    "karan@example.com",
			Title:           "Career Roadmap Strategy",
			Description:     "Clarify next 12-18 month plan for roles and skills.",
			StartTime:       now.Add(24 * time.Hour),
			EndTime:         now.Add(24*time.Hour + 30*time.Minute),
			DurationMinutes: 30,
			Status:          models.SessionStatusScheduled,
			PaymentStatus:   models.PaymentStatusPaid,
			BookingType:     models.BookingTypePaid,
			MeetingLink:     "https://meet.aureeture.ai/session/karan-1",
			Channel:         fmt.Sprintf("session-%d-%s-3", stamp, suffix),
			Amount:          &amount3,
		},
	}

	for _, demo := range demos {
		if err := s.store.Create(ctx, demo); err != nil {
			return fmt.Errorf("seed demo session: %w", err)
		}
	}
	return nil
}

// ensureChannel lazily generates and persists the video channel identifier.
func (s *SessionService) ensureChannel(ctx context.Context, session *models.MentorSession) (string, error) {
	if session.Channel != "" {
		return session.Channel, nil
	}
	channel := "session-" + session.ID.String()
	if err := s.store.SetChannel(ctx, session.ID, channel); err != nil {
		return "", fmt.Errorf("persist channel: %w", err)
	}
	session.Channel = channel
	return channel, nil
}

func idSuffix(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[len(id)-8:]
}
