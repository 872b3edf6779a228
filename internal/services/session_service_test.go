package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aureeture/careerhub/internal/dtos"
	"github.com/aureeture/careerhub/internal/models"
	"github.com/aureeture/careerhub/internal/repositories"
)

type fakeSessionStore struct {
	sessions map[uuid.UUID]*models.MentorSession
	created  []*models.MentorSession
	ongoing  []uuid.UUID
	channels map[uuid.UUID]string
}

func newFakeSessionStore(sessions ...*models.MentorSession) *fakeSessionStore {
	store := &fakeSessionStore{
		sessions: map[uuid.UUID]*models.MentorSession{},
		channels: map[uuid.UUID]string{},
	}
	for _, s := range sessions {
		store.sessions[s.ID] = s
	}
	return store
}

func (f *fakeSessionStore) Create(ctx context.Context, s *models.MentorSession) error {
	f.sessions[s.ID] = s
	f.created = append(f.created, s)
	return nil
}

func (f *fakeSessionStore) GetByID(ctx context.Context, id uuid.UUID) (*models.MentorSession, error) {
	s, ok := f.sessions[id]
	if !ok {
		return nil, repositories.ErrSessionNotFound
	}
	return s, nil
}

func (f *fakeSessionStore) GetForMentor(ctx context.Context, id uuid.UUID, mentorID string) (*models.MentorSession, error) {
	s, ok := f.sessions[id]
	if !ok || s.MentorID != mentorID {
		return nil, repositories.ErrSessionNotFound
	}
	return s, nil
}

func (f *fakeSessionStore) ListByMentor(ctx context.Context, mentorID string, scope repositories.SessionScope, now time.Time) ([]*models.MentorSession, error) {
	var out []*models.MentorSession
	for _, s := range f.sessions {
		if s.MentorID == mentorID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSessionStore) ListByMentorDesc(ctx context.Context, mentorID string) ([]*models.MentorSession, error) {
	return f.ListByMentor(ctx, mentorID, repositories.ScopeAll, time.Time{})
}

func (f *fakeSessionStore) CountByMentor(ctx context.Context, mentorID string) (int, error) {
	n := 0
	for _, s := range f.sessions {
		if s.MentorID == mentorID {
			n++
		}
	}
	return n, nil
}

func (f *fakeSessionStore) UpdateFields(ctx context.Context, id uuid.UUID, mentorID string, fields map[string]interface{}) (*models.MentorSession, error) {
	return f.GetForMentor(ctx, id, mentorID)
}

func (f *fakeSessionStore) MarkOngoing(ctx context.Context, id uuid.UUID, startedAt time.Time) error {
	f.ongoing = append(f.ongoing, id)
	if s, ok := f.sessions[id]; ok {
		s.Status = models.SessionStatusOngoing
		s.StartedAt = &startedAt
	}
	return nil
}

func (f *fakeSessionStore) SetChannel(ctx context.Context, id uuid.UUID, channel string) error {
	f.channels[id] = channel
	return nil
}

func (f *fakeSessionStore) Complete(ctx context.Context, id uuid.UUID, mentorID string) (*models.MentorSession, error) {
	s, err := f.GetForMentor(ctx, id, mentorID)
	if err != nil {
		return nil, err
	}
	s.Status = models.SessionStatusCompleted
	return s, nil
}

func (f *fakeSessionStore) Delete(ctx context.Context, id uuid.UUID, mentorID string) error {
	if _, err := f.GetForMentor(ctx, id, mentorID); err != nil {
		return err
	}
	delete(f.sessions, id)
	return nil
}

func newTestSessionService(store SessionStore, now time.Time) *SessionService {
	svc := NewSessionService(store, nil, nil, RTCConfig{AppID: "app", AppCert: "cert"})
	svc.now = func() time.Time { return now }
	return svc
}

func paidSession(mentorID string, start, end time.Time) *models.MentorSession {
	return &models.MentorSession{
		ID:            uuid.New(),
		MentorID:      mentorID,
		StudentID:     "student_1",
		StudentName:   "Asha Verma",
		Title:         "Mock Interview",
		StartTime:     start,
		EndTime:       end,
		Status:        models.SessionStatusScheduled,
		PaymentStatus: models.PaymentStatusPaid,
		BookingType:   models.BookingTypePaid,
	}
}

func TestDurationMinutes(t *testing.T) {
	start := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)

	assert.Equal(t, 45, DurationMinutes(start, start.Add(45*time.Minute)))
	assert.Equal(t, 30, DurationMinutes(start, start.Add(30*time.Minute)))
	// 44m30s rounds up
	assert.Equal(t, 45, DurationMinutes(start, start.Add(44*time.Minute+30*time.Second)))
	// 44m29s rounds down
	assert.Equal(t, 44, DurationMinutes(start, start.Add(44*time.Minute+29*time.Second)))
}

func TestCreateRejectsInvertedTimeRange(t *testing.T) {
	store := newFakeSessionStore()
	svc := newTestSessionService(store, time.Now())

	start := time.Now().Add(time.Hour)
	req := &dtos.CreateSessionRequest{
		MentorID:    "mentor_1",
		StudentName: "Asha Verma",
		Title:       "Mock Interview",
		StartTime:   start,
		EndTime:     start,
	}

	_, err := svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidTimeRange)
	assert.Empty(t, store.created)

	req.EndTime = start.Add(-time.Minute)
	_, err = svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidTimeRange)
}

func TestCreateComputesDuration(t *testing.T) {
	store := newFakeSessionStore()
	svc := newTestSessionService(store, time.Now())

	start := time.Now().Add(time.Hour)
	session, err := svc.Create(context.Background(), &dtos.CreateSessionRequest{
		MentorID:    "mentor_1",
		StudentName: "Asha Verma",
		Title:       "Mock Interview",
		StartTime:   start,
		EndTime:     start.Add(45 * time.Minute),
	})
	require.NoError(t, err)

	assert.Equal(t, 45, session.DurationMinutes)
	assert.Equal(t, models.SessionStatusScheduled, session.Status)
	assert.Equal(t, models.PaymentStatusPending, session.PaymentStatus)
}

func TestVerifyJoinUnpaid(t *testing.T) {
	now := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	session := paidSession("mentor_1", now.Add(5*time.Minute), now.Add(50*time.Minute))
	session.PaymentStatus = models.PaymentStatusPending
	store := newFakeSessionStore(session)
	svc := newTestSessionService(store, now)

	resp, err := svc.VerifyJoin(context.Background(), session.ID, "mentor_1")
	require.NoError(t, err)

	assert.False(t, resp.CanJoin)
	assert.Contains(t, resp.Message, "Payment not confirmed")
	assert.Empty(t, store.ongoing)
}

func TestVerifyJoinAfterEnd(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	session := paidSession("mentor_1", now.Add(-2*time.Hour), now.Add(-time.Hour))
	store := newFakeSessionStore(session)
	svc := newTestSessionService(store, now)

	resp, err := svc.VerifyJoin(context.Background(), session.ID, "mentor_1")
	require.NoError(t, err)

	assert.False(t, resp.CanJoin)
	assert.Equal(t, "Session has ended.", resp.Message)
}

func TestVerifyJoinCancelled(t *testing.T) {
	now := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	session := paidSession("mentor_1", now.Add(5*time.Minute), now.Add(50*time.Minute))
	session.Status = models.SessionStatusCancelled
	store := newFakeSessionStore(session)
	svc := newTestSessionService(store, now)

	resp, err := svc.VerifyJoin(context.Background(), session.ID, "mentor_1")
	require.NoError(t, err)

	assert.False(t, resp.CanJoin)
	assert.Contains(t, resp.Message, "cancelled")
}

func TestVerifyJoinAtWindowBoundary(t *testing.T) {
	start := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	session := paidSession("mentor_1", start, start.Add(45*time.Minute))
	store := newFakeSessionStore(session)

	// Exactly 15 minutes before start the window is open.
	svc := newTestSessionService(store, start.Add(-JoinWindow))

	resp, err := svc.VerifyJoin(context.Background(), session.ID, "mentor_1")
	require.NoError(t, err)

	assert.True(t, resp.CanJoin)
	assert.Equal(t, "host", resp.Role)
	assert.Equal(t, "session-"+session.ID.String(), resp.ChannelName)
	assert.Equal(t, resp.ChannelName, store.channels[session.ID])
	assert.Equal(t, []uuid.UUID{session.ID}, store.ongoing)
	assert.Equal(t, models.SessionStatusOngoing, session.Status)
}

func TestVerifyJoinWindowScenario(t *testing.T) {
	base := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	start := base.Add(45 * time.Minute)
	session := paidSession("mentor_1", start, start.Add(45*time.Minute))
	store := newFakeSessionStore(session)

	// 25 minutes before start: window opens in 10 minutes.
	svc := newTestSessionService(store, base.Add(20*time.Minute))
	resp, err := svc.VerifyJoin(context.Background(), session.ID, "mentor_1")
	require.NoError(t, err)
	assert.False(t, resp.CanJoin)
	assert.Equal(t, 10, resp.MinutesUntilJoin)

	// 10 minutes before start: inside the window.
	svc = newTestSessionService(store, base.Add(35*time.Minute))
	resp, err = svc.VerifyJoin(context.Background(), session.ID, "mentor_1")
	require.NoError(t, err)
	assert.True(t, resp.CanJoin)
}

func TestJoinRequiresParticipant(t *testing.T) {
	now := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	session := paidSession("mentor_1", now, now.Add(45*time.Minute))
	store := newFakeSessionStore(session)
	svc := newTestSessionService(store, now)

	_, err := svc.Join(context.Background(), session.ID, "someone_else")
	assert.ErrorIs(t, err, ErrNotParticipant)
}

func TestJoinMintsTokenAndStartsSession(t *testing.T) {
	now := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	session := paidSession("mentor_1", now, now.Add(45*time.Minute))
	store := newFakeSessionStore(session)
	svc := newTestSessionService(store, now)

	resp, err := svc.Join(context.Background(), session.ID, "mentor_1")
	require.NoError(t, err)

	assert.Equal(t, "mentor", resp.Role)
	assert.True(t, resp.RecordingEnabled)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "app", resp.AppID)
	assert.Equal(t, []uuid.UUID{session.ID}, store.ongoing)

	studentResp, err := svc.Join(context.Background(), session.ID, "student_1")
	require.NoError(t, err)
	assert.Equal(t, "mentee", studentResp.Role)
	assert.False(t, studentResp.RecordingEnabled)
	// Student joins do not start the clock again.
	assert.Len(t, store.ongoing, 1)
}

func TestJoinRejectsCompletedSession(t *testing.T) {
	now := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	session := paidSession("mentor_1", now, now.Add(45*time.Minute))
	session.Status = models.SessionStatusCompleted
	store := newFakeSessionStore(session)
	svc := newTestSessionService(store, now)

	_, err := svc.Join(context.Background(), session.ID, "mentor_1")
	assert.ErrorIs(t, err, ErrSessionNotJoinable)
}

func TestUpdateRejectsPartialReschedule(t *testing.T) {
	now := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	session := paidSession("mentor_1", now.Add(time.Hour), now.Add(2*time.Hour))
	store := newFakeSessionStore(session)
	svc := newTestSessionService(store, now)

	start := now.Add(3 * time.Hour)
	_, err := svc.Update(context.Background(), session.ID, "mentor_1", &dtos.UpdateSessionRequest{
		StartTime: &start,
	})
	assert.ErrorIs(t, err, ErrPartialReschedule)
}

func TestUpdateRejectsUnknownStatus(t *testing.T) {
	now := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	session := paidSession("mentor_1", now.Add(time.Hour), now.Add(2*time.Hour))
	store := newFakeSessionStore(session)
	svc := newTestSessionService(store, now)

	bogus := "paused"
	_, err := svc.Update(context.Background(), session.ID, "mentor_1", &dtos.UpdateSessionRequest{
		Status: &bogus,
	})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestRecordingMentorOnly(t *testing.T) {
	now := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	session := paidSession("mentor_1", now, now.Add(45*time.Minute))
	store := newFakeSessionStore(session)
	svc := newTestSessionService(store, now)

	_, err := svc.Recording(context.Background(), session.ID, "student_1", "started")
	assert.ErrorIs(t, err, ErrMentorOnly)

	resp, err := svc.Recording(context.Background(), session.ID, "mentor_1", "started")
	require.NoError(t, err)
	assert.Equal(t, "started", resp.Recording)
}

func TestConfirmPaymentCreatesPaidSession(t *testing.T) {
	now := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	store := newFakeSessionStore()
	svc := newTestSessionService(store, now)

	amount := int64(1500)
	start := now.Add(24 * time.Hour)
	session, err := svc.ConfirmPayment(context.Background(), &dtos.ConfirmPaymentRequest{
		MentorID:    "mentor_1",
		StudentName: "Asha Verma",
		Title:       "Mock Interview",
		StartTime:   start,
		EndTime:     start.Add(time.Hour),
		Amount:      &amount,
		PaymentID:   "pay_123",
	})
	require.NoError(t, err)

	assert.Equal(t, models.PaymentStatusPaid, session.PaymentStatus)
	assert.NotEmpty(t, session.MeetingLink)
	assert.NotEmpty(t, session.Channel)
	assert.Equal(t, 60, session.DurationMinutes)
	require.NotNil(t, session.PaymentID)
	assert.Equal(t, "pay_123", *session.PaymentID)
}

func TestEnsureDemoSessionsIdempotent(t *testing.T) {
	now := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	store := newFakeSessionStore()
	svc := newTestSessionService(store, now)

	require.NoError(t, svc.EnsureDemoSessions(context.Background(), "mentor_1", false))
	assert.Len(t, store.created, 3)

	// Above the floor nothing more is seeded.
	require.NoError(t, svc.EnsureDemoSessions(context.Background(), "mentor_1", false))
	assert.Len(t, store.created, 3)
}
