package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aureeture/careerhub/internal/dtos"
	"github.com/aureeture/careerhub/internal/models"
	"github.com/aureeture/careerhub/internal/repositories"
)

type fakeAvailabilityStore struct {
	weekly    []*models.WeeklySlot
	overrides []*models.OverrideSlot
	replaced  bool
}

func (f *fakeAvailabilityStore) ListWeeklySlots(ctx context.Context, mentorID string) ([]*models.WeeklySlot, error) {
	return f.weekly, nil
}

func (f *fakeAvailabilityStore) ListOverrideSlots(ctx context.Context, mentorID string) ([]*models.OverrideSlot, error) {
	return f.overrides, nil
}

func (f *fakeAvailabilityStore) Replace(ctx context.Context, mentorID string, weekly []*models.WeeklySlot, overrides []*models.OverrideSlot) error {
	f.weekly = weekly
	f.overrides = overrides
	f.replaced = true
	return nil
}

func (f *fakeAvailabilityStore) HasAvailability(ctx context.Context, mentorID string) (bool, error) {
	return len(f.weekly) > 0, nil
}

type fakeBookingChecker struct {
	booked []time.Time
}

func (f *fakeBookingChecker) HasBookedBetween(ctx context.Context, mentorID string, from, to time.Time) (bool, error) {
	for _, t := range f.booked {
		if !t.Before(from) && t.Before(to) {
			return true, nil
		}
	}
	return false, nil
}

func newTestAvailabilityService(store *fakeAvailabilityStore, bookings *fakeBookingChecker, now time.Time) *AvailabilityService {
	svc := NewAvailabilityService(store, bookings, nil)
	svc.now = func() time.Time { return now }
	return svc
}

func dateRange(start, end time.Time) (*time.Time, *time.Time) {
	return &start, &end
}

func TestSlotsNoAvailability(t *testing.T) {
	svc := newTestAvailabilityService(&fakeAvailabilityStore{}, &fakeBookingChecker{}, time.Now())

	_, err := svc.Slots(context.Background(), "mentor_1", nil, nil)
	assert.ErrorIs(t, err, repositories.ErrAvailabilityNotFound)
}

func TestSlotsFollowWeeklyTemplate(t *testing.T) {
	store := &fakeAvailabilityStore{
		weekly: []*models.WeeklySlot{
			{MentorID: "mentor_1", Day: "Tuesday", StartTime: "10:00", EndTime: "11:00", IsActive: true},
			{MentorID: "mentor_1", Day: "Thursday", StartTime: "09:00", EndTime: "10:00", IsActive: false},
		},
	}
	svc := newTestAvailabilityService(store, &fakeBookingChecker{}, time.Now())

	// 2026-03-09 is a Monday.
	start, end := dateRange(
		time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
	)
	resp, err := svc.Slots(context.Background(), "mentor_1", start, end)
	require.NoError(t, err)

	// Only the active Tuesday template contributes a slot.
	require.Len(t, resp.Slots, 1)
	slot := resp.Slots[0]
	assert.Equal(t, "2026-03-10T10:00:00Z", slot.StartTime)
	assert.Equal(t, "2026-03-10T11:00:00Z", slot.EndTime)
	assert.True(t, slot.IsAvailable)
	assert.False(t, slot.IsBooked)
}

func TestSlotsSkipBlockedOverride(t *testing.T) {
	store := &fakeAvailabilityStore{
		weekly: []*models.WeeklySlot{
			{MentorID: "mentor_1", Day: "Tuesday", StartTime: "10:00", EndTime: "11:00", IsActive: true},
		},
		overrides: []*models.OverrideSlot{
			{MentorID: "mentor_1", Date: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), IsBlocked: true, Reason: "holiday"},
		},
	}
	svc := newTestAvailabilityService(store, &fakeBookingChecker{}, time.Now())

	start, end := dateRange(
		time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
	)
	resp, err := svc.Slots(context.Background(), "mentor_1", start, end)
	require.NoError(t, err)

	assert.Empty(t, resp.Slots)
}

func TestSlotsMarkBookedWindows(t *testing.T) {
	store := &fakeAvailabilityStore{
		weekly: []*models.WeeklySlot{
			{MentorID: "mentor_1", Day: "Tuesday", StartTime: "10:00", EndTime: "11:00", IsActive: true},
		},
	}
	bookings := &fakeBookingChecker{
		booked: []time.Time{time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)},
	}
	svc := newTestAvailabilityService(store, bookings, time.Now())

	start, end := dateRange(
		time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
	)
	resp, err := svc.Slots(context.Background(), "mentor_1", start, end)
	require.NoError(t, err)

	require.Len(t, resp.Slots, 1)
	assert.True(t, resp.Slots[0].IsBooked)
	assert.True(t, resp.Slots[0].IsAvailable)
}

func TestSetAvailabilityValidatesClocks(t *testing.T) {
	store := &fakeAvailabilityStore{}
	svc := newTestAvailabilityService(store, &fakeBookingChecker{}, time.Now())

	err := svc.SetAvailability(context.Background(), "mentor_1", &dtos.SetAvailabilityRequest{
		WeeklySlots: []dtos.WeeklySlotRequest{
			{Day: "Monday", StartTime: "25:00", EndTime: "11:00", IsActive: true},
		},
	})
	assert.ErrorIs(t, err, ErrInvalidClock)
	assert.False(t, store.replaced)
}

func TestSetAvailabilityReplaces(t *testing.T) {
	store := &fakeAvailabilityStore{}
	svc := newTestAvailabilityService(store, &fakeBookingChecker{}, time.Now())

	err := svc.SetAvailability(context.Background(), "mentor_1", &dtos.SetAvailabilityRequest{
		WeeklySlots: []dtos.WeeklySlotRequest{
			{Day: "Monday", StartTime: "10:00", EndTime: "11:00", IsActive: true},
		},
		OverrideSlots: []dtos.OverrideSlotRequest{
			{Date: time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC), IsBlocked: true, Reason: "travel"},
		},
	})
	require.NoError(t, err)

	assert.True(t, store.replaced)
	require.Len(t, store.weekly, 1)
	assert.Equal(t, "mentor_1", store.weekly[0].MentorID)
	require.Len(t, store.overrides, 1)
	assert.True(t, store.overrides[0].IsBlocked)
}
