package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/aureeture/careerhub/internal/cache"
	"github.com/aureeture/careerhub/internal/dtos"
	"github.com/aureeture/careerhub/internal/models"
	"github.com/aureeture/careerhub/internal/repositories"
)

// Slots are enumerated over a week when the caller gives no range.
const defaultSlotRange = 7 * 24 * time.Hour

var ErrInvalidClock = errors.New("invalid HH:MM time")

// AvailabilityStore is satisfied by *repositories.AvailabilityRepository.
type AvailabilityStore interface {
	ListWeeklySlots(ctx context.Context, mentorID string) ([]*models.WeeklySlot, error)
	ListOverrideSlots(ctx context.Context, mentorID string) ([]*models.OverrideSlot, error)
	Replace(ctx context.Context, mentorID string, weekly []*models.WeeklySlot, overrides []*models.OverrideSlot) error
	HasAvailability(ctx context.Context, mentorID string) (bool, error)
}

// BookingChecker answers whether a slot window already holds a session.
type BookingChecker interface {
	HasBookedBetween(ctx context.Context, mentorID string, from, to time.Time) (bool, error)
}

type AvailabilityService struct {
	store    AvailabilityStore
	bookings BookingChecker
	cache    *cache.SlotsCache
	now      func() time.Time
}

func NewAvailabilityService(store AvailabilityStore, bookings BookingChecker, slotsCache *cache.SlotsCache) *AvailabilityService {
	return &AvailabilityService{
		store:    store,
		bookings: bookings,
		cache:    slotsCache,
		now:      time.Now,
	}
}

// Slots enumerates candidate windows in [startDate, endDate] from the weekly
// template, skipping blocked override dates and marking windows that already
// hold a scheduled or ongoing session as booked.
func (s *AvailabilityService) Slots(ctx context.Context, mentorID string, startDate, endDate *time.Time) (*dtos.SlotListResponse, error) {
	has, err := s.store.HasAvailability(ctx, mentorID)
	if err != nil {
		return nil, err
	}
	if !has {
		return nil, repositories.ErrAvailabilityNotFound
	}

	start := s.now()
	if startDate != nil {
		start = *startDate
	}
	end := start.Add(defaultSlotRange)
	if endDate != nil {
		end = *endDate
	}

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, mentorID, start, end)
		if err != nil {
			log.Warn().Err(err).Str("mentor_id", mentorID).Msg("slot cache read failed")
		} else if cached != nil {
			return cached, nil
		}
	}

	weekly, err := s.store.ListWeeklySlots(ctx, mentorID)
	if err != nil {
		return nil, err
	}
	overrides, err := s.store.ListOverrideSlots(ctx, mentorID)
	if err != nil {
		return nil, err
	}

	resp := &dtos.SlotListResponse{Slots: []dtos.SlotResponse{}}

	for date := start; !date.After(end); date = date.AddDate(0, 0, 1) {
		template := findWeeklySlot(weekly, date.Weekday().String())
		if template == nil {
			continue
		}
		if blockedOn(overrides, date) {
			continue
		}

		slotStart, err := atClock(date, template.StartTime)
		if err != nil {
			log.Warn().Err(err).Str("mentor_id", mentorID).Str("start", template.StartTime).Msg("bad weekly slot time")
			continue
		}
		slotEnd, err := atClock(date, template.EndTime)
		if err != nil {
			log.Warn().Err(err).Str("mentor_id", mentorID).Str("end", template.EndTime).Msg("bad weekly slot time")
			continue
		}

		booked, err := s.bookings.HasBookedBetween(ctx, mentorID, slotStart, slotEnd)
		if err != nil {
			return nil, err
		}

		resp.Slots = append(resp.Slots, dtos.SlotResponse{
			ID:          fmt.Sprintf("slot-%d-%d", date.UnixMilli(), slotStart.Hour()),
			StartTime:   slotStart.Format(time.RFC3339),
			EndTime:     slotEnd.Format(time.RFC3339),
			IsAvailable: true,
			IsBooked:    booked,
		})
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, mentorID, start, end, resp); err != nil {
			log.Warn().Err(err).Str("mentor_id", mentorID).Msg("slot cache write failed")
		}
	}

	return resp, nil
}

// SetAvailability replaces a mentor's weekly template and overrides.
func (s *AvailabilityService) SetAvailability(ctx context.Context, mentorID string, req *dtos.SetAvailabilityRequest) error {
	weekly := make([]*models.WeeklySlot, 0, len(req.WeeklySlots))
	for _, w := range req.WeeklySlots {
		if _, _, err := parseClock(w.StartTime); err != nil {
			return fmt.Errorf("%w: startTime %q", ErrInvalidClock, w.StartTime)
		}
		if _, _, err := parseClock(w.EndTime); err != nil {
			return fmt.Errorf("%w: endTime %q", ErrInvalidClock, w.EndTime)
		}
		weekly = append(weekly, &models.WeeklySlot{
			MentorID:  mentorID,
			Day:       w.Day,
			StartTime: w.StartTime,
			EndTime:   w.EndTime,
			IsActive:  w.IsActive,
		})
	}

	overrides := make([]*models.OverrideSlot, 0, len(req.OverrideSlots))
	for _, o := range req.OverrideSlots {
		overrides = append(overrides, &models.OverrideSlot{
			MentorID:  mentorID,
			Date:      o.Date,
			IsBlocked: o.IsBlocked,
			Reason:    o.Reason,
		})
	}

	return s.store.Replace(ctx, mentorID, weekly, overrides)
}

func findWeeklySlot(slots []*models.WeeklySlot, day string) *models.WeeklySlot {
	for _, s := range slots {
		if s.Day == day && s.IsActive {
			return s
		}
	}
	return nil
}

func blockedOn(overrides []*models.OverrideSlot, date time.Time) bool {
	y, m, d := date.Date()
	for _, o := range overrides {
		oy, om, od := o.Date.Date()
		if oy == y && om == m && od == d && o.IsBlocked {
			return true
		}
	}
	return false
}

// atClock combines a calendar date with an "HH:MM" clock string in the
// date's location.
func atClock(date time.Time, clock string) (time.Time, error) {
	hour, minute, err := parseClock(clock)
	if err != nil {
		return time.Time{}, err
	}
	y, m, d := date.Date()
	return time.Date(y, m, d, hour, minute, 0, 0, date.Location()), nil
}

func parseClock(clock string) (hour, minute int, err error) {
	parts := strings.SplitN(clock, ":", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("expected HH:MM, got %q", clock)
	}
	hour, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, err
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, err
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("clock out of range: %q", clock)
	}
	return hour, minute, nil
}
