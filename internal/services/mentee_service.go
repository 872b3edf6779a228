package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/url"
	"time"

	"github.com/aureeture/careerhub/internal/dtos"
	"github.com/aureeture/careerhub/internal/models"
)

var ErrMenteeNotFound = errors.New("mentee not found")

const (
	menteeStatusActive = "Active"
	menteeStatusPaused = "Paused"
	menteeStatusNew    = "New"
)

// MenteeSessionStore is the slice of session persistence the roster needs.
type MenteeSessionStore interface {
	ListByMentorDesc(ctx context.Context, mentorID string) ([]*models.MentorSession, error)
	ListByMentorAndStudent(ctx context.Context, mentorID, student string) ([]*models.MentorSession, error)
}

// MenteeService derives mentor rosters by grouping sessions per student.
// This is a read-time aggregation recomputed on every request; nothing is
// persisted.
type MenteeService struct {
	store MenteeSessionStore
	now   func() time.Time
}

func NewMenteeService(store MenteeSessionStore) *MenteeService {
	return &MenteeService{store: store, now: time.Now}
}

// List groups a mentor's sessions by student (ID when present, name
// otherwise) and summarizes each mentee's history.
func (s *MenteeService) List(ctx context.Context, mentorID string) (*dtos.MenteeListResponse, error) {
	sessions, err := s.store.ListByMentorDesc(ctx, mentorID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	seen := map[string]bool{}
	resp := &dtos.MenteeListResponse{Mentees: []dtos.MenteeResponse{}}

	for _, session := range sessions {
		key := menteeKey(session)
		if seen[key] {
			continue
		}
		seen[key] = true

		group := filterByKey(sessions, key)
		resp.Mentees = append(resp.Mentees, s.summarize(session, group, now))
	}

	resp.Total = len(resp.Mentees)
	return resp, nil
}

// Get builds the detail view for one mentee, matched by student ID or name.
func (s *MenteeService) Get(ctx context.Context, mentorID, menteeID string) (*dtos.MenteeDetailResponse, error) {
	sessions, err := s.store.ListByMentorAndStudent(ctx, mentorID, menteeID)
	if err != nil {
		return nil, err
	}
	if len(sessions) == 0 {
		return nil, ErrMenteeNotFound
	}

	now := s.now()
	first := sessions[0]
	summary := s.summarize(first, sessions, now)

	// Last session in the detail view means last completed session.
	summary.LastSession = "Never"
	var lastCompleted *models.MentorSession
	for _, sess := range sessions {
		if sess.Status == models.SessionStatusCompleted {
			if lastCompleted == nil || sess.StartTime.After(lastCompleted.StartTime) {
				lastCompleted = sess
			}
		}
	}
	if lastCompleted != nil {
		summary.LastSession = formatDate(lastCompleted.StartTime)
	}

	detail := &dtos.MenteeDetailResponse{
		MenteeResponse: summary,
		Milestones:     milestonesFor(summary.Progress, now),
		Sessions:       []dtos.MenteeSessionSummary{},
	}

	limit := len(sessions)
	if limit > 10 {
		limit = 10
	}
	for _, sess := range sessions[:limit] {
		status := "cancelled"
		if sess.Status == models.SessionStatusCompleted {
			status = "completed"
		} else if sess.StartTime.After(now) {
			status = "upcoming"
		}
		detail.Sessions = append(detail.Sessions, dtos.MenteeSessionSummary{
			ID:     sess.ID.String(),
			Date:   formatDate(sess.StartTime),
			Title:  sess.Title,
			Status: status,
		})
	}

	for _, sess := range sessions {
		if sess.Notes != nil && *sess.Notes != "" {
			detail.Notes = *sess.Notes
			break
		}
	}

	return detail, nil
}

// Progress is the completed/total ratio as a rounded percentage, zero when
// the mentee has no sessions.
func Progress(completed, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(completed) / float64(total)))
}

func (s *MenteeService) summarize(latest *models.MentorSession, group []*models.MentorSession, now time.Time) dtos.MenteeResponse {
	var next *models.MentorSession
	completed := 0
	for _, sess := range group {
		if sess.Status == models.SessionStatusCompleted {
			completed++
		}
		if sess.StartTime.After(now) {
			if next == nil || sess.StartTime.Before(next.StartTime) {
				next = sess
			}
		}
	}

	status := menteeStatusNew
	if next != nil {
		status = menteeStatusActive
	} else if completed > 0 {
		status = menteeStatusPaused
	}

	goal := latest.Title
	if goal == "" {
		goal = "Career development"
	}

	resp := dtos.MenteeResponse{
		ID:          latest.StudentID,
		Name:        latest.StudentName,
		Email:       latest.StudentEmail,
		AvatarURL:   avatarURL(latest.StudentName),
		Goal:        goal,
		Progress:    Progress(completed, len(group)),
		LastSession: formatDate(latest.StartTime),
		Status:      status,
		StudentID:   latest.StudentID,
	}
	if resp.ID == "" {
		resp.ID = "mentee-" + latest.StudentName
	}
	if next != nil {
		resp.NextSession = formatDateTime(next.StartTime)
	}
	return resp
}

func menteeKey(s *models.MentorSession) string {
	if s.StudentID != "" {
		return s.StudentID
	}
	return s.StudentName
}

func filterByKey(sessions []*models.MentorSession, key string) []*models.MentorSession {
	var out []*models.MentorSession
	for _, s := range sessions {
		if menteeKey(s) == key {
			out = append(out, s)
		}
	}
	return out
}

func milestonesFor(progress int, now time.Time) []dtos.MenteeMilestone {
	return []dtos.MenteeMilestone{
		{
			ID:          "m1",
			Title:       "Complete Data Structures & Algorithms",
			Description: "Master core DSA concepts and solve 200+ problems",
			Completed:   progress >= 25,
			DueDate:     formatDate(now.AddDate(0, 0, 30)),
		},
		{
			ID:          "m2",
			Title:       "System Design Fundamentals",
			Description: "Learn distributed systems, scalability, and design patterns",
			Completed:   progress >= 50,
			DueDate:     formatDate(now.AddDate(0, 0, 60)),
		},
		{
			ID:          "m3",
			Title:       "Mock Interviews",
			Description: "Complete 10 mock interviews with feedback",
			Completed:   progress >= 75,
			DueDate:     formatDate(now.AddDate(0, 0, 90)),
		},
	}
}

func avatarURL(name string) string {
	return fmt.Sprintf("https://api.dicebear.com/7.x/avataaars/svg?seed=%s", url.QueryEscape(name))
}

func formatDate(t time.Time) string {
	return t.Format("2 Jan 2006")
}

func formatDateTime(t time.Time) string {
	return t.Format("2 Jan, 15:04")
}
