package testutil

import (
	"time"

	"github.com/google/uuid"

	"nimbus/internal/domain"
)

// NewTestTask builds a valid task for the given user with sensible defaults.
func NewTestTask(userEmail, title string) *domain.Task {
	now := time.Now().UTC().Truncate(time.Second)
	return &domain.Task{
		ID:        uuid.NewString(),
		UserEmail: userEmail,
		Title:     title,
		DueDate:   now.Add(48 * time.Hour),
		Priority:  domain.PriorityMedium,
		Category:  domain.CategoryWork,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// NewTestEvent builds a one-hour calendar event starting at start.
func NewTestEvent(userEmail, title string, start time.Time) *domain.CalendarEvent {
	now := time.Now().UTC().Truncate(time.Second)
	return &domain.CalendarEvent{
		ID:        uuid.NewString(),
		UserEmail: userEmail,
		Title:     title,
		StartTime: start.UTC().Truncate(time.Second),
		EndTime:   start.UTC().Truncate(time.Second).Add(time.Hour),
		Type:      "meeting",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// NewTestGoal builds a goal with the given target.
func NewTestGoal(userEmail, title string, target int) *domain.Goal {
	now := time.Now().UTC().Truncate(time.Second)
	return &domain.Goal{
		ID:        uuid.NewString(),
		UserEmail: userEmail,
		Title:     title,
		Target:    target,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// NewTestSession builds a session valid for 24 hours.
func NewTestSession(userEmail string) *domain.Session {
	now := time.Now().UTC().Truncate(time.Second)
	return &domain.Session{
		Token:     uuid.NewString(),
		UserEmail: userEmail,
		UserName:  "Test User",
		ExpiresAt: now.Add(24 * time.Hour),
		CreatedAt: now,
	}
}
