package domain

import "time"

// CalendarEvent is a single entry on the user's calendar.
type CalendarEvent struct {
	ID        string
	UserEmail string
	Title     string
	StartTime time.Time
	EndTime   time.Time
	Type      string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks required fields, time ordering, and the type
// enumeration. An empty type is allowed; it renders as an untyped
// entry.
func (e *CalendarEvent) Validate() error {
	if e.Title == "" {
		return &FieldError{Field: "title"}
	}
	if e.StartTime.IsZero() {
		return &FieldError{Field: "startTime"}
	}
	if e.EndTime.IsZero() || e.EndTime.Before(e.StartTime) {
		return &FieldError{Field: "endTime"}
	}
	if e.Type != "" && !ValidEventTypes[e.Type] {
		return &FieldError{Field: "type"}
	}
	return nil
}
