package domain

import "time"

type Task struct {
	ID          string
	UserEmail   string
	Title       string
	Description string
	DueDate     time.Time
	Priority    Priority
	Category    Category
	Completed   bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks the closed enumerations and required fields.
func (t *Task) Validate() error {
	if t.Title == "" {
		return &FieldError{Field: "title"}
	}
	if t.DueDate.IsZero() {
		return &FieldError{Field: "dueDate"}
	}
	if !ValidPriorities[string(t.Priority)] {
		return &FieldError{Field: "priority"}
	}
	if !ValidCategories[string(t.Category)] {
		return &FieldError{Field: "category"}
	}
	return nil
}

// FieldError reports a missing or malformed required field.
type FieldError struct {
	Field string
}

func (e *FieldError) Error() string {
	return "invalid or missing field: " + e.Field
}
