package domain

import "time"

// Goal tracks long-running progress toward a target (e.g. "read 12 books").
type Goal struct {
	ID        string
	UserEmail string
	Title     string
	Target    int
	Progress  int
	DueDate   *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (g *Goal) Validate() error {
	if g.Title == "" {
		return &FieldError{Field: "title"}
	}
	if g.Target <= 0 {
		return &FieldError{Field: "target"}
	}
	return nil
}

// PercentComplete returns progress as a 0-100 percentage, clamped.
func (g *Goal) PercentComplete() int {
	if g.Target <= 0 {
		return 0
	}
	pct := g.Progress * 100 / g.Target
	if pct > 100 {
		return 100
	}
	if pct < 0 {
		return 0
	}
	return pct
}
