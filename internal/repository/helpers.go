package repository

import (
	"database/sql"
	"time"
)

// timeOrNull prepares an optional timestamp for storage. A nil pointer
// maps to SQL NULL rather than a zero-time string.
func timeOrNull(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.Format(time.RFC3339)
}

// timeFromNull is the inverse of timeOrNull. NULL, empty, and
// unparseable values all come back as nil.
func timeFromNull(s sql.NullString) *time.Time {
	if !s.Valid || s.String == "" {
		return nil
	}
	parsed, err := time.Parse(time.RFC3339, s.String)
	if err != nil {
		return nil
	}
	return &parsed
}
