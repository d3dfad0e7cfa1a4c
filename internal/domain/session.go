package domain

import "time"

// Session is an authenticated identity context resolved from the
// caller's credentials. A nil session means unauthenticated; handlers
// never substitute a placeholder identity.
type Session struct {
	Token     string
	UserEmail string
	UserName  string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// Expired reports whether the session has passed its expiry at the given time.
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}
