package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"nimbus/internal/domain"
	"nimbus/internal/repository"
)

// ErrUnauthenticated indicates no valid session could be resolved from
// the caller's credentials.
var ErrUnauthenticated = errors.New("authentication required")

// Resolver resolves a bearer token into a session. A nil session never
// escapes: either a valid session or ErrUnauthenticated.
type Resolver interface {
	Resolve(ctx context.Context, token string) (*domain.Session, error)
}

type sessionResolver struct {
	sessions repository.SessionRepo
	now      func() time.Time
}

// NewResolver creates a Resolver backed by the session store.
func NewResolver(sessions repository.SessionRepo) Resolver {
	return &sessionResolver{sessions: sessions, now: time.Now}
}

func (r *sessionResolver) Resolve(ctx context.Context, token string) (*domain.Session, error) {
	if token == "" {
		return nil, ErrUnauthenticated
	}

	s, err := r.sessions.GetByToken(ctx, token)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrUnauthenticated
	}
	if err != nil {
		return nil, fmt.Errorf("resolving session: %w", err)
	}
	if s.Expired(r.now()) {
		return nil, ErrUnauthenticated
	}
	return s, nil
}

// IssueSession creates and stores a session for the given identity,
// returning the new session with its generated token. The identity
// itself comes from an external provider flow; this only records it.
func IssueSession(ctx context.Context, sessions repository.SessionRepo, email, name string, ttl time.Duration) (*domain.Session, error) {
	if email == "" {
		return nil, ErrUnauthenticated
	}
	now := time.Now().UTC()
	s := &domain.Session{
		Token:     uuid.NewString(),
		UserEmail: email,
		UserName:  name,
		ExpiresAt: now.Add(ttl),
		CreatedAt: now,
	}
	if err := sessions.Create(ctx, s); err != nil {
		return nil, fmt.Errorf("issuing session: %w", err)
	}
	return s, nil
}
