package repository

import (
	"context"
	"errors"
	"time"

	"nimbus/internal/domain"
)

// ErrNotFound indicates the requested record does not exist for the
// given user.
var ErrNotFound = errors.New("not found")

// TaskRepo is the per-user keyed task store. Every operation is scoped
// to the authenticated user's email; no operation can reach another
// user's rows.
type TaskRepo interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, userEmail, id string) (*domain.Task, error)
	ListByUser(ctx context.Context, userEmail string) ([]*domain.Task, error)
	Update(ctx context.Context, t *domain.Task) error
	Delete(ctx context.Context, userEmail, id string) error
}

type EventRepo interface {
	Create(ctx context.Context, e *domain.CalendarEvent) error
	GetByID(ctx context.Context, userEmail, id string) (*domain.CalendarEvent, error)
	ListByUser(ctx context.Context, userEmail string) ([]*domain.CalendarEvent, error)
	ListUpcoming(ctx context.Context, userEmail string, from time.Time, limit int) ([]*domain.CalendarEvent, error)
	Update(ctx context.Context, e *domain.CalendarEvent) error
	Delete(ctx context.Context, userEmail, id string) error
}

type GoalRepo interface {
	Create(ctx context.Context, g *domain.Goal) error
	GetByID(ctx context.Context, userEmail, id string) (*domain.Goal, error)
	ListByUser(ctx context.Context, userEmail string) ([]*domain.Goal, error)
	Update(ctx context.Context, g *domain.Goal) error
	Delete(ctx context.Context, userEmail, id string) error
}

type SessionRepo interface {
	Create(ctx context.Context, s *domain.Session) error
	GetByToken(ctx context.Context, token string) (*domain.Session, error)
	Delete(ctx context.Context, token string) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
