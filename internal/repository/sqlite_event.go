package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"nimbus/internal/domain"
)

// eventColumns is the canonical SELECT column list for calendar_events.
const eventColumns = `id, user_email, title, start_time, end_time, type, created_at, updated_at`

// SQLiteEventRepo implements EventRepo using a SQLite database.
type SQLiteEventRepo struct {
	db *sql.DB
}

// NewSQLiteEventRepo creates a new SQLiteEventRepo.
func NewSQLiteEventRepo(db *sql.DB) *SQLiteEventRepo {
	return &SQLiteEventRepo{db: db}
}

func (r *SQLiteEventRepo) Create(ctx context.Context, e *domain.CalendarEvent) error {
	query := `INSERT INTO calendar_events (id, user_email, title, start_time, end_time, type, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		e.ID,
		e.UserEmail,
		e.Title,
		e.StartTime.Format(time.RFC3339),
		e.EndTime.Format(time.RFC3339),
		e.Type,
		e.CreatedAt.Format(time.RFC3339),
		e.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting calendar event: %w", err)
	}
	return nil
}

func (r *SQLiteEventRepo) GetByID(ctx context.Context, userEmail, id string) (*domain.CalendarEvent, error) {
	query := `SELECT ` + eventColumns + ` FROM calendar_events WHERE user_email = ? AND id = ?`
	row := r.db.QueryRowContext(ctx, query, userEmail, id)
	e, err := scanEventFields(row.Scan)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("calendar event: %w", ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("scanning calendar event: %w", err)
	}
	return e, nil
}

func (r *SQLiteEventRepo) ListByUser(ctx context.Context, userEmail string) ([]*domain.CalendarEvent, error) {
	query := `SELECT ` + eventColumns + ` FROM calendar_events WHERE user_email = ? ORDER BY start_time`
	rows, err := r.db.QueryContext(ctx, query, userEmail)
	if err != nil {
		return nil, fmt.Errorf("listing calendar events: %w", err)
	}
	defer rows.Close()
	return scanEvents(rows)
}

func (r *SQLiteEventRepo) ListUpcoming(ctx context.Context, userEmail string, from time.Time, limit int) ([]*domain.CalendarEvent, error) {
	query := `SELECT ` + eventColumns + ` FROM calendar_events
		WHERE user_email = ? AND end_time >= ?
		ORDER BY start_time
		LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, userEmail, from.Format(time.RFC3339), limit)
	if err != nil {
		return nil, fmt.Errorf("listing upcoming events: %w", err)
	}
	defer rows.Close()
	return scanEvents(rows)
}

func (r *SQLiteEventRepo) Update(ctx context.Context, e *domain.CalendarEvent) error {
	query := `UPDATE calendar_events SET title = ?, start_time = ?, end_time = ?, type = ?, updated_at = ?
		WHERE user_email = ? AND id = ?`
	res, err := r.db.ExecContext(ctx, query,
		e.Title,
		e.StartTime.Format(time.RFC3339),
		e.EndTime.Format(time.RFC3339),
		e.Type,
		e.UpdatedAt.Format(time.RFC3339),
		e.UserEmail,
		e.ID,
	)
	if err != nil {
		return fmt.Errorf("updating calendar event: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("calendar event %s: %w", e.ID, ErrNotFound)
	}
	return nil
}

func (r *SQLiteEventRepo) Delete(ctx context.Context, userEmail, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM calendar_events WHERE user_email = ? AND id = ?`, userEmail, id)
	if err != nil {
		return fmt.Errorf("deleting calendar event: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("calendar event %s: %w", id, ErrNotFound)
	}
	return nil
}

func scanEvents(rows *sql.Rows) ([]*domain.CalendarEvent, error) {
	var events []*domain.CalendarEvent
	for rows.Next() {
		e, err := scanEventFields(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning calendar event: %w", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating calendar events: %w", err)
	}
	return events, nil
}

func scanEventFields(scan func(dest ...any) error) (*domain.CalendarEvent, error) {
	var e domain.CalendarEvent
	var startStr, endStr, createdAtStr, updatedAtStr string

	err := scan(&e.ID, &e.UserEmail, &e.Title, &startStr, &endStr, &e.Type, &createdAtStr, &updatedAtStr)
	if err != nil {
		return nil, err
	}

	if e.StartTime, err = time.Parse(time.RFC3339, startStr); err != nil {
		return nil, fmt.Errorf("parsing start_time: %w", err)
	}
	if e.EndTime, err = time.Parse(time.RFC3339, endStr); err != nil {
		return nil, fmt.Errorf("parsing end_time: %w", err)
	}
	if e.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if e.UpdatedAt, err = time.Parse(time.RFC3339, updatedAtStr); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &e, nil
}
