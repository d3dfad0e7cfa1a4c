package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"nimbus/internal/domain"
)

const goalColumns = `id, user_email, title, target, progress, due_date, created_at, updated_at`

// SQLiteGoalRepo implements GoalRepo using a SQLite database.
type SQLiteGoalRepo struct {
	db *sql.DB
}

// NewSQLiteGoalRepo creates a new SQLiteGoalRepo.
func NewSQLiteGoalRepo(db *sql.DB) *SQLiteGoalRepo {
	return &SQLiteGoalRepo{db: db}
}

func (r *SQLiteGoalRepo) Create(ctx context.Context, g *domain.Goal) error {
	query := `INSERT INTO goals (id, user_email, title, target, progress, due_date, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		g.ID,
		g.UserEmail,
		g.Title,
		g.Target,
		g.Progress,
		timeOrNull(g.DueDate),
		g.CreatedAt.Format(time.RFC3339),
		g.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting goal: %w", err)
	}
	return nil
}

func (r *SQLiteGoalRepo) GetByID(ctx context.Context, userEmail, id string) (*domain.Goal, error) {
	query := `SELECT ` + goalColumns + ` FROM goals WHERE user_email = ? AND id = ?`
	row := r.db.QueryRowContext(ctx, query, userEmail, id)
	g, err := scanGoalFields(row.Scan)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("goal: %w", ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("scanning goal: %w", err)
	}
	return g, nil
}

func (r *SQLiteGoalRepo) ListByUser(ctx context.Context, userEmail string) ([]*domain.Goal, error) {
	query := `SELECT ` + goalColumns + ` FROM goals WHERE user_email = ? ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query, userEmail)
	if err != nil {
		return nil, fmt.Errorf("listing goals: %w", err)
	}
	defer rows.Close()

	var goals []*domain.Goal
	for rows.Next() {
		g, err := scanGoalFields(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning goal: %w", err)
		}
		goals = append(goals, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating goals: %w", err)
	}
	return goals, nil
}

func (r *SQLiteGoalRepo) Update(ctx context.Context, g *domain.Goal) error {
	query := `UPDATE goals SET title = ?, target = ?, progress = ?, due_date = ?, updated_at = ?
		WHERE user_email = ? AND id = ?`
	res, err := r.db.ExecContext(ctx, query,
		g.Title,
		g.Target,
		g.Progress,
		timeOrNull(g.DueDate),
		g.UpdatedAt.Format(time.RFC3339),
		g.UserEmail,
		g.ID,
	)
	if err != nil {
		return fmt.Errorf("updating goal: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("goal %s: %w", g.ID, ErrNotFound)
	}
	return nil
}

func (r *SQLiteGoalRepo) Delete(ctx context.Context, userEmail, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM goals WHERE user_email = ? AND id = ?`, userEmail, id)
	if err != nil {
		return fmt.Errorf("deleting goal: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("goal %s: %w", id, ErrNotFound)
	}
	return nil
}

func scanGoalFields(scan func(dest ...any) error) (*domain.Goal, error) {
	var g domain.Goal
	var dueDateStr sql.NullString
	var createdAtStr, updatedAtStr string

	err := scan(&g.ID, &g.UserEmail, &g.Title, &g.Target, &g.Progress, &dueDateStr, &createdAtStr, &updatedAtStr)
	if err != nil {
		return nil, err
	}

	g.DueDate = timeFromNull(dueDateStr)
	if g.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if g.UpdatedAt, err = time.Parse(time.RFC3339, updatedAtStr); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &g, nil
}
