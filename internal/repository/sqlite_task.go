package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"nimbus/internal/domain"
)

// taskColumns is the canonical SELECT column list for tasks.
const taskColumns = `id, user_email, title, description, due_date, priority, category,
		completed, created_at, updated_at`

// SQLiteTaskRepo implements TaskRepo using a SQLite database.
type SQLiteTaskRepo struct {
	db *sql.DB
}

// NewSQLiteTaskRepo creates a new SQLiteTaskRepo.
func NewSQLiteTaskRepo(db *sql.DB) *SQLiteTaskRepo {
	return &SQLiteTaskRepo{db: db}
}

func (r *SQLiteTaskRepo) Create(ctx context.Context, t *domain.Task) error {
	query := `INSERT INTO tasks (id, user_email, title, description, due_date, priority, category,
		completed, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		t.ID,
		t.UserEmail,
		t.Title,
		t.Description,
		t.DueDate.Format(time.RFC3339),
		string(t.Priority),
		string(t.Category),
		t.Completed,
		t.CreatedAt.Format(time.RFC3339),
		t.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting task: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRepo) GetByID(ctx context.Context, userEmail, id string) (*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE user_email = ? AND id = ?`
	row := r.db.QueryRowContext(ctx, query, userEmail, id)
	return r.scanTask(row)
}

func (r *SQLiteTaskRepo) ListByUser(ctx context.Context, userEmail string) ([]*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE user_email = ? ORDER BY due_date, created_at`
	rows, err := r.db.QueryContext(ctx, query, userEmail)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	defer rows.Close()
	return r.scanTasks(rows)
}

func (r *SQLiteTaskRepo) Update(ctx context.Context, t *domain.Task) error {
	query := `UPDATE tasks SET title = ?, description = ?, due_date = ?, priority = ?,
		category = ?, completed = ?, updated_at = ?
		WHERE user_email = ? AND id = ?`
	res, err := r.db.ExecContext(ctx, query,
		t.Title,
		t.Description,
		t.DueDate.Format(time.RFC3339),
		string(t.Priority),
		string(t.Category),
		t.Completed,
		t.UpdatedAt.Format(time.RFC3339),
		t.UserEmail,
		t.ID,
	)
	if err != nil {
		return fmt.Errorf("updating task: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("task %s: %w", t.ID, ErrNotFound)
	}
	return nil
}

func (r *SQLiteTaskRepo) Delete(ctx context.Context, userEmail, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE user_email = ? AND id = ?`, userEmail, id)
	if err != nil {
		return fmt.Errorf("deleting task: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("task %s: %w", id, ErrNotFound)
	}
	return nil
}

func (r *SQLiteTaskRepo) scanTask(row *sql.Row) (*domain.Task, error) {
	t, err := scanTaskFields(row.Scan)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("task: %w", ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("scanning task: %w", err)
	}
	return t, nil
}

func (r *SQLiteTaskRepo) scanTasks(rows *sql.Rows) ([]*domain.Task, error) {
	var tasks []*domain.Task
	for rows.Next() {
		t, err := scanTaskFields(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning task: %w", err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tasks: %w", err)
	}
	return tasks, nil
}

func scanTaskFields(scan func(dest ...any) error) (*domain.Task, error) {
	var t domain.Task
	var priorityStr, categoryStr string
	var dueDateStr, createdAtStr, updatedAtStr string

	err := scan(
		&t.ID, &t.UserEmail, &t.Title, &t.Description, &dueDateStr,
		&priorityStr, &categoryStr, &t.Completed, &createdAtStr, &updatedAtStr,
	)
	if err != nil {
		return nil, err
	}

	t.Priority = domain.Priority(priorityStr)
	t.Category = domain.Category(categoryStr)

	if t.DueDate, err = time.Parse(time.RFC3339, dueDateStr); err != nil {
		return nil, fmt.Errorf("parsing due_date: %w", err)
	}
	if t.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if t.UpdatedAt, err = time.Parse(time.RFC3339, updatedAtStr); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &t, nil
}
