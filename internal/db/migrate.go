package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS tasks (
		id          TEXT PRIMARY KEY,
		user_email  TEXT NOT NULL,
		title       TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		due_date    TEXT NOT NULL,
		priority    TEXT NOT NULL
		            CHECK(priority IN ('high','medium','low')),
		category    TEXT NOT NULL
		            CHECK(category IN ('work','personal','study')),
		completed   INTEGER NOT NULL DEFAULT 0,
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_user ON tasks(user_email)`,

	`CREATE TABLE IF NOT EXISTS calendar_events (
		id         TEXT PRIMARY KEY,
		user_email TEXT NOT NULL,
		title      TEXT NOT NULL,
		start_time TEXT NOT NULL,
		end_time   TEXT NOT NULL,
		type       TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_calendar_events_user ON calendar_events(user_email)`,
	`CREATE INDEX IF NOT EXISTS idx_calendar_events_start ON calendar_events(user_email, start_time)`,

	`CREATE TABLE IF NOT EXISTS goals (
		id         TEXT PRIMARY KEY,
		user_email TEXT NOT NULL,
		title      TEXT NOT NULL,
		target     INTEGER NOT NULL,
		progress   INTEGER NOT NULL DEFAULT 0,
		due_date   TEXT,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_goals_user ON goals(user_email)`,

	`CREATE TABLE IF NOT EXISTS sessions (
		token      TEXT PRIMARY KEY,
		user_email TEXT NOT NULL,
		user_name  TEXT NOT NULL DEFAULT '',
		expires_at TEXT NOT NULL,
		created_at TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_sessions_user ON sessions(user_email)`,
}
