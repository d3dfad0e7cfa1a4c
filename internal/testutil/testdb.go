package testutil

import (
	"database/sql"
	"testing"

	"nimbus/internal/db"
)

// NewTestDB opens a migrated in-memory database scoped to the test.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(db.InMemory)
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}
