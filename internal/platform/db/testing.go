package db

import (
	"database/sql"
	"testing"

	"github.com/ferdiebergado/bookstore/internal/config"
)

// NewTestDB opens a private in-memory sqlite database with the schema applied.
// The connection is closed when the test ends.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	cfg := &config.DBOptions{Driver: DriverSQLite}
	conn, err := NewConnection(t.Context(), cfg)
	if err != nil {
		t.Fatalf("failed to create database: %v", err)
	}

	t.Cleanup(func() {
		if err := conn.Close(); err != nil {
			t.Logf("failed to close database: %v", err)
		}
	})

	if err := Migrate(t.Context(), conn, DriverSQLite); err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	return conn
}
