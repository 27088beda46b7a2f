package db

import (
	"context"
	"embed"
	"fmt"
	"log/slog"
	"strings"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Migrate applies the schema for driver. Every statement is idempotent.
func Migrate(ctx context.Context, exec Executor, driver string) error {
	var file string
	switch driver {
	case DriverPostgres:
		file = "migrations/postgres.sql"
	case DriverSQLite:
		file = "migrations/sqlite.sql"
	default:
		return fmt.Errorf("migrate: unsupported database driver: %q", driver)
	}

	schema, err := migrations.ReadFile(file)
	if err != nil {
		return fmt.Errorf("migrate: read %s: %w", file, err)
	}

	for _, stmt := range strings.Split(string(schema), ";\n") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}

		if _, err := exec.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: exec %q: %w", firstLine(stmt), err)
		}
	}

	slog.Info("Database schema is up to date.", "driver", driver)
	return nil
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
