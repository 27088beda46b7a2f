package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/ferdiebergado/bookstore/internal/config"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// NewConnection opens and validates a connection for the configured driver.
func NewConnection(signalCtx context.Context, cfg *config.DBOptions) (*sql.DB, error) {
	slog.Info("Connecting to the database...", "driver", cfg.Driver)

	dsn, err := DSN(cfg)
	if err != nil {
		return nil, err
	}

	conn, err := sql.Open(cfg.Driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if cfg.Driver == DriverSQLite {
		// sqlite allows a single writer.
		conn.SetMaxOpenConns(1)
	} else {
		conn.SetMaxOpenConns(cfg.MaxOpenConns)
		conn.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	conn.SetConnMaxIdleTime(cfg.ConnMaxIdleTime.Duration)
	conn.SetConnMaxLifetime(cfg.ConnMaxLifetime.Duration)

	pingCtx := signalCtx
	if cfg.PingTimeout.Duration > 0 {
		var cancel context.CancelFunc
		pingCtx, cancel = context.WithTimeout(signalCtx, cfg.PingTimeout.Duration)
		defer cancel()
	}

	if err := conn.PingContext(pingCtx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	slog.Info("Connected to the database.", "driver", cfg.Driver, "db", cfg.Name)

	return conn, nil
}

// DSN builds the data source name for the configured driver.
func DSN(cfg *config.DBOptions) (string, error) {
	switch cfg.Driver {
	case DriverPostgres:
		const dsnFmt = "postgres://%s:%s@%s:%s/%s?sslmode=%s"
		return fmt.Sprintf(dsnFmt, cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Name, cfg.SSLMode), nil
	case DriverSQLite:
		path := cfg.Path
		if path == "" {
			path = ":memory:"
		}
		return "file:" + path + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", nil
	default:
		return "", fmt.Errorf("unsupported database driver: %q", cfg.Driver)
	}
}
