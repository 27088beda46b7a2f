// Package seed fills an empty store with the starter catalog.
package seed

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ferdiebergado/bookstore/internal/platform/db"
)

// DefaultQuantity is the stock every starter book is created with.
const DefaultQuantity = 10

type Book struct {
	Title       string
	Author      string
	Price       float64
	Genre       string
	Description string
}

// tables lists every table in the order rows can be deleted without
// violating a foreign key.
var tables = []string{"reviews", "cart_items", "carts", "order_books", "orders", "books"}

// identityTables have a generated id whose counter is reset by Clear.
var identityTables = []string{"reviews", "cart_items", "carts", "orders", "books"}

// Books inserts the catalog, skipping title/author pairs that already exist.
// It returns the number of books inserted.
func Books(ctx context.Context, exec db.Executor, books []Book, quantity int) (int, error) {
	const query = `
	INSERT INTO books (title, author, price, genre, description, quantity)
	VALUES ($1, $2, $3, $4, $5, $6)
	ON CONFLICT (title, author) DO NOTHING`

	var inserted int
	for _, b := range books {
		res, err := exec.ExecContext(ctx, query, b.Title, b.Author, b.Price, b.Genre, b.Description, quantity)
		if err != nil {
			return inserted, fmt.Errorf("insert book %q: %w", b.Title, err)
		}

		n, err := res.RowsAffected()
		if err != nil {
			return inserted, fmt.Errorf("rows affected for %q: %w", b.Title, err)
		}
		inserted += int(n)
	}

	slog.InfoContext(ctx, "catalog seeded", "inserted", inserted, "skipped", len(books)-inserted)
	return inserted, nil
}

// Clear deletes every row of the store and resets the id counters.
func Clear(ctx context.Context, exec db.Executor, driver string) error {
	if driver != db.DriverPostgres && driver != db.DriverSQLite {
		return fmt.Errorf("clear: unsupported database driver: %q", driver)
	}

	for _, table := range tables {
		if _, err := exec.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	for _, table := range identityTables {
		stmt := "DELETE FROM sqlite_sequence WHERE name = '" + table + "'"
		if driver == db.DriverPostgres {
			stmt = "ALTER TABLE " + table + " ALTER COLUMN id RESTART WITH 1"
		}

		if _, err := exec.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("reset id of %s: %w", table, err)
		}
	}

	slog.InfoContext(ctx, "store cleared", "tables", len(tables))
	return nil
}
