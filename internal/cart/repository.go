package cart

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ferdiebergado/bookstore/internal/platform/db"
)

var _ CartRepository = &Repository{}

type Repository struct {
	db db.Executor
}

const (
	QueryCartFirst  = "SELECT id FROM carts ORDER BY id LIMIT 1"
	QueryCartCreate = "INSERT INTO carts DEFAULT VALUES RETURNING id"
)

// CartID returns the id of the shared cart, creating the cart on first use.
func (r *Repository) CartID(ctx context.Context) (int64, error) {
	exec := db.ExecutorFromContext(ctx, r.db)

	var id int64
	err := exec.QueryRowContext(ctx, QueryCartFirst).Scan(&id)
	if err == nil {
		return id, nil
	}

	if !errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("%w: find cart: %v", ErrQueryFailed, err)
	}

	if err := exec.QueryRowContext(ctx, QueryCartCreate).Scan(&id); err != nil {
		return 0, fmt.Errorf("%w: create cart: %v", ErrQueryFailed, err)
	}

	return id, nil
}

const queryCartItems = `
SELECT ci.id, ci.cart_id, ci.book_id, ci.quantity,
       b.id, b.title, b.author, b.price, b.genre, b.description, b.quantity, b.created_at, b.updated_at
FROM cart_items ci
JOIN books b ON b.id = ci.book_id
WHERE ci.cart_id = $1`

const (
	QueryCartItems = queryCartItems + " ORDER BY ci.id"
	QueryCartItem  = queryCartItems + " AND ci.book_id = $2"
)

type scanner interface {
	Scan(dest ...any) error
}

func scanItem(row scanner) (Item, error) {
	var it Item
	b := &it.Book
	err := row.Scan(&it.ID, &it.CartID, &it.BookID, &it.Quantity,
		&b.ID, &b.Title, &b.Author, &b.Price, &b.Genre, &b.Description, &b.Quantity, &b.CreatedAt, &b.UpdatedAt)
	return it, err
}

func (r *Repository) Items(ctx context.Context, cartID int64) ([]Item, error) {
	exec := db.ExecutorFromContext(ctx, r.db)
	rows, err := exec.QueryContext(ctx, QueryCartItems, cartID)
	if err != nil {
		return nil, fmt.Errorf("%w: list items of cart %d: %v", ErrQueryFailed, cartID, err)
	}
	defer rows.Close()

	//nolint:prealloc //Cannot identify the length of the rows without running another query.
	var items []Item
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("cart repository: scan row: %w", err)
		}
		items = append(items, it)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("cart repository: iterate over rows: %w", err)
	}

	return items, nil
}

func (r *Repository) Item(ctx context.Context, cartID, bookID int64) (*Item, error) {
	exec := db.ExecutorFromContext(ctx, r.db)
	it, err := scanItem(exec.QueryRowContext(ctx, QueryCartItem, cartID, bookID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("%w: find book %d in cart %d: %v", ErrQueryFailed, bookID, cartID, err)
	}

	return &it, nil
}

const QueryCartItemSet = `
INSERT INTO cart_items (cart_id, book_id, quantity)
VALUES ($1, $2, $3)
ON CONFLICT (cart_id, book_id) DO UPDATE SET quantity = excluded.quantity`

// SetQuantity creates the line for the book or replaces its quantity.
func (r *Repository) SetQuantity(ctx context.Context, cartID, bookID int64, qty int) error {
	exec := db.ExecutorFromContext(ctx, r.db)
	if _, err := exec.ExecContext(ctx, QueryCartItemSet, cartID, bookID, qty); err != nil {
		return fmt.Errorf("%w: set quantity of book %d in cart %d to %d: %v", ErrQueryFailed, bookID, cartID, qty, err)
	}
	return nil
}

const QueryCartItemRemove = "DELETE FROM cart_items WHERE cart_id = $1 AND book_id = $2"

func (r *Repository) Remove(ctx context.Context, cartID, bookID int64) error {
	exec := db.ExecutorFromContext(ctx, r.db)
	res, err := exec.ExecContext(ctx, QueryCartItemRemove, cartID, bookID)
	if err != nil {
		return fmt.Errorf("%w: remove book %d from cart %d: %v", ErrQueryFailed, bookID, cartID, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("cart repository: rows affected: %w", err)
	}

	if n == 0 {
		return ErrItemNotFound
	}

	return nil
}

const QueryCartClear = "DELETE FROM cart_items WHERE cart_id = $1"

func (r *Repository) Clear(ctx context.Context, cartID int64) error {
	exec := db.ExecutorFromContext(ctx, r.db)
	if _, err := exec.ExecContext(ctx, QueryCartClear, cartID); err != nil {
		return fmt.Errorf("%w: clear cart %d: %v", ErrQueryFailed, cartID, err)
	}
	return nil
}

func NewRepository(dbExec db.Executor) *Repository {
	return &Repository{db: dbExec}
}
