package order

import (
	"context"
	"fmt"
	"time"

	"github.com/ferdiebergado/bookstore/internal/platform/db"
)

var _ OrderRepository = &Repository{}

type Repository struct {
	db db.Executor
}

const (
	QueryOrderCreate     = "INSERT INTO orders DEFAULT VALUES RETURNING id, created_at"
	QueryOrderLineCreate = "INSERT INTO order_books (order_id, book_id, quantity) VALUES ($1, $2, $3)"
)

// Create stores an order and its lines. It must run inside a transaction
// when the lines have to be stored atomically with the order.
func (r *Repository) Create(ctx context.Context, items []Item) (*Order, error) {
	exec := db.ExecutorFromContext(ctx, r.db)

	var o Order
	if err := exec.QueryRowContext(ctx, QueryOrderCreate).Scan(&o.ID, &o.CreatedAt); err != nil {
		return nil, fmt.Errorf("%w: create order: %v", ErrQueryFailed, err)
	}

	for _, it := range items {
		if _, err := exec.ExecContext(ctx, QueryOrderLineCreate, o.ID, it.BookID, it.Quantity); err != nil {
			return nil, fmt.Errorf("%w: add book %d to order %d: %v", ErrQueryFailed, it.BookID, o.ID, err)
		}
	}

	return &o, nil
}

const queryOrderLines = `
SELECT o.id, o.created_at, ob.book_id, ob.quantity,
       b.id, b.title, b.author, b.price, b.genre, b.description, b.quantity, b.created_at, b.updated_at
FROM orders o
JOIN order_books ob ON ob.order_id = o.id
JOIN books b ON b.id = ob.book_id`

const (
	QueryOrderList = queryOrderLines + " ORDER BY o.id, ob.book_id"
	QueryOrderFind = queryOrderLines + " WHERE o.id = $1 ORDER BY ob.book_id"
)

func (r *Repository) List(ctx context.Context) ([]Order, error) {
	orders, err := r.queryOrders(ctx, QueryOrderList)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

func (r *Repository) Find(ctx context.Context, id int64) (*Order, error) {
	orders, err := r.queryOrders(ctx, QueryOrderFind, id)
	if err != nil {
		return nil, fmt.Errorf("find order %d: %w", id, err)
	}

	if len(orders) == 0 {
		return nil, ErrNotFound
	}

	return &orders[0], nil
}

// queryOrders folds the joined rows, ordered by order id, into orders.
func (r *Repository) queryOrders(ctx context.Context, query string, args ...any) ([]Order, error) {
	exec := db.ExecutorFromContext(ctx, r.db)
	rows, err := exec.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQueryFailed, err)
	}
	defer rows.Close()

	var orders []Order
	for rows.Next() {
		var (
			orderID   int64
			createdAt time.Time
			l         Line
		)
		b := &l.Book
		if err := rows.Scan(&orderID, &createdAt, &l.BookID, &l.Quantity,
			&b.ID, &b.Title, &b.Author, &b.Price, &b.Genre, &b.Description, &b.Quantity, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("order repository: scan row: %w", err)
		}
		l.OrderID = orderID

		if n := len(orders); n == 0 || orders[n-1].ID != orderID {
			orders = append(orders, Order{ID: orderID, CreatedAt: createdAt})
		}
		last := &orders[len(orders)-1]
		last.Lines = append(last.Lines, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("order repository: iterate over rows: %w", err)
	}

	return orders, nil
}

func NewRepository(dbExec db.Executor) *Repository {
	return &Repository{db: dbExec}
}
