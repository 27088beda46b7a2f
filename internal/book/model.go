package book

import (
	"errors"
	"fmt"
	"time"

	"github.com/ferdiebergado/bookstore/internal/model"
)

var (
	ErrNotFound          = errors.New("book not found")
	ErrEmptySearch       = errors.New("search value is empty")
	ErrDuplicate         = errors.New("book with the same title and author already exists")
	ErrInOrders          = errors.New("book is referenced by orders")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrQueryFailed       = errors.New("book repository: query failed")
)

type Book struct {
	model.Model

	Title       string
	Author      string
	Price       float64
	Genre       string
	Description string
	Quantity    int
	Reviews     []Review
}

// Review is the review summary embedded in catalog responses.
type Review struct {
	ID        int64
	BookID    int64
	Name      string
	Text      string
	Score     int
	CreatedAt time.Time
}

type CreateParams struct {
	Title       string
	Author      string
	Price       float64
	Genre       string
	Description string
	Quantity    int
}

// UpdateParams holds the fields to change. Nil fields keep their value.
type UpdateParams struct {
	Title       *string
	Author      *string
	Price       *float64
	Genre       *string
	Description *string
	Quantity    *int
}

// StockError reports a book that cannot cover the requested quantity.
type StockError struct {
	BookID    int64
	Title     string
	Requested int
	Available int
}

func (e *StockError) Error() string {
	if e.Title != "" {
		return fmt.Sprintf("book %q does not have enough stock. Current stock: %d", e.Title, e.Available)
	}
	return fmt.Sprintf("insufficient stock for book with ID %d", e.BookID)
}

func (e *StockError) Unwrap() error {
	return ErrInsufficientStock
}
