package cart

import (
	"errors"
	"fmt"

	"github.com/ferdiebergado/bookstore/internal/book"
)

var (
	ErrEmpty           = errors.New("cart is empty")
	ErrItemNotFound    = errors.New("book not found in cart")
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	ErrExceedsStock    = errors.New("requested quantity exceeds available stock")
	ErrNothingAdded    = errors.New("no suggested book was added to the cart")
	ErrQueryFailed     = errors.New("cart repository: query failed")
)

// Item is a cart line with its book.
type Item struct {
	ID       int64
	CartID   int64
	BookID   int64
	Quantity int
	Book     book.Book
}

// QuantityError reports a cart quantity larger than the stock of the book.
type QuantityError struct {
	Requested int
	Available int
}

func (e *QuantityError) Error() string {
	return fmt.Sprintf("Requested quantity (%d) exceeds available stock (%d).", e.Requested, e.Available)
}

func (e *QuantityError) Unwrap() error {
	return ErrExceedsStock
}
