package order

import (
	"errors"
	"time"

	"github.com/ferdiebergado/bookstore/internal/book"
)

var (
	ErrNotFound      = errors.New("order not found")
	ErrNoOrders      = errors.New("no orders found")
	ErrEmpty         = errors.New("order has no items")
	ErrInvalidItem   = errors.New("order item is invalid")
	ErrBooksNotFound = errors.New("one or more books were not found")
	ErrQueryFailed   = errors.New("order repository: query failed")
)

const (
	SourceDirect   = "direct"
	SourceCheckout = "checkout"
)

// Item is a requested book and quantity.
type Item struct {
	BookID   int64
	Quantity int
}

type Line struct {
	OrderID  int64
	BookID   int64
	Quantity int
	Book     book.Book
}

type Order struct {
	ID        int64
	CreatedAt time.Time
	Lines     []Line
}

// Total is the sum of the line prices at the current book prices.
func (o *Order) Total() float64 {
	var total float64
	for _, l := range o.Lines {
		total += l.Book.Price * float64(l.Quantity)
	}
	return total
}

// Merge sums the quantities of items that refer to the same book. The first
// occurrence of each book keeps its position.
func Merge(items []Item) []Item {
	merged := make([]Item, 0, len(items))
	index := make(map[int64]int, len(items))
	for _, it := range items {
		if i, ok := index[it.BookID]; ok {
			merged[i].Quantity += it.Quantity
			continue
		}
		index[it.BookID] = len(merged)
		merged = append(merged, it)
	}
	return merged
}
