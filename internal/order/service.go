package order

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/ferdiebergado/bookstore/internal/book"
	"github.com/ferdiebergado/bookstore/internal/metrics"
	"github.com/ferdiebergado/bookstore/internal/platform/db"
)

type OrderRepository interface {
	Create(ctx context.Context, items []Item) (*Order, error)
	List(ctx context.Context) ([]Order, error)
	Find(ctx context.Context, id int64) (*Order, error)
}

// BookStore is the part of the catalog orders draw stock from.
type BookStore interface {
	FindMany(ctx context.Context, ids []int64) ([]book.Book, error)
	DecrementStock(ctx context.Context, id int64, qty int) error
}

// Notifier announces a stored order.
type Notifier interface {
	OrderPlaced(ctx context.Context, o *Order) error
}

var _ OrderService = &Service{}

type Service struct {
	repo     OrderRepository
	books    BookStore
	txMgr    db.TxManager
	notifier Notifier
	wg       sync.WaitGroup
}

func (s *Service) Create(ctx context.Context, items []Item) (*Order, error) {
	if len(items) == 0 {
		return nil, ErrEmpty
	}

	for _, it := range items {
		if it.BookID < 1 || it.Quantity < 1 {
			return nil, fmt.Errorf("%w: book %d quantity %d", ErrInvalidItem, it.BookID, it.Quantity)
		}
	}

	var o *Order
	err := s.txMgr.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		o, err = s.Place(txCtx, items)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.Confirm(ctx, o, SourceDirect)
	return o, nil
}

// Place checks the stock of every item, takes it from the catalog and stores
// the order. Callers run it inside the transaction carried by ctx.
func (s *Service) Place(ctx context.Context, items []Item) (*Order, error) {
	items = Merge(items)
	if len(items) == 0 {
		return nil, ErrEmpty
	}

	ids := make([]int64, len(items))
	for i, it := range items {
		ids[i] = it.BookID
	}

	books, err := s.books.FindMany(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("find books to order: %w", err)
	}

	if len(books) != len(ids) {
		return nil, fmt.Errorf("%w: requested %v", ErrBooksNotFound, ids)
	}

	byID := make(map[int64]book.Book, len(books))
	for _, b := range books {
		byID[b.ID] = b
	}

	for _, it := range items {
		b := byID[it.BookID]
		if b.Quantity < it.Quantity {
			return nil, &book.StockError{BookID: b.ID, Title: b.Title, Requested: it.Quantity, Available: b.Quantity}
		}
	}

	lines := make([]Line, 0, len(items))
	for _, it := range items {
		b := byID[it.BookID]
		if err := s.books.DecrementStock(ctx, it.BookID, it.Quantity); err != nil {
			var stockErr *book.StockError
			if errors.As(err, &stockErr) {
				stockErr.Title = b.Title
				stockErr.Available = b.Quantity
			}
			return nil, fmt.Errorf("take %d copies of book %d: %w", it.Quantity, it.BookID, err)
		}

		b.Quantity -= it.Quantity
		lines = append(lines, Line{BookID: it.BookID, Quantity: it.Quantity, Book: b})
	}

	o, err := s.repo.Create(ctx, items)
	if err != nil {
		return nil, err
	}

	for i := range lines {
		lines[i].OrderID = o.ID
	}
	o.Lines = lines

	return o, nil
}

// Confirm records a committed order and sends its notification in the
// background. Wait blocks until pending notifications are done.
func (s *Service) Confirm(ctx context.Context, o *Order, source string) {
	metrics.OrdersPlaced.WithLabelValues(source).Inc()

	var copies int
	for _, l := range o.Lines {
		copies += l.Quantity
	}
	metrics.BooksSold.Add(float64(copies))

	slog.InfoContext(ctx, "order placed", "order_id", o.ID, "source", source, "lines", len(o.Lines), "copies", copies)

	if s.notifier == nil {
		return
	}

	notifyCtx := context.WithoutCancel(ctx)
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		if err := s.notifier.OrderPlaced(notifyCtx, o); err != nil {
			metrics.NotificationsTotal.WithLabelValues("failed").Inc()
			slog.ErrorContext(notifyCtx, "failed to send order notification", "order_id", o.ID, "reason", err)
			return
		}
		metrics.NotificationsTotal.WithLabelValues("sent").Inc()
	}()
}

func (s *Service) Wait() {
	s.wg.Wait()
}

func (s *Service) List(ctx context.Context) ([]Order, error) {
	orders, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if len(orders) == 0 {
		return nil, ErrNoOrders
	}

	return orders, nil
}

func (s *Service) Find(ctx context.Context, id int64) (*Order, error) {
	return s.repo.Find(ctx, id)
}

// NewService creates the order service. notifier may be nil.
func NewService(repo OrderRepository, books BookStore, txMgr db.TxManager, notifier Notifier) *Service {
	return &Service{
		repo:     repo,
		books:    books,
		txMgr:    txMgr,
		notifier: notifier,
	}
}
