package order

import (
	"context"
	"errors"

	"github.com/ferdiebergado/bookstore/internal/book"
)

type StubService struct {
	CreateFunc func(ctx context.Context, items []Item) (*Order, error)
	ListFunc   func(ctx context.Context) ([]Order, error)
	FindFunc   func(ctx context.Context, id int64) (*Order, error)
}

var _ OrderService = &StubService{}

func (s *StubService) Create(ctx context.Context, items []Item) (*Order, error) {
	if s.CreateFunc == nil {
		return nil, errors.New("Create() not implemented by stub")
	}
	return s.CreateFunc(ctx, items)
}

func (s *StubService) List(ctx context.Context) ([]Order, error) {
	if s.ListFunc == nil {
		return nil, errors.New("List() not implemented by stub")
	}
	return s.ListFunc(ctx)
}

func (s *StubService) Find(ctx context.Context, id int64) (*Order, error) {
	if s.FindFunc == nil {
		return nil, errors.New("Find() not implemented by stub")
	}
	return s.FindFunc(ctx, id)
}

type StubBookStore struct {
	FindManyFunc       func(ctx context.Context, ids []int64) ([]book.Book, error)
	DecrementStockFunc func(ctx context.Context, id int64, qty int) error
}

var _ BookStore = &StubBookStore{}

func (s *StubBookStore) FindMany(ctx context.Context, ids []int64) ([]book.Book, error) {
	if s.FindManyFunc == nil {
		return nil, errors.New("FindMany() not implemented by stub")
	}
	return s.FindManyFunc(ctx, ids)
}

func (s *StubBookStore) DecrementStock(ctx context.Context, id int64, qty int) error {
	if s.DecrementStockFunc == nil {
		return errors.New("DecrementStock() not implemented by stub")
	}
	return s.DecrementStockFunc(ctx, id, qty)
}

type StubNotifier struct {
	OrderPlacedFunc func(ctx context.Context, o *Order) error
}

var _ Notifier = &StubNotifier{}

func (n *StubNotifier) OrderPlaced(ctx context.Context, o *Order) error {
	if n.OrderPlacedFunc == nil {
		return errors.New("OrderPlaced() not implemented by stub")
	}
	return n.OrderPlacedFunc(ctx, o)
}

type StubRepo struct {
	CreateFunc func(ctx context.Context, items []Item) (*Order, error)
	ListFunc   func(ctx context.Context) ([]Order, error)
	FindFunc   func(ctx context.Context, id int64) (*Order, error)
}

var _ OrderRepository = &StubRepo{}

func (r *StubRepo) Create(ctx context.Context, items []Item) (*Order, error) {
	if r.CreateFunc == nil {
		return nil, errors.New("Create() not implemented by stub")
	}
	return r.CreateFunc(ctx, items)
}

func (r *StubRepo) List(ctx context.Context) ([]Order, error) {
	if r.ListFunc == nil {
		return nil, errors.New("List() not implemented by stub")
	}
	return r.ListFunc(ctx)
}

func (r *StubRepo) Find(ctx context.Context, id int64) (*Order, error) {
	if r.FindFunc == nil {
		return nil, errors.New("Find() not implemented by stub")
	}
	return r.FindFunc(ctx, id)
}
