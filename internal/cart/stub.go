package cart

import (
	"context"
	"errors"

	"github.com/ferdiebergado/bookstore/internal/order"
)

type StubService struct {
	GetFunc          func(ctx context.Context) ([]Item, error)
	AddItemFunc      func(ctx context.Context, bookID int64, qty int) error
	UpdateItemFunc   func(ctx context.Context, bookID int64, qty int) error
	RemoveItemFunc   func(ctx context.Context, bookID int64) error
	ClearFunc        func(ctx context.Context) error
	CheckoutFunc     func(ctx context.Context) (*order.Order, error)
	AddSuggestedFunc func(ctx context.Context, ids []int64) ([]string, error)
}

var _ CartService = &StubService{}

func (s *StubService) Get(ctx context.Context) ([]Item, error) {
	if s.GetFunc == nil {
		return nil, errors.New("Get() not implemented by stub")
	}
	return s.GetFunc(ctx)
}

func (s *StubService) AddItem(ctx context.Context, bookID int64, qty int) error {
	if s.AddItemFunc == nil {
		return errors.New("AddItem() not implemented by stub")
	}
	return s.AddItemFunc(ctx, bookID, qty)
}

func (s *StubService) UpdateItem(ctx context.Context, bookID int64, qty int) error {
	if s.UpdateItemFunc == nil {
		return errors.New("UpdateItem() not implemented by stub")
	}
	return s.UpdateItemFunc(ctx, bookID, qty)
}

func (s *StubService) RemoveItem(ctx context.Context, bookID int64) error {
	if s.RemoveItemFunc == nil {
		return errors.New("RemoveItem() not implemented by stub")
	}
	return s.RemoveItemFunc(ctx, bookID)
}

func (s *StubService) Clear(ctx context.Context) error {
	if s.ClearFunc == nil {
		return errors.New("Clear() not implemented by stub")
	}
	return s.ClearFunc(ctx)
}

func (s *StubService) Checkout(ctx context.Context) (*order.Order, error) {
	if s.CheckoutFunc == nil {
		return nil, errors.New("Checkout() not implemented by stub")
	}
	return s.CheckoutFunc(ctx)
}

func (s *StubService) AddSuggested(ctx context.Context, ids []int64) ([]string, error) {
	if s.AddSuggestedFunc == nil {
		return nil, errors.New("AddSuggested() not implemented by stub")
	}
	return s.AddSuggestedFunc(ctx, ids)
}

type StubSuggester struct {
	SuggestFunc func(ctx context.Context, preference string) ([]int64, error)
}

var _ Suggester = &StubSuggester{}

func (s *StubSuggester) Suggest(ctx context.Context, preference string) ([]int64, error) {
	if s.SuggestFunc == nil {
		return nil, errors.New("Suggest() not implemented by stub")
	}
	return s.SuggestFunc(ctx, preference)
}
