package review

import (
	"context"
	"errors"

	"github.com/ferdiebergado/bookstore/internal/book"
)

type StubService struct {
	CreateFunc     func(ctx context.Context, params CreateParams) (*Review, error)
	ListByBookFunc func(ctx context.Context, bookID int64) ([]Review, error)
}

var _ ReviewService = &StubService{}

func (s *StubService) Create(ctx context.Context, params CreateParams) (*Review, error) {
	if s.CreateFunc == nil {
		return nil, errors.New("Create() not implemented by stub")
	}
	return s.CreateFunc(ctx, params)
}

func (s *StubService) ListByBook(ctx context.Context, bookID int64) ([]Review, error) {
	if s.ListByBookFunc == nil {
		return nil, errors.New("ListByBook() not implemented by stub")
	}
	return s.ListByBookFunc(ctx, bookID)
}

type StubRepo struct {
	CreateFunc     func(ctx context.Context, params CreateParams) (*Review, error)
	ListByBookFunc func(ctx context.Context, bookID int64) ([]Review, error)
}

var _ ReviewRepository = &StubRepo{}

func (r *StubRepo) Create(ctx context.Context, params CreateParams) (*Review, error) {
	if r.CreateFunc == nil {
		return nil, errors.New("Create() not implemented by stub")
	}
	return r.CreateFunc(ctx, params)
}

func (r *StubRepo) ListByBook(ctx context.Context, bookID int64) ([]Review, error) {
	if r.ListByBookFunc == nil {
		return nil, errors.New("ListByBook() not implemented by stub")
	}
	return r.ListByBookFunc(ctx, bookID)
}

type StubBookFinder struct {
	FindFunc func(ctx context.Context, id int64) (*book.Book, error)
}

var _ BookFinder = &StubBookFinder{}

func (f *StubBookFinder) Find(ctx context.Context, id int64) (*book.Book, error) {
	if f.FindFunc == nil {
		return nil, errors.New("Find() not implemented by stub")
	}
	return f.FindFunc(ctx, id)
}
