package book

import (
	"context"
	"fmt"
	"strings"
)

type BookRepository interface {
	List(ctx context.Context) ([]Book, error)
	Catalog(ctx context.Context, limit int) ([]Book, error)
	Find(ctx context.Context, id int64) (*Book, error)
	Search(ctx context.Context, query string) ([]Book, error)
	Create(ctx context.Context, params CreateParams) (*Book, error)
	Update(ctx context.Context, id int64, params UpdateParams) (*Book, error)
	Delete(ctx context.Context, id int64) error
	FindMany(ctx context.Context, ids []int64) ([]Book, error)
	FindInStock(ctx context.Context, ids []int64) ([]Book, error)
	DecrementStock(ctx context.Context, id int64, qty int) error
}

var _ BookService = &Service{}

type Service struct {
	repo BookRepository
}

func (s *Service) List(ctx context.Context) ([]Book, error) {
	books, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if len(books) == 0 {
		return nil, ErrNotFound
	}

	return books, nil
}

func (s *Service) Catalog(ctx context.Context, limit int) ([]Book, error) {
	return s.repo.Catalog(ctx, limit)
}

func (s *Service) Find(ctx context.Context, id int64) (*Book, error) {
	return s.repo.Find(ctx, id)
}

func (s *Service) Search(ctx context.Context, query string) ([]Book, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptySearch
	}

	books, err := s.repo.Search(ctx, query)
	if err != nil {
		return nil, err
	}

	if len(books) == 0 {
		return nil, fmt.Errorf("search %q: %w", query, ErrNotFound)
	}

	return books, nil
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Book, error) {
	return s.repo.Create(ctx, params)
}

func (s *Service) Update(ctx context.Context, id int64, params UpdateParams) (*Book, error) {
	return s.repo.Update(ctx, id, params)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) FindMany(ctx context.Context, ids []int64) ([]Book, error) {
	return s.repo.FindMany(ctx, ids)
}

func (s *Service) FindInStock(ctx context.Context, ids []int64) ([]Book, error) {
	return s.repo.FindInStock(ctx, ids)
}

func (s *Service) DecrementStock(ctx context.Context, id int64, qty int) error {
	return s.repo.DecrementStock(ctx, id, qty)
}

func NewService(repo BookRepository) *Service {
	return &Service{repo: repo}
}
