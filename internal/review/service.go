package review

import (
	"context"
	"fmt"

	"github.com/ferdiebergado/bookstore/internal/book"
)

type ReviewRepository interface {
	Create(ctx context.Context, params CreateParams) (*Review, error)
	ListByBook(ctx context.Context, bookID int64) ([]Review, error)
}

// BookFinder looks up a book. It returns book.ErrNotFound when the book does not exist.
type BookFinder interface {
	Find(ctx context.Context, id int64) (*book.Book, error)
}

var _ ReviewService = &Service{}

type Service struct {
	repo  ReviewRepository
	books BookFinder
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Review, error) {
	if _, err := s.books.Find(ctx, params.BookID); err != nil {
		return nil, fmt.Errorf("find book %d to review: %w", params.BookID, err)
	}

	return s.repo.Create(ctx, params)
}

// ListByBook returns the reviews of a book, newest first.
func (s *Service) ListByBook(ctx context.Context, bookID int64) ([]Review, error) {
	if _, err := s.books.Find(ctx, bookID); err != nil {
		return nil, fmt.Errorf("find book %d: %w", bookID, err)
	}

	reviews, err := s.repo.ListByBook(ctx, bookID)
	if err != nil {
		return nil, err
	}

	if len(reviews) == 0 {
		return nil, ErrNoReviews
	}

	return reviews, nil
}

func NewService(repo ReviewRepository, books BookFinder) *Service {
	return &Service{
		repo:  repo,
		books: books,
	}
}
