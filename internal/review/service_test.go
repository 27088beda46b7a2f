package review_test

import (
	"context"
	"errors"
	"testing"

	"github.com/ferdiebergado/bookstore/internal/book"
	"github.com/ferdiebergado/bookstore/internal/review"
)

func findBook(_ context.Context, id int64) (*book.Book, error) {
	if id != 1 {
		return nil, book.ErrNotFound
	}
	return &book.Book{Title: "Dom Casmurro"}, nil
}

func TestService_Create(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		params      review.CreateParams
		wantErr     error
		wantCreated bool
	}{
		{"Book exists", review.CreateParams{BookID: 1, Name: "Ana", Text: "Ótimo.", Score: 5}, nil, true},
		{"Book missing", review.CreateParams{BookID: 2, Name: "Ana", Text: "Ótimo.", Score: 5}, book.ErrNotFound, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			created := false
			repo := &review.StubRepo{CreateFunc: func(_ context.Context, p review.CreateParams) (*review.Review, error) {
				created = true
				return &review.Review{ID: 1, BookID: p.BookID}, nil
			}}

			svc := review.NewService(repo, &review.StubBookFinder{FindFunc: findBook})
			_, err := svc.Create(t.Context(), tt.params)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("svc.Create() = %v, want: %v", err, tt.wantErr)
			}

			if created != tt.wantCreated {
				t.Errorf("review created = %t, want: %t", created, tt.wantCreated)
			}
		})
	}
}

func TestService_ListByBook(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		bookID  int64
		stored  []review.Review
		wantErr error
	}{
		{"Has reviews", 1, []review.Review{{ID: 2}, {ID: 1}}, nil},
		{"No reviews", 1, nil, review.ErrNoReviews},
		{"Book missing", 3, nil, book.ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			repo := &review.StubRepo{ListByBookFunc: func(context.Context, int64) ([]review.Review, error) {
				return tt.stored, nil
			}}

			svc := review.NewService(repo, &review.StubBookFinder{FindFunc: findBook})
			got, err := svc.ListByBook(t.Context(), tt.bookID)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("svc.ListByBook() = %v, want: %v", err, tt.wantErr)
			}

			if len(got) != len(tt.stored) && tt.wantErr == nil {
				t.Errorf("len(svc.ListByBook()) = %d, want: %d", len(got), len(tt.stored))
			}
		})
	}
}
