package review

import (
	"context"
	"fmt"

	"github.com/ferdiebergado/bookstore/internal/book"
	"github.com/ferdiebergado/bookstore/internal/platform/db"
)

var _ ReviewRepository = &Repository{}

type Repository struct {
	db db.Executor
}

const QueryReviewCreate = `
INSERT INTO reviews (book_id, name, text, score)
VALUES ($1, $2, $3, $4)
RETURNING id, book_id, name, text, score, created_at`

func (r *Repository) Create(ctx context.Context, params CreateParams) (*Review, error) {
	exec := db.ExecutorFromContext(ctx, r.db)
	var rv Review
	err := exec.QueryRowContext(ctx, QueryReviewCreate, params.BookID, params.Name, params.Text, params.Score).
		Scan(&rv.ID, &rv.BookID, &rv.Name, &rv.Text, &rv.Score, &rv.CreatedAt)
	if err != nil {
		// The book may have been deleted after the service looked it up.
		if db.IsForeignKeyViolation(err) {
			return nil, book.ErrNotFound
		}
		return nil, fmt.Errorf("%w: create review for book %d: %v", ErrQueryFailed, params.BookID, err)
	}

	return &rv, nil
}

const QueryReviewListByBook = `
SELECT id, book_id, name, text, score, created_at
FROM reviews
WHERE book_id = $1
ORDER BY created_at DESC, id DESC`

func (r *Repository) ListByBook(ctx context.Context, bookID int64) ([]Review, error) {
	exec := db.ExecutorFromContext(ctx, r.db)
	rows, err := exec.QueryContext(ctx, QueryReviewListByBook, bookID)
	if err != nil {
		return nil, fmt.Errorf("%w: list reviews of book %d: %v", ErrQueryFailed, bookID, err)
	}
	defer rows.Close()

	//nolint:prealloc //Cannot identify the length of the rows without running another query.
	var reviews []Review
	for rows.Next() {
		var rv Review
		if err := rows.Scan(&rv.ID, &rv.BookID, &rv.Name, &rv.Text, &rv.Score, &rv.CreatedAt); err != nil {
			return nil, fmt.Errorf("review repository: scan row: %w", err)
		}
		reviews = append(reviews, rv)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("review repository: iterate over rows: %w", err)
	}

	return reviews, nil
}

func NewRepository(dbExec db.Executor) *Repository {
	return &Repository{db: dbExec}
}
