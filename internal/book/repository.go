package book

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ferdiebergado/bookstore/internal/platform/db"
)

var _ BookRepository = &Repository{}

type Repository struct {
	db db.Executor
}

const bookColumns = "id, title, author, price, genre, description, quantity, created_at, updated_at"

func scanBook(row interface{ Scan(dest ...any) error }) (Book, error) {
	var b Book
	err := row.Scan(&b.ID, &b.Title, &b.Author, &b.Price, &b.Genre, &b.Description, &b.Quantity, &b.CreatedAt, &b.UpdatedAt)
	return b, err
}

func (r *Repository) queryBooks(ctx context.Context, query string, args ...any) ([]Book, error) {
	exec := db.ExecutorFromContext(ctx, r.db)
	rows, err := exec.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQueryFailed, err)
	}
	defer rows.Close()

	//nolint:prealloc //Cannot identify the length of the rows without running another query.
	var books []Book
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, fmt.Errorf("book repository: scan row: %w", err)
		}
		books = append(books, b)
	}

	if err := rows.Close(); err != nil {
		return nil, fmt.Errorf("book repository: close book rows: %w", err)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("book repository: iterate over book rows: %w", err)
	}

	return books, nil
}

const QueryBookList = "SELECT " + bookColumns + " FROM books ORDER BY id"

func (r *Repository) List(ctx context.Context) ([]Book, error) {
	books, err := r.queryBooks(ctx, QueryBookList)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}

	return r.withReviews(ctx, books)
}

const QueryBookCatalog = "SELECT " + bookColumns + " FROM books ORDER BY id LIMIT $1"

// Catalog returns at most limit books without their reviews.
func (r *Repository) Catalog(ctx context.Context, limit int) ([]Book, error) {
	books, err := r.queryBooks(ctx, QueryBookCatalog, limit)
	if err != nil {
		return nil, fmt.Errorf("list catalog of %d books: %w", limit, err)
	}
	return books, nil
}

const QueryBookFind = "SELECT " + bookColumns + " FROM books WHERE id = $1"

func (r *Repository) Find(ctx context.Context, id int64) (*Book, error) {
	exec := db.ExecutorFromContext(ctx, r.db)
	b, err := scanBook(exec.QueryRowContext(ctx, QueryBookFind, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: find book with id %d: %v", ErrQueryFailed, id, err)
	}

	books, err := r.withReviews(ctx, []Book{b})
	if err != nil {
		return nil, err
	}

	return &books[0], nil
}

const QueryBookSearch = "SELECT " + bookColumns + ` FROM books
WHERE LOWER(title) LIKE $1 ESCAPE '\'
   OR LOWER(author) LIKE $1 ESCAPE '\'
   OR LOWER(genre) LIKE $1 ESCAPE '\'
ORDER BY id`

func (r *Repository) Search(ctx context.Context, query string) ([]Book, error) {
	books, err := r.queryBooks(ctx, QueryBookSearch, likePattern(query))
	if err != nil {
		return nil, fmt.Errorf("search books with %q: %w", query, err)
	}

	return r.withReviews(ctx, books)
}

// likePattern builds a case-insensitive substring pattern with the LIKE
// wildcards of query escaped.
func likePattern(query string) string {
	escaper := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + escaper.Replace(strings.ToLower(query)) + "%"
}

const QueryBookCreate = `
INSERT INTO books (title, author, price, genre, description, quantity)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + bookColumns

func (r *Repository) Create(ctx context.Context, params CreateParams) (*Book, error) {
	exec := db.ExecutorFromContext(ctx, r.db)
	row := exec.QueryRowContext(ctx, QueryBookCreate,
		params.Title, params.Author, params.Price, params.Genre, params.Description, params.Quantity)
	b, err := scanBook(row)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return nil, ErrDuplicate
		}
		return nil, fmt.Errorf("%w: create book %q by %s: %v", ErrQueryFailed, params.Title, params.Author, err)
	}

	b.Reviews = []Review{}
	return &b, nil
}

const QueryBookUpdate = `
UPDATE books SET
    title = COALESCE($1, title),
    author = COALESCE($2, author),
    price = COALESCE($3, price),
    genre = COALESCE($4, genre),
    description = COALESCE($5, description),
    quantity = COALESCE($6, quantity),
    updated_at = CURRENT_TIMESTAMP
WHERE id = $7
RETURNING ` + bookColumns

func (r *Repository) Update(ctx context.Context, id int64, params UpdateParams) (*Book, error) {
	exec := db.ExecutorFromContext(ctx, r.db)
	row := exec.QueryRowContext(ctx, QueryBookUpdate,
		params.Title, params.Author, params.Price, params.Genre, params.Description, params.Quantity, id)
	b, err := scanBook(row)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrNotFound
		case db.IsUniqueViolation(err):
			return nil, ErrDuplicate
		default:
			return nil, fmt.Errorf("%w: update book with id %d: %v", ErrQueryFailed, id, err)
		}
	}

	books, err := r.withReviews(ctx, []Book{b})
	if err != nil {
		return nil, err
	}

	return &books[0], nil
}

const QueryBookDelete = "DELETE FROM books WHERE id = $1"

func (r *Repository) Delete(ctx context.Context, id int64) error {
	exec := db.ExecutorFromContext(ctx, r.db)
	res, err := exec.ExecContext(ctx, QueryBookDelete, id)
	if err != nil {
		if db.IsForeignKeyViolation(err) {
			return ErrInOrders
		}
		return fmt.Errorf("%w: delete book with id %d: %v", ErrQueryFailed, id, err)
	}

	return expectAffected(res, ErrNotFound)
}

// FindMany returns the books among ids that exist, ordered by id.
func (r *Repository) FindMany(ctx context.Context, ids []int64) ([]Book, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := "SELECT " + bookColumns + " FROM books WHERE id IN (" + placeholders(1, len(ids)) + ") ORDER BY id"
	books, err := r.queryBooks(ctx, query, int64Args(ids)...)
	if err != nil {
		return nil, fmt.Errorf("find books with ids %v: %w", ids, err)
	}
	return books, nil
}

// FindInStock returns the books among ids that have at least one copy on hand.
func (r *Repository) FindInStock(ctx context.Context, ids []int64) ([]Book, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := "SELECT " + bookColumns + " FROM books WHERE quantity > 0 AND id IN (" + placeholders(1, len(ids)) + ") ORDER BY id"
	books, err := r.queryBooks(ctx, query, int64Args(ids)...)
	if err != nil {
		return nil, fmt.Errorf("find books in stock with ids %v: %w", ids, err)
	}
	return books, nil
}

const QueryBookDecrementStock = `
UPDATE books SET quantity = quantity - $1, updated_at = CURRENT_TIMESTAMP
WHERE id = $2 AND quantity >= $1`

// DecrementStock removes qty copies of the book in a single conditional statement.
func (r *Repository) DecrementStock(ctx context.Context, id int64, qty int) error {
	exec := db.ExecutorFromContext(ctx, r.db)
	res, err := exec.ExecContext(ctx, QueryBookDecrementStock, qty, id)
	if err != nil {
		return fmt.Errorf("%w: decrement stock of book %d by %d: %v", ErrQueryFailed, id, qty, err)
	}

	return expectAffected(res, &StockError{BookID: id, Requested: qty})
}

func (r *Repository) withReviews(ctx context.Context, books []Book) ([]Book, error) {
	if len(books) == 0 {
		return books, nil
	}

	ids := make([]int64, len(books))
	index := make(map[int64]int, len(books))
	for i := range books {
		ids[i] = books[i].ID
		index[books[i].ID] = i
		books[i].Reviews = []Review{}
	}

	query := "SELECT id, book_id, name, text, score, created_at FROM reviews WHERE book_id IN (" +
		placeholders(1, len(ids)) + ") ORDER BY created_at DESC, id DESC"

	exec := db.ExecutorFromContext(ctx, r.db)
	rows, err := exec.QueryContext(ctx, query, int64Args(ids)...)
	if err != nil {
		return nil, fmt.Errorf("%w: list reviews of books: %v", ErrQueryFailed, err)
	}
	defer rows.Close()

	for rows.Next() {
		var rv Review
		if err := rows.Scan(&rv.ID, &rv.BookID, &rv.Name, &rv.Text, &rv.Score, &rv.CreatedAt); err != nil {
			return nil, fmt.Errorf("book repository: scan review row: %w", err)
		}
		i := index[rv.BookID]
		books[i].Reviews = append(books[i].Reviews, rv)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("book repository: iterate over review rows: %w", err)
	}

	return books, nil
}

func expectAffected(res sql.Result, errNone error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("book repository: rows affected: %w", err)
	}

	if n == 0 {
		return errNone
	}

	return nil
}

// placeholders returns n comma separated positional parameters starting at $start.
func placeholders(start, n int) string {
	var sb strings.Builder
	for i := range n {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("$" + strconv.Itoa(start+i))
	}
	return sb.String()
}

func int64Args(ids []int64) []any {
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	return args
}

func NewRepository(dbExec db.Executor) *Repository {
	return &Repository{db: dbExec}
}
