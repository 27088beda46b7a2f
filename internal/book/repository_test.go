package book_test

import (
	"errors"
	"testing"

	"github.com/ferdiebergado/bookstore/internal/book"
	"github.com/ferdiebergado/bookstore/internal/platform/db"
)

var seedBooks = []book.CreateParams{
	{Title: "O Senhor dos Anéis", Author: "J.R.R. Tolkien", Price: 59.9, Genre: "Fantasia", Description: "A Sociedade do Anel.", Quantity: 10},
	{Title: "1984", Author: "George Orwell", Price: 39.9, Genre: "Distopia", Description: "O Grande Irmão.", Quantity: 2},
	{Title: "100% Amor", Author: "Ana_Lima", Price: 19.9, Genre: "Romance", Description: "Percentuais.", Quantity: 0},
}

func newRepo(t *testing.T) (*book.Repository, []*book.Book) {
	t.Helper()

	conn := db.NewTestDB(t)
	repo := book.NewRepository(conn)

	books := make([]*book.Book, 0, len(seedBooks))
	for _, p := range seedBooks {
		b, err := repo.Create(t.Context(), p)
		if err != nil {
			t.Fatalf("repo.Create(%+v) = %v", p, err)
		}
		books = append(books, b)
	}

	if _, err := conn.ExecContext(t.Context(),
		"INSERT INTO reviews (book_id, name, text, score) VALUES ($1, $2, $3, $4)",
		books[0].ID, "João", "Ótimo livro!", 5); err != nil {
		t.Fatal(err)
	}

	return repo, books
}

func TestRepository_ListAndFind(t *testing.T) {
	t.Parallel()

	repo, books := newRepo(t)
	ctx := t.Context()

	list, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("repo.List() = %v", err)
	}

	if len(list) != len(seedBooks) {
		t.Fatalf("len(repo.List()) = %d, want: %d", len(list), len(seedBooks))
	}

	if got := len(list[0].Reviews); got != 1 {
		t.Errorf("len(list[0].Reviews) = %d, want: %d", got, 1)
	}

	if list[1].Reviews == nil {
		t.Error("list[1].Reviews = nil, want an empty slice")
	}

	found, err := repo.Find(ctx, books[0].ID)
	if err != nil {
		t.Fatalf("repo.Find(%d) = %v", books[0].ID, err)
	}

	if found.Title != "O Senhor dos Anéis" || found.Reviews[0].Name != "João" {
		t.Errorf("repo.Find() = %+v, want the seeded book with its review", found)
	}

	if found.CreatedAt.IsZero() {
		t.Error("found.CreatedAt is zero, want the insert time")
	}

	if _, err := repo.Find(ctx, 999); !errors.Is(err, book.ErrNotFound) {
		t.Errorf("repo.Find(999) = %v, want: %v", err, book.ErrNotFound)
	}
}

func TestRepository_Search(t *testing.T) {
	t.Parallel()

	repo, _ := newRepo(t)

	tests := []struct {
		query string
		want  []string
	}{
		{"tolkien", []string{"O Senhor dos Anéis"}},
		{"DISTOPIA", []string{"1984"}},
		{"anéis", []string{"O Senhor dos Anéis"}},
		{"%", []string{"100% Amor"}},
		{"_", []string{"100% Amor"}},
		{"xyz", nil},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got, err := repo.Search(t.Context(), tt.query)
			if err != nil {
				t.Fatalf("repo.Search(%q) = %v", tt.query, err)
			}

			if len(got) != len(tt.want) {
				t.Fatalf("len(repo.Search(%q)) = %d, want: %d", tt.query, len(got), len(tt.want))
			}

			for i := range got {
				if got[i].Title != tt.want[i] {
					t.Errorf("got[%d].Title = %q, want: %q", i, got[i].Title, tt.want[i])
				}
			}
		})
	}
}

func TestRepository_CreateDuplicate(t *testing.T) {
	t.Parallel()

	repo, _ := newRepo(t)

	_, err := repo.Create(t.Context(), seedBooks[1])
	if !errors.Is(err, book.ErrDuplicate) {
		t.Errorf("repo.Create(duplicate) = %v, want: %v", err, book.ErrDuplicate)
	}
}

func TestRepository_Update(t *testing.T) {
	t.Parallel()

	repo, books := newRepo(t)
	ctx := t.Context()

	price := 45.5
	updated, err := repo.Update(ctx, books[1].ID, book.UpdateParams{Price: &price})
	if err != nil {
		t.Fatalf("repo.Update() = %v", err)
	}

	if updated.Price != price || updated.Title != "1984" || updated.Quantity != 2 {
		t.Errorf("repo.Update() = %+v, want only the price changed", updated)
	}

	title, author := "O Senhor dos Anéis", "J.R.R. Tolkien"
	if _, err := repo.Update(ctx, books[1].ID, book.UpdateParams{Title: &title, Author: &author}); !errors.Is(err, book.ErrDuplicate) {
		t.Errorf("repo.Update(collision) = %v, want: %v", err, book.ErrDuplicate)
	}

	if _, err := repo.Update(ctx, 999, book.UpdateParams{Price: &price}); !errors.Is(err, book.ErrNotFound) {
		t.Errorf("repo.Update(999) = %v, want: %v", err, book.ErrNotFound)
	}
}

func TestRepository_Delete(t *testing.T) {
	t.Parallel()

	repo, books := newRepo(t)
	ctx := t.Context()

	if err := repo.Delete(ctx, books[0].ID); err != nil {
		t.Fatalf("repo.Delete() = %v", err)
	}

	if _, err := repo.Find(ctx, books[0].ID); !errors.Is(err, book.ErrNotFound) {
		t.Errorf("repo.Find(deleted) = %v, want: %v", err, book.ErrNotFound)
	}

	if err := repo.Delete(ctx, books[0].ID); !errors.Is(err, book.ErrNotFound) {
		t.Errorf("repo.Delete(deleted) = %v, want: %v", err, book.ErrNotFound)
	}
}

func TestRepository_Delete_InOrders(t *testing.T) {
	t.Parallel()

	conn := db.NewTestDB(t)
	repo := book.NewRepository(conn)
	ctx := t.Context()

	b, err := repo.Create(ctx, seedBooks[0])
	if err != nil {
		t.Fatal(err)
	}

	if _, err := conn.ExecContext(ctx, "INSERT INTO orders DEFAULT VALUES"); err != nil {
		t.Fatal(err)
	}

	if _, err := conn.ExecContext(ctx, "INSERT INTO order_books (order_id, book_id, quantity) VALUES (1, $1, 1)", b.ID); err != nil {
		t.Fatal(err)
	}

	if err := repo.Delete(ctx, b.ID); !errors.Is(err, book.ErrInOrders) {
		t.Errorf("repo.Delete(ordered book) = %v, want: %v", err, book.ErrInOrders)
	}
}

func TestRepository_Stock(t *testing.T) {
	t.Parallel()

	repo, books := newRepo(t)
	ctx := t.Context()
	ids := []int64{books[0].ID, books[1].ID, books[2].ID, 999}

	many, err := repo.FindMany(ctx, ids)
	if err != nil {
		t.Fatal(err)
	}

	if len(many) != 3 {
		t.Errorf("len(repo.FindMany()) = %d, want: %d", len(many), 3)
	}

	inStock, err := repo.FindInStock(ctx, ids)
	if err != nil {
		t.Fatal(err)
	}

	if len(inStock) != 2 {
		t.Errorf("len(repo.FindInStock()) = %d, want: %d", len(inStock), 2)
	}

	if err := repo.DecrementStock(ctx, books[1].ID, 2); err != nil {
		t.Fatalf("repo.DecrementStock() = %v", err)
	}

	err = repo.DecrementStock(ctx, books[1].ID, 1)
	var stockErr *book.StockError
	if !errors.As(err, &stockErr) || !errors.Is(err, book.ErrInsufficientStock) {
		t.Fatalf("repo.DecrementStock(empty) = %v, want a *book.StockError", err)
	}

	if stockErr.BookID != books[1].ID {
		t.Errorf("stockErr.BookID = %d, want: %d", stockErr.BookID, books[1].ID)
	}

	catalog, err := repo.Catalog(ctx, 2)
	if err != nil {
		t.Fatal(err)
	}

	if len(catalog) != 2 {
		t.Errorf("len(repo.Catalog(2)) = %d, want: %d", len(catalog), 2)
	}
}
