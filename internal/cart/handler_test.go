package cart_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ferdiebergado/bookstore/internal/ai"
	"github.com/ferdiebergado/bookstore/internal/book"
	"github.com/ferdiebergado/bookstore/internal/cart"
	"github.com/ferdiebergado/bookstore/internal/order"
	"github.com/ferdiebergado/bookstore/internal/pkg/message"
	"github.com/ferdiebergado/bookstore/internal/pkg/web"
	"github.com/google/go-cmp/cmp"
)

func TestHandler_Get(t *testing.T) {
	t.Parallel()

	svc := &cart.StubService{GetFunc: func(context.Context) ([]cart.Item, error) {
		return []cart.Item{
			{ID: 1, BookID: 4, Quantity: 2, Book: book.Book{Title: "Duna", Price: 50}},
			{ID: 2, BookID: 9, Quantity: 1, Book: book.Book{Title: "O Hobbit", Price: 40}},
		}, nil
	}}

	rec := httptest.NewRecorder()
	cart.NewHandler(svc, nil).Get(rec, httptest.NewRequest(http.MethodGet, "/cart", http.NoBody))

	res := rec.Result()
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		t.Fatalf(message.FmtErrStatusCode, res.StatusCode, http.StatusOK)
	}

	var body web.OKResponse[*cart.CartResponse]
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if body.Data.Total != 140 || len(body.Data.Items) != 2 || body.Data.Items[0].Book.Title != "Duna" {
		t.Errorf("body.Data = %+v, want two lines totalling 140", body.Data)
	}
}

func TestHandler_ErrorMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"Empty cart", cart.ErrEmpty, http.StatusNotFound, "The cart is empty."},
		{"Not in cart", cart.ErrItemNotFound, http.StatusNotFound, "Book not found in cart."},
		{"Missing book", fmt.Errorf("find: %w", book.ErrNotFound), http.StatusNotFound, "Book not found."},
		{"Over stock", &cart.QuantityError{Requested: 4, Available: 3}, http.StatusBadRequest, "Requested quantity (4) exceeds available stock (3)."},
		{"Bad quantity", cart.ErrInvalidQuantity, http.StatusBadRequest, "The minimum quantity is 1."},
		{"Database down", errors.New("db error"), http.StatusInternalServerError, message.InternalError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := &cart.StubService{AddItemFunc: func(context.Context, int64, int) error {
				return tt.err
			}}

			ctx := web.NewContextWithParams(context.Background(), cart.ItemRequest{BookID: 4, Quantity: 1})
			r := httptest.NewRequestWithContext(ctx, http.MethodPost, "/cart/add", http.NoBody)
			rec := httptest.NewRecorder()

			cart.NewHandler(svc, nil).AddItem(rec, r)

			if rec.Code != tt.wantStatus {
				t.Errorf(message.FmtErrStatusCode, rec.Code, tt.wantStatus)
			}

			res := rec.Result()
			defer res.Body.Close()

			body := web.DecodeJSONResponse(t, res)
			if body["message"] != tt.wantMsg {
				t.Errorf("body[message] = %v, want: %q", body["message"], tt.wantMsg)
			}
		})
	}
}

func TestHandler_Checkout(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"Placed", nil, http.StatusCreated, "Order placed."},
		{"Empty cart", cart.ErrEmpty, http.StatusBadRequest, "The cart is empty."},
		{
			"Stock changed",
			&book.StockError{BookID: 9, Title: "O Hobbit", Requested: 1, Available: 0},
			http.StatusBadRequest,
			`Book "O Hobbit" does not have enough stock. Current stock: 0.`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := &cart.StubService{CheckoutFunc: func(context.Context) (*order.Order, error) {
				if tt.err != nil {
					return nil, tt.err
				}
				return &order.Order{ID: 5}, nil
			}}

			rec := httptest.NewRecorder()
			cart.NewHandler(svc, nil).Checkout(rec, httptest.NewRequest(http.MethodPost, "/cart/checkout", http.NoBody))

			if rec.Code != tt.wantStatus {
				t.Errorf(message.FmtErrStatusCode, rec.Code, tt.wantStatus)
			}

			res := rec.Result()
			defer res.Body.Close()

			body := web.DecodeJSONResponse(t, res)
			if body["message"] != tt.wantMsg {
				t.Errorf("body[message] = %v, want: %q", body["message"], tt.wantMsg)
			}
		})
	}
}

func TestHandler_RemoveItem(t *testing.T) {
	t.Parallel()

	var gotID int64
	svc := &cart.StubService{RemoveItemFunc: func(_ context.Context, bookID int64) error {
		gotID = bookID
		return nil
	}}

	r := httptest.NewRequest(http.MethodDelete, "/cart/remove/4", http.NoBody)
	r.SetPathValue("bookId", "4")
	rec := httptest.NewRecorder()

	cart.NewHandler(svc, nil).RemoveItem(rec, r)

	if rec.Code != http.StatusOK {
		t.Errorf(message.FmtErrStatusCode, rec.Code, http.StatusOK)
	}

	if gotID != 4 {
		t.Errorf("removed book = %d, want: %d", gotID, 4)
	}
}

func TestHandler_Suggest(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		suggestErr error
		addErr     error
		wantStatus int
		wantAdded  []string
	}{
		{name: "Adds suggested books", wantStatus: http.StatusOK, wantAdded: []string{"Duna"}},
		{name: "Model unavailable", suggestErr: ai.ErrUnavailable, wantStatus: http.StatusServiceUnavailable},
		{name: "Nothing added", addErr: cart.ErrNothingAdded, wantStatus: http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var gotIDs []int64
			suggester := &cart.StubSuggester{SuggestFunc: func(_ context.Context, preference string) ([]int64, error) {
				if preference != "ficção científica" {
					t.Errorf("preference = %q, want: %q", preference, "ficção científica")
				}
				return []int64{4, 9}, tt.suggestErr
			}}
			svc := &cart.StubService{AddSuggestedFunc: func(_ context.Context, ids []int64) ([]string, error) {
				gotIDs = ids
				if tt.addErr != nil {
					return nil, tt.addErr
				}
				return []string{"Duna"}, nil
			}}

			ctx := web.NewContextWithParams(context.Background(), cart.SuggestionRequest{Text: "ficção científica"})
			r := httptest.NewRequestWithContext(ctx, http.MethodPost, "/cart/suggestion", http.NoBody)
			rec := httptest.NewRecorder()

			cart.NewHandler(svc, suggester).Suggest(rec, r)

			res := rec.Result()
			defer res.Body.Close()

			if res.StatusCode != tt.wantStatus {
				t.Fatalf(message.FmtErrStatusCode, res.StatusCode, tt.wantStatus)
			}

			if tt.wantAdded == nil {
				return
			}

			if diff := cmp.Diff([]int64{4, 9}, gotIDs); diff != "" {
				t.Errorf("suggested ids mismatch (-want +got):\n%s", diff)
			}

			var body web.OKResponse[*cart.SuggestionResponse]
			if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}

			if diff := cmp.Diff(tt.wantAdded, body.Data.AddedBooks); diff != "" {
				t.Errorf("added books mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
