package cart

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/ferdiebergado/bookstore/internal/ai"
	"github.com/ferdiebergado/bookstore/internal/book"
	"github.com/ferdiebergado/bookstore/internal/order"
	"github.com/ferdiebergado/bookstore/internal/pkg/errx"
	"github.com/ferdiebergado/bookstore/internal/pkg/message"
	"github.com/ferdiebergado/bookstore/internal/pkg/text"
	"github.com/ferdiebergado/bookstore/internal/pkg/web"
)

const (
	msgCart            = "Cart found."
	msgAdded           = "Book added to the cart."
	msgUpdated         = "Quantity updated."
	msgRemoved         = "Book removed from the cart."
	msgCleared         = "The cart was cleared."
	msgCheckedOut      = "Order placed."
	msgSuggested       = "AI suggested cart assembled."
	msgEmpty           = "The cart is empty."
	msgBookNotFound    = "Book not found."
	msgItemNotFound    = "Book not found in cart."
	msgInvalidQuantity = "The minimum quantity is 1."
	msgNothingAdded    = "No book was added to the cart. Check the stock or the suggested IDs."
	msgNoSuggestion    = "Failed to generate a cart suggestion."
	msgEmptyPreference = "The preference text cannot be empty."
	msgInvalidID       = "Invalid book id."
	fmtNoStock         = "Book %q does not have enough stock. Current stock: %d."
)

type CartService interface {
	Get(ctx context.Context) ([]Item, error)
	AddItem(ctx context.Context, bookID int64, qty int) error
	UpdateItem(ctx context.Context, bookID int64, qty int) error
	RemoveItem(ctx context.Context, bookID int64) error
	Clear(ctx context.Context) error
	Checkout(ctx context.Context) (*order.Order, error)
	AddSuggested(ctx context.Context, ids []int64) ([]string, error)
}

// Suggester picks catalog books for a reading preference.
type Suggester interface {
	Suggest(ctx context.Context, preference string) ([]int64, error)
}

type Handler struct {
	svc       CartService
	suggester Suggester
}

type ItemRequest struct {
	BookID   int64 `json:"book_id" validate:"required,gt=0"`
	Quantity int   `json:"quantity" validate:"required,gte=1"`
}

type SuggestionRequest struct {
	Text string `json:"text" validate:"required,max=1000"`
}

func (s *SuggestionRequest) Normalize() {
	s.Text = text.Squash(s.Text)
}

type ItemData struct {
	ID       int64          `json:"id"`
	BookID   int64          `json:"book_id"`
	Quantity int            `json:"quantity"`
	Book     *book.BookData `json:"book"`
}

type CartResponse struct {
	Items []ItemData `json:"items"`
	Total float64    `json:"total"`
}

type SuggestionResponse struct {
	AddedBooks []string `json:"added_books"`
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.Get(r.Context())
	if err != nil {
		h.fail(w, err)
		return
	}

	resp := &CartResponse{Items: make([]ItemData, 0, len(items))}
	for i := range items {
		it := &items[i]
		resp.Items = append(resp.Items, ItemData{
			ID:       it.ID,
			BookID:   it.BookID,
			Quantity: it.Quantity,
			Book:     book.TransformBook(&it.Book),
		})
		resp.Total += it.Book.Price * float64(it.Quantity)
	}

	msg := msgCart
	web.RespondOK(w, &msg, resp)
}

func (h *Handler) AddItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, err := web.ParamsFromContext[ItemRequest](ctx)
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	if err := h.svc.AddItem(ctx, req.BookID, req.Quantity); err != nil {
		h.fail(w, err)
		return
	}

	msg := msgAdded
	web.RespondOK[any](w, &msg, nil)
}

func (h *Handler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, err := web.ParamsFromContext[ItemRequest](ctx)
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	if err := h.svc.UpdateItem(ctx, req.BookID, req.Quantity); err != nil {
		h.fail(w, err)
		return
	}

	msg := msgUpdated
	web.RespondOK[any](w, &msg, nil)
}

func (h *Handler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	bookID, err := web.PathID(r, "bookId")
	if err != nil {
		web.RespondBadRequest(w, err, msgInvalidID, nil)
		return
	}

	if err := h.svc.RemoveItem(r.Context(), bookID); err != nil {
		h.fail(w, err)
		return
	}

	msg := msgRemoved
	web.RespondOK[any](w, &msg, nil)
}

func (h *Handler) Clear(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Clear(r.Context()); err != nil {
		h.fail(w, err)
		return
	}

	msg := msgCleared
	web.RespondOK[any](w, &msg, nil)
}

func (h *Handler) Checkout(w http.ResponseWriter, r *http.Request) {
	o, err := h.svc.Checkout(r.Context())
	if err != nil {
		if errors.Is(err, ErrEmpty) {
			web.RespondBadRequest(w, err, msgEmpty, nil)
			return
		}
		h.fail(w, err)
		return
	}

	msg := msgCheckedOut
	web.RespondCreated(w, &msg, order.TransformOrder(o))
}

func (h *Handler) Suggest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, err := web.ParamsFromContext[SuggestionRequest](ctx)
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	ids, err := h.suggester.Suggest(ctx, req.Text)
	if err != nil {
		switch {
		case errors.Is(err, ai.ErrUnavailable):
			web.RespondServiceUnavailable(w, err, msgNoSuggestion)
		case errors.Is(err, ai.ErrEmptyPreference):
			web.RespondBadRequest(w, err, msgEmptyPreference, nil)
		default:
			h.fail(w, err)
		}
		return
	}

	added, err := h.svc.AddSuggested(ctx, ids)
	if err != nil {
		h.fail(w, err)
		return
	}

	msg := msgSuggested
	web.RespondOK(w, &msg, &SuggestionResponse{AddedBooks: added})
}

func (h *Handler) fail(w http.ResponseWriter, err error) {
	var (
		qtyErr   *QuantityError
		stockErr *book.StockError
	)
	switch {
	case errors.As(err, &qtyErr):
		web.RespondBadRequest(w, err, qtyErr.Error(), nil)
	case errors.As(err, &stockErr):
		web.RespondBadRequest(w, err, stockMessage(stockErr), nil)
	case errors.Is(err, ErrInvalidQuantity):
		web.RespondBadRequest(w, err, msgInvalidQuantity, nil)
	case errors.Is(err, ErrEmpty):
		web.RespondNotFound(w, err, msgEmpty, nil)
	case errors.Is(err, ErrItemNotFound):
		web.RespondNotFound(w, err, msgItemNotFound, nil)
	case errors.Is(err, book.ErrNotFound), errors.Is(err, order.ErrBooksNotFound):
		web.RespondNotFound(w, err, msgBookNotFound, nil)
	case errors.Is(err, ErrNothingAdded):
		web.RespondNotFound(w, err, msgNothingAdded, nil)
	case errx.IsContextError(err):
		web.RespondRequestTimeout(w, err, message.RequestTimeout, nil)
	default:
		web.RespondInternalServerError(w, err)
	}
}

func stockMessage(e *book.StockError) string {
	return fmt.Sprintf(fmtNoStock, e.Title, e.Available)
}

func NewHandler(svc CartService, suggester Suggester) *Handler {
	return &Handler{
		svc:       svc,
		suggester: suggester,
	}
}
