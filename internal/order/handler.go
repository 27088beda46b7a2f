package order

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/ferdiebergado/bookstore/internal/book"
	"github.com/ferdiebergado/bookstore/internal/pkg/errx"
	"github.com/ferdiebergado/bookstore/internal/pkg/message"
	"github.com/ferdiebergado/bookstore/internal/pkg/web"
)

const (
	msgCreated       = "Order created."
	msgListed        = "Orders found."
	msgFound         = "Order found."
	msgNotFound      = "Order not found."
	msgNoOrders      = "No orders found."
	msgEmpty         = "The list of books cannot be empty."
	msgBooksNotFound = "One or more books were not found."
	msgInvalidID     = "Invalid order id."
	fmtNoStock       = "Insufficient stock for book with ID %d."
)

type OrderService interface {
	Create(ctx context.Context, items []Item) (*Order, error)
	List(ctx context.Context) ([]Order, error)
	Find(ctx context.Context, id int64) (*Order, error)
}

type Handler struct {
	svc OrderService
}

type ItemRequest struct {
	BookID   int64 `json:"book_id" validate:"required,gt=0"`
	Quantity int   `json:"quantity" validate:"required,gte=1"`
}

type CreateRequest struct {
	Items []ItemRequest `json:"items" validate:"required,min=1,dive"`
}

type LineData struct {
	OrderID         int64          `json:"order_id"`
	BookID          int64          `json:"book_id"`
	OrderedQuantity int            `json:"ordered_quantity"`
	Book            *book.BookData `json:"book"`
}

type OrderData struct {
	ID        int64      `json:"id"`
	CreatedAt time.Time  `json:"created_at"`
	Books     []LineData `json:"books"`
	Total     float64    `json:"total"`
}

type ListResponse struct {
	Orders []OrderData `json:"orders"`
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, err := web.ParamsFromContext[CreateRequest](ctx)
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	items := make([]Item, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, Item(it))
	}

	o, err := h.svc.Create(ctx, items)
	if err != nil {
		h.fail(w, err)
		return
	}

	msg := msgCreated
	web.RespondCreated(w, &msg, TransformOrder(o))
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	orders, err := h.svc.List(r.Context())
	if err != nil {
		h.fail(w, err)
		return
	}

	data := make([]OrderData, 0, len(orders))
	for i := range orders {
		data = append(data, *TransformOrder(&orders[i]))
	}

	msg := msgListed
	web.RespondOK(w, &msg, &ListResponse{Orders: data})
}

func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	id, err := web.PathID(r, "id")
	if err != nil {
		web.RespondBadRequest(w, err, msgInvalidID, nil)
		return
	}

	o, err := h.svc.Find(r.Context(), id)
	if err != nil {
		h.fail(w, err)
		return
	}

	msg := msgFound
	web.RespondOK(w, &msg, TransformOrder(o))
}

func (h *Handler) fail(w http.ResponseWriter, err error) {
	var stockErr *book.StockError
	switch {
	case errors.As(err, &stockErr):
		web.RespondBadRequest(w, err, fmt.Sprintf(fmtNoStock, stockErr.BookID), nil)
	case errors.Is(err, ErrBooksNotFound):
		web.RespondNotFound(w, err, msgBooksNotFound, nil)
	case errors.Is(err, ErrNotFound):
		web.RespondNotFound(w, err, msgNotFound, nil)
	case errors.Is(err, ErrNoOrders):
		web.RespondNotFound(w, err, msgNoOrders, nil)
	case errors.Is(err, ErrEmpty):
		web.RespondBadRequest(w, err, msgEmpty, nil)
	case errors.Is(err, ErrInvalidItem):
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
	case errx.IsContextError(err):
		web.RespondRequestTimeout(w, err, message.RequestTimeout, nil)
	default:
		web.RespondInternalServerError(w, err)
	}
}

func TransformOrder(o *Order) *OrderData {
	lines := make([]LineData, 0, len(o.Lines))
	for i := range o.Lines {
		l := &o.Lines[i]
		lines = append(lines, LineData{
			OrderID:         l.OrderID,
			BookID:          l.BookID,
			OrderedQuantity: l.Quantity,
			Book:            book.TransformBook(&l.Book),
		})
	}

	return &OrderData{
		ID:        o.ID,
		CreatedAt: o.CreatedAt,
		Books:     lines,
		Total:     o.Total(),
	}
}

func NewHandler(svc OrderService) *Handler {
	return &Handler{svc: svc}
}
