package review

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/ferdiebergado/bookstore/internal/book"
	"github.com/ferdiebergado/bookstore/internal/pkg/errx"
	"github.com/ferdiebergado/bookstore/internal/pkg/message"
	"github.com/ferdiebergado/bookstore/internal/pkg/text"
	"github.com/ferdiebergado/bookstore/internal/pkg/web"
)

const (
	msgCreated      = "Review created."
	msgListed       = "Reviews found."
	msgBookNotFound = "Book not found."
	msgNoReviews    = "No reviews found for this book."
	msgInvalidID    = "Invalid book id."
)

type ReviewService interface {
	Create(ctx context.Context, params CreateParams) (*Review, error)
	ListByBook(ctx context.Context, bookID int64) ([]Review, error)
}

type Handler struct {
	svc ReviewService
}

type CreateRequest struct {
	BookID int64  `json:"book_id" validate:"required,gt=0"`
	Name   string `json:"name" validate:"required,max=100"`
	Text   string `json:"text" validate:"required,max=2000"`
	Score  int    `json:"score" validate:"required,gte=1,lte=5"`
}

func (c *CreateRequest) Normalize() {
	c.Name = text.Squash(c.Name)
	c.Text = text.Squash(c.Text)
}

type ReviewData struct {
	ID        int64     `json:"id"`
	BookID    int64     `json:"book_id"`
	Name      string    `json:"name"`
	Text      string    `json:"text"`
	Score     int       `json:"score"`
	CreatedAt time.Time `json:"created_at"`
}

type ListResponse struct {
	Reviews []ReviewData `json:"reviews"`
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, err := web.ParamsFromContext[CreateRequest](ctx)
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	params := CreateParams(req)
	rv, err := h.svc.Create(ctx, params)
	if err != nil {
		h.fail(w, err)
		return
	}

	msg := msgCreated
	data := transform(rv)
	web.RespondCreated(w, &msg, &data)
}

func (h *Handler) ListByBook(w http.ResponseWriter, r *http.Request) {
	bookID, err := web.PathID(r, "bookId")
	if err != nil {
		web.RespondBadRequest(w, err, msgInvalidID, nil)
		return
	}

	reviews, err := h.svc.ListByBook(r.Context(), bookID)
	if err != nil {
		h.fail(w, err)
		return
	}

	data := make([]ReviewData, 0, len(reviews))
	for i := range reviews {
		data = append(data, transform(&reviews[i]))
	}

	msg := msgListed
	web.RespondOK(w, &msg, &ListResponse{Reviews: data})
}

func (h *Handler) fail(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, book.ErrNotFound):
		web.RespondNotFound(w, err, msgBookNotFound, nil)
	case errors.Is(err, ErrNoReviews):
		web.RespondNotFound(w, err, msgNoReviews, nil)
	case errx.IsContextError(err):
		web.RespondRequestTimeout(w, err, message.RequestTimeout, nil)
	default:
		web.RespondInternalServerError(w, err)
	}
}

func transform(rv *Review) ReviewData {
	return ReviewData{
		ID:        rv.ID,
		BookID:    rv.BookID,
		Name:      rv.Name,
		Text:      rv.Text,
		Score:     rv.Score,
		CreatedAt: rv.CreatedAt,
	}
}

func NewHandler(svc ReviewService) *Handler {
	return &Handler{svc: svc}
}
