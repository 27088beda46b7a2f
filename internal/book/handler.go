package book

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/ferdiebergado/bookstore/internal/pkg/errx"
	"github.com/ferdiebergado/bookstore/internal/pkg/message"
	"github.com/ferdiebergado/bookstore/internal/pkg/text"
	"github.com/ferdiebergado/bookstore/internal/pkg/web"
)

const (
	msgListed       = "Books found."
	msgFound        = "Book found."
	msgCreated      = "Book created."
	msgUpdated      = "Book updated."
	msgDeleted      = "Book deleted."
	msgNotFound     = "Book not found."
	msgNoBooks      = "No books found."
	msgNoMatch      = "No books found for this search."
	msgEmptySearch  = "The search value cannot be empty."
	msgDuplicate    = "A book with the same title and author already exists."
	msgInOrders     = "The book belongs to existing orders and cannot be deleted."
	msgInvalidID    = "Invalid book id."
	searchParamName = "searchValue"
)

type BookService interface {
	List(ctx context.Context) ([]Book, error)
	Find(ctx context.Context, id int64) (*Book, error)
	Search(ctx context.Context, query string) ([]Book, error)
	Create(ctx context.Context, params CreateParams) (*Book, error)
	Update(ctx context.Context, id int64, params UpdateParams) (*Book, error)
	Delete(ctx context.Context, id int64) error
}

type Handler struct {
	svc BookService
}

type ReviewData struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Text      string    `json:"text"`
	Score     int       `json:"score"`
	CreatedAt time.Time `json:"created_at"`
}

type BookData struct {
	ID          int64        `json:"id"`
	Title       string       `json:"title"`
	Author      string       `json:"author"`
	Price       float64      `json:"price"`
	Genre       string       `json:"genre"`
	Description string       `json:"description"`
	Quantity    int          `json:"quantity"`
	Reviews     []ReviewData `json:"reviews"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

type ListResponse struct {
	Books []BookData `json:"books"`
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	books, err := h.svc.List(r.Context())
	if err != nil {
		h.fail(w, err, msgNoBooks)
		return
	}

	msg := msgListed
	web.RespondOK(w, &msg, NewListResponse(books))
}

func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	books, err := h.svc.Search(r.Context(), r.URL.Query().Get(searchParamName))
	if err != nil {
		h.fail(w, err, msgNoMatch)
		return
	}

	msg := msgListed
	web.RespondOK(w, &msg, NewListResponse(books))
}

func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	id, err := web.PathID(r, "bookId")
	if err != nil {
		web.RespondBadRequest(w, err, msgInvalidID, nil)
		return
	}

	b, err := h.svc.Find(r.Context(), id)
	if err != nil {
		h.fail(w, err, msgNotFound)
		return
	}

	msg := msgFound
	web.RespondOK(w, &msg, TransformBook(b))
}

type CreateRequest struct {
	Title       string   `json:"title" validate:"required,max=255"`
	Author      string   `json:"author" validate:"required,max=255"`
	Price       *float64 `json:"price" validate:"required,gte=0"`
	Genre       string   `json:"genre" validate:"required,max=100"`
	Description string   `json:"description" validate:"required,max=5000"`
	Quantity    *int     `json:"quantity" validate:"required,gte=0"`
}

func (c *CreateRequest) Normalize() {
	c.Title = text.Squash(c.Title)
	c.Author = text.Squash(c.Author)
	c.Genre = text.Squash(c.Genre)
	c.Description = text.Squash(c.Description)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, err := web.ParamsFromContext[CreateRequest](ctx)
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	params := CreateParams{
		Title:       req.Title,
		Author:      req.Author,
		Price:       *req.Price,
		Genre:       req.Genre,
		Description: req.Description,
		Quantity:    *req.Quantity,
	}

	b, err := h.svc.Create(ctx, params)
	if err != nil {
		h.fail(w, err, msgNotFound)
		return
	}

	msg := msgCreated
	web.RespondCreated(w, &msg, TransformBook(b))
}

type UpdateRequest struct {
	Title       *string  `json:"title" validate:"omitnil,min=1,max=255"`
	Author      *string  `json:"author" validate:"omitnil,min=1,max=255"`
	Price       *float64 `json:"price" validate:"omitnil,gte=0"`
	Genre       *string  `json:"genre" validate:"omitnil,min=1,max=100"`
	Description *string  `json:"description" validate:"omitnil,min=1,max=5000"`
	Quantity    *int     `json:"quantity" validate:"omitnil,gte=0"`
}

func (u *UpdateRequest) Normalize() {
	text.SquashPtr(u.Title)
	text.SquashPtr(u.Author)
	text.SquashPtr(u.Genre)
	text.SquashPtr(u.Description)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, err := web.PathID(r, "id")
	if err != nil {
		web.RespondBadRequest(w, err, msgInvalidID, nil)
		return
	}

	req, err := web.ParamsFromContext[UpdateRequest](ctx)
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	params := UpdateParams(req)
	b, err := h.svc.Update(ctx, id, params)
	if err != nil {
		h.fail(w, err, msgNotFound)
		return
	}

	msg := msgUpdated
	web.RespondOK(w, &msg, TransformBook(b))
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := web.PathID(r, "id")
	if err != nil {
		web.RespondBadRequest(w, err, msgInvalidID, nil)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		h.fail(w, err, msgNotFound)
		return
	}

	msg := msgDeleted
	web.RespondOK[any](w, &msg, nil)
}

// fail maps service errors to responses. notFoundMsg is used for ErrNotFound.
func (h *Handler) fail(w http.ResponseWriter, err error, notFoundMsg string) {
	switch {
	case errors.Is(err, ErrNotFound):
		web.RespondNotFound(w, err, notFoundMsg, nil)
	case errors.Is(err, ErrEmptySearch):
		web.RespondBadRequest(w, err, msgEmptySearch, nil)
	case errors.Is(err, ErrDuplicate):
		web.RespondConflict(w, err, msgDuplicate, nil)
	case errors.Is(err, ErrInOrders):
		web.RespondConflict(w, err, msgInOrders, nil)
	case errx.IsContextError(err):
		web.RespondRequestTimeout(w, err, message.RequestTimeout, nil)
	default:
		web.RespondInternalServerError(w, err)
	}
}

func TransformBook(b *Book) *BookData {
	reviews := make([]ReviewData, 0, len(b.Reviews))
	for _, rv := range b.Reviews {
		reviews = append(reviews, ReviewData{
			ID:        rv.ID,
			Name:      rv.Name,
			Text:      rv.Text,
			Score:     rv.Score,
			CreatedAt: rv.CreatedAt,
		})
	}

	return &BookData{
		ID:          b.ID,
		Title:       b.Title,
		Author:      b.Author,
		Price:       b.Price,
		Genre:       b.Genre,
		Description: b.Description,
		Quantity:    b.Quantity,
		Reviews:     reviews,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

func NewListResponse(books []Book) *ListResponse {
	data := make([]BookData, 0, len(books))
	for i := range books {
		data = append(data, *TransformBook(&books[i]))
	}

	return &ListResponse{
		Books: data,
	}
}

func NewHandler(svc BookService) *Handler {
	return &Handler{svc: svc}
}
