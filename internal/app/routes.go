package app

import (
	"net/http"

	"github.com/ferdiebergado/bookstore/internal/book"
	"github.com/ferdiebergado/bookstore/internal/cart"
	"github.com/ferdiebergado/bookstore/internal/config"
	"github.com/ferdiebergado/bookstore/internal/middleware"
	"github.com/ferdiebergado/bookstore/internal/order"
	"github.com/ferdiebergado/bookstore/internal/pkg/web"
	"github.com/ferdiebergado/bookstore/internal/platform/router"
	"github.com/ferdiebergado/bookstore/internal/platform/validation"
	"github.com/ferdiebergado/bookstore/internal/review"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const msgHello = "Hello World!"

func mountHealthRoutes(r router.Router) {
	r.Get("/{$}", func(w http.ResponseWriter, _ *http.Request) {
		msg := msgHello
		web.RespondOK[any](w, &msg, nil)
	})
	r.Get("/metrics", promhttp.Handler().ServeHTTP)
}

// payload returns the middlewares that decode and validate a JSON body of type T.
func payload[T any](validator validation.Validator, maxBody int64) []router.Middleware {
	return []router.Middleware{
		middleware.CheckContentType,
		middleware.DecodePayload[T](maxBody),
		middleware.ValidateInput[T](validator),
	}
}

func mountBookRoutes(r router.Router, h *book.Handler, validator validation.Validator, maxBody int64) {
	r.Get("/books", h.List)
	r.Get("/books/search", h.Search)
	r.Get("/books/search/{bookId}", h.Find)
	r.Post("/books", h.Create, payload[book.CreateRequest](validator, maxBody)...)
	r.Put("/books/{id}", h.Update, payload[book.UpdateRequest](validator, maxBody)...)
	r.Delete("/books/{id}", h.Delete)
}

func mountReviewRoutes(r router.Router, h *review.Handler, validator validation.Validator, maxBody int64) {
	r.Post("/reviews", h.Create, payload[review.CreateRequest](validator, maxBody)...)
	r.Get("/reviews/book/{bookId}", h.ListByBook)
}

func mountOrderRoutes(r router.Router, h *order.Handler, validator validation.Validator, maxBody int64) {
	r.Post("/orders", h.Create, payload[order.CreateRequest](validator, maxBody)...)
	r.Get("/orders/view-orders", h.List)
	r.Get("/orders/{id}", h.Find)
}

func mountCartRoutes(r router.Router, h *cart.Handler, validator validation.Validator, maxBody int64, limit *config.RateLimitOptions) {
	r.Get("/cart", h.Get)
	r.Post("/cart/add", h.AddItem, payload[cart.ItemRequest](validator, maxBody)...)
	r.Patch("/cart/update", h.UpdateItem, payload[cart.ItemRequest](validator, maxBody)...)
	r.Delete("/cart/remove/{bookId}", h.RemoveItem)
	r.Delete("/cart/clear", h.Clear)
	r.Post("/cart/checkout", h.Checkout)

	suggestion := append([]router.Middleware{middleware.RateLimit(limit)},
		payload[cart.SuggestionRequest](validator, maxBody)...)
	r.Post("/cart/suggestion", h.Suggest, suggestion...)
}
