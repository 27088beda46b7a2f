package middleware

import (
	"errors"
	"net/http"

	"github.com/ferdiebergado/bookstore/internal/config"
	"github.com/ferdiebergado/bookstore/internal/pkg/message"
	"github.com/ferdiebergado/bookstore/internal/pkg/web"
	"github.com/go-chi/httprate"
)

var errRateLimited = errors.New("rate limit exceeded")

// RateLimit limits requests per client IP. A zero request count disables it.
func RateLimit(opts *config.RateLimitOptions) func(next http.Handler) http.Handler {
	if opts == nil || opts.Requests <= 0 || opts.Window.Duration <= 0 {
		return func(next http.Handler) http.Handler {
			return next
		}
	}

	return httprate.Limit(
		opts.Requests,
		opts.Window.Duration,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, _ *http.Request) {
			web.RespondTooManyRequests(w, errRateLimited, message.TooManyRequests, nil)
		}),
	)
}
