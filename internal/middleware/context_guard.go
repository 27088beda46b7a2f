package middleware

import (
	"net/http"

	"github.com/ferdiebergado/bookstore/internal/pkg/errx"
	"github.com/ferdiebergado/bookstore/internal/pkg/message"
	"github.com/ferdiebergado/bookstore/internal/pkg/web"
)

func ContextGuard(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.Context().Err(); err != nil && errx.IsContextError(err) {
			web.RespondRequestTimeout(w, err, message.RequestTimeout, nil)
			return
		}

		next.ServeHTTP(w, r)
	})
}
