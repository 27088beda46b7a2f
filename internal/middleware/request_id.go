package middleware

import (
	"net/http"

	"github.com/ferdiebergado/bookstore/internal/pkg/logging"
	"github.com/ferdiebergado/bookstore/internal/pkg/web"
	"github.com/google/uuid"
)

// RequestID tags every request with an id. A valid UUID sent by the client in
// X-Request-ID is kept, anything else is replaced.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(web.HeaderRequestID)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}

		w.Header().Set(web.HeaderRequestID, id)
		ctx := logging.NewContextWithRequestID(r.Context(), id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
