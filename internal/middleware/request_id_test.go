package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ferdiebergado/bookstore/internal/middleware"
	"github.com/ferdiebergado/bookstore/internal/pkg/logging"
	"github.com/ferdiebergado/bookstore/internal/pkg/web"
	"github.com/google/uuid"
)

func TestRequestID(t *testing.T) {
	t.Parallel()

	const clientID = "5f0c7a52-9a1c-4b8e-8a43-0d4b1a6d2f10"

	tests := []struct {
		name     string
		incoming string
		keep     bool
	}{
		{"No header", "", false},
		{"Valid client id", clientID, true},
		{"Invalid client id", "not-a-uuid", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var ctxID string
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				ctxID = logging.RequestIDFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/books", http.NoBody)
			if tt.incoming != "" {
				req.Header.Set(web.HeaderRequestID, tt.incoming)
			}
			rec := httptest.NewRecorder()

			middleware.RequestID(handler).ServeHTTP(rec, req)

			got := rec.Header().Get(web.HeaderRequestID)
			if _, err := uuid.Parse(got); err != nil {
				t.Fatalf("response %s = %q is not a uuid", web.HeaderRequestID, got)
			}

			if got != ctxID {
				t.Errorf("context request id = %q, want: %q", ctxID, got)
			}

			if kept := got == tt.incoming; kept != tt.keep {
				t.Errorf("request id kept = %v, want: %v", kept, tt.keep)
			}
		})
	}
}
