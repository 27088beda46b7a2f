package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ferdiebergado/bookstore/internal/middleware"
	"github.com/ferdiebergado/bookstore/internal/pkg/message"
	"github.com/ferdiebergado/bookstore/internal/pkg/web"
)

func TestContextGuard(t *testing.T) {
	t.Parallel()

	cancelled, cancel := context.WithCancel(context.Background())
	cancel()

	expired, cancelExpired := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	t.Cleanup(cancelExpired)

	tests := []struct {
		name       string
		ctx        context.Context
		wantCode   int
		wantCalled bool
	}{
		{"live request is served", context.Background(), http.StatusOK, true},
		{"cancelled request", cancelled, http.StatusRequestTimeout, false},
		{"deadline already passed", expired, http.StatusRequestTimeout, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var called bool
			next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				called = true
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequestWithContext(tt.ctx, http.MethodGet, "/books", http.NoBody)
			rec := httptest.NewRecorder()
			middleware.ContextGuard(next).ServeHTTP(rec, req)

			if rec.Code != tt.wantCode {
				t.Errorf(message.FmtErrStatusCode, rec.Code, tt.wantCode)
			}

			if called != tt.wantCalled {
				t.Errorf("handler called = %v, want: %v", called, tt.wantCalled)
			}

			if !tt.wantCalled {
				res := web.DecodeJSONResponse(t, rec.Result())
				if res["message"] != message.RequestTimeout {
					t.Errorf("message = %v, want: %q", res["message"], message.RequestTimeout)
				}
			}
		})
	}
}
