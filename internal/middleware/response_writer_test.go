package middleware_test

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ferdiebergado/bookstore/internal/middleware"
)

func TestSafeResponseWriter(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	w := middleware.NewSafeResponseWriter(context.Background(), rec)

	w.WriteHeader(http.StatusCreated)
	w.WriteHeader(http.StatusInternalServerError)
	n, err := w.Write([]byte("created"))
	if err != nil {
		t.Fatal(err)
	}

	if rec.Code != http.StatusCreated || w.Status() != http.StatusCreated {
		t.Errorf("status = %d/%d, want: %d", rec.Code, w.Status(), http.StatusCreated)
	}

	if w.BytesWritten() != n || n != len("created") {
		t.Errorf("w.BytesWritten() = %d, want: %d", w.BytesWritten(), len("created"))
	}
}

func TestSafeResponseWriter_ErrorBodyIsWritten(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	w := middleware.NewSafeResponseWriter(context.Background(), rec)

	w.WriteHeader(http.StatusInternalServerError)
	if _, err := w.Write([]byte(`{"message":"An unexpected error occurred."}`)); err != nil {
		t.Fatal(err)
	}

	if rec.Body.Len() == 0 {
		t.Error("rec.Body is empty, want the error payload")
	}
}

func TestSafeResponseWriter_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rec := httptest.NewRecorder()
	w := middleware.NewSafeResponseWriter(ctx, rec)

	if _, err := w.Write([]byte("late")); err == nil {
		t.Error("w.Write() = nil, want the context error")
	}

	if rec.Body.Len() != 0 {
		t.Errorf("rec.Body = %q, want it empty", rec.Body.String())
	}
}

func TestLogRequest(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })

	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	req := httptest.NewRequest(http.MethodGet, "/books", http.NoBody)
	req.Header.Set("X-Forwarded-For", "198.51.100.4, 10.0.0.1")
	rec := httptest.NewRecorder()

	middleware.InjectWriter(middleware.LogRequest(handler)).ServeHTTP(rec, req)

	out := buf.String()
	for _, want := range []string{"status_code=418", "ip=198.51.100.4", "url=/books"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output %q does not contain %q", out, want)
		}
	}
}
