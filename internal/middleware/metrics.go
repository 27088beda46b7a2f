package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/ferdiebergado/bookstore/internal/metrics"
)

const unmatchedRoute = "unmatched"

// Metrics records request counts and latency labelled by the matched route
// pattern. It must run after InjectWriter and after any middleware that
// replaces the request, so the router's pattern is visible here.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)

		route := r.Pattern
		if route == "" {
			route = unmatchedRoute
		}

		status := http.StatusOK
		if writer, ok := w.(*SafeResponseWriter); ok {
			status = writer.Status()
		}

		metrics.HTTPRequestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}
