package middleware

import (
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"
)

// LogRequest logs every request once it has been served. It expects InjectWriter
// to run first; the status is reported as 0 otherwise.
func LogRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)

		status, bytes := 0, 0
		if writer, ok := w.(*SafeResponseWriter); ok {
			status, bytes = writer.Status(), writer.BytesWritten()
		}

		level := slog.LevelInfo
		if status >= http.StatusInternalServerError {
			level = slog.LevelError
		}

		slog.LogAttrs(r.Context(), level, "request served",
			slog.String("method", r.Method),
			slog.String("url", r.URL.String()),
			slog.Int("status_code", status),
			slog.Int("bytes", bytes),
			slog.Duration("duration", time.Since(start)),
			slog.String("ip", clientIP(r)),
			slog.String("user_agent", r.UserAgent()),
		)
	})
}

// clientIP prefers the proxy headers over the peer address.
func clientIP(r *http.Request) string {
	if ip := r.Header.Get("X-Real-IP"); ip != "" {
		return ip
	}

	if forwardedFor := r.Header.Values("X-Forwarded-For"); len(forwardedFor) > 0 {
		firstIP := forwardedFor[0]
		ips := strings.Split(firstIP, ",")
		if len(ips) > 0 {
			return strings.TrimSpace(ips[0])
		}
	}

	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return ip
}
