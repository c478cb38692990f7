package middleware

import (
	"context"
	"net/http"
	"time"
)

const (
	// DefaultRequestTimeout is the default request timeout (30 seconds)
	DefaultRequestTimeout = 30 * time.Second
)

// Timeout enforces a deadline on request handlers. The deadline is
// carried in the request context so downstream API calls give up too.
func Timeout(timeout time.Duration) func(http.Handler) http.Handler {
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			handler := http.TimeoutHandler(next, timeout, "Request Timeout")
			handler.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
