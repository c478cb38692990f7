package middleware

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/ulule/limiter/v3"
	memorystore "github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/benvon/zen-planner/internal/request"
)

const (
	// ChatRequestsPerMinute is the chat endpoint's per-key budget.
	ChatRequestsPerMinute = 20
	// AnalyzeRequestsPerMinute is the analysis endpoint's per-key budget.
	AnalyzeRequestsPerMinute = 10
)

// RateLimitResult is the outcome of a single rate-limit check.
type RateLimitResult struct {
	Allowed   bool
	Remaining int64
	ResetAt   time.Time
}

// RateLimiter wraps ulule/limiter with an in-process memory store. The
// counters are process-local: with more than one instance each process
// enforces its own window. The Check interface stays stable so a shared
// store (Redis) can replace the memory store without touching callers.
type RateLimiter struct {
	instance *limiter.Limiter
}

// NewRateLimiter creates a limiter allowing maxRequests per window.
func NewRateLimiter(prefix string, maxRequests int64, window time.Duration) *RateLimiter {
	store := memorystore.NewStoreWithOptions(limiter.StoreOptions{
		Prefix:          prefix,
		CleanUpInterval: window,
	})
	return &RateLimiter{
		instance: limiter.New(store, limiter.Rate{Period: window, Limit: maxRequests}),
	}
}

// Check consumes one slot for the key and reports whether the request
// is allowed, how many slots remain, and when the window resets.
func (rl *RateLimiter) Check(ctx context.Context, key string) (RateLimitResult, error) {
	lctx, err := rl.instance.Get(ctx, key)
	if err != nil {
		return RateLimitResult{}, fmt.Errorf("rate limit check: %w", err)
	}
	return RateLimitResult{
		Allowed:   !lctx.Reached,
		Remaining: lctx.Remaining,
		ResetAt:   time.Unix(lctx.Reset, 0),
	}, nil
}

// SetRateLimitHeaders writes the standard rate-limit headers.
func SetRateLimitHeaders(w http.ResponseWriter, result RateLimitResult) {
	w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", result.Remaining))
	w.Header().Set("X-RateLimit-Reset", result.ResetAt.UTC().Format(time.RFC3339))
}

// RateLimitKey derives the limit key from the client IP, falling back
// to "anonymous" when no address is available.
func RateLimitKey(r *http.Request) string {
	ip := request.ClientIP(r)
	if ip == "" {
		return "anonymous"
	}
	return ip
}
