package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/httprate"

	"github.com/zhouzirui/z-bookstore/backend/pkg/utils"
)

// RateLimit limits requests per client IP. A disabled limiter passes
// requests straight through.
func RateLimit(requests int, window time.Duration, disabled bool) func(http.Handler) http.Handler {
	if disabled {
		return func(next http.Handler) http.Handler {
			return next
		}
	}

	return httprate.Limit(
		requests,
		window,
		httprate.WithKeyFuncs(httprate.KeyByRealIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, _ *http.Request) {
			utils.RespondError(w, http.StatusTooManyRequests, "too many requests")
		}),
	)
}
