package middleware

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"bigode_server/lib"

	"github.com/MonkyMars/gecho"
)

// getRateLimitForEndpoint determines which rate limit to apply based on config
func (mw *Middleware) getRateLimitForEndpoint(path string) (int, time.Duration) {
	// Auth endpoints get the strictest limits
	if strings.HasPrefix(path, "/auth/") {
		return mw.cfg.RateLimit.AuthLimit, mw.cfg.RateLimit.AuthWindow
	}

	// The wheel is the designated abuse target
	if strings.HasPrefix(path, "/wheel") {
		return mw.cfg.RateLimit.SpinLimit, mw.cfg.RateLimit.SpinWindow
	}

	if strings.HasPrefix(path, "/admin") {
		return mw.cfg.RateLimit.AdminLimit, mw.cfg.RateLimit.AdminWindow
	}

	return mw.cfg.RateLimit.GeneralLimit, mw.cfg.RateLimit.GeneralWindow
}

// normalizeEndpoint groups dynamic routes by their base path so rate-limit
// keys don't explode per resource id.
func normalizeEndpoint(path string) string {
	path = strings.TrimSuffix(path, "/")
	for _, prefix := range []string{"/orders/", "/admin/products/", "/admin/orders/", "/admin/drivers/", "/admin/deliveries/", "/admin/categories/"} {
		if strings.HasPrefix(path, prefix) {
			return prefix + ":id"
		}
	}
	return path
}

// RateLimitMiddleware implements sliding window rate limiting backed by
// Redis. Cache failures fail open: an unreachable Redis must not take the
// storefront down with it.
func (mw *Middleware) RateLimitMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !mw.cfg.RateLimit.Enabled {
				next.ServeHTTP(w, r)
				return
			}

			if r.URL.Path == "/health" || r.URL.Path == "/" {
				next.ServeHTTP(w, r)
				return
			}

			// RemoteAddr has been rewritten by the RealIP middleware by the
			// time we get here.
			clientIP := lib.ClientIP(r)
			limit, window := mw.getRateLimitForEndpoint(r.URL.Path)
			endpoint := normalizeEndpoint(r.URL.Path)

			count, err := mw.cacheService.IncrementRateLimit(clientIP, endpoint, window)
			if err != nil {
				mw.logger.Warn("Rate limit cache error, allowing request",
					gecho.Field("error", err),
					gecho.Field("ip", clientIP),
					gecho.Field("endpoint", endpoint),
				)
				next.ServeHTTP(w, r)
				return
			}

			if count > limit {
				mw.logger.Warn("Rate limit exceeded",
					gecho.Field("ip", clientIP),
					gecho.Field("endpoint", endpoint),
					gecho.Field("count", count),
					gecho.Field("limit", limit),
				)

				w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", limit))
				w.Header().Set("X-RateLimit-Remaining", "0")
				w.Header().Set("Retry-After", fmt.Sprintf("%d", int(window.Seconds())))
				w.Header().Set("Content-Type", "application/json")

				http.Error(w, fmt.Sprintf(`{"message":"Rate limit exceeded. Please try again later.","data":{"limit":%d,"retry_after":%d}}`,
					limit, int(window.Seconds())), http.StatusTooManyRequests)
				return
			}

			remaining := max(0, limit-count)
			w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", limit))
			w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", remaining))
			w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", time.Now().Add(window).Unix()))

			next.ServeHTTP(w, r)
		})
	}
}
