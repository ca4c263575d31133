package middleware

import (
	"context"
	"net/http"

	"bigode_server/lib"
	"bigode_server/structs"

	"github.com/MonkyMars/gecho"
)

// Context keys for storing user data in request context
type contextKey string

const ClaimsContextKey contextKey = "claims"

// UserAuthMiddleware protects routes to only logged-in staff
func (mw *Middleware) UserAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, err := lib.ExtractClaims(r, mw.cfg.Auth.AccessTokenSecret)
		if err != nil {
			mw.logger.Warn("Failed to extract claims from request", gecho.Field("error", err))
			gecho.Unauthorized(w, gecho.WithMessage("Invalid or missing access token"), gecho.Send())
			return
		}

		ctx := context.WithValue(r.Context(), ClaimsContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AdminAuthMiddleware protects routes to only admin users.
// Must be used after UserAuthMiddleware.
func (mw *Middleware) AdminAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := GetClaimsFromContext(r.Context())
		if !ok {
			gecho.Forbidden(w, gecho.WithMessage("Access denied"), gecho.Send())
			return
		}

		if claims.Role != "admin" {
			mw.logger.Warn("Non-admin user attempted to access admin route",
				gecho.Field("user_id", claims.Sub),
				gecho.Field("role", claims.Role),
			)
			gecho.Forbidden(w, gecho.WithMessage("Admin access required"), gecho.Send())
			return
		}

		next.ServeHTTP(w, r)
	})
}

// GetClaimsFromContext is a helper function to extract the claims from request context
func GetClaimsFromContext(ctx context.Context) (*structs.AuthClaims, bool) {
	claims, ok := ctx.Value(ClaimsContextKey).(*structs.AuthClaims)
	return claims, ok
}
