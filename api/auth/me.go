package auth

import (
	"net/http"

	"bigode_server/api/middleware"

	"github.com/MonkyMars/gecho"
)

// HandleMe returns the account behind the current session.
func (ar *AuthRoutesManager) HandleMe(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaimsFromContext(r.Context())
	if !ok {
		gecho.Unauthorized(w, gecho.WithMessage("Invalid or missing access token"), gecho.Send())
		return
	}

	user, err := ar.authService.GetUserById(r.Context(), claims.Sub)
	if err != nil {
		ar.logger.Error("Failed to fetch user", gecho.Field("error", err), gecho.Field("user_id", claims.Sub))
		gecho.InternalServerError(w, gecho.WithMessage("Failed to fetch account"), gecho.Send())
		return
	}
	if user == nil {
		gecho.NotFound(w, gecho.WithMessage("Account no longer exists"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithData(user),
		gecho.Send(),
	)
}
