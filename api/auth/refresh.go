package auth

import (
	"net/http"
	"time"

	"bigode_server/lib"

	"github.com/MonkyMars/gecho"
)

// HandleRefresh rotates the token pair from the refresh cookie. Both cookies
// are reissued so the access token never outlives its refresh token.
func (ar *AuthRoutesManager) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	refreshToken, err := lib.GetCookieValue(lib.RefreshCookieName, r)
	if err != nil {
		gecho.Unauthorized(w, gecho.WithMessage("No refresh token found"), gecho.Send())
		return
	}

	user, pair, err := ar.authService.Refresh(r.Context(), refreshToken)
	if err != nil {
		ar.logger.Warn("Token refresh failed", gecho.Field("error", err))
		lib.ClearCookie(lib.AccessCookieName, w)
		lib.ClearCookie(lib.RefreshCookieName, w)
		gecho.Unauthorized(w, gecho.WithMessage("Invalid refresh token"), gecho.Send())
		return
	}

	now := time.Now()
	lib.SetCookie(lib.AccessCookieName, pair.AccessToken, now.Add(ar.cfg.Auth.AccessTokenExpiry), w)
	lib.SetCookie(lib.RefreshCookieName, pair.RefreshToken, now.Add(ar.cfg.Auth.RefreshTokenExpiry), w)

	gecho.Success(w,
		gecho.WithMessage("Token refreshed"),
		gecho.WithData(user),
		gecho.Send(),
	)
}
