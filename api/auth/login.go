package auth

import (
	"net/http"
	"time"

	"bigode_server/lib"
	"bigode_server/structs"

	"github.com/MonkyMars/gecho"
)

func (ar *AuthRoutesManager) HandleLogin(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.LoginRequest](r)
	if err != nil {
		ar.logger.Warn("Failed to extract request body", gecho.Field("error", err))
		gecho.BadRequest(w, gecho.WithMessage("Please check your login information and try again"), gecho.Send())
		return
	}

	user, pair, err := ar.authService.Login(r.Context(), body)
	if err != nil {
		ar.logger.Warn("Login failed", gecho.Field("error", err))
		gecho.Unauthorized(w, gecho.WithMessage("Invalid credentials"), gecho.Send())
		return
	}

	now := time.Now()
	lib.SetCookie(lib.AccessCookieName, pair.AccessToken, now.Add(ar.cfg.Auth.AccessTokenExpiry), w)
	lib.SetCookie(lib.RefreshCookieName, pair.RefreshToken, now.Add(ar.cfg.Auth.RefreshTokenExpiry), w)

	gecho.Success(w,
		gecho.WithMessage("Login successful"),
		gecho.WithData(user),
		gecho.Send(),
	)
}
