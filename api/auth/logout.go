package auth

import (
	"net/http"

	"bigode_server/lib"

	"github.com/MonkyMars/gecho"
)

func (ar *AuthRoutesManager) HandleLogout(w http.ResponseWriter, r *http.Request) {
	lib.ClearCookie(lib.AccessCookieName, w)
	lib.ClearCookie(lib.RefreshCookieName, w)

	gecho.Success(w,
		gecho.WithMessage("Logged out successfully"),
		gecho.Send(),
	)
}
