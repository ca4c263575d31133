package lib

import (
	"bigode_server/config"
	"net/http"
	"time"
)

func cookiePolicy() (sameSite http.SameSite, secure bool, domain string) {
	if config.IsProduction() {
		// Required for cross-subdomain cookies (www <-> api)
		return http.SameSiteNoneMode, true, config.GetConfig().Server.CookieDomain
	}
	return http.SameSiteLaxMode, false, ""
}

// SetCookie sets a secure, HttpOnly cookie for authentication/session usage
func SetCookie(key, val string, expiry time.Time, w http.ResponseWriter) {
	sameSite, secure, domain := cookiePolicy()

	http.SetCookie(w, &http.Cookie{
		Name:     key,
		Value:    val,
		Expires:  expiry,
		Path:     "/",
		Domain:   domain,
		Secure:   secure,
		SameSite: sameSite,
		HttpOnly: true,
	})
}

func GetCookieValue(key string, r *http.Request) (string, error) {
	cookie, err := r.Cookie(key)
	if err != nil {
		return "", err
	}
	return cookie.Value, nil
}

// ClearCookie removes the cookie from the browser
func ClearCookie(key string, w http.ResponseWriter) {
	sameSite, secure, domain := cookiePolicy()

	http.SetCookie(w, &http.Cookie{
		Name:     key,
		Value:    "",
		Path:     "/",
		Domain:   domain,
		Expires:  time.Now().Add(-time.Hour),
		MaxAge:   -1,
		Secure:   secure,
		SameSite: sameSite,
		HttpOnly: true,
	})
}
