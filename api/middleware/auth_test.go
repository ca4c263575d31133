package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bigode_server/lib"
	"bigode_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
)

const testSecret = "middleware-test-secret"

func testMiddleware() *Middleware {
	return &Middleware{
		cfg: &structs.Config{
			Auth: &structs.AuthConfig{AccessTokenSecret: testSecret},
		},
		logger: gecho.NewLogger(gecho.NewConfig(gecho.WithShowCaller(false))),
	}
}

func requestWithToken(t *testing.T, role string) *http.Request {
	t.Helper()
	token, err := lib.SignToken(uuid.New(), "staff@bigode.com", role, testSecret, time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	r := httptest.NewRequest("GET", "/admin/orders", nil)
	r.AddCookie(&http.Cookie{Name: lib.AccessCookieName, Value: token})
	return r
}

func TestUserAuthMiddleware(t *testing.T) {
	mw := testMiddleware()

	var gotClaims *structs.AuthClaims
	handler := mw.UserAuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotClaims, _ = GetClaimsFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("valid token passes claims through context", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, requestWithToken(t, "staff"))

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d", w.Code)
		}
		if gotClaims == nil || gotClaims.Role != "staff" {
			t.Errorf("claims = %+v", gotClaims)
		}
	})

	t.Run("missing cookie is unauthorized", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest("GET", "/admin/orders", nil))

		if w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", w.Code)
		}
	})

	t.Run("tampered token is unauthorized", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/admin/orders", nil)
		r.AddCookie(&http.Cookie{Name: lib.AccessCookieName, Value: "bogus.token.value"})

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", w.Code)
		}
	})
}

func TestAdminAuthMiddleware(t *testing.T) {
	mw := testMiddleware()

	reached := false
	chain := mw.UserAuthMiddleware(mw.AdminAuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		w.WriteHeader(http.StatusOK)
	})))

	t.Run("admin role passes", func(t *testing.T) {
		reached = false
		w := httptest.NewRecorder()
		chain.ServeHTTP(w, requestWithToken(t, "admin"))

		if w.Code != http.StatusOK || !reached {
			t.Errorf("status = %d, reached = %v", w.Code, reached)
		}
	})

	t.Run("staff role is forbidden", func(t *testing.T) {
		reached = false
		w := httptest.NewRecorder()
		chain.ServeHTTP(w, requestWithToken(t, "staff"))

		if w.Code != http.StatusForbidden {
			t.Errorf("status = %d, want 403", w.Code)
		}
		if reached {
			t.Error("handler reached without admin role")
		}
	})

	t.Run("no claims in context is forbidden", func(t *testing.T) {
		bare := mw.AdminAuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		w := httptest.NewRecorder()
		bare.ServeHTTP(w, httptest.NewRequest("GET", "/admin/orders", nil))

		if w.Code != http.StatusForbidden {
			t.Errorf("status = %d, want 403", w.Code)
		}
	})
}
