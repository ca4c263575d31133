package middleware

import (
	"testing"
	"time"

	"bigode_server/structs"
)

func TestNormalizeEndpoint(t *testing.T) {
	cases := map[string]string{
		"/orders/6f1c2a34-0000-0000-0000-000000000000/track": "/orders/:id",
		"/admin/products/6f1c2a34":                           "/admin/products/:id",
		"/admin/orders/6f1c2a34/status":                      "/admin/orders/:id",
		"/admin/products":                                    "/admin/products",
		"/menu":                                              "/menu",
		"/wheel/spin":                                        "/wheel/spin",
		"/orders/":                                           "/orders",
	}
	for path, want := range cases {
		if got := normalizeEndpoint(path); got != want {
			t.Errorf("normalizeEndpoint(%q) = %q, want %q", path, got, want)
		}
	}
}

func TestGetRateLimitForEndpoint(t *testing.T) {
	mw := &Middleware{cfg: &structs.Config{
		RateLimit: &structs.RateLimitConfig{
			GeneralLimit: 100, GeneralWindow: time.Minute,
			AuthLimit: 5, AuthWindow: time.Minute,
			AdminLimit: 200, AdminWindow: time.Minute,
			SpinLimit: 3, SpinWindow: time.Hour,
		},
	}}

	cases := []struct {
		path      string
		wantLimit int
	}{
		{"/auth/login", 5},
		{"/wheel/spin", 3},
		{"/wheel", 3},
		{"/admin/orders", 200},
		{"/menu", 100},
		{"/orders", 100},
	}
	for _, tc := range cases {
		limit, _ := mw.getRateLimitForEndpoint(tc.path)
		if limit != tc.wantLimit {
			t.Errorf("getRateLimitForEndpoint(%q) limit = %d, want %d", tc.path, limit, tc.wantLimit)
		}
	}
}
