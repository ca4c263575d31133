package lib

import (
	"net/http/httptest"
	"strings"
	"testing"
)

func TestGenerateCouponCode(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 50; i++ {
		code := GenerateCouponCode()
		if !IsCouponCode(code) {
			t.Fatalf("generated code %q does not validate", code)
		}
		seen[code] = struct{}{}
	}
	// 4 random alphanumeric chars; 50 draws colliding into one value would
	// mean the generator is broken.
	if len(seen) < 2 {
		t.Error("generator returned the same code every time")
	}
}

func TestIsCouponCode(t *testing.T) {
	valid := []string{"BIGODEA1B2", "BIGODE0000", "BIGODEZZZZ"}
	for _, code := range valid {
		if !IsCouponCode(code) {
			t.Errorf("IsCouponCode(%q) = false, want true", code)
		}
	}

	invalid := []string{
		"",
		"BIGODE",       // no suffix
		"BIGODEA1B",    // too short
		"BIGODEA1B2C",  // too long
		"bigodea1b2",   // lowercase
		"BIGODE-1B2",   // punctuation
		"LANCHEA1B2",   // wrong prefix
		"XBIGODEA1B",   // prefix not at start
	}
	for _, code := range invalid {
		if IsCouponCode(code) {
			t.Errorf("IsCouponCode(%q) = true, want false", code)
		}
	}
}

func TestClientIP(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	r.RemoteAddr = "203.0.113.9:51234"
	if got := ClientIP(r); got != "203.0.113.9" {
		t.Errorf("ClientIP = %q, want 203.0.113.9", got)
	}

	// RealIP middleware may leave a bare address without a port.
	r.RemoteAddr = "203.0.113.9"
	if got := ClientIP(r); got != "203.0.113.9" {
		t.Errorf("ClientIP = %q, want 203.0.113.9", got)
	}
}

func TestFormatSpinKey(t *testing.T) {
	key := FormatSpinKey("203.0.113.9", "2025-06-10")
	if key != "wheel:spin:203.0.113.9:2025-06-10" {
		t.Errorf("FormatSpinKey = %q", key)
	}
	if !strings.HasPrefix(key, "wheel:spin:") {
		t.Errorf("key missing namespace: %q", key)
	}
}
