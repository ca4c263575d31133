package lib

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
)

const testSecret = "test-secret-used-only-in-tests"

func TestSignAndParseToken(t *testing.T) {
	sub := uuid.New()
	token, err := SignToken(sub, "admin@bigode.com", "admin", testSecret, time.Hour)
	if err != nil {
		t.Fatalf("SignToken: %v", err)
	}

	claims, err := ParseToken(token, testSecret)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}

	if claims.Sub != sub {
		t.Errorf("Sub = %s, want %s", claims.Sub, sub)
	}
	if claims.Email != "admin@bigode.com" {
		t.Errorf("Email = %s", claims.Email)
	}
	if claims.Role != "admin" {
		t.Errorf("Role = %s", claims.Role)
	}
	if remaining := time.Until(claims.Exp); remaining < 59*time.Minute || remaining > time.Hour {
		t.Errorf("unexpected expiry window: %s", remaining)
	}
}

func TestParseTokenWrongSecret(t *testing.T) {
	token, err := SignToken(uuid.New(), "admin@bigode.com", "admin", testSecret, time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ParseToken(token, "another-secret"); err == nil {
		t.Error("token accepted with the wrong secret")
	}
}

func TestParseTokenExpired(t *testing.T) {
	token, err := SignToken(uuid.New(), "admin@bigode.com", "admin", testSecret, -time.Minute)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ParseToken(token, testSecret); err == nil {
		t.Error("expired token accepted")
	}
}

func TestParseTokenGarbage(t *testing.T) {
	if _, err := ParseToken("not.a.token", testSecret); err == nil {
		t.Error("garbage token accepted")
	}
}

func TestExtractClaims(t *testing.T) {
	sub := uuid.New()
	token, err := SignToken(sub, "admin@bigode.com", "admin", testSecret, time.Hour)
	if err != nil {
		t.Fatal(err)
	}

	r := httptest.NewRequest("GET", "/admin/dashboard", nil)
	r.AddCookie(&http.Cookie{Name: AccessCookieName, Value: token})

	claims, err := ExtractClaims(r, testSecret)
	if err != nil {
		t.Fatalf("ExtractClaims: %v", err)
	}
	if claims.Sub != sub {
		t.Errorf("Sub = %s, want %s", claims.Sub, sub)
	}

	bare := httptest.NewRequest("GET", "/admin/dashboard", nil)
	if _, err := ExtractClaims(bare, testSecret); err == nil {
		t.Error("request without cookie accepted")
	}
}
