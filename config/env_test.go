package config

import (
	"testing"
	"time"
)

func TestGetEnvAsString(t *testing.T) {
	t.Setenv("TEST_STRING", "value")
	if got := getEnvAsString("TEST_STRING", "fallback"); got != "value" {
		t.Errorf("got %q", got)
	}
	if got := getEnvAsString("TEST_STRING_MISSING", "fallback"); got != "fallback" {
		t.Errorf("got %q", got)
	}
}

func TestGetEnvAsInt(t *testing.T) {
	t.Setenv("TEST_INT", "42")
	if got := getEnvAsInt("TEST_INT", 7); got != 42 {
		t.Errorf("got %d", got)
	}

	t.Setenv("TEST_INT_BAD", "forty-two")
	if got := getEnvAsInt("TEST_INT_BAD", 7); got != 7 {
		t.Errorf("got %d, want fallback", got)
	}
}

func TestGetEnvAsDuration(t *testing.T) {
	t.Setenv("TEST_DUR", "30m")
	if got := getEnvAsDuration("TEST_DUR", time.Second); got != 30*time.Minute {
		t.Errorf("got %s", got)
	}

	// Bare integers are seconds.
	t.Setenv("TEST_DUR_SECS", "15")
	if got := getEnvAsDuration("TEST_DUR_SECS", time.Second); got != 15*time.Second {
		t.Errorf("got %s", got)
	}

	t.Setenv("TEST_DUR_BAD", "soon")
	if got := getEnvAsDuration("TEST_DUR_BAD", time.Minute); got != time.Minute {
		t.Errorf("got %s, want fallback", got)
	}
}

func TestGetEnvAsBool(t *testing.T) {
	t.Setenv("TEST_BOOL", "true")
	if !getEnvAsBool("TEST_BOOL", false) {
		t.Error("got false")
	}
	if getEnvAsBool("TEST_BOOL_MISSING", false) {
		t.Error("got true, want fallback")
	}
}

func TestGetEnvAsSlice(t *testing.T) {
	t.Setenv("TEST_SLICE", "a, b ,c,,")
	got := getEnvAsSlice("TEST_SLICE", nil)
	want := []string{"a", "b", "c"}
	if len(got) != len(want) {
		t.Fatalf("got %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
