package handling

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MonkyMars/gecho"
)

func TestHandleError(t *testing.T) {
	logger := gecho.NewLogger(gecho.NewConfig(gecho.WithShowCaller(false)))
	w := httptest.NewRecorder()

	if err := HandleError(errors.New("boom"), "Failed to fetch orders", logger, w); err != nil {
		t.Fatalf("HandleError returned %v", err)
	}
	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", w.Code)
	}
}
