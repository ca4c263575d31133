package lib

import (
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	"bigode_server/structs"

	"github.com/google/uuid"
)

func TestExtractAndValidateBody(t *testing.T) {
	productId := uuid.NewString()

	t.Run("valid order request", func(t *testing.T) {
		body := `{
			"customer_name": "Maria Silva",
			"customer_phone": "11988887777",
			"payment_method": "pix",
			"items": [{"product_id": "` + productId + `", "quantity": 2}]
		}`
		r := httptest.NewRequest("POST", "/orders", strings.NewReader(body))

		req, err := ExtractAndValidateBody[structs.OrderRequest](r)
		if err != nil {
			t.Fatalf("ExtractAndValidateBody: %v", err)
		}
		if req.CustomerName != "Maria Silva" || len(req.Items) != 1 {
			t.Errorf("unexpected request: %+v", req)
		}
	})

	t.Run("unknown fields rejected", func(t *testing.T) {
		body := `{
			"customer_name": "Maria",
			"customer_phone": "11988887777",
			"payment_method": "pix",
			"items": [{"product_id": "` + productId + `", "quantity": 1}],
			"is_admin": true
		}`
		r := httptest.NewRequest("POST", "/orders", strings.NewReader(body))

		if _, err := ExtractAndValidateBody[structs.OrderRequest](r); err == nil {
			t.Fatal("expected error for unknown field")
		}
	})

	t.Run("oneof violation maps to field error", func(t *testing.T) {
		body := `{
			"customer_name": "Maria Silva",
			"customer_phone": "11988887777",
			"payment_method": "cheque",
			"items": [{"product_id": "` + productId + `", "quantity": 1}]
		}`
		r := httptest.NewRequest("POST", "/orders", strings.NewReader(body))

		_, err := ExtractAndValidateBody[structs.OrderRequest](r)
		var ve *ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("expected *ValidationError, got %v", err)
		}

		found := false
		for _, fe := range ve.Errors {
			if fe.Field == "paymentmethod" && strings.HasPrefix(fe.Message, "must be one of:") {
				found = true
			}
		}
		if !found {
			t.Errorf("payment method error missing: %+v", ve.Errors)
		}
	})

	t.Run("nested item validation", func(t *testing.T) {
		body := `{
			"customer_name": "Maria Silva",
			"customer_phone": "11988887777",
			"payment_method": "pix",
			"items": [{"product_id": "not-a-uuid", "quantity": 1}]
		}`
		r := httptest.NewRequest("POST", "/orders", strings.NewReader(body))

		if _, err := ExtractAndValidateBody[structs.OrderRequest](r); err == nil {
			t.Fatal("expected error for malformed product id")
		}
	})

	t.Run("malformed json", func(t *testing.T) {
		r := httptest.NewRequest("POST", "/orders", strings.NewReader("{"))
		if _, err := ExtractAndValidateBody[structs.OrderRequest](r); err == nil {
			t.Fatal("expected error for malformed json")
		}
	})
}
