package handling

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestParseProductListOptions(t *testing.T) {
	t.Run("empty query", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/admin/products", nil)
		opts, err := ParseProductListOptions(r)
		if err != nil {
			t.Fatal(err)
		}
		if opts.Page != 0 || opts.CategoryId != nil || opts.Active != nil {
			t.Errorf("expected zero options, got %+v", opts)
		}
	})

	t.Run("full query", func(t *testing.T) {
		categoryId := uuid.NewString()
		r := httptest.NewRequest("GET", "/admin/products?page=2&page_size=10&category_id="+categoryId+"&active=true&search=burger", nil)

		opts, err := ParseProductListOptions(r)
		if err != nil {
			t.Fatal(err)
		}
		if opts.Page != 2 || opts.PageSize != 10 {
			t.Errorf("pagination = %d/%d", opts.Page, opts.PageSize)
		}
		if opts.CategoryId == nil || opts.CategoryId.String() != categoryId {
			t.Errorf("CategoryId = %v", opts.CategoryId)
		}
		if opts.Active == nil || !*opts.Active {
			t.Errorf("Active = %v", opts.Active)
		}
		if opts.Search != "burger" {
			t.Errorf("Search = %q", opts.Search)
		}
	})

	t.Run("bad page", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/admin/products?page=two", nil)
		if _, err := ParseProductListOptions(r); err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("bad category id", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/admin/products?category_id=nope", nil)
		if _, err := ParseProductListOptions(r); err == nil {
			t.Fatal("expected error")
		}
	})
}

func TestParseOrderListOptions(t *testing.T) {
	r := httptest.NewRequest("GET", "/admin/orders?page=1&status=preparing&payment_method=pix", nil)
	opts, err := ParseOrderListOptions(r)
	if err != nil {
		t.Fatal(err)
	}
	if opts.Status != "preparing" || opts.PaymentMethod != "pix" || opts.Page != 1 {
		t.Errorf("unexpected options: %+v", opts)
	}
}

func TestParseReportFilter(t *testing.T) {
	t.Run("bare dates make the range inclusive", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/admin/reports?from=2025-06-01&to=2025-06-10", nil)
		filter, err := ParseReportFilter(r)
		if err != nil {
			t.Fatal(err)
		}

		if want := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC); !filter.From.Equal(want) {
			t.Errorf("From = %s, want %s", filter.From, want)
		}

		// Orders placed during the final day must fall inside the range.
		lastEvening := time.Date(2025, 6, 10, 23, 59, 0, 0, time.UTC)
		if filter.To.Before(lastEvening) {
			t.Errorf("To = %s excludes the end day", filter.To)
		}
		if filter.To.After(time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("To = %s spills into the next day", filter.To)
		}
	})

	t.Run("rfc3339 timestamps pass through", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/admin/reports?to=2025-06-10T15:00:00Z", nil)
		filter, err := ParseReportFilter(r)
		if err != nil {
			t.Fatal(err)
		}
		if want := time.Date(2025, 6, 10, 15, 0, 0, 0, time.UTC); !filter.To.Equal(want) {
			t.Errorf("To = %s, want %s", filter.To, want)
		}
	})

	t.Run("bad date", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/admin/reports?from=10-06-2025", nil)
		if _, err := ParseReportFilter(r); err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("status and payment pass through", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/admin/reports?status=delivered&payment_method=dinheiro", nil)
		filter, err := ParseReportFilter(r)
		if err != nil {
			t.Fatal(err)
		}
		if filter.Status != "delivered" || filter.PaymentMethod != "dinheiro" {
			t.Errorf("unexpected filter: %+v", filter)
		}
	})
}
