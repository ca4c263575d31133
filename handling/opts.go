package handling

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"bigode_server/services"
	"bigode_server/structs"

	"github.com/google/uuid"
)

// ParseProductListOptions parses HTTP query parameters into ProductListOptions
func ParseProductListOptions(r *http.Request) (*services.ProductListOptions, error) {
	query := r.URL.Query()
	if len(query) == 0 {
		return &services.ProductListOptions{}, nil
	}

	opts := &services.ProductListOptions{}

	if page := query.Get("page"); page != "" {
		val, err := strconv.Atoi(page)
		if err != nil {
			return nil, err
		}
		opts.Page = val
	}

	if pageSize := query.Get("page_size"); pageSize != "" {
		val, err := strconv.Atoi(pageSize)
		if err != nil {
			return nil, err
		}
		opts.PageSize = val
	}

	if categoryId := query.Get("category_id"); categoryId != "" {
		id, err := uuid.Parse(categoryId)
		if err != nil {
			return nil, err
		}
		opts.CategoryId = &id
	}

	if active := query.Get("active"); active != "" {
		val, err := strconv.ParseBool(active)
		if err != nil {
			return nil, err
		}
		opts.Active = &val
	}

	if search := query.Get("search"); search != "" {
		opts.Search = search
	}

	return opts, nil
}

// ParseOrderListOptions parses HTTP query parameters into OrderListOptions
func ParseOrderListOptions(r *http.Request) (*structs.OrderListOptions, error) {
	query := r.URL.Query()
	if len(query) == 0 {
		return &structs.OrderListOptions{}, nil
	}

	opts := &structs.OrderListOptions{}

	if page := query.Get("page"); page != "" {
		val, err := strconv.Atoi(page)
		if err != nil {
			return nil, err
		}
		opts.Page = val
	}

	if pageSize := query.Get("page_size"); pageSize != "" {
		val, err := strconv.Atoi(pageSize)
		if err != nil {
			return nil, err
		}
		opts.PageSize = val
	}

	opts.Status = query.Get("status")
	opts.PaymentMethod = query.Get("payment_method")

	return opts, nil
}

// ParseReportFilter parses report query parameters. Dates accept RFC3339 or
// plain YYYY-MM-DD; a bare end date is pushed to the end of that day so the
// range is inclusive.
func ParseReportFilter(r *http.Request) (structs.ReportFilter, error) {
	query := r.URL.Query()

	filter := structs.ReportFilter{
		Status:        query.Get("status"),
		PaymentMethod: query.Get("payment_method"),
	}

	if from := query.Get("from"); from != "" {
		t, err := parseDate(from)
		if err != nil {
			return filter, err
		}
		filter.From = t
	}

	if to := query.Get("to"); to != "" {
		t, err := parseDate(to)
		if err != nil {
			return filter, err
		}
		if !strings.Contains(to, "T") {
			t = t.Add(24*time.Hour - time.Nanosecond)
		}
		filter.To = t
	}

	return filter, nil
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
