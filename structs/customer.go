package structs

import (
	"time"

	"github.com/shopspring/decimal"
)

// CustomerProfile is built by grouping orders by customer; there is no
// customer table, the storefront takes orders without accounts.
type CustomerProfile struct {
	Name               string          `json:"name"`
	Phone              string          `json:"phone"`
	TotalOrders        int             `json:"total_orders"`
	TotalSpent         decimal.Decimal `json:"total_spent"`
	AvgOrderValue      decimal.Decimal `json:"avg_order_value"`
	LastOrderDate      time.Time       `json:"last_order_date"`
	DaysSinceLastOrder int             `json:"days_since_last_order"`
	Segment            CustomerSegment `json:"segment"`
}

type CustomerSegment string

const (
	SegmentRegular  CustomerSegment = "regular"
	SegmentVIP      CustomerSegment = "vip"
	SegmentInactive CustomerSegment = "inactive"
)

// CustomerStats summarizes the whole customer base for the analytics page.
type CustomerStats struct {
	Total    int `json:"total"`
	VIP      int `json:"vip"`
	Inactive int `json:"inactive"`
}
