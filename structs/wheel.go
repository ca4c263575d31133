package structs

import "github.com/shopspring/decimal"

// WheelSegment is one slice of the promotional wheel. The winning segment is
// fixed; the others exist for the animation only.
type WheelSegment struct {
	Label    string          `json:"label"`
	Discount decimal.Decimal `json:"discount"`
}

type SpinEligibility struct {
	Eligible bool   `json:"eligible"`
	Reason   string `json:"reason,omitempty"`
}

type SpinResult struct {
	WinningSegment string          `json:"winning_segment"`
	DiscountValue  decimal.Decimal `json:"discount_value"`
	CouponCode     string          `json:"coupon_code"`
	SegmentIndex   int             `json:"segment_index"`
}
