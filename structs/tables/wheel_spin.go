package tables

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WheelSpin records one promotional spin. Rows exist only to rate-limit
// by client IP and UTC calendar day.
type WheelSpin struct {
	tableName      struct{}        `bun:"table:wheel_spins,alias:ws"`
	Id             uuid.UUID       `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	UserIP         string          `bun:"user_ip,notnull" json:"user_ip"`
	WinningSegment string          `bun:"winning_segment,notnull" json:"winning_segment"`
	DiscountValue  decimal.Decimal `bun:"discount_value,notnull,type:numeric(5,2)" json:"discount_value"`
	CouponCode     string          `bun:"coupon_code,notnull" json:"coupon_code"`
	CreatedAt      time.Time       `bun:"created_at,notnull,default:now()" json:"created_at"`
}
