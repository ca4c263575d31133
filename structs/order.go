package structs

import "github.com/shopspring/decimal"

// OrderRequest is the storefront checkout payload. Items carry the quantity
// the customer picked; prices are snapshotted server-side from the product
// rows, never trusted from the client.
type OrderRequest struct {
	CustomerName    string             `json:"customer_name" validate:"required,min=2,max=100"`
	CustomerPhone   string             `json:"customer_phone" validate:"required,min=10,max=20"`
	DeliveryAddress string             `json:"delivery_address" validate:"omitempty,max=300"`
	PaymentMethod   string             `json:"payment_method" validate:"required,oneof=dinheiro cartao_debito cartao_credito pix"`
	CouponCode      string             `json:"coupon_code" validate:"omitempty,len=10"`
	Items           []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

type OrderItemRequest struct {
	ProductId string `json:"product_id" validate:"required,uuid4"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
	Notes     string `json:"notes" validate:"omitempty,max=200"`
}

// StatusUpdateRequest moves an order to any of the six statuses. There is no
// transition table; the kanban board and the detail modal may set any value.
type StatusUpdateRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed preparing ready delivered cancelled"`
}

// OrderListOptions filters the admin order list.
type OrderListOptions struct {
	Status        string
	PaymentMethod string
	Page          int
	PageSize      int
}

// KanbanColumn is one status column with its order count.
type KanbanColumn struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// DiscountedTotal is the checkout total after an applied wheel coupon.
type DiscountedTotal struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Discount decimal.Decimal `json:"discount"`
	Total    decimal.Decimal `json:"total"`
}
