package tables

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Order struct {
	tableName struct{}  `bun:"table:orders,alias:o"`
	Id        uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`

	// Customer data. Phone is the only contact channel; orders are placed
	// without an account.
	CustomerName  string `bun:"customer_name,notnull" json:"customer_name"`
	CustomerPhone string `bun:"customer_phone" json:"customer_phone,omitempty"`

	Total           decimal.Decimal `bun:"total,notnull,type:numeric(10,2)" json:"total"`
	Status          OrderStatus     `bun:"status,notnull,default:'pending'" json:"status"`
	PaymentMethod   PaymentMethod   `bun:"payment_method,notnull" json:"payment_method"`
	DeliveryAddress string          `bun:"delivery_address" json:"delivery_address,omitempty"`
	EstablishmentId uuid.UUID       `bun:"establishment_id,notnull,type:uuid" json:"establishment_id"`
	CreatedAt       time.Time       `bun:"created_at,notnull,default:now()" json:"created_at"`
	UpdatedAt       time.Time       `bun:"updated_at,notnull,default:now()" json:"updated_at"`

	Items []OrderItem `bun:"rel:has-many,join:id=order_id" json:"items,omitempty"`
}

// OrderItem captures price at order time (snapshot, not live product price).
type OrderItem struct {
	tableName struct{}  `bun:"table:order_items,alias:oi"`
	Id        uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	OrderId   uuid.UUID `bun:"order_id,notnull,type:uuid" json:"order_id"`
	ProductId uuid.UUID `bun:"product_id,notnull,type:uuid" json:"product_id"`
	Quantity  int       `bun:"quantity,notnull" json:"quantity"`

	Price decimal.Decimal `bun:"price,notnull,type:numeric(10,2)" json:"price"`
	Notes string          `bun:"notes" json:"notes,omitempty"`

	Product *Product `bun:"rel:belongs-to,join:product_id=id" json:"product,omitempty"`
}

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusPreparing OrderStatus = "preparing"
	OrderStatusReady     OrderStatus = "ready"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// OrderStatuses lists every status in kanban column order. Any status may be
// set from any other; staff use this to correct mistakes.
var OrderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusConfirmed,
	OrderStatusPreparing,
	OrderStatusReady,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

func (s OrderStatus) Valid() bool {
	for _, known := range OrderStatuses {
		if s == known {
			return true
		}
	}
	return false
}

type PaymentMethod string

const (
	PaymentCash       PaymentMethod = "dinheiro"
	PaymentDebitCard  PaymentMethod = "cartao_debito"
	PaymentCreditCard PaymentMethod = "cartao_credito"
	PaymentPix        PaymentMethod = "pix"
)

// Label returns the display name used in reports and exports.
func (m PaymentMethod) Label() string {
	switch m {
	case PaymentCash:
		return "Dinheiro"
	case PaymentDebitCard:
		return "Cartão Débito"
	case PaymentCreditCard:
		return "Cartão Crédito"
	case PaymentPix:
		return "PIX"
	default:
		return string(m)
	}
}
