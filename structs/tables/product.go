package tables

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a catalog entry. Active gates storefront visibility; stock is
// only checked client-of-checkout side, never decremented by the server.
type Product struct {
	tableName       struct{}        `bun:"table:products,alias:p"`
	Id              uuid.UUID       `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	Name            string          `bun:"name,notnull" json:"name"`
	Description     string          `bun:"description" json:"description,omitempty"`
	Price           decimal.Decimal `bun:"price,notnull,type:numeric(10,2)" json:"price"`
	Cost            decimal.Decimal `bun:"cost,type:numeric(10,2)" json:"cost"`
	Stock           int             `bun:"stock,notnull,default:0" json:"stock"`
	ImageURL        string          `bun:"image_url" json:"image_url,omitempty"`
	CategoryId      uuid.UUID       `bun:"category_id,notnull,type:uuid" json:"category_id"`
	EstablishmentId uuid.UUID       `bun:"establishment_id,notnull,type:uuid" json:"establishment_id"`
	Active          bool            `bun:"active,notnull,default:true" json:"active"`
	CreatedAt       time.Time       `bun:"created_at,notnull,default:now()" json:"created_at"`
	UpdatedAt       time.Time       `bun:"updated_at,notnull,default:now()" json:"updated_at"`
}
