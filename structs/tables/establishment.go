package tables

import (
	"time"

	"github.com/google/uuid"
)

// Establishment is the single business entity owning all catalog and order
// data in a deployment. Looked up via a "first row" query.
type Establishment struct {
	tableName  struct{}  `bun:"table:establishments,alias:e"`
	Id         uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	Name       string    `bun:"name,notnull" json:"name"`
	LogoURL    string    `bun:"logo_url" json:"logo_url,omitempty"`
	Phone      string    `bun:"phone,notnull" json:"phone"`
	Address    string    `bun:"address,notnull" json:"address"`
	ThemeColor string    `bun:"theme_color,notnull,default:'#f97316'" json:"theme_color"`
	CreatedAt  time.Time `bun:"created_at,notnull,default:now()" json:"created_at"`
	UpdatedAt  time.Time `bun:"updated_at,notnull,default:now()" json:"updated_at"`
}
