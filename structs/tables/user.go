package tables

import (
	"time"

	"github.com/google/uuid"
)

// User is an admin staff account. Customers never authenticate; the
// storefront and tracking pages are public.
type User struct {
	tableName       struct{}   `bun:"table:users,alias:u"`
	Id              uuid.UUID  `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	Email           string     `bun:"email,notnull,unique" json:"email"`
	Name            string     `bun:"name,notnull" json:"name"`
	PasswordHash    string     `bun:"password_hash,notnull" json:"-"`
	Role            string     `bun:"role,notnull,default:'staff'" json:"role"`
	EstablishmentId *uuid.UUID `bun:"establishment_id,type:uuid" json:"establishment_id,omitempty"`
	CreatedAt       time.Time  `bun:"created_at,notnull,default:now()" json:"created_at"`
}
