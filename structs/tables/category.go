package tables

import (
	"time"

	"github.com/google/uuid"
)

// Category is a free-form grouping of products. Deleting a category does not
// cascade to its products; they are left with a dangling category reference.
type Category struct {
	tableName       struct{}  `bun:"table:categories,alias:c"`
	Id              uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	Name            string    `bun:"name,notnull" json:"name"`
	Description     string    `bun:"description" json:"description,omitempty"`
	EstablishmentId uuid.UUID `bun:"establishment_id,notnull,type:uuid" json:"establishment_id"`
	CreatedAt       time.Time `bun:"created_at,notnull,default:now()" json:"created_at"`
}
