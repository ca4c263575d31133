package structs

import "time"

// OrderEvent is pushed over the realtime channel whenever an order row
// changes. Subscribers re-fetch on receipt; the event carries no row data
// beyond what is needed to decide relevance.
type OrderEvent struct {
	Type      string    `json:"type"` // "insert" or "update"
	OrderId   string    `json:"order_id"`
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}
