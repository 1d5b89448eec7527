package domain

import "time"

// Table is a dining table orders are assigned to. Names are auto-assigned
// sequentially ("table-1", "table-2", ...) and unique.
type Table struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}
