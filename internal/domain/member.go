package domain

import "time"

// Member is a loyalty membership looked up by mobile number at checkout.
// DiscountValue is a percentage in [0, 100].
type Member struct {
	ID            string    `json:"_id"`
	Name          string    `json:"name,omitempty"`
	Mobile        string    `json:"mobile"`
	DiscountValue int64     `json:"discountValue"`
	CreatedAt     time.Time `json:"createdAt"`
}
