package domain

import "time"

// InvoiceLine is a point-in-time copy of one cart line at sell time.
// Prices are integer minor currency units.
type InvoiceLine struct {
	ItemID    string `json:"_id"`
	ItemName  string `json:"item_name"`
	UnitPrice int64  `json:"item_price_per_unit"`
	Quantity  int64  `json:"item_quantity"`
	TableName string `json:"table_name"`
}

// SoldInvoice is the sale-of-record created at checkout. It is immutable
// once inserted; later catalog edits never alter it.
type SoldInvoice struct {
	ID            string        `json:"_id"`
	TableName     string        `json:"table_name"`
	Items         []InvoiceLine `json:"items"`
	TotalBill     int64         `json:"total_bill"`
	TotalDiscount int64         `json:"total_discount"`
	CreatedAt     time.Time     `json:"createdAt"`
}
