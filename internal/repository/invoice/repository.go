package invoice

import (
	"context"

	"foodrepublic/internal/domain"
)

// CreateInvoiceInput carries a sold-invoice candidate submitted at checkout.
// Totals are integer minor currency units.
type CreateInvoiceInput struct {
	TableName     string
	Items         []domain.InvoiceLine
	TotalBill     int64
	TotalDiscount int64
}

// Repository persists sold invoices. Inserted invoices are never updated.
type Repository interface {
	Insert(ctx context.Context, in CreateInvoiceInput) (string, error)
	List(ctx context.Context) ([]domain.SoldInvoice, error)
	GetByID(ctx context.Context, id string) (*domain.SoldInvoice, error)
}
