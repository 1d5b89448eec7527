package invoice

import (
	"context"
	"strings"

	"foodrepublic/internal/domain"
	invoicerepo "foodrepublic/internal/repository/invoice"
	"github.com/google/uuid"
)

type Service struct {
	repo invoicerepo.Repository
}

func New(repo invoicerepo.Repository) *Service {
	return &Service{repo: repo}
}

// Create appends a sold invoice after trivial pre-checks. The store does
// not recompute line arithmetic; the submitting cart engine owns that.
func (s *Service) Create(ctx context.Context, in invoicerepo.CreateInvoiceInput) (string, error) {
	if strings.TrimSpace(in.TableName) == "" {
		return "", domain.Validation("table_name is required")
	}
	if len(in.Items) == 0 {
		return "", domain.Validation("items must not be empty")
	}
	for _, line := range in.Items {
		if strings.TrimSpace(line.ItemName) == "" {
			return "", domain.Validation("every item needs an item_name")
		}
		if line.Quantity <= 0 {
			return "", domain.Validation("item_quantity must be positive")
		}
		if line.UnitPrice < 0 {
			return "", domain.Validation("item_price_per_unit must be non-negative")
		}
	}
	if in.TotalBill < 0 || in.TotalDiscount < 0 {
		return "", domain.Validation("totals must be non-negative")
	}
	if in.TotalDiscount > in.TotalBill {
		return "", domain.Validation("total_discount cannot exceed total_bill")
	}
	return s.repo.Insert(ctx, in)
}

func (s *Service) List(ctx context.Context) ([]domain.SoldInvoice, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (*domain.SoldInvoice, error) {
	if _, err := uuid.Parse(strings.TrimSpace(id)); err != nil {
		return nil, domain.ErrInvalidID
	}
	return s.repo.GetByID(ctx, strings.TrimSpace(id))
}
