package menu

import (
	"context"
	"strings"

	"foodrepublic/internal/domain"
	menurepo "foodrepublic/internal/repository/menu"
	"github.com/google/uuid"
)

type Service struct {
	repo menurepo.Repository
}

func New(repo menurepo.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, category string) ([]domain.MenuItem, error) {
	if !domain.ValidCategory(category) {
		return nil, domain.Validation("unknown menu category")
	}
	return s.repo.ListByCategory(ctx, category)
}

// Create normalizes the item name before insert so duplicates collapse to
// the same stored key regardless of casing and spacing.
func (s *Service) Create(ctx context.Context, category, itemName string, itemPrice int64) (*domain.MenuItem, error) {
	if !domain.ValidCategory(category) {
		return nil, domain.Validation("unknown menu category")
	}
	name := domain.NormalizeItemName(itemName)
	if name == "" {
		return nil, domain.Validation("item_name is required")
	}
	if itemPrice < 0 {
		return nil, domain.Validation("item_price must be non-negative")
	}
	return s.repo.Create(ctx, menurepo.CreateItemInput{
		Category:  category,
		ItemName:  name,
		ItemPrice: itemPrice,
	})
}

func (s *Service) Delete(ctx context.Context, category, id string) error {
	if !domain.ValidCategory(category) {
		return domain.Validation("unknown menu category")
	}
	if _, err := uuid.Parse(strings.TrimSpace(id)); err != nil {
		return domain.ErrInvalidID
	}
	return s.repo.Delete(ctx, category, strings.TrimSpace(id))
}
