package menu

import (
	"context"

	"foodrepublic/internal/domain"
)

// CreateItemInput carries a new catalog entry. ItemName must already be
// normalized (domain.NormalizeItemName).
type CreateItemInput struct {
	Category  string
	ItemName  string
	ItemPrice int64
}

// Repository persists catalog items, one logical collection per category.
type Repository interface {
	ListByCategory(ctx context.Context, category string) ([]domain.MenuItem, error)
	Create(ctx context.Context, in CreateItemInput) (*domain.MenuItem, error)
	Delete(ctx context.Context, category, id string) error
}
