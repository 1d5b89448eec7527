package table

import (
	"context"

	"foodrepublic/internal/domain"
)

// Repository persists dining tables.
type Repository interface {
	List(ctx context.Context) ([]domain.Table, error)
	Create(ctx context.Context) (*domain.Table, error)
	DeleteByName(ctx context.Context, name string) error
}
