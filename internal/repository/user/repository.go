package user

import (
	"context"

	"foodrepublic/internal/domain"
)

// CreateUserInput carries a new staff account.
type CreateUserInput struct {
	Name  string
	Email string
	Role  string
}

// Repository persists staff users.
type Repository interface {
	List(ctx context.Context) ([]domain.User, error)
	Create(ctx context.Context, in CreateUserInput) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}
