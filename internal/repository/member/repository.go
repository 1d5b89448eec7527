package member

import (
	"context"

	"foodrepublic/internal/domain"
)

// CreateMemberInput carries a new loyalty membership.
type CreateMemberInput struct {
	Name          string
	Mobile        string
	DiscountValue int64
}

// Repository persists loyalty members.
type Repository interface {
	List(ctx context.Context) ([]domain.Member, error)
	FindByMobile(ctx context.Context, mobile string) (*domain.Member, error)
	Create(ctx context.Context, in CreateMemberInput) (*domain.Member, error)
	Delete(ctx context.Context, id string) error
}
