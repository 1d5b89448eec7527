package member

import (
	"context"
	"strings"

	"foodrepublic/internal/domain"
	memberrepo "foodrepublic/internal/repository/member"
	"github.com/google/uuid"
)

type Service struct {
	repo memberrepo.Repository
}

func New(repo memberrepo.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]domain.Member, error) {
	return s.repo.List(ctx)
}

// Lookup resolves a membership by mobile number. Missing memberships
// surface as domain.ErrNotFound; the caller decides how to degrade.
func (s *Service) Lookup(ctx context.Context, mobile string) (*domain.Member, error) {
	mobile = strings.TrimSpace(mobile)
	if mobile == "" {
		return nil, domain.Validation("search mobile number is required")
	}
	return s.repo.FindByMobile(ctx, mobile)
}

func (s *Service) Create(ctx context.Context, name, mobile string, discountValue int64) (*domain.Member, error) {
	mobile = strings.TrimSpace(mobile)
	if mobile == "" {
		return nil, domain.Validation("mobile is required")
	}
	if discountValue < 0 || discountValue > 100 {
		return nil, domain.Validation("discountValue must be between 0 and 100")
	}
	return s.repo.Create(ctx, memberrepo.CreateMemberInput{
		Name:          strings.TrimSpace(name),
		Mobile:        mobile,
		DiscountValue: discountValue,
	})
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(strings.TrimSpace(id)); err != nil {
		return domain.ErrInvalidID
	}
	return s.repo.Delete(ctx, strings.TrimSpace(id))
}
