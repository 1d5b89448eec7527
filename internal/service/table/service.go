package table

import (
	"context"
	"strings"

	"foodrepublic/internal/domain"
	tablerepo "foodrepublic/internal/repository/table"
)

type Service struct {
	repo tablerepo.Repository
}

func New(repo tablerepo.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]domain.Table, error) {
	return s.repo.List(ctx)
}

func (s *Service) Create(ctx context.Context) (*domain.Table, error) {
	return s.repo.Create(ctx)
}

func (s *Service) Delete(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Validation("table name is required")
	}
	return s.repo.DeleteByName(ctx, name)
}
