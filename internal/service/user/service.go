package user

import (
	"context"
	"strings"

	"foodrepublic/internal/domain"
	userrepo "foodrepublic/internal/repository/user"
	"github.com/google/uuid"
)

type Service struct {
	repo userrepo.Repository
}

func New(repo userrepo.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]domain.User, error) {
	return s.repo.List(ctx)
}

func (s *Service) Create(ctx context.Context, name, email, role string) (*domain.User, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	if name == "" {
		return nil, domain.Validation("name is required")
	}
	if email == "" || !strings.Contains(email, "@") {
		return nil, domain.Validation("a valid email is required")
	}
	return s.repo.Create(ctx, userrepo.CreateUserInput{
		Name:  name,
		Email: email,
		Role:  strings.TrimSpace(role),
	})
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(strings.TrimSpace(id)); err != nil {
		return domain.ErrInvalidID
	}
	return s.repo.Delete(ctx, strings.TrimSpace(id))
}
