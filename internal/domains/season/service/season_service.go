package service

import (
	"context"

	"github.com/google/uuid"

	"waterpolo-backend/internal/domains/season/model"
	"waterpolo-backend/internal/domains/season/repository"
)

type seasonService struct {
	repo repository.Repository
}

func NewSeasonService(repo repository.Repository) Service {
	return &seasonService{repo: repo}
}

func (s *seasonService) List(ctx context.Context) ([]model.Season, error) {
	return s.repo.List(ctx)
}

func (s *seasonService) GetByID(ctx context.Context, id uuid.UUID) (*model.Season, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *seasonService) GetCurrent(ctx context.Context) (*model.Season, error) {
	return s.repo.GetCurrent(ctx)
}
