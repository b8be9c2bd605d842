package service

import (
	"context"
	"fmt"

	"waterpolo-backend/internal/domains/recruit/model"
	"waterpolo-backend/internal/domains/recruit/repository"
)

// Service accepts intake-form submissions.
type Service interface {
	// Submit validates and stores one submission. No dedupe: the team
	// follows up manually and duplicate interest is harmless.
	Submit(ctx context.Context, req *model.SubmitRecruitRequest) (*model.Recruit, error)
}

type recruitService struct {
	repo repository.Repository
}

func NewRecruitService(repo repository.Repository) Service {
	return &recruitService{repo: repo}
}

func (s *recruitService) Submit(ctx context.Context, req *model.SubmitRecruitRequest) (*model.Recruit, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, req.ToEntity())
	if err != nil {
		return nil, fmt.Errorf("submit recruit: %w", err)
	}

	return created, nil
}
