package repository

import (
	"context"

	"waterpolo-backend/internal/domains/recruit/model"
)

// Repository persists intake submissions. Insert-only.
type Repository interface {
	Create(ctx context.Context, recruit *model.Recruit) (*model.Recruit, error)
}
