package repository

import (
	"context"

	"github.com/google/uuid"

	"waterpolo-backend/internal/domains/user/model"
)

// Repository defines data access for operator accounts.
type Repository interface {
	// Create inserts a new account.
	// Errors: model.ErrEmailAlreadyExists
	Create(ctx context.Context, user *model.User) (*model.User, error)

	// GetByID returns one account.
	// Errors: model.ErrUserNotFound
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)

	// GetByEmail returns one account by email.
	// Errors: model.ErrUserNotFound
	GetByEmail(ctx context.Context, email string) (*model.User, error)
}
