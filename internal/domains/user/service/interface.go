package service

import (
	"context"

	"github.com/google/uuid"

	"waterpolo-backend/internal/domains/user/model"
)

// Service handles account registration and session issuance.
type Service interface {
	// Register creates an account with a hashed password. New accounts are
	// never admins.
	// Errors: validation.Errors, model.ErrEmailAlreadyExists
	Register(ctx context.Context, req *model.RegisterRequest) (*model.User, error)

	// Login verifies credentials and issues a signed token.
	// Errors: validation.Errors, model.ErrInvalidCredentials
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)

	// GetByID loads an account for session introspection.
	// Errors: model.ErrUserNotFound
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)
}
