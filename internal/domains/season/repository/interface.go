package repository

import (
	"context"

	"github.com/google/uuid"

	"waterpolo-backend/internal/domains/season/model"
)

// Repository defines data access for seasons. The table is managed outside
// this application, so there is no write path.
type Repository interface {
	// List returns all seasons ordered by year descending (newest first).
	List(ctx context.Context) ([]model.Season, error)

	// GetByID returns one season.
	// Errors: model.ErrSeasonNotFound
	GetByID(ctx context.Context, id uuid.UUID) (*model.Season, error)

	// GetCurrent returns the season flagged current.
	// Errors: model.ErrNoCurrentSeason
	GetCurrent(ctx context.Context) (*model.Season, error)
}
