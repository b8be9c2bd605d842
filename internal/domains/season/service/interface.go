package service

import (
	"context"

	"github.com/google/uuid"

	"waterpolo-backend/internal/domains/season/model"
)

// Service exposes season reads for the landing page and roster selectors.
type Service interface {
	// List returns all seasons, newest first.
	List(ctx context.Context) ([]model.Season, error)

	// GetByID returns one season.
	// Errors: model.ErrSeasonNotFound
	GetByID(ctx context.Context, id uuid.UUID) (*model.Season, error)

	// GetCurrent returns the season flagged current, used as the default
	// selection when a page loads.
	// Errors: model.ErrNoCurrentSeason
	GetCurrent(ctx context.Context) (*model.Season, error)
}
