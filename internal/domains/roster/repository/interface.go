package repository

import (
	"context"

	"github.com/google/uuid"

	"waterpolo-backend/internal/domains/roster/model"
)

// Repository defines data access for roster entries.
type Repository interface {
	// ListBySeason returns every entry for one season ordered by cap number.
	ListBySeason(ctx context.Context, seasonID uuid.UUID) ([]*model.Player, error)

	// GetByID returns one entry.
	// Errors: model.ErrPlayerNotFound
	GetByID(ctx context.Context, id uuid.UUID) (*model.Player, error)

	// Create inserts a new entry.
	Create(ctx context.Context, player *model.Player) (*model.Player, error)

	// Update replaces an entry's editable fields.
	// Errors: model.ErrPlayerNotFound
	Update(ctx context.Context, player *model.Player) (*model.Player, error)

	// Delete removes an entry.
	// Errors: model.ErrPlayerNotFound
	Delete(ctx context.Context, id uuid.UUID) error

	// ListHeadshotURLs returns every non-empty headshot URL across all
	// seasons. Used by the orphan sweep.
	ListHeadshotURLs(ctx context.Context) ([]string, error)
}
