package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"waterpolo-backend/internal/domains/season/model"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a season repository backed by pgxpool.
func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) List(ctx context.Context) ([]model.Season, error) {
	query := `
        SELECT id, year, current, created_at
        FROM roster_years
        ORDER BY year DESC
    `

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query seasons: %w", err)
	}
	defer rows.Close()

	var seasons []model.Season
	for rows.Next() {
		var s model.Season
		if err := rows.Scan(&s.ID, &s.Year, &s.Current, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan season: %w", err)
		}
		seasons = append(seasons, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating seasons: %w", err)
	}

	return seasons, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Season, error) {
	query := `
        SELECT id, year, current, created_at
        FROM roster_years
        WHERE id = $1
    `

	var s model.Season
	err := r.pool.QueryRow(ctx, query, id).Scan(&s.ID, &s.Year, &s.Current, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrSeasonNotFound
		}
		return nil, fmt.Errorf("failed to get season by id: %w", err)
	}

	return &s, nil
}

func (r *postgresRepository) GetCurrent(ctx context.Context) (*model.Season, error) {
	// At most one season should be current; LIMIT 1 guards against seed
	// mistakes rather than enforcing the invariant.
	query := `
        SELECT id, year, current, created_at
        FROM roster_years
        WHERE current = TRUE
        ORDER BY year DESC
        LIMIT 1
    `

	var s model.Season
	err := r.pool.QueryRow(ctx, query).Scan(&s.ID, &s.Year, &s.Current, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrNoCurrentSeason
		}
		return nil, fmt.Errorf("failed to get current season: %w", err)
	}

	return &s, nil
}
