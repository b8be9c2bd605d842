package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"waterpolo-backend/internal/domains/recruit/model"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Create(ctx context.Context, rec *model.Recruit) (*model.Recruit, error) {
	query := `
        INSERT INTO recruits (name, email, phone_number, experience_level, year, about_response)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, name, email, phone_number, experience_level, year, about_response, created_at
    `

	var created model.Recruit
	err := r.pool.QueryRow(
		ctx,
		query,
		rec.Name,
		rec.Email,
		rec.PhoneNumber,
		rec.ExperienceLevel,
		rec.Year,
		rec.AboutResponse,
	).Scan(
		&created.ID,
		&created.Name,
		&created.Email,
		&created.PhoneNumber,
		&created.ExperienceLevel,
		&created.Year,
		&created.AboutResponse,
		&created.CreatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create recruit: %w", err)
	}

	return &created, nil
}
