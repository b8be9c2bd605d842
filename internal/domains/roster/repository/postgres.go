package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"waterpolo-backend/internal/domains/roster/model"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

const playerColumns = `
    id, name, number, position, graduation_year, hometown, major,
    headshot_url, is_staff, roster_year_id, created_at, updated_at
`

func scanPlayer(row pgx.Row) (*model.Player, error) {
	var p model.Player
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Number,
		&p.Position,
		&p.GraduationYear,
		&p.Hometown,
		&p.Major,
		&p.HeadshotURL,
		&p.IsStaff,
		&p.RosterYearID,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *postgresRepository) ListBySeason(ctx context.Context, seasonID uuid.UUID) ([]*model.Player, error) {
	query := fmt.Sprintf(`
        SELECT %s
        FROM roster
        WHERE roster_year_id = $1
        ORDER BY number ASC, name ASC
    `, playerColumns)

	rows, err := r.pool.Query(ctx, query, seasonID)
	if err != nil {
		return nil, fmt.Errorf("failed to list roster: %w", err)
	}
	defer rows.Close()

	players := make([]*model.Player, 0)
	for rows.Next() {
		p, err := scanPlayer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan roster entry: %w", err)
		}
		players = append(players, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate roster: %w", err)
	}

	return players, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Player, error) {
	query := fmt.Sprintf(`
        SELECT %s
        FROM roster
        WHERE id = $1
    `, playerColumns)

	p, err := scanPlayer(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to get roster entry: %w", err)
	}

	return p, nil
}

func (r *postgresRepository) Create(ctx context.Context, p *model.Player) (*model.Player, error) {
	query := fmt.Sprintf(`
        INSERT INTO roster (
            id, name, number, position, graduation_year, hometown, major,
            headshot_url, is_staff, roster_year_id
        )
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        RETURNING %s
    `, playerColumns)

	created, err := scanPlayer(r.pool.QueryRow(
		ctx,
		query,
		p.ID,
		p.Name,
		p.Number,
		p.Position,
		p.GraduationYear,
		p.Hometown,
		p.Major,
		p.HeadshotURL,
		p.IsStaff,
		p.RosterYearID,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create roster entry: %w", err)
	}

	return created, nil
}

func (r *postgresRepository) Update(ctx context.Context, p *model.Player) (*model.Player, error) {
	query := fmt.Sprintf(`
        UPDATE roster
        SET name = $2,
            number = $3,
            position = $4,
            graduation_year = $5,
            hometown = $6,
            major = $7,
            headshot_url = $8,
            is_staff = $9,
            roster_year_id = $10,
            updated_at = NOW()
        WHERE id = $1
        RETURNING %s
    `, playerColumns)

	updated, err := scanPlayer(r.pool.QueryRow(
		ctx,
		query,
		p.ID,
		p.Name,
		p.Number,
		p.Position,
		p.GraduationYear,
		p.Hometown,
		p.Major,
		p.HeadshotURL,
		p.IsStaff,
		p.RosterYearID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to update roster entry: %w", err)
	}

	return updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM roster WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete roster entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrPlayerNotFound
	}
	return nil
}

func (r *postgresRepository) ListHeadshotURLs(ctx context.Context) ([]string, error) {
	rows, err := r.pool.Query(ctx, `SELECT headshot_url FROM roster WHERE headshot_url <> ''`)
	if err != nil {
		return nil, fmt.Errorf("failed to list headshot urls: %w", err)
	}
	defer rows.Close()

	urls := make([]string, 0)
	for rows.Next() {
		var url string
		if err := rows.Scan(&url); err != nil {
			return nil, fmt.Errorf("failed to scan headshot url: %w", err)
		}
		urls = append(urls, url)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate headshot urls: %w", err)
	}

	return urls, nil
}
