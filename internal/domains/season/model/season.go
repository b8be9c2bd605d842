package model

import (
	"time"

	"github.com/google/uuid"
)

// Season is one roster year (e.g. "2024-25"). Seasons are seeded by the
// league admin outside this application and read-only here.
type Season struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Year      string    `json:"year" db:"year"`
	Current   bool      `json:"current" db:"current"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type SeasonResponse struct {
	ID      uuid.UUID `json:"id"`
	Year    string    `json:"year"`
	Current bool      `json:"current"`
}

// ToResponse converts Season to SeasonResponse
func (s *Season) ToResponse() *SeasonResponse {
	return &SeasonResponse{
		ID:      s.ID,
		Year:    s.Year,
		Current: s.Current,
	}
}
