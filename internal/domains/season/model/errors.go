package model

import "errors"

var (
	ErrSeasonNotFound  = errors.New("season not found")
	ErrNoCurrentSeason = errors.New("no season is flagged current")
)
