package model

import "errors"

var (
	ErrPlayerNotFound = errors.New("roster entry not found")
	ErrUploadFailed   = errors.New("headshot upload failed")
	ErrInvalidImage   = errors.New("invalid headshot image")
)
