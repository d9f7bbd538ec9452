package domain

import "errors"

var (
	// Day errors
	ErrInvalidDayKey = errors.New("invalid day key, want YYYY-MM-DD")
	ErrDayNotFound   = errors.New("day ledger not found")

	// Authentication errors
	ErrUnauthorized = errors.New("unauthorized")
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
)
