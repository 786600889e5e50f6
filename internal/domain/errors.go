package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput marks client-supplied input that fails validation
	// before any store access happens.
	ErrInvalidInput = errors.New("invalid input")
)
