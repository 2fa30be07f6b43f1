package domain

import "errors"

var (
	// ErrNotFound indicates no catalog row matched the lookup.
	ErrNotFound = errors.New("not found")
)
