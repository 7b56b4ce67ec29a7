package account

import "errors"

var (
	// ErrNotFound is returned when no account matches the lookup key.
	ErrNotFound = errors.New("account not found")

	// ErrEmailTaken is returned when the requested email is already registered.
	ErrEmailTaken = errors.New("email already registered")
)
