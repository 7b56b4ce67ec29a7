package habit

import "errors"

var (
	// ErrNotFound is returned when no habit matches the lookup for the
	// requesting owner.
	ErrNotFound = errors.New("habit not found")

	// ErrCompletionNotFound is returned when no completion record exists
	// for the habit and date.
	ErrCompletionNotFound = errors.New("completion not found")

	// ErrNothingToUpdate is returned for patches with no fields set.
	ErrNothingToUpdate = errors.New("no fields to update")
)
