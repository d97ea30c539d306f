package arraylist

import "errors"

var (
	// ErrAllocation is returned when a buffer cannot be allocated within the configured limits.
	ErrAllocation = errors.New("allocation failed")

	// ErrOutOfBounds is returned when an index lies outside the occupied range [0, Len()).
	ErrOutOfBounds = errors.New("index out of bounds")

	// ErrInvalidCapacity is returned when a list is created with a capacity below 1.
	ErrInvalidCapacity = errors.New("initial capacity must be at least 1")

	// ErrDestroyed is returned by every operation on a list after Destroy.
	ErrDestroyed = errors.New("list destroyed")

	// ErrUnusable is returned by operations on a list whose creation failed or that was never initialized.
	ErrUnusable = errors.New("list not initialized")
)
