package artifact

import "errors"

var (
	// ErrNotFound is returned when no artifact with the given name exists in
	// the underlying store.
	ErrNotFound = errors.New("artifact not found")

	// ErrInvalidName is returned for names that are empty or would escape the
	// store (path separators, "." or "..").
	ErrInvalidName = errors.New("invalid artifact name")
)
