package core

import "github.com/google/uuid"

// NewID generates a new unique identifier for runs.
//
// Returns a string representation of a new random UUID.
func NewID() string { return uuid.NewString() }
