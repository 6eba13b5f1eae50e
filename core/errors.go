package core

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidBounds is returned when a range has Start > End.
	ErrInvalidBounds = errors.New("invalid bounds")

	// ErrInvalidArtifactName is returned when a run is asked to write an
	// artifact without a name.
	ErrInvalidArtifactName = errors.New("invalid artifact name")

	// ErrArtifactMismatch is returned when the read-back artifact does not
	// decode to the sequence that was written.
	ErrArtifactMismatch = errors.New("artifact content mismatch")
)

// StorageWriteError reports that an artifact could not be created or fully
// written. A partially written artifact must not be considered valid.
type StorageWriteError struct {
	Artifact string
	Err      error
}

func (e *StorageWriteError) Error() string {
	return fmt.Sprintf("write artifact %q: %v", e.Artifact, e.Err)
}

// Unwrap returns the underlying cause.
func (e *StorageWriteError) Unwrap() error { return e.Err }

// StorageReadError reports that an artifact could not be reopened or read
// after it was written.
type StorageReadError struct {
	Artifact string
	Err      error
}

func (e *StorageReadError) Error() string {
	return fmt.Sprintf("read artifact %q: %v", e.Artifact, e.Err)
}

// Unwrap returns the underlying cause.
func (e *StorageReadError) Unwrap() error { return e.Err }
