package core

// ArtifactStore defines the interface for report artifact persistence.
// Implementations should be thread-safe. Save creates or overwrites the named
// artifact; Get returns the stored bytes exactly as saved.
type ArtifactStore interface {
	Save(name string, data []byte) error
	Get(name string) ([]byte, error)
	List() ([]string, error)
	Delete(name string) error
}
