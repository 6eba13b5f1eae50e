package artifact

import (
	"fmt"
	"sort"
	"sync"
)

// InMemoryStore is a trivial in-process ArtifactStore implementation useful
// for tests, examples and dry runs. It keeps all artifacts in a map guarded by
// an RWMutex. Data is copied on save / retrieval to avoid accidental external
// mutation of internal buffers.
//
// Nothing survives process exit; use FileStore or the sqlite store when the
// report must persist.
type InMemoryStore struct {
	mu        sync.RWMutex
	artifacts map[string][]byte // name -> data
}

// NewInMemoryStore returns an empty in-memory artifact store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{artifacts: make(map[string][]byte)}
}

// Save stores (or overwrites) the artifact bytes for the given name.
// The input slice is copied before storage.
func (a *InMemoryStore) Save(name string, data []byte) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	cp := make([]byte, len(data))
	copy(cp, data)
	a.artifacts[name] = cp
	return nil
}

// Get returns a copy of the stored artifact bytes or ErrNotFound.
func (a *InMemoryStore) Get(name string) ([]byte, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	data, ok := a.artifacts[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	cp := make([]byte, len(data))
	copy(cp, data)
	return cp, nil
}

// List returns the stored artifact names in ascending order. The slice is a
// snapshot and safe for caller mutation.
func (a *InMemoryStore) List() ([]string, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	names := make([]string, 0, len(a.artifacts))
	for name := range a.artifacts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Delete removes the artifact if present or returns ErrNotFound.
func (a *InMemoryStore) Delete(name string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if _, ok := a.artifacts[name]; !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	delete(a.artifacts, name)
	return nil
}
