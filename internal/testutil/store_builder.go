package testutil

import (
	"errors"
	"sort"
	"sync"

	"github.com/hupe1980/primereport/core"
)

// ErrMissing is returned by FaultyStore.Get for names it never saved.
var ErrMissing = errors.New("testutil: artifact missing")

// StoreBuilder provides a fluent helper for constructing fault-injecting
// stores in tests.
// Example:
//
//	st := NewStoreBuilder().FailSave(io.ErrShortWrite).Build()
//
// Chain only the faults you need; the default store behaves like a plain
// in-memory store.
type StoreBuilder struct {
	inner   core.ArtifactStore
	saveErr error
	getErr  error
	corrupt func([]byte) []byte
}

// NewStoreBuilder creates a builder backed by a private in-memory map.
func NewStoreBuilder() *StoreBuilder { return &StoreBuilder{} }

// Inner delegates successful operations to s instead of the private map (chainable).
func (b *StoreBuilder) Inner(s core.ArtifactStore) *StoreBuilder { b.inner = s; return b }

// FailSave makes every Save return err without storing anything (chainable).
func (b *StoreBuilder) FailSave(err error) *StoreBuilder { b.saveErr = err; return b }

// FailGet makes every Get return err (chainable).
func (b *StoreBuilder) FailGet(err error) *StoreBuilder { b.getErr = err; return b }

// Corrupt rewrites bytes returned by Get (chainable).
func (b *StoreBuilder) Corrupt(fn func([]byte) []byte) *StoreBuilder { b.corrupt = fn; return b }

// Build constructs the FaultyStore.
func (b *StoreBuilder) Build() *FaultyStore {
	return &FaultyStore{
		inner:   b.inner,
		saveErr: b.saveErr,
		getErr:  b.getErr,
		corrupt: b.corrupt,
		data:    map[string][]byte{},
	}
}

// FaultyStore is a core.ArtifactStore that injects configured failures and
// records how often each operation ran.
type FaultyStore struct {
	mu      sync.Mutex
	inner   core.ArtifactStore
	saveErr error
	getErr  error
	corrupt func([]byte) []byte
	data    map[string][]byte

	Saves int
	Gets  int
}

// Save stores data unless a save fault is configured.
func (s *FaultyStore) Save(name string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Saves++
	if s.saveErr != nil {
		return s.saveErr
	}
	if s.inner != nil {
		return s.inner.Save(name, data)
	}
	s.data[name] = append([]byte(nil), data...)
	return nil
}

// Get returns stored data unless a get fault is configured.
func (s *FaultyStore) Get(name string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Gets++
	if s.getErr != nil {
		return nil, s.getErr
	}
	var (
		out []byte
		err error
	)
	if s.inner != nil {
		out, err = s.inner.Get(name)
		if err != nil {
			return nil, err
		}
	} else {
		d, ok := s.data[name]
		if !ok {
			return nil, ErrMissing
		}
		out = append([]byte(nil), d...)
	}
	if s.corrupt != nil {
		out = s.corrupt(out)
	}
	return out, nil
}

// List returns the stored names in ascending order.
func (s *FaultyStore) List() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inner != nil {
		return s.inner.List()
	}
	names := make([]string, 0, len(s.data))
	for n := range s.data {
		names = append(names, n)
	}
	sort.Strings(names)
	return names, nil
}

// Delete removes a stored artifact.
func (s *FaultyStore) Delete(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inner != nil {
		return s.inner.Delete(name)
	}
	if _, ok := s.data[name]; !ok {
		return ErrMissing
	}
	delete(s.data, name)
	return nil
}
