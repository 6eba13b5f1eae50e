package artifact

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

const tempPrefix = ".tmp-"

// FileStore keeps each artifact as a regular file inside a root directory.
//
// Save writes to a temporary file in the same directory, syncs and closes it,
// then renames it over the target, so a reader never observes a partially
// written artifact and a failed write leaves the previous content intact.
// Methods are safe for concurrent use within one process.
type FileStore struct {
	mu   sync.RWMutex
	dir  string
	perm fs.FileMode
}

// FileStoreOptions configures a FileStore.
type FileStoreOptions struct {
	// Perm is the permission applied to written artifacts (default 0644).
	Perm fs.FileMode
}

// NewFileStore returns a store rooted at dir. The directory is created on the
// first Save if it does not exist yet.
func NewFileStore(dir string, optFns ...func(o *FileStoreOptions)) *FileStore {
	opts := FileStoreOptions{Perm: 0o644}
	for _, fn := range optFns {
		fn(&opts)
	}
	if dir == "" {
		dir = "."
	}
	return &FileStore{dir: dir, perm: opts.Perm}
}

// Dir returns the root directory.
func (s *FileStore) Dir() string { return s.dir }

// Path returns the file path backing the named artifact.
func (s *FileStore) Path(name string) string { return filepath.Join(s.dir, name) }

// Save creates or truncates the named artifact with data.
func (s *FileStore) Save(name string, data []byte) (err error) {
	if err := ValidateName(name); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}
	tmp, err := os.CreateTemp(s.dir, tempPrefix+name+"-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("sync: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close: %w", err)
	}
	if err = os.Chmod(tmp.Name(), s.perm); err != nil {
		return fmt.Errorf("chmod: %w", err)
	}
	if err = os.Rename(tmp.Name(), s.Path(name)); err != nil {
		return fmt.Errorf("rename: %w", err)
	}
	return nil
}

// Get reads the named artifact or returns ErrNotFound.
func (s *FileStore) Get(name string) ([]byte, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, err := os.ReadFile(s.Path(name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return nil, err
	}
	return data, nil
}

// List returns the names of regular files in the root directory, sorted.
// In-flight temporary files are skipped. A missing directory lists as empty.
func (s *FileStore) List() ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []string{}, nil
		}
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.Type().IsRegular() || strings.HasPrefix(e.Name(), tempPrefix) {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}

// Delete removes the named artifact or returns ErrNotFound.
func (s *FileStore) Delete(name string) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.Remove(s.Path(name)); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return err
	}
	return nil
}
