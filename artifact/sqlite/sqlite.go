// Package sqlite provides a core.ArtifactStore backed by a SQLite database
// using the pure-Go modernc.org/sqlite driver, so builds stay cgo-free.
//
// All artifacts live in one table keyed by name. Save is an upsert executed
// in a single statement, so a reader sees either the previous content or the
// new content, never a partial write.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/hupe1980/primereport/artifact"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS artifacts (
	name       TEXT PRIMARY KEY,
	content    BLOB NOT NULL,
	updated_at INTEGER NOT NULL
)`

// Store persists artifacts in a SQLite table. It is safe for concurrent use.
type Store struct {
	db   *sql.DB
	path string
}

// New opens (creating if needed) the database at path and ensures the schema.
// Use ":memory:" for a throwaway database.
func New(path string) (*Store, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// one connection keeps ":memory:" databases shared and serializes writers
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set busy_timeout: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return &Store{db: db, path: path}, nil
}

// Path returns the database location the store was opened with.
func (s *Store) Path() string { return s.path }

// Close releases the database handle.
func (s *Store) Close() error { return s.db.Close() }

// Save creates or overwrites the named artifact.
func (s *Store) Save(name string, data []byte) error {
	if err := artifact.ValidateName(name); err != nil {
		return err
	}
	if data == nil {
		// content is NOT NULL; an empty report is a zero-length blob
		data = []byte{}
	}
	_, err := s.db.Exec(
		`INSERT INTO artifacts (name, content, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET content = excluded.content, updated_at = excluded.updated_at`,
		name, data, time.Now().UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("save %s: %w", name, err)
	}
	return nil
}

// Get returns the stored bytes or artifact.ErrNotFound.
func (s *Store) Get(name string) ([]byte, error) {
	var data []byte
	err := s.db.QueryRow(`SELECT content FROM artifacts WHERE name = ?`, name).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", artifact.ErrNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", name, err)
	}
	if data == nil {
		data = []byte{}
	}
	return data, nil
}

// List returns all artifact names in ascending order.
func (s *Store) List() ([]string, error) {
	rows, err := s.db.Query(`SELECT name FROM artifacts ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list artifacts: %w", err)
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan artifact name: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// Delete removes the named artifact or returns artifact.ErrNotFound.
func (s *Store) Delete(name string) error {
	res, err := s.db.Exec(`DELETE FROM artifacts WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("delete %s: %w", name, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete %s: %w", name, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", artifact.ErrNotFound, name)
	}
	return nil
}
