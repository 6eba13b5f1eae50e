package main

import (
	"fmt"
	"path/filepath"

	"github.com/hupe1980/primereport/artifact"
	"github.com/hupe1980/primereport/artifact/sqlite"
	"github.com/hupe1980/primereport/core"
	"github.com/hupe1980/primereport/internal/config"
)

// openStore builds the configured store and resolves the artifact name for
// it. For the file driver an artifact given as a path overrides Store.Dir.
// The returned close function is always non-nil.
func openStore(cfg *config.Config) (core.ArtifactStore, string, func() error, error) {
	noop := func() error { return nil }
	name := cfg.Artifact

	switch cfg.Store.Driver {
	case config.DriverFile:
		dir := cfg.Store.Dir
		if d := filepath.Dir(name); d != "." {
			dir = d
			name = filepath.Base(name)
		}
		return artifact.NewFileStore(dir), name, noop, nil
	case config.DriverSQLite:
		st, err := sqlite.New(cfg.Store.DSN)
		if err != nil {
			return nil, "", noop, err
		}
		return st, name, st.Close, nil
	case config.DriverMemory:
		return artifact.NewInMemoryStore(), name, noop, nil
	default:
		return nil, "", noop, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}
