package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/hupe1980/primereport/core"
	"github.com/hupe1980/primereport/logging"
)

// Store drivers understood by the CLI.
const (
	DriverFile   = "file"
	DriverSQLite = "sqlite"
	DriverMemory = "memory"
)

// Config holds all primereport CLI configuration.
type Config struct {
	// Range to scan
	Range core.Bounds `yaml:"range"`

	// Artifact name; for the file driver a path is split into Store.Dir + base name
	Artifact string `yaml:"artifact"`

	// Decode and compare the read-back artifact
	Verify bool `yaml:"verify"`

	// Backing store
	Store StoreConfig `yaml:"store"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// StoreConfig selects and configures the artifact store.
type StoreConfig struct {
	Driver string `yaml:"driver"` // file, sqlite, memory
	Dir    string `yaml:"dir"`    // file driver root
	DSN    string `yaml:"dsn"`    // sqlite database path
}

// LoggingConfig configures the structured logger.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Range:    core.NewBounds(1, 100),
		Artifact: "primes.txt",
		Verify:   true,
		Store: StoreConfig{
			Driver: DriverFile,
			Dir:    ".",
			DSN:    "primereport.db",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Return defaults if config file doesn't exist
			if err := cfg.applyEnvOverrides(); err != nil {
				return nil, err
			}
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Override with environment variables
	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// Validate checks the range, the artifact name and the enum fields.
func (c *Config) Validate() error {
	if err := c.Range.Validate(); err != nil {
		return err
	}
	if c.Artifact == "" {
		return fmt.Errorf("%w: artifact must be set", core.ErrInvalidArtifactName)
	}
	switch c.Store.Driver {
	case DriverFile, DriverMemory:
	case DriverSQLite:
		if c.Store.DSN == "" {
			return errors.New("store.dsn is required for the sqlite driver")
		}
	default:
		return fmt.Errorf("unknown store driver %q", c.Store.Driver)
	}
	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		return err
	}
	if c.Logging.Format != "text" && c.Logging.Format != "json" {
		return fmt.Errorf("unknown log format %q", c.Logging.Format)
	}
	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() error {
	if v, ok, err := envUint("PRIMEREPORT_START"); err != nil {
		return err
	} else if ok {
		c.Range.Start = v
	}
	if v, ok, err := envUint("PRIMEREPORT_END"); err != nil {
		return err
	} else if ok {
		c.Range.End = v
	}
	if v := os.Getenv("PRIMEREPORT_ARTIFACT"); v != "" {
		c.Artifact = v
	}
	if v := os.Getenv("PRIMEREPORT_STORE"); v != "" {
		c.Store.Driver = v
	}
	if v := os.Getenv("PRIMEREPORT_DIR"); v != "" {
		c.Store.Dir = v
	}
	if v := os.Getenv("PRIMEREPORT_DSN"); v != "" {
		c.Store.DSN = v
	}
	if v := os.Getenv("PRIMEREPORT_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("PRIMEREPORT_LOG_FORMAT"); v != "" {
		c.Logging.Format = v
	}
	return nil
}

// envUint reads a decimal uint64. An unset or empty variable reports ok=false.
func envUint(key string) (uint64, bool, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return 0, false, nil
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("failed to parse %s=%q: %w", key, raw, err)
	}
	return v, true, nil
}
