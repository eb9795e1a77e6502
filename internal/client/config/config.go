// Package config handles parsing of the client configuration file
// (sitesync.toml).
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Backend selects the durable log engine.
type Backend string

const (
	// BackendBolt stores the mutation log in a single bbolt file.
	BackendBolt Backend = "bolt"

	// BackendSQLite stores the mutation log in a SQLite database.
	BackendSQLite Backend = "sqlite"
)

// Config is the client configuration after defaults are applied.
type Config struct {
	ServerURL         string  `toml:"server_url"`
	DataDir           string  `toml:"data_dir"`
	Backend           Backend `toml:"backend"`
	LogLevel          string  `toml:"log_level"`
	SampleIntervalSec int     `toml:"sample_interval_sec"`
	StorageBudgetMB   int64   `toml:"storage_budget_mb"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		ServerURL:         "http://localhost:8080",
		DataDir:           defaultDataDir(),
		Backend:           BackendBolt,
		LogLevel:          "info",
		SampleIntervalSec: 30,
		StorageBudgetMB:   512,
	}
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".sitesync"
	}
	return filepath.Join(home, ".sitesync")
}

// Load reads the configuration file at path and merges it onto the
// defaults. A missing file is not an error: defaults are returned.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks field values after parsing.
func (c Config) Validate() error {
	switch c.Backend {
	case BackendBolt, BackendSQLite:
	default:
		return fmt.Errorf("unknown backend %q: expected %q or %q", c.Backend, BackendBolt, BackendSQLite)
	}
	if c.SampleIntervalSec <= 0 {
		return fmt.Errorf("sample_interval_sec must be positive, got %d", c.SampleIntervalSec)
	}
	if c.StorageBudgetMB <= 0 {
		return fmt.Errorf("storage_budget_mb must be positive, got %d", c.StorageBudgetMB)
	}
	return nil
}

// StorageBudget returns the local storage budget in bytes.
func (c Config) StorageBudget() int64 {
	return c.StorageBudgetMB << 20
}

// SampleInterval returns the storage sampling interval as a duration.
func (c Config) SampleInterval() time.Duration {
	return time.Duration(c.SampleIntervalSec) * time.Second
}

// DatabasePath returns the durable log location for the configured
// backend.
func (c Config) DatabasePath() string {
	switch c.Backend {
	case BackendSQLite:
		return filepath.Join(c.DataDir, "sitesync.sqlite")
	default:
		return filepath.Join(c.DataDir, "sitesync.db")
	}
}
