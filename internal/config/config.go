// Package config provides configuration for the movegen commands.
package config

import (
	"runtime"

	"github.com/lgbarn/movegen-go/internal/errors"
)

// Config holds the settings shared by the explorer and server commands.
type Config struct {
	// Depth is the maximum exploration depth in half-moves.
	Depth int

	// Workers is the number of goroutines expanding positions.
	Workers int

	// BatchSize is the number of positions inserted per transaction.
	BatchSize int

	// DBPath is the SQLite database file for the explorer.
	DBPath string

	// MaxDBBytes caps the database size; 0 means unlimited.
	MaxDBBytes int64

	// Addr is the listen address of the HTTP server.
	Addr string
}

// NewConfig returns a configuration with default values.
func NewConfig() *Config {
	return &Config{
		Depth:     4,
		Workers:   runtime.NumCPU(),
		BatchSize: 100,
		DBPath:    "./positions.db",
		Addr:      ":8080",
	}
}

// Validate checks the configuration for values no command can run with.
func (c *Config) Validate() error {
	if c.Depth < 0 {
		return errors.Wrapf(errors.ErrInvalidConfig, "depth %d", c.Depth)
	}
	if c.Workers < 1 {
		return errors.Wrapf(errors.ErrInvalidConfig, "workers %d", c.Workers)
	}
	if c.BatchSize < 1 {
		return errors.Wrapf(errors.ErrInvalidConfig, "batch size %d", c.BatchSize)
	}
	if c.MaxDBBytes < 0 {
		return errors.Wrapf(errors.ErrInvalidConfig, "max database size %d", c.MaxDBBytes)
	}
	return nil
}
