package config

import (
	"testing"

	"github.com/lgbarn/movegen-go/internal/errors"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg := NewConfig()

	if cfg.Depth != 4 {
		t.Errorf("Depth = %d, want 4", cfg.Depth)
	}
	if cfg.Workers < 1 {
		t.Errorf("Workers = %d, want >= 1", cfg.Workers)
	}
	if cfg.BatchSize != 100 {
		t.Errorf("BatchSize = %d, want 100", cfg.BatchSize)
	}
	if cfg.DBPath == "" {
		t.Error("DBPath is empty")
	}
	if cfg.Addr != ":8080" {
		t.Errorf("Addr = %q, want :8080", cfg.Addr)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config fails validation: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		wantOK bool
	}{
		{"defaults", func(*Config) {}, true},
		{"zero depth", func(c *Config) { c.Depth = 0 }, true},
		{"negative depth", func(c *Config) { c.Depth = -1 }, false},
		{"zero workers", func(c *Config) { c.Workers = 0 }, false},
		{"zero batch", func(c *Config) { c.BatchSize = 0 }, false},
		{"negative size cap", func(c *Config) { c.MaxDBBytes = -1 }, false},
		{"explicit size cap", func(c *Config) { c.MaxDBBytes = 1 << 20 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantOK {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			if !errors.Is(err, errors.ErrInvalidConfig) {
				t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
			}
		})
	}
}
