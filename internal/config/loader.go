package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):.
//  1. defaults (New(ctx))
//  2. file (YAML) if APNEA_CONFIG is set
//  3. env (prefix APNEA_)
func Load(ctx context.Context) (*Config, error) {
	// Start with defaults
	base := New(ctx)

	k := koanf.New(".")

	// Load from file if provided
	if path := os.Getenv("APNEA_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: APNEA_ADDR, APNEA_LOG_LEVEL, ...
	// Map env keys like APNEA_GAUGE_AXIS_MAX -> gauge_axis_max (flat keys).
	// Preserve underscores to match koanf tags on the struct.
	envProvider := env.Provider("APNEA_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "apnea_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	// Unmarshal into a copy
	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// validate enforces the invariants the classification engine relies on:
// a contiguous band table starting at 0 with an open-ended top band.
func (c *Config) validate() error {
	if c.Addr == "" {
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	}
	if len(c.Bands) == 0 {
		return fmt.Errorf("%w: bands must not be empty", ErrInvalidConfig)
	}
	if c.Bands[0].LowSeconds != 0 {
		return fmt.Errorf("%w: first band must start at 0", ErrInvalidConfig)
	}
	for i, b := range c.Bands {
		if b.Label == "" {
			return fmt.Errorf("%w: band %d has no label", ErrInvalidConfig, i)
		}
		last := i == len(c.Bands)-1
		if last {
			if b.HighSeconds > 0 {
				return fmt.Errorf("%w: last band %q must be open-ended (high_seconds <= 0)", ErrInvalidConfig, b.Label)
			}
			continue
		}
		if b.HighSeconds <= b.LowSeconds {
			return fmt.Errorf("%w: band %q has empty interval", ErrInvalidConfig, b.Label)
		}
		if b.HighSeconds != c.Bands[i+1].LowSeconds {
			return fmt.Errorf("%w: gap or overlap between %q and %q", ErrInvalidConfig, b.Label, c.Bands[i+1].Label)
		}
	}
	if c.CelebrateFrom < 0 || c.CelebrateFrom >= len(c.Bands) {
		return fmt.Errorf("%w: celebrate_from out of band range", ErrInvalidConfig)
	}
	if c.CeilingSeconds <= 0 {
		return fmt.Errorf("%w: ceiling_seconds must be positive", ErrInvalidConfig)
	}
	return nil
}
