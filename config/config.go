// Package config loads and validates sweep configuration files.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/microsoft/QuantumEllipticCurves/shor"
)

// Config drives a full estimator run: a generic-curve sweep over a
// bit-width range, optionally followed by a fixed-modulus sweep over
// explicit curve sizes backed by Q# estimate tables.
type Config struct {
	LogLevel string `yaml:"log_level"`
	Sweep    Sweep  `yaml:"sweep"`
	Fixed    Fixed  `yaml:"fixed"`
}

// Sweep configures the generic-curve phase.
type Sweep struct {
	MinBits int `yaml:"min_bits"`
	MaxBits int `yaml:"max_bits"`
	// Workers bounds the parallel per-size computations; 0 means one
	// per CPU.
	Workers int    `yaml:"workers"`
	OutDir  string `yaml:"out_dir"`
}

// Fixed configures the fixed-modulus phase. The phase runs only when
// TableDir is set.
type Fixed struct {
	Sizes    []int  `yaml:"sizes"`
	TableDir string `yaml:"table_dir"`
}

// Default returns the configuration of the published runs: generic
// sweep over 10..521 and the NIST curve sizes for the fixed phase.
func Default() *Config {
	lo, hi := shor.DefaultSweepRange()
	return &Config{
		LogLevel: "info",
		Sweep: Sweep{
			MinBits: lo,
			MaxBits: hi,
			OutDir:  ".",
		},
		Fixed: Fixed{
			Sizes: shor.NISTSizes(),
		},
	}
}

// Load reads a YAML config file on top of the defaults and validates
// the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Parse unmarshals YAML on top of the defaults and validates.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks ranges and enumerations.
func (c *Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: invalid log_level %q (must be debug, info, warn or error)", c.LogLevel)
	}
	if c.Sweep.MinBits < 2 {
		return fmt.Errorf("config: sweep.min_bits must be at least 2, got %d", c.Sweep.MinBits)
	}
	if c.Sweep.MaxBits < c.Sweep.MinBits {
		return fmt.Errorf("config: sweep.max_bits %d below sweep.min_bits %d", c.Sweep.MaxBits, c.Sweep.MinBits)
	}
	if c.Sweep.Workers < 0 {
		return fmt.Errorf("config: sweep.workers cannot be negative, got %d", c.Sweep.Workers)
	}
	if c.Sweep.OutDir == "" {
		return fmt.Errorf("config: sweep.out_dir cannot be empty")
	}
	for _, size := range c.Fixed.Sizes {
		if size < 2 {
			return fmt.Errorf("config: fixed.sizes entry %d must be at least 2", size)
		}
	}
	return nil
}
