package driver

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config controls one CEGAR search run: how far the invariant's state
// count is allowed to escalate, and how verbosely progress is logged.
type Config struct {
	MaxStates int
	LogLevel  string
}

// Option configures a Config.
type Option func(*Config)

// WithMaxStates overrides the default state-count ceiling k_max.
func WithMaxStates(n int) Option {
	return func(c *Config) { c.MaxStates = n }
}

// WithLogLevel overrides the default gologger level name ("info",
// "verbose", "debug", ...).
func WithLogLevel(level string) Option {
	return func(c *Config) { c.LogLevel = level }
}

// NewConfig returns a Config with sane defaults, then applies opts in
// order.
func NewConfig(opts ...Option) *Config {
	c := &Config{MaxStates: 8, LogLevel: "info"}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// fileConfig is the on-disk shape LoadConfig decodes, kept separate
// from Config so the TOML schema can evolve without touching the type
// the rest of the package works with.
type fileConfig struct {
	MaxStates int    `toml:"max_states"`
	LogLevel  string `toml:"log_level"`
}

// LoadConfig reads a TOML file and returns a Config seeded from it,
// layered over NewConfig's defaults for any field the file omits.
func LoadConfig(path string, opts ...Option) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("driver: LoadConfig: %w", err)
	}
	var fc fileConfig
	if err := toml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("driver: LoadConfig: %w", err)
	}

	c := NewConfig(opts...)
	if fc.MaxStates > 0 {
		c.MaxStates = fc.MaxStates
	}
	if fc.LogLevel != "" {
		c.LogLevel = fc.LogLevel
	}
	return c, nil
}
