package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds trace settings for embedding hosts and the demo command
type Config struct {
	Filter string `toml:"filter"`
	Sink   string `toml:"sink"`
	Color  bool   `toml:"color"`
}

// DefaultConfig returns a config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Filter: "",
		Sink:   "stderr",
	}
}

// Load loads configuration from a TOML file
// If path is empty, returns default config
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that the configured sink is known
func (c *Config) Validate() error {
	switch c.Sink {
	case "", "stderr", "console":
		return nil
	default:
		return fmt.Errorf("unknown sink %q (want stderr or console)", c.Sink)
	}
}
