// Package config loads the optional .tagmint/config.toml file. File values
// override the built-in defaults; command-line flags override the file.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/corey/tagmint/internal/domain/tagger"
)

// Config is the resolved tagmint configuration.
type Config struct {
	Endpoint   string         `toml:"endpoint"`   // catalog endpoint name: dev|int|prod
	Dictionary string         `toml:"dictionary"` // wordlist path; empty = system list, then embedded
	Workers    int            `toml:"workers"`    // enrichment workers; 0 = one per CPU
	Weights    tagger.Weights `toml:"weights"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Endpoint: "prod",
		Weights:  tagger.DefaultWeights(),
	}
}

// Load reads the TOML file at path on top of Default. A missing file is not
// an error — the defaults stand. Keys absent from the file keep their
// default values, so a file may override just one weight.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Weights.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	if cfg.Workers < 0 {
		return cfg, fmt.Errorf("config %s: workers must be non-negative", path)
	}
	return cfg, nil
}
