package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
)

// Config controls the command line tool. Flags override these values.
type Config struct {
	// 0 seeds from the clock
	Seed      uint64 `env:"WOODLAND_SEED"`
	Retries   int    `env:"WOODLAND_RETRIES" envDefault:"1"`
	Samples   int    `env:"WOODLAND_SAMPLES" envDefault:"0"`
	Workers   int    `env:"WOODLAND_WORKERS" envDefault:"4"`
	OutputDir string `env:"WOODLAND_OUTPUT_DIR" envDefault:"experiments"`
	LogLevel  string `env:"WOODLAND_LOG_LEVEL" envDefault:"info"`
	JSON      bool   `env:"WOODLAND_JSON"`
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Level returns the zerolog level named by LogLevel.
func (c Config) Level() (zerolog.Level, error) {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel, fmt.Errorf("log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}
