package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"othello/internal/ai"
	"othello/internal/rules"
)

// Config drives the self-play tooling. Every field can be set from the
// environment; command-line flags override it.
type Config struct {
	DBPath       string `env:"OTHELLO_DB_PATH" envDefault:"data/games.db"`
	PoolSize     int    `env:"OTHELLO_POOL_SIZE" envDefault:"4"`
	Games        int    `env:"OTHELLO_GAMES" envDefault:"20"`
	BoardSize    int    `env:"OTHELLO_BOARD_SIZE" envDefault:"8"`
	StrengthA    uint   `env:"OTHELLO_STRENGTH_A" envDefault:"2"`
	StrengthB    uint   `env:"OTHELLO_STRENGTH_B" envDefault:"0"`
	OpeningPlies int    `env:"OTHELLO_OPENING_PLIES" envDefault:"4"`
	Seed         int64  `env:"OTHELLO_SEED" envDefault:"1"`
	Verbose      bool   `env:"OTHELLO_VERBOSE" envDefault:"false"`
}

// Load reads the configuration from the environment and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the values that would otherwise fail deep inside a run.
func (c *Config) Validate() error {
	switch {
	case c.PoolSize < 1:
		return fmt.Errorf("pool size must be positive, got %d", c.PoolSize)
	case c.Games < 0:
		return fmt.Errorf("games must not be negative, got %d", c.Games)
	case c.BoardSize < rules.MinSize || c.BoardSize > rules.MaxSize:
		return fmt.Errorf("board size %d out of range %d..%d", c.BoardSize, rules.MinSize, rules.MaxSize)
	case c.StrengthA > ai.MaxStrength || c.StrengthB > ai.MaxStrength:
		return fmt.Errorf("strengths %d/%d exceed maximum %d", c.StrengthA, c.StrengthB, ai.MaxStrength)
	case c.OpeningPlies < 0:
		return fmt.Errorf("opening plies must not be negative, got %d", c.OpeningPlies)
	}
	return nil
}
