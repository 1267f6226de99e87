package session

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"reversi/internal/board"
)

// Config controls the dimensions of new boards and the registry capacity
type Config struct {
	Rows        int `env:"REVERSI_BOARD_ROWS"    envDefault:"8"`
	Columns     int `env:"REVERSI_BOARD_COLUMNS" envDefault:"8"`
	MaxSessions int `env:"REVERSI_MAX_SESSIONS"  envDefault:"1000"` // 0 = unlimited
}

func DefaultConfig() Config {
	return Config{
		Rows:        board.DefaultRows,
		Columns:     board.DefaultColumns,
		MaxSessions: 1000,
	}
}

// LoadConfig reads the configuration from environment variables
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if err := (board.Dimensions{Rows: c.Rows, Columns: c.Columns}).Validate(); err != nil {
		return fmt.Errorf("board config: %w", err)
	}
	if c.MaxSessions < 0 {
		return fmt.Errorf("max sessions must not be negative, got %d", c.MaxSessions)
	}
	return nil
}
