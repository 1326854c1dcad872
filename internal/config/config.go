package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config carries the server settings. Environment variables override
// the defaults; command-line flags override both.
type Config struct {
	// Port is the HTTP listen port.
	Port int `env:"EMPEROR_PORT" envDefault:"8080"`
	// Seats is the total seat count per match; seats not taken by
	// humans are filled with AI players.
	Seats int `env:"EMPEROR_SEATS" envDefault:"6"`
	// BotDelay paces AI turns so humans can follow the log.
	BotDelay time.Duration `env:"EMPEROR_BOT_DELAY" envDefault:"750ms"`
	// Debug switches the logger to development output.
	Debug bool `env:"EMPEROR_DEBUG" envDefault:"false"`
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Seats < 4 || cfg.Seats > 9 {
		return Config{}, fmt.Errorf("EMPEROR_SEATS must be 4-9, got %d", cfg.Seats)
	}
	return cfg, nil
}
