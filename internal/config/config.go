package config

import (
	"fmt"

	"metrodice/internal/engine"

	"github.com/caarlos0/env/v11"
)

// Config is the server configuration read from the environment.
type Config struct {
	Port       int    `env:"METRODICE_PORT"        envDefault:"8080"`
	BaseURL    string `env:"METRODICE_BASE_URL"`
	Expansion  string `env:"METRODICE_EXPANSION"   envDefault:"harbor"`
	Market     string `env:"METRODICE_MARKET"      envDefault:"harbor"`
	MinPlayers int    `env:"METRODICE_MIN_PLAYERS" envDefault:"2"`
	MaxPlayers int    `env:"METRODICE_MAX_PLAYERS" envDefault:"4"`
	QRSize     int    `env:"METRODICE_QR_SIZE"     envDefault:"256"`
	Dev        bool   `env:"METRODICE_DEV"`
	Seed       uint64 `env:"METRODICE_SEED"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load parses and validates the server configuration.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges that env tags cannot express.
func (c Config) Validate() error {
	if c.MinPlayers < 1 {
		return fmt.Errorf("min players must be at least 1, got %d", c.MinPlayers)
	}
	if c.MaxPlayers < c.MinPlayers {
		return fmt.Errorf("max players %d below min players %d", c.MaxPlayers, c.MinPlayers)
	}
	if c.QRSize <= 0 {
		return fmt.Errorf("qr size must be positive, got %d", c.QRSize)
	}
	if _, err := engine.ExpansionByName(c.Expansion); err != nil {
		return err
	}
	if _, err := engine.MarketByName(c.Market, nil); err != nil {
		return err
	}
	return nil
}
