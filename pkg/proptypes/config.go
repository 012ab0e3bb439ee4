package proptypes

import (
	"errors"

	"github.com/dmitrymomot/immutableprops/pkg/config"
)

// Config controls a Reporter.
type Config struct {
	Enabled        bool   `env:"PROPTYPES_ENABLED" envDefault:"true"`
	Dedupe         bool   `env:"PROPTYPES_DEDUPE" envDefault:"true"`
	DedupeCapacity int    `env:"PROPTYPES_DEDUPE_CAPACITY" envDefault:"1000"`
	Environment    string `env:"APP_ENV" envDefault:"development"`
}

// DefaultConfig returns the configuration used when no environment is set.
func DefaultConfig() Config {
	return Config{
		Enabled:        true,
		Dedupe:         true,
		DedupeCapacity: DefaultDedupeCapacity,
		Environment:    "development",
	}
}

// LoadConfig reads Config from the process environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, errors.Join(ErrLoadConfig, err)
	}
	return cfg, nil
}
