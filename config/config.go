package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds process configuration sourced from the environment.
type Config struct {
	DatabaseURL   string `env:"DATABASE_URL,required"`
	ReceiptSecret string `env:"RECEIPT_SECRET"`
	ReceiptIssuer string `env:"RECEIPT_ISSUER" envDefault:"leaseflow"`
}

// FromEnv loads configuration from environment variables.
func FromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse env: %w", err)
	}
	return cfg, nil
}
