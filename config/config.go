// Package config reads runtime settings for the storefront service.
package config

import (
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the service settings. Environment variables win over flags.
type Config struct {
	Addr         string `env:"GIKIBITES_ADDR"`
	DatabasePath string `env:"GIKIBITES_DB"`
	TokenSecret  string `env:"GIKIBITES_TOKEN_SECRET"`
	GinMode      string `env:"GIN_MODE"`
}

// Parse reads configuration from .env, environment variables and command
// line flags.
func Parse() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	envAddr := cfg.Addr
	envDatabasePath := cfg.DatabasePath
	envTokenSecret := cfg.TokenSecret

	flag.StringVar(&cfg.Addr, "a", "localhost:8080", "address and port for HTTP server")
	flag.StringVar(&cfg.DatabasePath, "d", "gikibites.db", "SQLite database path")
	flag.StringVar(&cfg.TokenSecret, "s", "gikibites_session_secret_2024", "session token signing secret")

	flag.Parse()

	if envAddr != "" {
		cfg.Addr = envAddr
	}
	if envDatabasePath != "" {
		cfg.DatabasePath = envDatabasePath
	}
	if envTokenSecret != "" {
		cfg.TokenSecret = envTokenSecret
	}

	return cfg, nil
}
