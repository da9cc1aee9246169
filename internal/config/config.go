package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
)

// Config holds all process configuration, populated from the environment.
type Config struct {
	Addr           string        `env:"ADDR" envDefault:":8080"`
	Env            string        `env:"ENV" envDefault:"development"`
	DatabaseDSN    string        `env:"DATABASE_DSN" envDefault:"root:password@tcp(127.0.0.1:3306)/taskboard?parseTime=true"`
	MigrationsPath string        `env:"MIGRATIONS_PATH" envDefault:"migrations"`
	JWTSecret      string        `env:"JWT_SECRET" envDefault:"dev-secret-change-in-production"`
	JWTExpiry      time.Duration `env:"JWT_EXPIRY" envDefault:"24h"`
	LogLevel       string        `env:"LOG_LEVEL" envDefault:"info"`
}

const devSecret = "dev-secret-change-in-production"

// Load parses configuration from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing environment: %w", err)
	}

	if cfg.Env == "production" && (cfg.JWTSecret == "" || cfg.JWTSecret == devSecret) {
		return Config{}, fmt.Errorf("JWT_SECRET must be set in production environment")
	}

	return cfg, nil
}
