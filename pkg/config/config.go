package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv   string `env:"APP_ENV" envDefault:"dev"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// APIBaseURL is the root of the UaiFood backend REST API.
	APIBaseURL  string        `env:"API_BASE_URL" envDefault:"http://localhost:3001/api"`
	HTTPTimeout time.Duration `env:"HTTP_TIMEOUT" envDefault:"15s"`

	// StatePath is the SQLite file that mirrors cart and credential
	// state between runs.
	StatePath string `env:"STATE_PATH" envDefault:"uaifood.db"`
}

func Load() (Config, error) {
	// A missing .env file is fine; real env vars still apply.
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
