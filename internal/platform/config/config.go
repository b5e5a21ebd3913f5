package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"go-simpler.org/env"
)

type Config struct {
	AppEnv    string `env:"APP_ENV" default:"development"`
	Port      string `env:"PORT" default:"8080"`
	LogLevel  string `env:"LOG_LEVEL" default:"info"`
	LogFormat string `env:"LOG_FORMAT" default:"text"`

	SummarySource  string        `env:"SUMMARY_SOURCE" default:"data/emoji_summary.json"`
	ExpandedSource string        `env:"EXPANDED_SOURCE" default:"data/emoji_scores_expanded.json"`
	LoadTimeout    time.Duration `env:"LOAD_TIMEOUT" default:"30s"` // 0 waits indefinitely

	RateLimitRPS   float64 `env:"RATE_LIMIT_RPS" default:"20"`
	RateLimitBurst int     `env:"RATE_LIMIT_BURST" default:"40"`
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	var cfg Config
	if err := env.Load(&cfg, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func validate(cfg *Config) error {
	required := []struct{ name, value string }{
		{"SUMMARY_SOURCE", cfg.SummarySource},
		{"EXPANDED_SOURCE", cfg.ExpandedSource},
		{"PORT", cfg.Port},
	}
	for _, r := range required {
		if r.value == "" {
			return fmt.Errorf("%s is required", r.name)
		}
	}

	port, err := strconv.Atoi(cfg.Port)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("PORT must be a number between 1 and 65535, got %q", cfg.Port)
	}

	if cfg.LoadTimeout < 0 {
		return errors.New("LOAD_TIMEOUT must not be negative")
	}

	if cfg.RateLimitRPS <= 0 {
		return errors.New("RATE_LIMIT_RPS must be positive")
	}
	if cfg.RateLimitBurst < 1 {
		return errors.New("RATE_LIMIT_BURST must be at least 1")
	}

	return nil
}
