package config

import (
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
)

type Config struct {
	Env      string `env:"ENV" envDefault:"local" validate:"required,oneof=local staging production"`
	Port     string `env:"PORT" envDefault:"8080" validate:"required"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`

	MongoURL      string `env:"MONGODB_URL,required" validate:"required"`
	MongoDatabase string `env:"MONGODB_DATABASE" envDefault:"inotes" validate:"required"`

	MetricsPort string `env:"METRICS_PORT" envDefault:"9090"`

	// EmailProvider selects the outbound mail transport. "log" writes
	// emails to the logger instead of sending them.
	EmailProvider string `env:"EMAIL_PROVIDER" envDefault:"log" validate:"oneof=log smtp resend"`
	SMTPHost      string `env:"SMTP_HOST"      validate:"required_if=EmailProvider smtp"`
	SMTPPort      int    `env:"SMTP_PORT" envDefault:"465"`
	SMTPUsername  string `env:"SMTP_USERNAME"  validate:"required_if=EmailProvider smtp"`
	SMTPPassword  string `env:"SMTP_PASSWORD"  validate:"required_if=EmailProvider smtp"`
	SenderEmail   string `env:"SENDER_EMAIL"   validate:"required_if=EmailProvider smtp,omitempty,email"`
	ResendAPIKey  string `env:"RESEND_API_KEY" validate:"required_if=EmailProvider resend"`
	ResendFrom    string `env:"RESEND_FROM"    validate:"required_if=EmailProvider resend"`

	// SweepSchedule is a cron expression for the background purge of
	// expired sessions and reset tokens.
	SweepSchedule string `env:"SWEEP_SCHEDULE" envDefault:"@every 1m" validate:"required"`
}

func Load() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
