package config_test

import (
	"testing"

	"github.com/inotes-app/inotes-backend/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("MONGODB_URL", "mongodb://localhost:27017")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "inotes", cfg.MongoDatabase)
	assert.Equal(t, "log", cfg.EmailProvider)
	assert.Equal(t, 465, cfg.SMTPPort)
	assert.Equal(t, "@every 1m", cfg.SweepSchedule)
}

func TestLoad_MissingMongoURL(t *testing.T) {
	t.Setenv("MONGODB_URL", "")

	_, err := config.Load()
	require.Error(t, err)
}

func TestLoad_InvalidEnv(t *testing.T) {
	t.Setenv("MONGODB_URL", "mongodb://localhost:27017")
	t.Setenv("ENV", "dev")

	_, err := config.Load()
	require.Error(t, err)
}

func TestLoad_SMTPRequiresHostAndCredentials(t *testing.T) {
	t.Setenv("MONGODB_URL", "mongodb://localhost:27017")
	t.Setenv("EMAIL_PROVIDER", "smtp")

	_, err := config.Load()
	require.Error(t, err)

	t.Setenv("SMTP_HOST", "smtp.example.com")
	t.Setenv("SMTP_USERNAME", "mailer")
	t.Setenv("SMTP_PASSWORD", "secret")
	t.Setenv("SENDER_EMAIL", "noreply@example.com")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "smtp.example.com", cfg.SMTPHost)
}

func TestSlogLevel(t *testing.T) {
	t.Setenv("MONGODB_URL", "mongodb://localhost:27017")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, -4, int(cfg.SlogLevel()))
}
