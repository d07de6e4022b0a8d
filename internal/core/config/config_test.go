package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoad_Defaults verifies that default values are used when env vars are missing.
func TestLoad_Defaults(t *testing.T) {
	os.Unsetenv("APP_ENV")
	os.Unsetenv("LOG_LEVEL")
	os.Unsetenv("SERVER_PORT")
	os.Unsetenv("REDIS_URL")
	os.Unsetenv("TRACKING_FEED_URL")

	os.Setenv("AUTH_SECRET", "test-secret")
	defer os.Unsetenv("AUTH_SECRET")

	cfg, err := Load(".")
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 8080, cfg.ServerPort)
	assert.Equal(t, "redis://localhost:6379/0", cfg.RedisURL)
	assert.Equal(t, 1000, cfg.Auth.SimulatedLatencyMS)
	assert.Equal(t, 1440, cfg.Auth.SessionTTLMinutes)
	assert.Equal(t, "", cfg.Tracking.FeedURL)
	assert.Equal(t, 10, cfg.Tracking.PollSeconds)
}

// TestLoad_EnvVars verifies that environment variables override defaults.
func TestLoad_EnvVars(t *testing.T) {
	os.Setenv("APP_ENV", "production")
	os.Setenv("LOG_LEVEL", "debug")
	os.Setenv("SERVER_PORT", "9090")
	os.Setenv("REDIS_URL", "redis://cache:6379/1")
	os.Setenv("AUTH_SECRET", "prod-secret")
	os.Setenv("AUTH_SIMULATED_LATENCY_MS", "50")
	os.Setenv("SESSION_TTL_MINUTES", "30")
	os.Setenv("TRACKING_FEED_URL", "https://feed.example.com")
	os.Setenv("TRACKING_POLL_SECONDS", "5")
	defer func() {
		os.Unsetenv("APP_ENV")
		os.Unsetenv("LOG_LEVEL")
		os.Unsetenv("SERVER_PORT")
		os.Unsetenv("REDIS_URL")
		os.Unsetenv("AUTH_SECRET")
		os.Unsetenv("AUTH_SIMULATED_LATENCY_MS")
		os.Unsetenv("SESSION_TTL_MINUTES")
		os.Unsetenv("TRACKING_FEED_URL")
		os.Unsetenv("TRACKING_POLL_SECONDS")
	}()

	cfg, err := Load(".")
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 9090, cfg.ServerPort)
	assert.Equal(t, "redis://cache:6379/1", cfg.RedisURL)
	assert.Equal(t, "prod-secret", cfg.Auth.Secret)
	assert.Equal(t, 50, cfg.Auth.SimulatedLatencyMS)
	assert.Equal(t, 30, cfg.Auth.SessionTTLMinutes)
	assert.Equal(t, "https://feed.example.com", cfg.Tracking.FeedURL)
	assert.Equal(t, 5, cfg.Tracking.PollSeconds)
}

// TestLoad_File verifies that values are loaded from a .env file.
func TestLoad_File(t *testing.T) {
	content := []byte(`
APP_ENV=staging
LOG_LEVEL=warn
SERVER_PORT=7070
AUTH_SECRET=file-secret
`)
	err := os.WriteFile(".env", content, 0644)
	require.NoError(t, err)
	defer os.Remove(".env")

	cfg, err := Load(".")
	require.NoError(t, err)

	assert.Equal(t, "staging", cfg.Environment)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, 7070, cfg.ServerPort)
	assert.Equal(t, "file-secret", cfg.Auth.Secret)
}

// TestLoad_ValidationFailure verifies that missing required fields return an error.
func TestLoad_ValidationFailure(t *testing.T) {
	os.Unsetenv("AUTH_SECRET")

	cfg, err := Load(".")
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "missing required configuration")
}

// TestDurations verifies the duration helpers.
func TestDurations(t *testing.T) {
	auth := AuthConfig{SimulatedLatencyMS: 250, SessionTTLMinutes: 60}
	assert.Equal(t, "250ms", auth.SimulatedLatency().String())
	assert.Equal(t, "1h0m0s", auth.SessionTTL().String())

	tracking := TrackingConfig{PollSeconds: 10}
	assert.Equal(t, "10s", tracking.PollInterval().String())
}
