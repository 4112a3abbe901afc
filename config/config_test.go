package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setBaseEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"SERVER_PORT", "DATABASE_URL", "SIMULATED_LATENCY", "CORS_ALLOWED_ORIGINS", "LOG_LEVEL",
		"R2_ACCOUNT_ID", "R2_ACCESS_KEY_ID", "R2_SECRET_ACCESS_KEY", "R2_BUCKET_NAME",
		"ENFORCE_REGISTRATION_DEADLINE",
	} {
		t.Setenv(key, "")
	}
	t.Setenv("JWT_SECRET_KEY", "test-secret")
}

func TestLoad_Defaults(t *testing.T) {
	setBaseEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.ServerPort)
	assert.Equal(t, 800*time.Millisecond, cfg.SimulatedLatency)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Empty(t, cfg.DatabaseURL)
	assert.False(t, cfg.EnforceDeadline)
	assert.False(t, cfg.UseR2())
}

func TestLoad_Overrides(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SIMULATED_LATENCY", "0s")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000, https://example.com")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("ENFORCE_REGISTRATION_DEADLINE", "true")
	t.Setenv("R2_ACCOUNT_ID", "acc")
	t.Setenv("R2_ACCESS_KEY_ID", "key")
	t.Setenv("R2_SECRET_ACCESS_KEY", "secret")
	t.Setenv("R2_BUCKET_NAME", "registrations")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.ServerPort)
	assert.Zero(t, cfg.SimulatedLatency)
	assert.Equal(t, []string{"http://localhost:3000", "https://example.com"}, cfg.CORSOrigins)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.True(t, cfg.EnforceDeadline)
	assert.True(t, cfg.UseR2())
}

func TestLoad_Errors(t *testing.T) {
	cases := []struct {
		name string
		env  map[string]string
	}{
		{name: "missing jwt secret", env: map[string]string{"JWT_SECRET_KEY": ""}},
		{name: "port not a number", env: map[string]string{"SERVER_PORT": "http"}},
		{name: "port out of range", env: map[string]string{"SERVER_PORT": "70000"}},
		{name: "bad latency", env: map[string]string{"SIMULATED_LATENCY": "soon"}},
		{name: "negative latency", env: map[string]string{"SIMULATED_LATENCY": "-1s"}},
		{name: "bad log level", env: map[string]string{"LOG_LEVEL": "chatty"}},
		{name: "bad deadline flag", env: map[string]string{"ENFORCE_REGISTRATION_DEADLINE": "maybe"}},
		{name: "partial r2 config", env: map[string]string{"R2_BUCKET_NAME": "registrations"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			setBaseEnv(t)
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
