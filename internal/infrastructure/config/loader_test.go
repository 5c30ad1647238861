package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, Development, cfg.Environment)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.False(t, cfg.IsProduction())
}

func TestLoadConfig_PortFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
}

func TestLoadConfig_EnvironmentFromEnv(t *testing.T) {
	t.Setenv("ENVIRONMENT", Production)

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.True(t, cfg.IsProduction())
}

func TestLoadConfig_LogLevelFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logger.Level)
}
