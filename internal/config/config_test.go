package config_test

import (
	"log/slog"
	"testing"
	"time"

	"ua-analyzer/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServerConfigDefaults(t *testing.T) {
	cfg, err := config.LoadServerConfig()
	require.NoError(t, err)

	assert.Equal(t, config.ServerConfig{
		Addr:            "[::1]:50051",
		ShutdownTimeout: 10 * time.Second,
		LogLevel:        "info",
	}, cfg)
}

func TestServerConfigFromEnv(t *testing.T) {
	t.Setenv("ANALYZER_ADDR", "127.0.0.1:6000")
	t.Setenv("ANALYZER_HTTP_ADDR", ":8080")
	t.Setenv("ANALYZER_SHUTDOWN_TIMEOUT", "2s")
	t.Setenv("ANALYZER_PLUGIN_PATH", "/opt/analyzer-plugin")
	t.Setenv("ANALYZER_LOG_LEVEL", "debug")

	cfg, err := config.LoadServerConfig()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:6000", cfg.Addr)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, 2*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "/opt/analyzer-plugin", cfg.PluginPath)

	level, err := cfg.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}

func TestServerConfigInvalid(t *testing.T) {
	t.Run("bad duration", func(t *testing.T) {
		t.Setenv("ANALYZER_SHUTDOWN_TIMEOUT", "soon")
		_, err := config.LoadServerConfig()
		assert.Error(t, err)
	})

	t.Run("zero timeout", func(t *testing.T) {
		t.Setenv("ANALYZER_SHUTDOWN_TIMEOUT", "0s")
		_, err := config.LoadServerConfig()
		assert.Error(t, err)
	})

	t.Run("bad log level", func(t *testing.T) {
		t.Setenv("ANALYZER_LOG_LEVEL", "loud")
		_, err := config.LoadServerConfig()
		assert.Error(t, err)
	})
}

func TestClientConfig(t *testing.T) {
	cfg, err := config.LoadClientConfig()
	require.NoError(t, err)
	assert.Equal(t, config.DefaultAddr, cfg.Addr)

	t.Setenv("ANALYZER_ADDR", "localhost:7000")
	cfg, err = config.LoadClientConfig()
	require.NoError(t, err)
	assert.Equal(t, "localhost:7000", cfg.Addr)
}
