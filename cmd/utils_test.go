package cmd

import (
	"context"
	"log/slog"
	"testing"

	"ua-analyzer/internal/core"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadClassifierBuiltin(t *testing.T) {
	classifier, err := LoadClassifier("", slog.LevelInfo)
	require.NoError(t, err)
	defer classifier.Release()

	decision, err := classifier.Classify(context.Background(), "Safari")
	require.NoError(t, err)
	assert.Equal(t, core.Block, decision)
}

func TestLoadClassifierMissingPlugin(t *testing.T) {
	_, err := LoadClassifier("/nonexistent/ua-analyzer-plugin", slog.LevelError)
	assert.Error(t, err)
}

func TestHclogLevel(t *testing.T) {
	assert.Equal(t, hclog.Debug, hclogLevel(slog.LevelDebug))
	assert.Equal(t, hclog.Info, hclogLevel(slog.LevelInfo))
	assert.Equal(t, hclog.Warn, hclogLevel(slog.LevelWarn))
	assert.Equal(t, hclog.Error, hclogLevel(slog.LevelError))
}
