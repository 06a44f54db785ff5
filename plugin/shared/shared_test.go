package shared_test

import (
	"context"
	"errors"
	"testing"

	"ua-analyzer/internal/core"
	"ua-analyzer/plugin/shared"

	"github.com/hashicorp/go-plugin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingAnalyzer struct{}

func (failingAnalyzer) AnalyzeUserAgent(context.Context, string) (string, error) {
	return "", errors.New("classifier offline")
}

func pluginMap(impl shared.Analyzer) map[string]plugin.Plugin {
	return map[string]plugin.Plugin{
		shared.AnalyzerPluginName: &shared.AnalyzerPlugin{Impl: impl},
	}
}

func TestGRPCPluginRoundTrip(t *testing.T) {
	client, server := plugin.TestPluginGRPCConn(t, false, pluginMap(shared.FromClassifier(core.RuleClassifier{})))
	defer client.Close()
	defer server.Stop()

	raw, err := client.Dispense(shared.AnalyzerPluginName)
	require.NoError(t, err)

	analyzer, ok := raw.(shared.Analyzer)
	require.True(t, ok)

	cases := map[string]string{
		"Mozilla/5.0 ... Safari/605.1.15": "block",
		"Mozilla/5.0 ... Firefox/89.0":    "allow",
		"curl/7.64.1":                     "unknown",
		"":                                "unknown",
	}
	for userAgent, expected := range cases {
		decision, err := analyzer.AnalyzeUserAgent(context.Background(), userAgent)
		require.NoError(t, err)
		assert.Equal(t, expected, decision, userAgent)
	}
}

func TestGRPCPluginError(t *testing.T) {
	client, server := plugin.TestPluginGRPCConn(t, false, pluginMap(failingAnalyzer{}))
	defer client.Close()
	defer server.Stop()

	raw, err := client.Dispense(shared.AnalyzerPluginName)
	require.NoError(t, err)

	_, err = raw.(shared.Analyzer).AnalyzeUserAgent(context.Background(), "Firefox")
	assert.ErrorContains(t, err, "classifier offline")
}

func TestNetRPCPluginRoundTrip(t *testing.T) {
	client, _ := plugin.TestPluginRPCConn(t, pluginMap(shared.FromClassifier(core.RuleClassifier{})), nil)
	defer client.Close()

	raw, err := client.Dispense(shared.AnalyzerPluginName)
	require.NoError(t, err)

	analyzer, ok := raw.(shared.Analyzer)
	require.True(t, ok)

	decision, err := analyzer.AnalyzeUserAgent(context.Background(), "Firefox Safari")
	require.NoError(t, err)
	assert.Equal(t, "block", decision)
}

func TestPluginMapServesBothProtocols(t *testing.T) {
	for name, p := range shared.PluginMap {
		_, ok := p.(plugin.GRPCPlugin)
		assert.True(t, ok, "%s must be served over gRPC", name)
	}

	// The same map, with an implementation, must be accepted by a gRPC plugin
	// server as it is by cmd/plugin.
	client, server := plugin.TestPluginGRPCConn(t, false, map[string]plugin.Plugin{
		shared.AnalyzerPluginName: &shared.AnalyzerPlugin{Impl: shared.FromClassifier(core.RuleClassifier{})},
	})
	defer client.Close()
	defer server.Stop()

	raw, err := client.Dispense(shared.AnalyzerPluginName)
	require.NoError(t, err)

	decision, err := raw.(shared.Analyzer).AnalyzeUserAgent(context.Background(), "Firefox/89.0")
	require.NoError(t, err)
	assert.Equal(t, "allow", decision)
}
