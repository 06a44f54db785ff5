// Command plugin serves the built-in user agent rules as a go-plugin
// classifier. It is launched by the server when ANALYZER_PLUGIN_PATH points
// at it and is not meant to be run by hand.
package main

import (
	"ua-analyzer/internal/core"
	"ua-analyzer/plugin/shared"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-plugin"
)

func main() {
	analyzer := shared.FromClassifier(core.RuleClassifier{})

	plugin.Serve(&plugin.ServeConfig{
		HandshakeConfig: shared.Handshake,
		Plugins: map[string]plugin.Plugin{
			shared.AnalyzerPluginName: &shared.AnalyzerPlugin{Impl: analyzer},
		},
		GRPCServer: plugin.DefaultGRPCServer,
		Logger: hclog.New(&hclog.LoggerOptions{
			Name:       "analyzer-plugin",
			Level:      hclog.Info,
			JSONFormat: true,
		}),
	})
}
