package external

import (
	"context"
	"fmt"
	"os/exec"

	"ua-analyzer/internal/core"
	"ua-analyzer/plugin/shared"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-plugin"
)

// Classifier runs classification in a plugin subprocess over whichever
// protocol was negotiated. Release must not race with Classify.
type Classifier struct {
	client   *plugin.Client
	analyzer shared.Analyzer
}

var _ core.Classifier = (*Classifier)(nil)

func Load(pluginPath string, logger hclog.Logger) (*Classifier, error) {
	client := plugin.NewClient(&plugin.ClientConfig{
		HandshakeConfig: shared.Handshake,
		Plugins:         shared.PluginMap,
		Cmd:             exec.Command(pluginPath),
		AllowedProtocols: []plugin.Protocol{
			plugin.ProtocolNetRPC, plugin.ProtocolGRPC},
		Logger: logger,
	})

	rpcClient, err := client.Client()
	if err != nil {
		client.Kill()
		return nil, fmt.Errorf("error establishing RPC connection: %w", err)
	}

	return dispense(client, rpcClient)
}

func dispense(client *plugin.Client, rpcClient plugin.ClientProtocol) (*Classifier, error) {
	name := shared.AnalyzerPluginName

	raw, err := rpcClient.Dispense(name)
	if err != nil {
		if client != nil {
			client.Kill()
		}
		return nil, fmt.Errorf("error dispensing '%s': %w", name, err)
	}

	analyzer, ok := raw.(shared.Analyzer)
	if !ok {
		if client != nil {
			client.Kill()
		}
		return nil, fmt.Errorf("dispensed interface '%s' is not of expected type shared.Analyzer (actual type: %T)", name, raw)
	}

	return &Classifier{
		client:   client,
		analyzer: analyzer,
	}, nil
}

func (c *Classifier) Classify(ctx context.Context, userAgent string) (core.Decision, error) {
	if c.analyzer == nil {
		return "", fmt.Errorf("classifier plugin has been released")
	}

	label, err := c.analyzer.AnalyzeUserAgent(ctx, userAgent)
	if err != nil {
		return "", fmt.Errorf("error calling classifier plugin: %w", err)
	}

	decision, err := core.ParseDecision(label)
	if err != nil {
		return "", fmt.Errorf("classifier plugin returned bad label: %w", err)
	}

	return decision, nil
}

func (c *Classifier) Release() {
	if c.client != nil {
		c.client.Kill()
		c.client = nil
	}
	c.analyzer = nil
}
