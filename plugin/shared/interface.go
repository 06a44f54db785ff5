// Package shared contains the types shared between the analyzer host and
// out-of-process classifier plugins.
package shared

import (
	"context"
	"net/rpc"

	"ua-analyzer/internal/core"
	"ua-analyzer/plugin/proto"

	"github.com/hashicorp/go-plugin"
	"google.golang.org/grpc"
)

const AnalyzerPluginName = "analyzer"

// Handshake must match between the host and the plugin binary.
var Handshake = plugin.HandshakeConfig{
	ProtocolVersion:  1,
	MagicCookieKey:   "UA_ANALYZER_PLUGIN",
	MagicCookieValue: "user-agent-analyzer",
}

// PluginMap is the map of plugins the host can dispense. The same entry is
// served over gRPC and net/rpc.
var PluginMap = map[string]plugin.Plugin{
	AnalyzerPluginName: &AnalyzerPlugin{},
}

// Analyzer is the interface exposed by a classifier plugin.
type Analyzer interface {
	AnalyzeUserAgent(ctx context.Context, userAgent string) (string, error)
}

// AnalyzerPlugin implements both plugin.Plugin and plugin.GRPCPlugin, so a
// plugin binary can serve whichever protocol the host negotiates.
type AnalyzerPlugin struct {
	Impl Analyzer
}

var (
	_ plugin.Plugin     = (*AnalyzerPlugin)(nil)
	_ plugin.GRPCPlugin = (*AnalyzerPlugin)(nil)
)

func (p *AnalyzerPlugin) Server(*plugin.MuxBroker) (interface{}, error) {
	return &RPCServer{Impl: p.Impl}, nil
}

func (*AnalyzerPlugin) Client(b *plugin.MuxBroker, c *rpc.Client) (interface{}, error) {
	return &RPCClient{client: c}, nil
}

func (p *AnalyzerPlugin) GRPCServer(broker *plugin.GRPCBroker, s *grpc.Server) error {
	proto.RegisterUserAgentAnalyzerServer(s, &GRPCServer{Impl: p.Impl})
	return nil
}

func (*AnalyzerPlugin) GRPCClient(ctx context.Context, broker *plugin.GRPCBroker, c *grpc.ClientConn) (interface{}, error) {
	return &GRPCClient{client: proto.NewUserAgentAnalyzerClient(c)}, nil
}

// FromClassifier adapts a core.Classifier so it can be served as a plugin.
func FromClassifier(c core.Classifier) Analyzer {
	return classifierAnalyzer{classifier: c}
}

type classifierAnalyzer struct {
	classifier core.Classifier
}

func (a classifierAnalyzer) AnalyzeUserAgent(ctx context.Context, userAgent string) (string, error) {
	decision, err := a.classifier.Classify(ctx, userAgent)
	if err != nil {
		return "", err
	}
	return string(decision), nil
}
