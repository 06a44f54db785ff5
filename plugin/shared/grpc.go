package shared

import (
	"context"

	"ua-analyzer/plugin/proto"
)

// GRPCClient is an implementation of Analyzer that talks over gRPC.
type GRPCClient struct{ client proto.UserAgentAnalyzerClient }

func (m *GRPCClient) AnalyzeUserAgent(ctx context.Context, userAgent string) (string, error) {
	resp, err := m.client.AnalyzeUserAgent(ctx, &proto.UserAgentRequest{
		UserAgent: userAgent,
	})
	if err != nil {
		return "", err
	}

	return resp.Decision, nil
}

// Here is the gRPC server that GRPCClient talks to.
type GRPCServer struct {
	proto.UnimplementedUserAgentAnalyzerServer
	// This is the real implementation
	Impl Analyzer
}

func (m *GRPCServer) AnalyzeUserAgent(
	ctx context.Context,
	req *proto.UserAgentRequest) (*proto.UserAgentResponse, error) {
	v, err := m.Impl.AnalyzeUserAgent(ctx, req.UserAgent)
	if err != nil {
		return nil, err
	}
	return &proto.UserAgentResponse{Decision: v}, nil
}
