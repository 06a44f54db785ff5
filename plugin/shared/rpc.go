package shared

import (
	"context"
	"net/rpc"
)

// RPCClient is an implementation of Analyzer that talks over net/rpc. The
// context is not propagated across the connection.
type RPCClient struct{ client *rpc.Client }

func (m *RPCClient) AnalyzeUserAgent(_ context.Context, userAgent string) (string, error) {
	var resp string
	err := m.client.Call("Plugin.AnalyzeUserAgent", userAgent, &resp)
	return resp, err
}

// Here is the RPC server that RPCClient talks to, conforming to
// the requirements of net/rpc
type RPCServer struct {
	// This is the real implementation
	Impl Analyzer
}

func (m *RPCServer) AnalyzeUserAgent(userAgent string, resp *string) error {
	v, err := m.Impl.AnalyzeUserAgent(context.Background(), userAgent)
	*resp = v
	return err
}
