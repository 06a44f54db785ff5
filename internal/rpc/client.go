package rpc

import (
	"context"
	"fmt"

	"ua-analyzer/plugin/proto"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Client holds one connection to a UserAgentAnalyzer endpoint. It is safe
// for concurrent use.
type Client struct {
	conn   *grpc.ClientConn
	client proto.UserAgentAnalyzerClient
}

// Dial does not block; connection failures surface on the first call.
func Dial(endpoint string, opts ...grpc.DialOption) (*Client, error) {
	opts = append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	}, opts...)

	conn, err := grpc.NewClient(endpoint, opts...)
	if err != nil {
		return nil, fmt.Errorf("error creating client for '%s': %w", endpoint, err)
	}

	return &Client{conn: conn, client: proto.NewUserAgentAnalyzerClient(conn)}, nil
}

func (c *Client) AnalyzeUserAgent(ctx context.Context, userAgent string) (string, error) {
	resp, err := c.client.AnalyzeUserAgent(ctx, &proto.UserAgentRequest{UserAgent: userAgent})
	if err != nil {
		return "", fmt.Errorf("error analyzing user agent: %w", err)
	}
	return resp.GetDecision(), nil
}

func (c *Client) Close() error {
	return c.conn.Close()
}

// Invoke opens a connection to endpoint, performs a single AnalyzeUserAgent
// call and closes the connection. There is no retry.
func Invoke(ctx context.Context, endpoint, userAgent string, opts ...grpc.DialOption) (string, error) {
	client, err := Dial(endpoint, opts...)
	if err != nil {
		return "", err
	}
	defer client.Close()

	return client.AnalyzeUserAgent(ctx, userAgent)
}
