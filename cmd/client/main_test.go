package main

import (
	"bytes"
	"context"
	"net"
	"testing"
	"time"

	"ua-analyzer/internal/core"
	"ua-analyzer/internal/rpc"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startServer(t *testing.T) string {
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- rpc.Serve(ctx, rpc.NewServer(core.RuleClassifier{}).GRPCServer(), lis, time.Second)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})

	return lis.Addr().String()
}

func TestUsage(t *testing.T) {
	for _, args := range [][]string{
		{"client"},
		{"client", "Firefox", "Safari"},
	} {
		var stdout, stderr bytes.Buffer

		err := run(context.Background(), args, &stdout, &stderr)

		assert.NoError(t, err)
		assert.Empty(t, stdout.String())
		assert.Equal(t, "Usage: client <user_agent>\n", stderr.String())
	}
}

func TestDecision(t *testing.T) {
	t.Setenv("ANALYZER_ADDR", startServer(t))

	cases := map[string]string{
		"Mozilla/5.0 ... Safari/605.1.15": "Decision: block\n",
		"Mozilla/5.0 ... Firefox/89.0":    "Decision: allow\n",
		"curl/7.64.1":                     "Decision: unknown\n",
		"":                                "Decision: unknown\n",
		"... Firefox ... Safari ...":      "Decision: block\n",
	}

	for userAgent, expected := range cases {
		var stdout, stderr bytes.Buffer
		require.NoError(t, run(context.Background(), []string{"client", userAgent}, &stdout, &stderr))
		assert.Equal(t, expected, stdout.String())
		assert.Empty(t, stderr.String())
	}
}

func TestUnreachableServer(t *testing.T) {
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Setenv("ANALYZER_ADDR", lis.Addr().String())
	require.NoError(t, lis.Close())

	var stdout, stderr bytes.Buffer
	err = run(context.Background(), []string{"client", "Firefox"}, &stdout, &stderr)
	assert.Error(t, err)
	assert.Empty(t, stdout.String())
}
