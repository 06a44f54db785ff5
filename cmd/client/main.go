package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"ua-analyzer/internal/config"
	"ua-analyzer/internal/rpc"
)

// run returns nil after printing usage when the argument count is wrong; a
// bad invocation is not treated as a failure.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	if len(args) != 2 {
		fmt.Fprintf(stderr, "Usage: %s <user_agent>\n", args[0])
		return nil
	}

	cfg, err := config.LoadClientConfig()
	if err != nil {
		return err
	}

	decision, err := rpc.Invoke(ctx, cfg.Addr, args[1])
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Decision: %s\n", decision)
	return nil
}

func main() {
	if err := run(context.Background(), os.Args, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
