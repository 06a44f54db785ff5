package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"ua-analyzer/cmd"
	"ua-analyzer/internal/api"
	"ua-analyzer/internal/config"
	"ua-analyzer/internal/core"
	"ua-analyzer/internal/rpc"

	"golang.org/x/sync/errgroup"
)

func main() {
	log.Println("Starting User Agent Analyzer...")

	cmd.LoadEnvFile()

	cfg, err := config.LoadServerConfig()
	if err != nil {
		log.Fatalf("error parsing config: %v", err)
	}

	level, _ := cfg.SlogLevel()
	slog.SetLogLoggerLevel(level)

	classifier, err := cmd.LoadClassifier(cfg.PluginPath, level)
	if err != nil {
		log.Fatalf("Failed to load classifier: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, classifier); err != nil {
		log.Printf("Server stopped with error: %v", err)
		stop()
		os.Exit(1)
	}

	log.Println("Server stopped.")
}

// run serves cfg.Addr (and cfg.HTTPAddr when set) until ctx is done. It takes
// ownership of classifier and releases it on every return path.
func run(ctx context.Context, cfg config.ServerConfig, classifier core.Classifier) error {
	defer classifier.Release()

	lis, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		return fmt.Errorf("could not listen on %s: %w", cfg.Addr, err)
	}

	g, ctx := errgroup.WithContext(ctx)

	grpcServer := rpc.NewServer(classifier).GRPCServer()
	g.Go(func() error {
		log.Printf("gRPC server listening on %s", lis.Addr())
		return rpc.Serve(ctx, grpcServer, lis, cfg.ShutdownTimeout)
	})

	if cfg.HTTPAddr != "" {
		httpServer := &http.Server{
			Addr:    cfg.HTTPAddr,
			Handler: api.NewRouter(classifier),
		}

		g.Go(func() error {
			log.Printf("HTTP gateway listening on %s", cfg.HTTPAddr)
			if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})

		g.Go(func() error {
			<-ctx.Done()
			log.Println("Shutting down HTTP gateway...")

			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
			defer cancel()

			return httpServer.Shutdown(shutdownCtx)
		})
	}

	return g.Wait()
}
