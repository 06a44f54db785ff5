package rpc

import (
	"context"
	"log/slog"
	"net"
	"time"

	"ua-analyzer/internal/core"
	"ua-analyzer/plugin/proto"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Server implements the UserAgentAnalyzer gRPC service on top of a
// core.Classifier.
type Server struct {
	proto.UnimplementedUserAgentAnalyzerServer

	classifier core.Classifier
}

func NewServer(classifier core.Classifier) *Server {
	return &Server{classifier: classifier}
}

func (s *Server) AnalyzeUserAgent(ctx context.Context, req *proto.UserAgentRequest) (*proto.UserAgentResponse, error) {
	decision, err := s.classifier.Classify(ctx, req.GetUserAgent())
	if err != nil {
		slog.Error("error classifying user agent", "error", err)
		return nil, status.Errorf(codes.Internal, "unable to classify user agent: %v", err)
	}

	return &proto.UserAgentResponse{Decision: string(decision)}, nil
}

// GRPCServer returns a grpc.Server with the analyzer service and the default
// interceptors registered.
func (s *Server) GRPCServer(opts ...grpc.ServerOption) *grpc.Server {
	opts = append([]grpc.ServerOption{
		grpc.ChainUnaryInterceptor(RecoveryInterceptor, LoggingInterceptor),
	}, opts...)

	srv := grpc.NewServer(opts...)
	proto.RegisterUserAgentAnalyzerServer(srv, s)
	return srv
}

// Serve accepts connections on lis until ctx is done, then drains in-flight
// calls for at most shutdownTimeout before forcing the server closed.
func Serve(ctx context.Context, srv *grpc.Server, lis net.Listener, shutdownTimeout time.Duration) error {
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- srv.Serve(lis)
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down grpc server", "timeout", shutdownTimeout)

	stopped := make(chan struct{})
	go func() {
		srv.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-time.After(shutdownTimeout):
		slog.Warn("graceful shutdown timed out, closing open connections")
		srv.Stop()
		<-stopped
	}

	return <-serveErr
}
