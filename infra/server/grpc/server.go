// Package grpc hosts the HTTP/2 server the organizer API is served on.
package grpc

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"time"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dayward/organizer/config"
	"github.com/dayward/organizer/infra/server/grpc/interceptors"
)

// Server wraps the grpc.Server together with its listen address so handler
// modules can register services before the listener opens.
type Server struct {
	Server *grpc.Server

	logger          *slog.Logger
	address         string
	shutdownTimeout time.Duration
}

func NewServer(cfg *config.Config, logger *slog.Logger) *Server {
	recoveryHandler := func(p any) error {
		logger.Error("panic recovered in handler", slog.Any("panic", p))
		return status.Error(codes.Internal, "internal error")
	}

	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			logging.UnaryServerInterceptor(InterceptorLogger(logger),
				logging.WithLogOnEvents(logging.FinishCall),
			),
			recovery.UnaryServerInterceptor(recovery.WithRecoveryHandler(recoveryHandler)),
			interceptors.NewUnaryIdentityInterceptor(),
		),
		grpc.ChainStreamInterceptor(
			logging.StreamServerInterceptor(InterceptorLogger(logger),
				logging.WithLogOnEvents(logging.FinishCall),
			),
			recovery.StreamServerInterceptor(recovery.WithRecoveryHandler(recoveryHandler)),
			interceptors.NewStreamIdentityInterceptor(),
		),
	)

	return &Server{
		Server:          srv,
		logger:          logger,
		address:         cfg.Server.Address,
		shutdownTimeout: cfg.Server.ShutdownTimeout,
	}
}

// InterceptorLogger bridges the middleware logging callbacks onto slog.
func InterceptorLogger(l *slog.Logger) logging.Logger {
	return logging.LoggerFunc(func(ctx context.Context, lvl logging.Level, msg string, fields ...any) {
		l.Log(ctx, slog.Level(lvl), msg, fields...)
	})
}

// Start opens the listener and serves in the background. Listen errors are
// returned synchronously so a busy port fails app startup.
func (s *Server) Start() error {
	lis, err := net.Listen("tcp", s.address)
	if err != nil {
		return fmt.Errorf("grpc server: listen %s: %w", s.address, err)
	}

	s.logger.Info("grpc server listening", slog.String("address", lis.Addr().String()))

	go func() {
		if err := s.Server.Serve(lis); err != nil {
			s.logger.Error("grpc server stopped", slog.Any("err", err))
		}
	}()
	return nil
}

// Stop attempts a graceful stop and falls back to a hard stop when the
// shutdown timeout elapses.
func (s *Server) Stop(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.Server.GracefulStop()
		close(done)
	}()

	timeout := s.shutdownTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	select {
	case <-done:
		s.logger.Info("grpc server stopped gracefully")
		return nil
	case <-time.After(timeout):
		s.logger.Warn("graceful stop timed out, forcing")
		s.Server.Stop()
		return nil
	case <-ctx.Done():
		s.Server.Stop()
		return ctx.Err()
	}
}
