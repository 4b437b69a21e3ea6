package cmd

import (
	"log/slog"
	"os"
	"strings"

	"go.uber.org/fx"

	"github.com/dayward/organizer/config"
	grpcsrv "github.com/dayward/organizer/infra/server/grpc"
	"github.com/dayward/organizer/internal/adapter/pubsub"
	"github.com/dayward/organizer/internal/domain/registry"
	grpchandler "github.com/dayward/organizer/internal/handler/grpc"
	"github.com/dayward/organizer/internal/service"
	"github.com/dayward/organizer/internal/store"
)

func NewApp(cfg *config.Config) *fx.App {
	return fx.New(
		fx.Provide(
			func() *config.Config { return cfg },
			ProvideLogger,
		),
		store.Module,
		service.Module,
		registry.Module,
		pubsub.Module,
		grpchandler.Module,
		grpcsrv.Module,
	)
}

// ProvideLogger builds the root slog logger from config and installs it as
// the process default.
func ProvideLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(cfg.Log.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if strings.ToLower(cfg.Log.Format) == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	logger := slog.New(handler).With(
		slog.String("service", ServiceName),
		slog.String("version", version),
	)
	slog.SetDefault(logger)
	return logger
}
