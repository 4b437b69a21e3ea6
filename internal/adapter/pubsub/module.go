package pubsub

import (
	"context"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"go.uber.org/fx"

	"github.com/dayward/organizer/internal/domain/registry"
	"github.com/dayward/organizer/internal/service"
)

var Module = fx.Module("pubsub",
	fx.Provide(
		NewBus,
		NewRouter,
		fx.Annotate(
			NewDispatcher,
			fx.As(new(service.UpdateDispatcher)),
		),
		func(bus *gochannel.GoChannel) message.Publisher { return bus },
	),
	fx.Invoke(Run),
)

// NewBus builds the in-process channel pub/sub the updates pipeline rides on.
func NewBus(logger *slog.Logger) *gochannel.GoChannel {
	return gochannel.NewGoChannel(
		gochannel.Config{OutputChannelBuffer: 64},
		watermill.NewSlogLogger(logger),
	)
}

func NewRouter(logger *slog.Logger) (*message.Router, error) {
	return message.NewRouter(message.RouterConfig{}, watermill.NewSlogLogger(logger))
}

// Run wires the hub handler and drives the router for the lifetime of the app.
func Run(lc fx.Lifecycle, router *message.Router, bus *gochannel.GoChannel, hub registry.Hubber, logger *slog.Logger) {
	RegisterUpdateHandler(router, bus, hub, logger)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := router.Run(context.Background()); err != nil {
					logger.Error("updates router stopped", slog.Any("err", err))
				}
			}()
			select {
			case <-router.Running():
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		},
		OnStop: func(context.Context) error {
			if err := router.Close(); err != nil {
				return err
			}
			return bus.Close()
		},
	})
}
