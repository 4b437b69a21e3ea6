package grpc

import (
	"context"

	"go.uber.org/fx"

	"github.com/dayward/organizer/internal/domain/registry"
)

var Module = fx.Module("grpc-server",
	fx.Provide(NewServer),
	fx.Invoke(func(lc fx.Lifecycle, s *Server, hub registry.Hubber) {
		lc.Append(fx.Hook{
			OnStart: func(context.Context) error {
				return s.Start()
			},
			OnStop: func(ctx context.Context) error {
				// Finishing subscriptions first lets the streaming handlers
				// return, so GracefulStop is not held open by live streams.
				hub.Drain()
				return s.Stop(ctx)
			},
		})
	}),
)
