package store

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/dayward/organizer/config"
)

var Module = fx.Module("store",
	fx.Provide(
		func(cfg *config.Config, logger *slog.Logger) (*Store, error) {
			return Open(cfg.DB.Path, logger)
		},
	),
	fx.Invoke(func(lc fx.Lifecycle, s *Store) {
		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				return s.Close()
			},
		})
	}),
)
