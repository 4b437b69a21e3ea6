package service

import (
	"go.uber.org/fx"
)

var Module = fx.Module("service",
	fx.Provide(
		fx.Annotate(
			NewNodeService,
			fx.As(new(Noder)),
		),
		fx.Annotate(
			NewDayService,
			fx.As(new(Dayer)),
		),
		fx.Annotate(
			NewTenantService,
			fx.As(new(Tenanter)),
		),
	),
)
