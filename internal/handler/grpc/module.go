package grpc

import (
	"go.uber.org/fx"

	orgpb "github.com/dayward/organizer/gen/go/organizer/v1"
	grpcsrv "github.com/dayward/organizer/infra/server/grpc"
)

var Module = fx.Module("organizer-grpc",
	fx.Provide(
		NewOrganizerService,
	),
	fx.Invoke(RegisterOrganizerServices),
)

func RegisterOrganizerServices(
	server *grpcsrv.Server,
	service *OrganizerService,
) {
	orgpb.RegisterOrganizerServer(server.Server, service)
}
