package grpc

import (
	"context"
	"io"
	"log/slog"
	"net"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/dayward/organizer/config"
	orgpb "github.com/dayward/organizer/gen/go/organizer/v1"
	"github.com/dayward/organizer/infra/server/grpc/interceptors"
	"github.com/dayward/organizer/internal/adapter/pubsub"
	"github.com/dayward/organizer/internal/domain/registry"
	"github.com/dayward/organizer/internal/service"
	"github.com/dayward/organizer/internal/store"
)

type fixture struct {
	api orgpb.OrganizerClient
	hub *registry.Hub
}

// newFixture wires the whole pipeline (store, services, updates bus, hub,
// handlers) behind an in-memory listener.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	st, err := store.Open(":memory:", logger)
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	hub := registry.NewHub(logger)

	bus := pubsub.NewBus(logger)
	router, err := pubsub.NewRouter(logger)
	require.NoError(t, err)
	pubsub.RegisterUpdateHandler(router, bus, hub, logger)
	go router.Run(context.Background())
	select {
	case <-router.Running():
	case <-time.After(5 * time.Second):
		t.Fatal("updates router did not start")
	}
	t.Cleanup(func() {
		router.Close()
		bus.Close()
	})

	dispatcher := pubsub.NewDispatcher(bus)
	cfg := &config.Config{}
	cfg.Stream.QueueWarnDepth = 8

	svc := NewOrganizerService(cfg, logger,
		service.NewNodeService(st, dispatcher, logger),
		service.NewDayService(st, dispatcher, logger),
		service.NewTenantService(st, logger),
		hub,
	)

	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(interceptors.NewUnaryIdentityInterceptor()),
		grpc.ChainStreamInterceptor(interceptors.NewStreamIdentityInterceptor()),
	)
	orgpb.RegisterOrganizerServer(srv, svc)

	lis := bufconn.Listen(1 << 20)
	go srv.Serve(lis)
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
	)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return &fixture{api: orgpb.NewOrganizerClient(conn), hub: hub}
}

func userCtx(ctx context.Context, user uuid.UUID) context.Context {
	return metadata.AppendToOutgoingContext(ctx, "x-org-user", user.String())
}

func recvUpdate(t *testing.T, stream grpc.ServerStreamingClient[orgpb.Update]) *orgpb.Update {
	t.Helper()
	type result struct {
		u   *orgpb.Update
		err error
	}
	ch := make(chan result, 1)
	go func() {
		u, err := stream.Recv()
		ch <- result{u, err}
	}()
	select {
	case r := <-ch:
		require.NoError(t, r.err)
		return r.u
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for update")
		return nil
	}
}

func TestUnauthenticatedRejected(t *testing.T) {
	f := newFixture(t)

	_, err := f.api.GetNodes(context.Background(), &orgpb.GetNodesReq{})
	require.Error(t, err)
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	badCtx := metadata.AppendToOutgoingContext(context.Background(), "x-org-user", "junk")
	_, err = f.api.GetNodes(badCtx, &orgpb.GetNodesReq{})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestGetServerInfo(t *testing.T) {
	f := newFixture(t)
	ctx := userCtx(context.Background(), uuid.New())

	info, err := f.api.GetServerInfo(ctx, &orgpb.Empty{})
	require.NoError(t, err)
	require.NotEmpty(t, info.GetProperties())
	assert.Equal(t, "version", info.GetProperties()[0].GetKey())
}

func TestNodeLifecycleWithSubscription(t *testing.T) {
	f := newFixture(t)
	user := uuid.New()
	ctx := userCtx(context.Background(), user)

	streamCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	stream, err := f.api.SubscribeToUpdates(streamCtx, &orgpb.UpdatesReq{})
	require.NoError(t, err)
	require.Eventually(t, func() bool {
		return f.hub.Len() == 1
	}, 5*time.Second, 10*time.Millisecond, "subscription never reached the hub")

	// Create.
	reply, err := f.api.CreateNode(ctx, &orgpb.CreateNodeReq{
		Node: &orgpb.Node{Name: "inbox", Active: true},
	})
	require.NoError(t, err)
	require.Equal(t, orgpb.Error_OK, reply.GetError(), reply.GetMessage())
	created := reply.GetNode()
	require.NotNil(t, created)

	u := recvUpdate(t, stream)
	assert.Equal(t, orgpb.Update_ADDED, u.GetOp())
	assert.Equal(t, created.GetUuid(), u.GetNode().GetUuid())

	// The tree shows the node under the synthetic root.
	tree, err := f.api.GetNodes(ctx, &orgpb.GetNodesReq{})
	require.NoError(t, err)
	require.Len(t, tree.GetRoot().GetChildren(), 1)
	assert.Equal(t, "inbox", tree.GetRoot().GetChildren()[0].GetNode().GetName())

	// A no-op move comes back as a domain status, not a transport error.
	reply, err = f.api.MoveNode(ctx, &orgpb.MoveNodeReq{Uuid: created.GetUuid()})
	require.NoError(t, err)
	assert.Equal(t, orgpb.Error_NO_CHANGES, reply.GetError())

	// Update.
	created.Name = "archive"
	reply, err = f.api.UpdateNode(ctx, created)
	require.NoError(t, err)
	require.Equal(t, orgpb.Error_OK, reply.GetError(), reply.GetMessage())
	assert.EqualValues(t, 1, reply.GetNode().GetVersion())

	u = recvUpdate(t, stream)
	assert.Equal(t, orgpb.Update_UPDATED, u.GetOp())
	assert.Equal(t, "archive", u.GetNode().GetName())

	// Delete publishes the snapshot.
	reply, err = f.api.DeleteNode(ctx, &orgpb.DeleteNodeReq{Uuid: created.GetUuid()})
	require.NoError(t, err)
	require.Equal(t, orgpb.Error_OK, reply.GetError())

	u = recvUpdate(t, stream)
	assert.Equal(t, orgpb.Update_DELETED, u.GetOp())
	assert.Equal(t, created.GetUuid(), u.GetNode().GetUuid())

	// Deleting again is NOT_FOUND in the status, still transport OK.
	reply, err = f.api.DeleteNode(ctx, &orgpb.DeleteNodeReq{Uuid: created.GetUuid()})
	require.NoError(t, err)
	assert.Equal(t, orgpb.Error_NOT_FOUND, reply.GetError())
}

func TestDayFlow(t *testing.T) {
	f := newFixture(t)
	user := uuid.New()
	ctx := userCtx(context.Background(), user)

	defs, err := f.api.GetDayColorDefinitions(ctx, &orgpb.Empty{})
	require.NoError(t, err)
	require.NotEmpty(t, defs.GetDayColors())

	// March 5th: wire month 2.
	date := &orgpb.Date{Year: 2026, Month: 2, Mday: 5}
	reply, err := f.api.SetColorOnDay(ctx, &orgpb.SetColorReq{
		Date:  date,
		Color: defs.GetDayColors()[0].GetColor(),
	})
	require.NoError(t, err)
	require.Equal(t, orgpb.Error_OK, reply.GetError(), reply.GetMessage())

	day, err := f.api.GetDay(ctx, date)
	require.NoError(t, err)
	assert.EqualValues(t, 2, day.GetDay().GetDate().GetMonth(), "wire month survives the round trip")
	assert.Equal(t, defs.GetDayColors()[0].GetColor(), day.GetDay().GetColor())

	month, err := f.api.GetMonth(ctx, &orgpb.MonthReq{Year: 2026, Month: 2})
	require.NoError(t, err)
	require.Len(t, month.GetDays(), 1)
	assert.EqualValues(t, 5, month.GetDays()[0].GetDate().GetMday())

	// An absent day is synthesized, never NOT_FOUND.
	empty, err := f.api.GetDay(ctx, &orgpb.Date{Year: 2026, Month: 3, Mday: 1})
	require.NoError(t, err)
	assert.False(t, empty.GetDay().GetHasNotes())
	assert.Empty(t, empty.GetDay().GetColor())

	// Out-of-range wire values are transport errors.
	_, err = f.api.GetMonth(ctx, &orgpb.MonthReq{Year: 2026, Month: 12})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
	_, err = f.api.GetDay(ctx, &orgpb.Date{Year: 2026, Month: 2, Mday: 42})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestCreateTenantStatusCodes(t *testing.T) {
	f := newFixture(t)
	ctx := userCtx(context.Background(), uuid.New())

	reply, err := f.api.CreateTenant(ctx, &orgpb.CreateTenantReq{Tenant: &orgpb.Tenant{}})
	require.NoError(t, err)
	assert.Equal(t, orgpb.Error_MISSING_TENANT_NAME, reply.GetError())

	reply, err = f.api.CreateTenant(ctx, &orgpb.CreateTenantReq{
		Tenant: &orgpb.Tenant{Name: "acme"},
		Users:  []*orgpb.User{{Name: "jane", Email: "jane@acme.test"}},
	})
	require.NoError(t, err)
	require.Equal(t, orgpb.Error_OK, reply.GetError(), reply.GetMessage())
	require.NotNil(t, reply.GetTenant())
	assert.NotEmpty(t, reply.GetTenant().GetUuid())
	assert.Equal(t, orgpb.Tenant_GUEST, reply.GetTenant().GetKind())
}

func TestSubscriptionDetachesOnCancel(t *testing.T) {
	f := newFixture(t)
	ctx := userCtx(context.Background(), uuid.New())

	streamCtx, cancel := context.WithCancel(ctx)
	stream, err := f.api.SubscribeToUpdates(streamCtx, &orgpb.UpdatesReq{})
	require.NoError(t, err)
	require.Eventually(t, func() bool {
		return f.hub.Len() == 1
	}, 5*time.Second, 10*time.Millisecond)

	cancel()
	_, _ = stream.Recv()

	require.Eventually(t, func() bool {
		return f.hub.Len() == 0
	}, 5*time.Second, 10*time.Millisecond, "cancelled stream must leave the hub")
}
