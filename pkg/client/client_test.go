package client

import (
	"context"
	"net"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/test/bufconn"

	orgpb "github.com/dayward/organizer/gen/go/organizer/v1"
)

type stubServer struct {
	orgpb.UnimplementedOrganizerServer

	infoCalls   atomic.Int64
	lastUserHdr atomic.Value
}

func (s *stubServer) GetServerInfo(ctx context.Context, _ *orgpb.Empty) (*orgpb.ServerInfo, error) {
	s.infoCalls.Add(1)
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if vals := md.Get("x-org-user"); len(vals) > 0 {
			s.lastUserHdr.Store(vals[0])
		}
	}
	return &orgpb.ServerInfo{
		Properties: []*orgpb.KeyValue{{Key: "version", Value: "test"}},
	}, nil
}

func newStub(t *testing.T) (*stubServer, grpc.DialOption) {
	t.Helper()
	stub := &stubServer{}
	srv := grpc.NewServer()
	orgpb.RegisterOrganizerServer(srv, stub)

	lis := bufconn.Listen(1 << 20)
	go srv.Serve(lis)
	t.Cleanup(srv.Stop)

	return stub, grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
		return lis.DialContext(ctx)
	})
}

func TestClientLifecycle(t *testing.T) {
	stub, dialer := newStub(t)
	user := uuid.New()
	c := New("passthrough:///bufnet",
		WithIdentity(user, uuid.Nil),
		WithDialOptions(dialer),
	)
	assert.Equal(t, StateConstructed, c.State())

	// Calls before Connect are rejected, deferred calls are queued.
	_, err := c.GetServerInfo(context.Background())
	assert.ErrorIs(t, err, ErrNotConnected)

	require.NoError(t, c.Defer(context.Background(), func(ctx context.Context, api orgpb.OrganizerClient) error {
		_, err := api.GetServerInfo(ctx, &orgpb.Empty{})
		return err
	}))
	assert.Equal(t, 1, c.PendingLen())

	require.NoError(t, c.Connect(context.Background()))
	assert.Equal(t, StateConnected, c.State())
	assert.Equal(t, 0, c.PendingLen(), "connect drains the queue")
	assert.EqualValues(t, 1, stub.infoCalls.Load())
	assert.Equal(t, user.String(), stub.lastUserHdr.Load(), "identity rides on deferred calls too")

	// Connect is idempotent while connected.
	require.NoError(t, c.Connect(context.Background()))

	info, err := c.GetServerInfo(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "test", info.GetProperties()[0].GetValue())

	require.NoError(t, c.Close())
	assert.Equal(t, StateClosed, c.State())
	require.NoError(t, c.Close(), "close is idempotent")

	_, err = c.GetServerInfo(context.Background())
	assert.ErrorIs(t, err, ErrClosed)
	assert.ErrorIs(t, c.Connect(context.Background()), ErrClosed)
	assert.ErrorIs(t, c.Defer(context.Background(), nil), ErrClosed)
}

func TestClientPendingQueueBounded(t *testing.T) {
	_, dialer := newStub(t)
	c := New("passthrough:///bufnet",
		WithDialOptions(dialer),
		WithMaxPending(1),
	)
	noop := func(context.Context, orgpb.OrganizerClient) error { return nil }

	require.NoError(t, c.Defer(context.Background(), noop))
	assert.ErrorIs(t, c.Defer(context.Background(), noop), ErrPendingFull)
}

func TestClientDeferRunsImmediatelyWhenConnected(t *testing.T) {
	stub, dialer := newStub(t)
	c := New("passthrough:///bufnet", WithDialOptions(dialer))
	require.NoError(t, c.Connect(context.Background()))
	defer c.Close()

	require.NoError(t, c.Defer(context.Background(), func(ctx context.Context, api orgpb.OrganizerClient) error {
		_, err := api.GetServerInfo(ctx, &orgpb.Empty{})
		return err
	}))
	assert.EqualValues(t, 1, stub.infoCalls.Load())
	assert.Equal(t, 0, c.PendingLen())
}
