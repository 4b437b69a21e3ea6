package pubsub

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	orgpb "github.com/dayward/organizer/gen/go/organizer/v1"
	"github.com/dayward/organizer/internal/domain/registry"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestUpdateCodecRoundTrip(t *testing.T) {
	u := &orgpb.Update{
		When: 1234,
		Op:   orgpb.Update_MOVED,
		Payload: &orgpb.Update_Node{
			Node: &orgpb.Node{Uuid: "abc", Name: "inbox", Version: 3},
		},
	}

	bus := NewBus(testLogger())
	defer bus.Close()
	d := NewDispatcher(bus)

	msgs, err := bus.Subscribe(context.Background(), UpdatesTopic)
	require.NoError(t, err)

	require.NoError(t, d.Publish(context.Background(), u))

	select {
	case msg := <-msgs:
		got, err := DecodeUpdate(msg.Payload)
		require.NoError(t, err)
		msg.Ack()
		assert.EqualValues(t, 1234, got.GetWhen())
		assert.Equal(t, orgpb.Update_MOVED, got.GetOp())
		assert.Equal(t, "inbox", got.GetNode().GetName())
		assert.EqualValues(t, 3, got.GetNode().GetVersion())
	case <-time.After(5 * time.Second):
		t.Fatal("no message on the updates topic")
	}
}

func TestDispatcherRejectsNil(t *testing.T) {
	bus := NewBus(testLogger())
	defer bus.Close()
	assert.Error(t, NewDispatcher(bus).Publish(context.Background(), nil))
}

func TestDecodeUpdateGarbage(t *testing.T) {
	_, err := DecodeUpdate([]byte{0xff, 0xff, 0xff})
	assert.Error(t, err)
}

type countingHub struct {
	mu  sync.Mutex
	got []*orgpb.Update
}

func (h *countingHub) Publish(u *orgpb.Update) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.got = append(h.got, u)
}

func (h *countingHub) received() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.got)
}

// hubAdapter gives the counting hub the full Hubber surface; only Publish
// matters to the router handler.
type hubAdapter struct {
	inner *countingHub
}

func (h *hubAdapter) Add(registry.Publisher)  {}
func (h *hubAdapter) Remove(uuid.UUID)        {}
func (h *hubAdapter) Publish(u *orgpb.Update) { h.inner.Publish(u) }
func (h *hubAdapter) Drain()                  {}
func (h *hubAdapter) Len() int                { return h.inner.received() }

func TestRouterFansIntoHub(t *testing.T) {
	logger := testLogger()
	bus := NewBus(logger)
	defer bus.Close()

	hub := &hubAdapter{inner: &countingHub{}}
	router, err := NewRouter(logger)
	require.NoError(t, err)
	RegisterUpdateHandler(router, bus, hub, logger)
	go router.Run(context.Background())
	defer router.Close()
	select {
	case <-router.Running():
	case <-time.After(5 * time.Second):
		t.Fatal("router did not start")
	}

	d := NewDispatcher(bus)
	require.NoError(t, d.Publish(context.Background(), &orgpb.Update{When: 1}))
	require.NoError(t, d.Publish(context.Background(), &orgpb.Update{When: 2}))

	require.Eventually(t, func() bool {
		return hub.inner.received() == 2
	}, 5*time.Second, 10*time.Millisecond)
}
