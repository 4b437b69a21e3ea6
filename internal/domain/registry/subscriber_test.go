package registry

import (
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	orgpb "github.com/dayward/organizer/gen/go/organizer/v1"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func nodeUpdate(name string) *orgpb.Update {
	return &orgpb.Update{
		Op:      orgpb.Update_ADDED,
		Payload: &orgpb.Update_Node{Node: &orgpb.Node{Name: name}},
	}
}

func TestSubscriberDeliversInOrder(t *testing.T) {
	var (
		mu   sync.Mutex
		seen []string
	)
	sub := NewSubscriber(testLogger(), func(u *orgpb.Update) error {
		mu.Lock()
		defer mu.Unlock()
		seen = append(seen, u.GetNode().GetName())
		return nil
	})
	defer sub.Finish(nil)

	require.True(t, sub.Publish(nodeUpdate("a")))
	require.True(t, sub.Publish(nodeUpdate("b")))
	require.True(t, sub.Publish(nodeUpdate("c")))

	require.Eventually(t, func() bool {
		return sub.QueueLen() == 0
	}, time.Second, 5*time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"a", "b", "c"}, seen)
}

func TestSubscriberOneWriteInFlight(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	sub := NewSubscriber(testLogger(), func(u *orgpb.Update) error {
		started <- struct{}{}
		<-release
		return nil
	})
	defer sub.Finish(nil)

	require.True(t, sub.Publish(nodeUpdate("a")))
	<-started
	require.True(t, sub.Publish(nodeUpdate("b")))

	// The head stays queued until its write completes.
	assert.Equal(t, 2, sub.QueueLen())

	release <- struct{}{}
	<-started // second write only starts after the first completed
	release <- struct{}{}

	require.Eventually(t, func() bool {
		return sub.QueueLen() == 0
	}, time.Second, 5*time.Millisecond)
}

func TestSubscriberWriteErrorFinishes(t *testing.T) {
	wantErr := errors.New("broken pipe")
	sub := NewSubscriber(testLogger(), func(u *orgpb.Update) error {
		return wantErr
	})

	require.True(t, sub.Publish(nodeUpdate("a")))

	select {
	case <-sub.Done():
	case <-time.After(time.Second):
		t.Fatal("subscriber did not finish after write error")
	}
	assert.ErrorIs(t, sub.Err(), wantErr)
	assert.False(t, sub.Publish(nodeUpdate("b")), "publish after DONE must report false")
}

func TestSubscriberFinishIsTerminal(t *testing.T) {
	block := make(chan struct{})
	sub := NewSubscriber(testLogger(), func(u *orgpb.Update) error {
		<-block
		return nil
	})

	require.True(t, sub.Publish(nodeUpdate("a")))
	sub.Finish(nil)
	sub.Finish(errors.New("second finish must be ignored"))
	close(block)

	select {
	case <-sub.Done():
	case <-time.After(time.Second):
		t.Fatal("Done not closed after Finish")
	}
	assert.NoError(t, sub.Err())
	assert.False(t, sub.Publish(nodeUpdate("b")))
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "READY", StateReady.String())
	assert.Equal(t, "WAITING_ON_WRITE", StateWaitingOnWrite.String())
	assert.Equal(t, "DONE", StateDone.String())
}
