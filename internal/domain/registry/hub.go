// Package registry implements the live-update fan-out: a hub of streaming
// subscribers and the per-stream subscription reactor.
//
// The hub is a flat set of subscriptions keyed by subscription id. Publishing
// snapshots the current membership under the lock and delivers unlocked, so a
// slow subscriber never blocks registration or other deliveries, and the hub
// lock never nests inside a subscriber's own lock.
package registry

import (
	"log/slog"
	"sync"

	"github.com/google/uuid"

	orgpb "github.com/dayward/organizer/gen/go/organizer/v1"
)

// Publisher is the capability the hub needs from a live subscription:
// an identity and a best-effort publish. Publish reports false once the
// subscription has finished; the hub silently skips such handles.
type Publisher interface {
	ID() uuid.UUID
	Publish(u *orgpb.Update) bool
	Finish(err error)
}

// Hubber is the registry gateway used by the dispatcher and the stream
// handlers.
type Hubber interface {
	Add(p Publisher)
	Remove(id uuid.UUID)
	Publish(u *orgpb.Update)
	Drain()
	Len() int
}

type Hub struct {
	logger *slog.Logger

	mu     sync.Mutex
	subs   map[uuid.UUID]Publisher
	closed bool
}

var _ Hubber = (*Hub)(nil)

func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		logger: logger,
		subs:   make(map[uuid.UUID]Publisher),
	}
}

// Add registers a subscription. Idempotent for the same id; a no-op after
// Drain so late subscribers cannot outlive the server.
func (h *Hub) Add(p Publisher) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		p.Finish(ErrHubDraining)
		return
	}
	h.subs[p.ID()] = p
}

// Remove erases a subscription. No-op if the id is unknown.
func (h *Hub) Remove(id uuid.UUID) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.subs, id)
}

// Publish fans the update out to every live subscription. Membership is
// snapshotted first; delivery happens without the hub lock.
func (h *Hub) Publish(u *orgpb.Update) {
	h.mu.Lock()
	snapshot := make([]Publisher, 0, len(h.subs))
	for _, p := range h.subs {
		snapshot = append(snapshot, p)
	}
	h.mu.Unlock()

	h.logger.Debug("publishing update", slog.Int("subscribers", len(snapshot)))

	for _, p := range snapshot {
		if !p.Publish(u) {
			// Finished between snapshot and delivery; its stream handler
			// removes it.
			h.logger.Debug("skipping finished subscriber", slog.String("id", p.ID().String()))
		}
	}
}

// Drain finishes every live subscription and refuses new ones. Called on
// shutdown after the gRPC server stopped accepting RPCs, so the underlying
// streams are not written to after the server is released.
func (h *Hub) Drain() {
	h.mu.Lock()
	h.closed = true
	snapshot := make([]Publisher, 0, len(h.subs))
	for _, p := range h.subs {
		snapshot = append(snapshot, p)
	}
	h.subs = make(map[uuid.UUID]Publisher)
	h.mu.Unlock()

	for _, p := range snapshot {
		p.Finish(ErrHubDraining)
	}
}

// Len reports the current number of live subscriptions.
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}
