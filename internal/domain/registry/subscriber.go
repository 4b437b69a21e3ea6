package registry

import (
	"errors"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	orgpb "github.com/dayward/organizer/gen/go/organizer/v1"
)

// ErrHubDraining terminates subscriptions when the server shuts down.
var ErrHubDraining = errors.New("registry: hub draining")

// State of a subscription. Initial READY, terminal DONE.
type State int32

const (
	StateReady State = iota
	StateWaitingOnWrite
	StateDone
)

func (s State) String() string {
	switch s {
	case StateReady:
		return "READY"
	case StateWaitingOnWrite:
		return "WAITING_ON_WRITE"
	case StateDone:
		return "DONE"
	}
	return "UNKNOWN"
}

// WriteFunc pushes one update onto the transport. It blocks until the write
// completes; the subscriber guarantees it is never invoked concurrently.
type WriteFunc func(*orgpb.Update) error

// Subscriber is the per-stream subscription reactor. It owns a FIFO queue of
// pending updates and serializes transport writes: at most one write is in
// flight, and the queue head is popped only when its write completes.
//
// The mutex guards state and queue only; transport writes run unlocked on a
// dedicated writer goroutine, kicked on the READY -> WAITING_ON_WRITE edge.
type Subscriber struct {
	id        uuid.UUID
	logger    *slog.Logger
	write     WriteFunc
	warnDepth int

	mu    sync.Mutex
	state State
	queue []*orgpb.Update
	err   error

	kick chan struct{}
	done chan struct{}
}

var _ Publisher = (*Subscriber)(nil)

// Option configures a Subscriber.
type Option func(*Subscriber)

// WithQueueWarnDepth logs a warning when the pending queue crosses the given
// depth. Zero disables the warning. Queue growth itself stays unbounded;
// slow consumers are the publisher's problem.
func WithQueueWarnDepth(n int) Option {
	return func(s *Subscriber) {
		s.warnDepth = n
	}
}

func NewSubscriber(logger *slog.Logger, write WriteFunc, opts ...Option) *Subscriber {
	s := &Subscriber{
		id:    uuid.New(),
		write: write,
		kick:  make(chan struct{}, 1),
		done:  make(chan struct{}),
		state: StateReady,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = logger.With(slog.String("subscription_id", s.id.String()))
	go s.loop()
	return s
}

func (s *Subscriber) ID() uuid.UUID { return s.id }

// Publish enqueues the update. On the READY -> WAITING_ON_WRITE edge it kicks
// the writer; if a write is already pending the writer picks the update up on
// its own. Reports false once the subscription is DONE.
func (s *Subscriber) Publish(u *orgpb.Update) bool {
	s.mu.Lock()
	if s.state == StateDone {
		s.mu.Unlock()
		return false
	}
	s.queue = append(s.queue, u)
	depth := len(s.queue)
	start := s.state == StateReady
	if start {
		s.state = StateWaitingOnWrite
	}
	s.mu.Unlock()

	if s.warnDepth > 0 && depth == s.warnDepth {
		s.logger.Warn("subscriber queue depth threshold reached", slog.Int("depth", depth))
	}

	if start {
		select {
		case s.kick <- struct{}{}:
		default:
		}
	}
	return true
}

// Finish transitions to DONE from any state. Safe to call repeatedly and
// concurrently with Publish; pending updates are dropped.
func (s *Subscriber) Finish(err error) {
	s.mu.Lock()
	if s.state == StateDone {
		s.mu.Unlock()
		return
	}
	s.state = StateDone
	s.err = err
	s.mu.Unlock()
	close(s.done)
}

// Done is closed when the subscription reaches its terminal state.
func (s *Subscriber) Done() <-chan struct{} { return s.done }

// Err returns the terminal error, if any. Valid after Done is closed.
func (s *Subscriber) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// QueueLen reports the number of pending updates, including the one whose
// write is in flight.
func (s *Subscriber) QueueLen() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.queue)
}

func (s *Subscriber) loop() {
	for {
		select {
		case <-s.done:
			return
		case <-s.kick:
		}

		for {
			s.mu.Lock()
			if s.state != StateWaitingOnWrite || len(s.queue) == 0 {
				s.mu.Unlock()
				break
			}
			head := s.queue[0]
			s.mu.Unlock()

			err := s.write(head)
			if !s.writeDone(err) {
				return
			}
		}
	}
}

// writeDone applies the write_done transition. The head is popped here, not
// when the write starts, so a future version could re-queue on failure.
// Returns false when the subscription reached DONE.
func (s *Subscriber) writeDone(err error) bool {
	s.mu.Lock()
	if s.state == StateDone {
		// Finished (cancel or drain) while the write was in flight.
		s.mu.Unlock()
		return false
	}
	if err != nil {
		s.state = StateDone
		s.err = err
		s.mu.Unlock()
		s.logger.Warn("stream write failed, finishing subscription", slog.Any("err", err))
		close(s.done)
		return false
	}
	s.queue = s.queue[1:]
	if len(s.queue) == 0 {
		s.state = StateReady
	}
	s.mu.Unlock()
	return true
}
