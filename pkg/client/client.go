// Package client is a thin Go client for the organizer API. It has an
// explicit lifecycle: calls deferred before Connect are queued (bounded) and
// drained in order once the connection is up, and no call survives Close.
package client

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"

	orgpb "github.com/dayward/organizer/gen/go/organizer/v1"
)

// Lifecycle state. Constructed until Connect succeeds, Closed is terminal.
type State int32

const (
	StateConstructed State = iota
	StateConnected
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateConstructed:
		return "CONSTRUCTED"
	case StateConnected:
		return "CONNECTED"
	case StateClosed:
		return "CLOSED"
	}
	return "UNKNOWN"
}

var (
	ErrNotConnected = errors.New("client: not connected")
	ErrClosed       = errors.New("client: closed")
	ErrPendingFull  = errors.New("client: pending queue full")
)

const defaultMaxPending = 64

// Call runs against a live connection. Deferred calls receive the api handle
// when the connection comes up.
type Call func(ctx context.Context, api orgpb.OrganizerClient) error

type Client struct {
	target     string
	user       uuid.UUID
	tenant     uuid.UUID
	maxPending int
	dialOpts   []grpc.DialOption

	mu      sync.Mutex
	state   State
	conn    *grpc.ClientConn
	api     orgpb.OrganizerClient
	pending []Call
}

type Option func(*Client)

// WithIdentity sets the caller identity attached to every request. The
// tenant may be uuid.Nil.
func WithIdentity(user, tenant uuid.UUID) Option {
	return func(c *Client) {
		c.user = user
		c.tenant = tenant
	}
}

// WithMaxPending bounds the deferred-call queue.
func WithMaxPending(n int) Option {
	return func(c *Client) {
		c.maxPending = n
	}
}

// WithDialOptions appends extra dial options (custom resolvers, in-memory
// listeners in tests).
func WithDialOptions(opts ...grpc.DialOption) Option {
	return func(c *Client) {
		c.dialOpts = append(c.dialOpts, opts...)
	}
}

func New(target string, opts ...Option) *Client {
	c := &Client{
		target:     target,
		maxPending: defaultMaxPending,
		state:      StateConstructed,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Connect dials the server and drains the deferred-call queue in order. The
// first deferred call that fails aborts the drain and is returned; the rest
// of the queue is dropped.
func (c *Client) Connect(ctx context.Context) error {
	c.mu.Lock()
	if c.state == StateClosed {
		c.mu.Unlock()
		return ErrClosed
	}
	if c.state == StateConnected {
		c.mu.Unlock()
		return nil
	}
	c.mu.Unlock()

	dialOpts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	}, c.dialOpts...)
	conn, err := grpc.NewClient(c.target, dialOpts...)
	if err != nil {
		return fmt.Errorf("client: dial %s: %w", c.target, err)
	}

	c.mu.Lock()
	if c.state == StateClosed {
		c.mu.Unlock()
		conn.Close()
		return ErrClosed
	}
	c.conn = conn
	c.api = orgpb.NewOrganizerClient(conn)
	c.state = StateConnected
	queued := c.pending
	c.pending = nil
	c.mu.Unlock()

	for _, call := range queued {
		if err := call(c.withIdentity(ctx), c.api); err != nil {
			return fmt.Errorf("client: deferred call: %w", err)
		}
	}
	return nil
}

// Close releases the connection. Deferred calls that never ran are dropped.
func (c *Client) Close() error {
	c.mu.Lock()
	if c.state == StateClosed {
		c.mu.Unlock()
		return nil
	}
	c.state = StateClosed
	conn := c.conn
	c.conn = nil
	c.api = nil
	c.pending = nil
	c.mu.Unlock()

	if conn != nil {
		return conn.Close()
	}
	return nil
}

// Defer runs the call immediately when connected, otherwise queues it for
// the next Connect.
func (c *Client) Defer(ctx context.Context, call Call) error {
	c.mu.Lock()
	switch c.state {
	case StateClosed:
		c.mu.Unlock()
		return ErrClosed
	case StateConstructed:
		if len(c.pending) >= c.maxPending {
			c.mu.Unlock()
			return ErrPendingFull
		}
		c.pending = append(c.pending, call)
		c.mu.Unlock()
		return nil
	}
	api := c.api
	c.mu.Unlock()
	return call(c.withIdentity(ctx), api)
}

// PendingLen reports the number of queued deferred calls.
func (c *Client) PendingLen() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.pending)
}

func (c *Client) withIdentity(ctx context.Context) context.Context {
	if c.user == uuid.Nil {
		return ctx
	}
	pairs := []string{"x-org-user", c.user.String()}
	if c.tenant != uuid.Nil {
		pairs = append(pairs, "x-org-tenant", c.tenant.String())
	}
	return metadata.AppendToOutgoingContext(ctx, pairs...)
}

func (c *Client) live() (orgpb.OrganizerClient, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch c.state {
	case StateClosed:
		return nil, ErrClosed
	case StateConstructed:
		return nil, ErrNotConnected
	}
	return c.api, nil
}
