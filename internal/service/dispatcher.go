package service

import (
	"context"

	orgpb "github.com/dayward/organizer/gen/go/organizer/v1"
)

// UpdateDispatcher hands a committed mutation to the fan-out pipeline.
// Implemented by the pubsub adapter; delivery to subscribers is best effort.
type UpdateDispatcher interface {
	Publish(ctx context.Context, u *orgpb.Update) error
}
