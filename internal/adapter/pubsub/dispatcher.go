// Package pubsub couples the mutation services to the subscriber registry
// through an in-process watermill bus. Services publish committed updates to
// the updates topic; a router handler fans them into the hub. The bus keeps
// unary handlers decoupled from subscriber delivery.
package pubsub

import (
	"context"
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/protoadapt"

	orgpb "github.com/dayward/organizer/gen/go/organizer/v1"
)

// UpdatesTopic carries marshaled orgpb.Update messages.
const UpdatesTopic = "organizer.updates"

// Dispatcher is the publish side of the updates bus.
type Dispatcher struct {
	publisher message.Publisher
}

func NewDispatcher(publisher message.Publisher) *Dispatcher {
	return &Dispatcher{publisher: publisher}
}

func (d *Dispatcher) Publish(ctx context.Context, u *orgpb.Update) error {
	if u == nil {
		return fmt.Errorf("pubsub: cannot publish nil update")
	}
	payload, err := proto.Marshal(protoadapt.MessageV2Of(u))
	if err != nil {
		return fmt.Errorf("pubsub: marshal update: %w", err)
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.SetContext(ctx)

	if err := d.publisher.Publish(UpdatesTopic, msg); err != nil {
		return fmt.Errorf("pubsub: publish update: %w", err)
	}
	return nil
}

// DecodeUpdate unmarshals a bus payload back into the wire message.
func DecodeUpdate(payload []byte) (*orgpb.Update, error) {
	u := &orgpb.Update{}
	if err := proto.Unmarshal(payload, protoadapt.MessageV2Of(u)); err != nil {
		return nil, fmt.Errorf("pubsub: unmarshal update: %w", err)
	}
	return u, nil
}
