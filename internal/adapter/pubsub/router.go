package pubsub

import (
	"log/slog"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/dayward/organizer/internal/domain/registry"
)

// RegisterUpdateHandler routes the updates topic into the hub. Decode
// failures are logged and dropped; re-delivering a broken payload cannot
// help, and fan-out is best effort anyway.
func RegisterUpdateHandler(router *message.Router, sub message.Subscriber, hub registry.Hubber, logger *slog.Logger) {
	router.AddNoPublisherHandler(
		"updates-to-hub",
		UpdatesTopic,
		sub,
		func(msg *message.Message) error {
			u, err := DecodeUpdate(msg.Payload)
			if err != nil {
				logger.Error("dropping undecodable update", slog.Any("err", err))
				return nil
			}
			hub.Publish(u)
			return nil
		},
	)
}
