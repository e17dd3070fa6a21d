package identity

import (
	"context"
	"encoding/json"

	"fikrswap-academy-be/internal/pkg/logger"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

const authEventsTopic = "auth.events"

// EventBus carries auth events in-process on a watermill go-channel
// pub/sub. Every subscriber gets its own delivery of each event.
type EventBus struct {
	pubsub *gochannel.GoChannel
	logger logger.ILogger
}

func NewEventBus(log logger.ILogger) *EventBus {
	ps := gochannel.NewGoChannel(gochannel.Config{
		OutputChannelBuffer: 64,
	}, watermill.NopLogger{})
	return &EventBus{
		pubsub: ps,
		logger: log,
	}
}

func (b *EventBus) Publish(event AuthEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	return b.pubsub.Publish(authEventsTopic, msg)
}

// Subscribe registers a handler for every subsequent auth event. The
// returned Unsubscribe stops delivery; handlers run serially per
// subscriber.
func (b *EventBus) Subscribe(handler func(AuthEvent)) Unsubscribe {
	ctx, cancel := context.WithCancel(context.Background())
	messages, err := b.pubsub.Subscribe(ctx, authEventsTopic)
	if err != nil {
		cancel()
		b.logger.Error("identity.bus", "subscribe failed", map[string]interface{}{
			"error": err.Error(),
		})
		return func() {}
	}

	go func() {
		for msg := range messages {
			var event AuthEvent
			if err := json.Unmarshal(msg.Payload, &event); err != nil {
				b.logger.Warn("identity.bus", "dropping malformed auth event", map[string]interface{}{
					"error": err.Error(),
				})
				msg.Ack()
				continue
			}
			handler(event)
			msg.Ack()
		}
	}()

	return func() { cancel() }
}

func (b *EventBus) Close() error {
	return b.pubsub.Close()
}
