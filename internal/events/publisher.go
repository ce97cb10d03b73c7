package events

import (
	"context"
	"encoding/json"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/contractorpro/contractorpro/internal/logger"
	"github.com/contractorpro/contractorpro/internal/pubsub"
	"github.com/contractorpro/contractorpro/internal/types"
)

// Publisher publishes domain events after the state change they describe has committed
type Publisher interface {
	Publish(ctx context.Context, eventName string, payload interface{}) error
}

type publisher struct {
	pubSub pubsub.PubSub
	logger *logger.Logger
}

func NewPublisher(pubSub pubsub.PubSub, logger *logger.Logger) Publisher {
	return &publisher{
		pubSub: pubSub,
		logger: logger,
	}
}

// Publish uses the event name as the topic
func (p *publisher) Publish(ctx context.Context, eventName string, payload interface{}) error {
	event, err := NewEvent(eventName, types.GetUserID(ctx), payload)
	if err != nil {
		return err
	}

	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	msg := message.NewMessage(event.ID, body)
	msg.Metadata.Set("user_id", event.UserID)
	msg.Metadata.Set("request_id", types.GetRequestID(ctx))

	if err := p.pubSub.Publish(ctx, eventName, msg); err != nil {
		p.logger.Errorw("failed to publish event",
			"error", err,
			"event_id", event.ID,
			"event_name", eventName,
			"user_id", event.UserID,
		)
		return err
	}

	p.logger.Debugw("published event",
		"event_id", event.ID,
		"event_name", eventName,
		"user_id", event.UserID,
	)
	return nil
}
