package events

import (
	"context"

	"github.com/kletskov/flightbooking/internal/domain"
)

type Producer interface {
	Publish(ctx context.Context, topic, key string, payload interface{}) error
}

// Publisher writes booking events to the event bus. Delivery guarantees
// belong to the bus; the core neither retries nor persists events.
type Publisher struct {
	producer Producer
	topic    string
}

func NewPublisher(producer Producer, topic string) *Publisher {
	return &Publisher{producer: producer, topic: topic}
}

func (p *Publisher) PublishBookingEvent(ctx context.Context, event domain.BookingEvent) error {
	if p.producer == nil || p.topic == "" {
		return nil
	}
	return p.producer.Publish(ctx, p.topic, event.BookingID, event)
}
