package notify

import (
	"context"

	"github.com/kletskov/flightbooking/internal/domain"
)

type Producer interface {
	Publish(ctx context.Context, topic, key string, payload interface{}) error
}

// Notifier hands booking notifications to the notifications topic, where the
// worker picks them up and sends email. It is a no-op unless notifications are
// administratively enabled and the booking carries a contact email.
type Notifier struct {
	producer Producer
	topic    string
	enabled  bool
}

func NewNotifier(producer Producer, topic string, enabled bool) *Notifier {
	return &Notifier{producer: producer, topic: topic, enabled: enabled}
}

func (n *Notifier) Notify(ctx context.Context, booking *domain.Booking, eventType domain.BookingEventType) error {
	if !n.enabled || n.topic == "" || booking == nil || booking.ContactEmail == "" {
		return nil
	}
	event := domain.NewBookingEvent(booking, eventType)
	return n.producer.Publish(ctx, n.topic, booking.ID, event)
}
