package booking

import (
	"context"
	"sync"

	"github.com/kletskov/flightbooking/internal/domain"
	"github.com/sirupsen/logrus"
)

type EventPublisher interface {
	PublishBookingEvent(ctx context.Context, event domain.BookingEvent) error
}

type NotificationSender interface {
	Notify(ctx context.Context, booking *domain.Booking, eventType domain.BookingEventType) error
}

// SideEffects fans a booking change out to the event bus and the notification
// sender. Both are always attempted and awaited; individual failures are
// logged and never reach the caller.
type SideEffects struct {
	events   EventPublisher
	notifier NotificationSender
}

func NewSideEffects(events EventPublisher, notifier NotificationSender) *SideEffects {
	return &SideEffects{events: events, notifier: notifier}
}

func (s *SideEffects) Emit(ctx context.Context, booking *domain.Booking, eventType domain.BookingEventType) {
	event := domain.NewBookingEvent(booking, eventType)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		if s.events == nil {
			return
		}
		if err := s.events.PublishBookingEvent(ctx, event); err != nil {
			logrus.WithError(err).WithField("booking_id", booking.ID).Error("failed to publish booking event")
		}
	}()
	go func() {
		defer wg.Done()
		if s.notifier == nil {
			return
		}
		if err := s.notifier.Notify(ctx, booking, eventType); err != nil {
			logrus.WithError(err).WithField("booking_id", booking.ID).Error("failed to send booking notification")
		}
	}()
	wg.Wait()
}
