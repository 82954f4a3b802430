package domain

import "time"

type BookingEventType string

const (
	BookingEventBooked    BookingEventType = "BOOKED"
	BookingEventCancelled BookingEventType = "CANCELLED"
)

// BookingEvent is a denormalized projection of a booking emitted to the event
// bus. It has no persisted identity and is not retried by the core.
type BookingEvent struct {
	EventType        BookingEventType `json:"eventType"`
	BookingID        string           `json:"bookingId"`
	PNROutbound      string           `json:"pnrOutbound"`
	PNRReturn        string           `json:"pnrReturn,omitempty"`
	OutboundFlightID string           `json:"outboundFlightId"`
	ReturnFlightID   string           `json:"returnFlightId,omitempty"`
	ContactName      string           `json:"contactName"`
	ContactEmail     string           `json:"contactEmail"`
	TotalPassengers  int              `json:"totalPassengers"`
	Status           BookingStatus    `json:"status"`
	TripType         TripType         `json:"tripType"`
	OccurredAt       time.Time        `json:"occurredAt"`
}

// NewBookingEvent projects a booking into an event of the given type.
func NewBookingEvent(b *Booking, eventType BookingEventType) BookingEvent {
	return BookingEvent{
		EventType:        eventType,
		BookingID:        b.ID,
		PNROutbound:      b.PNROutbound,
		PNRReturn:        b.PNRReturn,
		OutboundFlightID: b.OutboundFlightID,
		ReturnFlightID:   b.ReturnFlightID,
		ContactName:      b.ContactName,
		ContactEmail:     b.ContactEmail,
		TotalPassengers:  b.TotalPassengers,
		Status:           b.Status,
		TripType:         b.TripType,
		OccurredAt:       time.Now().UTC(),
	}
}
