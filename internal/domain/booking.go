package domain

import "time"

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
)

type TripType string

const (
	TripTypeOneWay    TripType = "ONE_WAY"
	TripTypeRoundTrip TripType = "ROUND_TRIP"
)

// Booking is the persisted, authoritative record of a reservation. It is
// created in CONFIRMED status together with its PNR codes and transitions at
// most once to CANCELLED; rows are never deleted.
type Booking struct {
	ID               string        `json:"bookingId"`
	TripType         TripType      `json:"tripType"`
	OutboundFlightID string        `json:"outboundFlightId"`
	ReturnFlightID   string        `json:"returnFlightId,omitempty"`
	PNROutbound      string        `json:"pnrOutbound"`
	PNRReturn        string        `json:"pnrReturn,omitempty"`
	ContactName      string        `json:"contactName"`
	ContactEmail     string        `json:"contactEmail"`
	TotalPassengers  int           `json:"totalPassengers"`
	Status           BookingStatus `json:"status"`
	CreatedAt        time.Time     `json:"-"`
	UpdatedAt        time.Time     `json:"-"`
}

func (b *Booking) IsRoundTrip() bool {
	return b.ReturnFlightID != ""
}
