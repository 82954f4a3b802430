package booking

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/kletskov/flightbooking/internal/domain"
	"github.com/kletskov/flightbooking/internal/inventory"
	"github.com/kletskov/flightbooking/internal/repository"
	"github.com/sirupsen/logrus"
)

type BookingUseCase interface {
	Book(ctx context.Context, flightID string, req *BookingRequest) (*domain.Booking, error)
	Cancel(ctx context.Context, pnr string) (string, error)
	History(ctx context.Context, email string) ([]domain.Booking, error)
}

type Cache interface {
	InvalidateTicket(ctx context.Context, booking *domain.Booking) error
}

type BookingRequest struct {
	ContactName    string             `json:"contactName" binding:"required"`
	ContactEmail   string             `json:"contactEmail" binding:"required,email"`
	TripType       domain.TripType    `json:"tripType"`
	ReturnFlightID string             `json:"returnFlightId"`
	Passengers     []PassengerRequest `json:"passengers" binding:"omitempty,dive"`
}

type PassengerRequest struct {
	Name         string        `json:"name" binding:"required"`
	Age          int           `json:"age"`
	Gender       domain.Gender `json:"gender" binding:"required"`
	Meal         domain.Meal   `json:"meal"`
	SeatOutbound string        `json:"seatOutbound"`
	SeatReturn   string        `json:"seatReturn"`
}

// BookingService owns the booking lifecycle end to end: it is the only
// component that writes Booking rows.
type BookingService struct {
	bookings   repository.BookingRepository
	passengers repository.PassengerRepository
	inventory  inventory.InventoryLookup
	effects    *SideEffects
	cache      Cache
}

type BookingServiceOption func(*BookingService)

func WithCache(cache Cache) BookingServiceOption {
	return func(s *BookingService) {
		s.cache = cache
	}
}

func NewBookingService(
	bookings repository.BookingRepository,
	passengers repository.PassengerRepository,
	inv inventory.InventoryLookup,
	effects *SideEffects,
	opts ...BookingServiceOption,
) *BookingService {
	service := &BookingService{
		bookings:   bookings,
		passengers: passengers,
		inventory:  inv,
		effects:    effects,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// Book drives the creation sequence: validate, fetch flight snapshots, check
// capacity, persist the booking, reserve seats, persist passengers, emit side
// effects. Local validation runs before any remote call is made.
func (s *BookingService) Book(ctx context.Context, flightID string, req *BookingRequest) (*domain.Booking, error) {
	if err := validateManifestPresent(req); err != nil {
		return nil, err
	}
	if err := validateTripType(req); err != nil {
		return nil, err
	}

	count := len(req.Passengers)
	roundTrip := req.ReturnFlightID != ""

	outbound, err := s.inventory.GetFlight(ctx, flightID)
	if err != nil {
		return nil, err
	}
	if outbound == nil {
		return nil, domain.NewNotFoundError("Outbound flight not found")
	}

	var returnFlight *domain.FlightSnapshot
	if roundTrip {
		returnFlight, err = s.inventory.GetFlight(ctx, req.ReturnFlightID)
		if err != nil {
			return nil, err
		}
		if returnFlight == nil {
			return nil, domain.NewNotFoundError("Return flight not found")
		}
	}

	if err := validateSeatCapacity(outbound.AvailableSeats, count); err != nil {
		return nil, err
	}
	if roundTrip {
		if err := validateSeatCapacity(returnFlight.AvailableSeats, count); err != nil {
			return nil, err
		}
	}
	if err := validatePassengers(req, roundTrip); err != nil {
		return nil, err
	}

	booking := &domain.Booking{
		TripType:         req.TripType,
		OutboundFlightID: flightID,
		ReturnFlightID:   req.ReturnFlightID,
		PNROutbound:      newPNR(),
		ContactName:      req.ContactName,
		ContactEmail:     req.ContactEmail,
		TotalPassengers:  count,
		Status:           domain.BookingStatusConfirmed,
	}
	if roundTrip {
		booking.PNRReturn = newPNR()
	}

	// The booking row is persisted before seats are reserved so the passenger
	// rows can reference its id. A reservation failure below leaves the
	// CONFIRMED row in place without a matching reservation.
	if err := s.bookings.Save(ctx, booking); err != nil {
		return nil, err
	}

	if err := s.inventory.ReserveSeats(ctx, flightID, count); err != nil {
		return nil, err
	}
	if roundTrip {
		if err := s.inventory.ReserveSeats(ctx, req.ReturnFlightID, count); err != nil {
			return nil, err
		}
	}

	if err := s.passengers.SaveAll(ctx, toPassengers(req, booking.ID)); err != nil {
		return nil, err
	}

	s.effects.Emit(ctx, booking, domain.BookingEventBooked)
	return booking, nil
}

// Cancel marks a booking cancelled by its outbound PNR and releases seats on
// both legs. Cancellation is not idempotent: a second attempt is a caller
// error.
func (s *BookingService) Cancel(ctx context.Context, pnr string) (string, error) {
	booking, err := s.bookings.GetByOutboundPNR(ctx, pnr)
	if err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return "", domain.NewNotFoundError("PNR not found")
		}
		return "", err
	}
	if booking.Status == domain.BookingStatusCancelled {
		return "", domain.NewValidationError("Already cancelled")
	}

	updated, err := s.bookings.UpdateStatus(ctx, booking.ID, domain.BookingStatusCancelled)
	if err != nil {
		return "", err
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = s.inventory.ReleaseSeats(ctx, updated.OutboundFlightID, updated.TotalPassengers)
	}()
	if updated.IsRoundTrip() {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.inventory.ReleaseSeats(ctx, updated.ReturnFlightID, updated.TotalPassengers)
		}()
	}
	wg.Wait()

	if s.cache != nil {
		if err := s.cache.InvalidateTicket(ctx, updated); err != nil {
			logrus.WithError(err).WithField("booking_id", updated.ID).Warn("failed to invalidate ticket cache")
		}
	}

	s.effects.Emit(ctx, updated, domain.BookingEventCancelled)
	return "Booking cancelled", nil
}

// History lists bookings for a contact email in implementation-defined order.
func (s *BookingService) History(ctx context.Context, email string) ([]domain.Booking, error) {
	if strings.TrimSpace(email) == "" {
		return nil, domain.NewValidationError("Email cannot be empty")
	}
	return s.bookings.ListByContactEmail(ctx, email)
}

func toPassengers(req *BookingRequest, bookingID string) []domain.Passenger {
	passengers := make([]domain.Passenger, 0, len(req.Passengers))
	for _, p := range req.Passengers {
		passengers = append(passengers, domain.Passenger{
			BookingID:    bookingID,
			Name:         p.Name,
			Age:          p.Age,
			Gender:       p.Gender,
			Meal:         p.Meal,
			SeatOutbound: p.SeatOutbound,
			SeatReturn:   p.SeatReturn,
		})
	}
	return passengers
}

var _ BookingUseCase = (*BookingService)(nil)
