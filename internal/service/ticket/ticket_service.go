package ticket

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/kletskov/flightbooking/internal/domain"
	"github.com/kletskov/flightbooking/internal/repository"
	"github.com/sirupsen/logrus"
)

var pnrPattern = regexp.MustCompile(`^[A-Z0-9]+$`)

type TicketUseCase interface {
	GetTicketByPNR(ctx context.Context, pnr string) (*domain.Booking, error)
}

type Cache interface {
	GetTicket(ctx context.Context, pnr string) (*domain.Booking, error)
	SetTicket(ctx context.Context, pnr string, booking *domain.Booking) error
}

// TicketService resolves a booking by PNR, trying the outbound index first
// and falling back to the return index.
type TicketService struct {
	bookings repository.BookingRepository
	cache    Cache
}

func NewTicketService(bookings repository.BookingRepository, cache Cache) *TicketService {
	return &TicketService{bookings: bookings, cache: cache}
}

func (s *TicketService) GetTicketByPNR(ctx context.Context, pnr string) (*domain.Booking, error) {
	if strings.TrimSpace(pnr) == "" {
		return nil, domain.NewValidationError("PNR cannot be empty")
	}
	if len(pnr) != 6 {
		return nil, domain.NewValidationError("PNR must be exactly 6 characters")
	}
	if !pnrPattern.MatchString(pnr) {
		return nil, domain.NewValidationError("PNR must be alphanumeric")
	}

	if s.cache != nil {
		if cached, err := s.cache.GetTicket(ctx, pnr); err == nil && cached != nil {
			return cached, nil
		}
	}

	booking, err := s.bookings.GetByOutboundPNR(ctx, pnr)
	if errors.Is(err, repository.ErrBookingNotFound) {
		booking, err = s.bookings.GetByReturnPNR(ctx, pnr)
		if errors.Is(err, repository.ErrBookingNotFound) {
			return nil, domain.NewNotFoundError("PNR not found")
		}
	}
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetTicket(ctx, pnr, booking); err != nil {
			logrus.WithError(err).WithField("pnr", pnr).Warn("failed to cache ticket")
		}
	}
	return booking, nil
}

var _ TicketUseCase = (*TicketService)(nil)
