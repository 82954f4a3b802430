package ticket

import (
	"context"
	"testing"

	"github.com/kletskov/flightbooking/internal/domain"
	"github.com/kletskov/flightbooking/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Save(ctx context.Context, booking *domain.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

func (m *MockBookingRepository) GetByOutboundPNR(ctx context.Context, pnr string) (*domain.Booking, error) {
	args := m.Called(ctx, pnr)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) GetByReturnPNR(ctx context.Context, pnr string) (*domain.Booking, error) {
	args := m.Called(ctx, pnr)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) ListByContactEmail(ctx context.Context, email string) ([]domain.Booking, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

type MockTicketCache struct {
	mock.Mock
}

func (m *MockTicketCache) GetTicket(ctx context.Context, pnr string) (*domain.Booking, error) {
	args := m.Called(ctx, pnr)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockTicketCache) SetTicket(ctx context.Context, pnr string, booking *domain.Booking) error {
	args := m.Called(ctx, pnr, booking)
	return args.Error(0)
}

func TestTicketService_GetTicketByPNR_FormatValidation(t *testing.T) {
	testCases := []struct {
		name        string
		pnr         string
		expectedErr string
	}{
		{name: "blank", pnr: "   ", expectedErr: "PNR cannot be empty"},
		{name: "empty", pnr: "", expectedErr: "PNR cannot be empty"},
		{name: "too short", pnr: "AB12", expectedErr: "PNR must be exactly 6 characters"},
		{name: "too long", pnr: "AB12CD3", expectedErr: "PNR must be exactly 6 characters"},
		{name: "lowercase", pnr: "ab12cd", expectedErr: "PNR must be alphanumeric"},
		{name: "special characters", pnr: "AB-2CD", expectedErr: "PNR must be alphanumeric"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &MockBookingRepository{}
			service := NewTicketService(repo, nil)

			booking, err := service.GetTicketByPNR(context.Background(), tc.pnr)

			assert.Error(t, err)
			assert.Nil(t, booking)
			var validationErr *domain.ValidationError
			assert.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tc.expectedErr, err.Error())
			repo.AssertNotCalled(t, "GetByOutboundPNR")
		})
	}
}

func TestTicketService_GetTicketByPNR_OutboundIndex(t *testing.T) {
	repo := &MockBookingRepository{}
	cache := &MockTicketCache{}
	service := NewTicketService(repo, cache)
	ctx := context.Background()

	booking := &domain.Booking{ID: "booking-1", PNROutbound: "AB12CD"}
	cache.On("GetTicket", ctx, "AB12CD").Return(nil, nil).Once()
	repo.On("GetByOutboundPNR", ctx, "AB12CD").Return(booking, nil).Once()
	cache.On("SetTicket", ctx, "AB12CD", booking).Return(nil).Once()

	result, err := service.GetTicketByPNR(ctx, "AB12CD")

	assert.NoError(t, err)
	assert.Equal(t, booking, result)
	repo.AssertNotCalled(t, "GetByReturnPNR")
	cache.AssertExpectations(t)
}

func TestTicketService_GetTicketByPNR_ReturnIndexFallback(t *testing.T) {
	repo := &MockBookingRepository{}
	service := NewTicketService(repo, nil)
	ctx := context.Background()

	booking := &domain.Booking{ID: "booking-2", PNROutbound: "AB12CD", PNRReturn: "EF34GH"}
	repo.On("GetByOutboundPNR", ctx, "EF34GH").Return(nil, repository.ErrBookingNotFound).Once()
	repo.On("GetByReturnPNR", ctx, "EF34GH").Return(booking, nil).Once()

	result, err := service.GetTicketByPNR(ctx, "EF34GH")

	assert.NoError(t, err)
	assert.Equal(t, booking, result)
	repo.AssertExpectations(t)
}

func TestTicketService_GetTicketByPNR_NotFound(t *testing.T) {
	repo := &MockBookingRepository{}
	service := NewTicketService(repo, nil)
	ctx := context.Background()

	repo.On("GetByOutboundPNR", ctx, "ZZ99ZZ").Return(nil, repository.ErrBookingNotFound).Once()
	repo.On("GetByReturnPNR", ctx, "ZZ99ZZ").Return(nil, repository.ErrBookingNotFound).Once()

	result, err := service.GetTicketByPNR(ctx, "ZZ99ZZ")

	assert.Error(t, err)
	assert.Nil(t, result)
	var notFoundErr *domain.NotFoundError
	assert.ErrorAs(t, err, &notFoundErr)
	assert.Equal(t, "PNR not found", err.Error())
}

func TestTicketService_GetTicketByPNR_CacheHit(t *testing.T) {
	repo := &MockBookingRepository{}
	cache := &MockTicketCache{}
	service := NewTicketService(repo, cache)
	ctx := context.Background()

	booking := &domain.Booking{ID: "booking-3", PNROutbound: "AB12CD"}
	cache.On("GetTicket", ctx, "AB12CD").Return(booking, nil).Once()

	result, err := service.GetTicketByPNR(ctx, "AB12CD")

	assert.NoError(t, err)
	assert.Equal(t, booking, result)
	repo.AssertNotCalled(t, "GetByOutboundPNR")
	repo.AssertNotCalled(t, "GetByReturnPNR")
}
