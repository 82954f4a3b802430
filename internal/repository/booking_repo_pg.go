package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kletskov/flightbooking/internal/domain"
)

var ErrBookingNotFound = errors.New("booking not found")

type BookingRepository interface {
	Save(ctx context.Context, booking *domain.Booking) error
	GetByOutboundPNR(ctx context.Context, pnr string) (*domain.Booking, error)
	GetByReturnPNR(ctx context.Context, pnr string) (*domain.Booking, error)
	ListByContactEmail(ctx context.Context, email string) ([]domain.Booking, error)
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error)
}

type PGBookingRepository struct {
	db *pgxpool.Pool
}

func NewBookingRepository(db *pgxpool.Pool) BookingRepository {
	return &PGBookingRepository{db: db}
}

const bookingColumns = `id, trip_type, outbound_flight_id, return_flight_id, pnr_outbound, pnr_return, contact_name, contact_email, total_passengers, status, created_at, updated_at`

func (r *PGBookingRepository) Save(ctx context.Context, booking *domain.Booking) error {
	if booking.ID == "" {
		booking.ID = uuid.NewString()
	}
	return r.db.QueryRow(ctx, `INSERT INTO bookings (id, trip_type, outbound_flight_id, return_flight_id, pnr_outbound, pnr_return, contact_name, contact_email, total_passengers, status)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5, NULLIF($6, ''), $7, $8, $9, $10)
		RETURNING created_at, updated_at`,
		booking.ID, booking.TripType, booking.OutboundFlightID, booking.ReturnFlightID,
		booking.PNROutbound, booking.PNRReturn, booking.ContactName, booking.ContactEmail,
		booking.TotalPassengers, booking.Status).
		Scan(&booking.CreatedAt, &booking.UpdatedAt)
}

func (r *PGBookingRepository) GetByOutboundPNR(ctx context.Context, pnr string) (*domain.Booking, error) {
	row := r.db.QueryRow(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE pnr_outbound=$1`, pnr)
	return scanBooking(row)
}

func (r *PGBookingRepository) GetByReturnPNR(ctx context.Context, pnr string) (*domain.Booking, error) {
	row := r.db.QueryRow(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE pnr_return=$1`, pnr)
	return scanBooking(row)
}

func (r *PGBookingRepository) ListByContactEmail(ctx context.Context, email string) ([]domain.Booking, error) {
	rows, err := r.db.Query(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE contact_email=$1`, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := make([]domain.Booking, 0)
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, *b)
	}
	return bookings, rows.Err()
}

func (r *PGBookingRepository) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error) {
	row := r.db.QueryRow(ctx, `UPDATE bookings SET status=$1, updated_at=now() WHERE id=$2 RETURNING `+bookingColumns, status, id)
	return scanBooking(row)
}

func scanBooking(row pgx.Row) (*domain.Booking, error) {
	var b domain.Booking
	var returnFlightID, pnrReturn *string
	if err := row.Scan(&b.ID, &b.TripType, &b.OutboundFlightID, &returnFlightID, &b.PNROutbound, &pnrReturn,
		&b.ContactName, &b.ContactEmail, &b.TotalPassengers, &b.Status, &b.CreatedAt, &b.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	if returnFlightID != nil {
		b.ReturnFlightID = *returnFlightID
	}
	if pnrReturn != nil {
		b.PNRReturn = *pnrReturn
	}
	return &b, nil
}

var _ BookingRepository = (*PGBookingRepository)(nil)
