package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kletskov/flightbooking/internal/domain"
)

type PassengerRepository interface {
	SaveAll(ctx context.Context, passengers []domain.Passenger) error
	ListByBookingID(ctx context.Context, bookingID string) ([]domain.Passenger, error)
}

type PGPassengerRepository struct {
	db *pgxpool.Pool
}

func NewPassengerRepository(db *pgxpool.Pool) PassengerRepository {
	return &PGPassengerRepository{db: db}
}

func (r *PGPassengerRepository) SaveAll(ctx context.Context, passengers []domain.Passenger) error {
	if len(passengers) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for i := range passengers {
		p := &passengers[i]
		if p.ID == "" {
			p.ID = uuid.NewString()
		}
		batch.Queue(`INSERT INTO passengers (id, booking_id, name, age, gender, meal, seat_outbound, seat_return)
			VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), $7, NULLIF($8, ''))`,
			p.ID, p.BookingID, p.Name, p.Age, p.Gender, string(p.Meal), p.SeatOutbound, p.SeatReturn)
	}

	results := r.db.SendBatch(ctx, batch)
	defer results.Close()

	for range passengers {
		if _, err := results.Exec(); err != nil {
			return err
		}
	}
	return nil
}

func (r *PGPassengerRepository) ListByBookingID(ctx context.Context, bookingID string) ([]domain.Passenger, error) {
	rows, err := r.db.Query(ctx, `SELECT id, booking_id, name, age, gender, COALESCE(meal, ''), seat_outbound, COALESCE(seat_return, '') FROM passengers WHERE booking_id=$1`, bookingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	passengers := make([]domain.Passenger, 0)
	for rows.Next() {
		var p domain.Passenger
		if err := rows.Scan(&p.ID, &p.BookingID, &p.Name, &p.Age, &p.Gender, &p.Meal, &p.SeatOutbound, &p.SeatReturn); err != nil {
			return nil, err
		}
		passengers = append(passengers, p)
	}
	return passengers, rows.Err()
}

var _ PassengerRepository = (*PGPassengerRepository)(nil)
