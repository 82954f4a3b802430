package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/kletskov/flightbooking/config"
	"github.com/kletskov/flightbooking/internal/domain"
	"github.com/redis/go-redis/v9"
)

// TicketCache keeps resolved PNR lookups warm. Only persisted bookings go in
// here; flight availability is deliberately never cached.
type TicketCache struct {
	client    *redis.Client
	ticketTTL time.Duration
}

func NewTicketCache(cfg config.RedisConfig, ticketTTL time.Duration) *TicketCache {
	return &TicketCache{
		client:    redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		ticketTTL: ticketTTL,
	}
}

func (c *TicketCache) GetTicket(ctx context.Context, pnr string) (*domain.Booking, error) {
	data, err := c.client.Get(ctx, ticketKey(pnr)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var booking domain.Booking
	if err := json.Unmarshal(data, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

func (c *TicketCache) SetTicket(ctx context.Context, pnr string, booking *domain.Booking) error {
	payload, err := json.Marshal(booking)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, ticketKey(pnr), payload, c.ticketTTL).Err()
}

// InvalidateTicket drops both PNR entries of a booking, used when its status
// changes.
func (c *TicketCache) InvalidateTicket(ctx context.Context, booking *domain.Booking) error {
	keys := []string{ticketKey(booking.PNROutbound)}
	if booking.PNRReturn != "" {
		keys = append(keys, ticketKey(booking.PNRReturn))
	}
	return c.client.Del(ctx, keys...).Err()
}

func ticketKey(pnr string) string {
	return fmt.Sprintf("cache:ticket:%s", pnr)
}
