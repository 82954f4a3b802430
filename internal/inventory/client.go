package inventory

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/kletskov/flightbooking/internal/domain"
	"github.com/sirupsen/logrus"
)

// InventoryLookup is the collaborator contract for the remote flight
// inventory service consumed by the booking orchestrator.
type InventoryLookup interface {
	GetFlight(ctx context.Context, flightID string) (*domain.FlightSnapshot, error)
	ReserveSeats(ctx context.Context, flightID string, count int) error
	ReleaseSeats(ctx context.Context, flightID string, count int) error
}

// Client talks to the flight inventory service over HTTP. Every call shares
// one circuit breaker and carries a fixed response timeout independent of the
// caller's deadline.
type Client struct {
	baseURL string
	http    *http.Client
	breaker *Breaker
}

func NewClient(baseURL string, timeout time.Duration, breaker *Breaker) *Client {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		breaker: breaker,
	}
}

// GetFlight resolves a flight by scanning the service's full listing; the
// inventory service offers no by-id lookup. A missing flight is (nil, nil),
// not an error.
func (c *Client) GetFlight(ctx context.Context, flightID string) (*domain.FlightSnapshot, error) {
	body, err := c.do(ctx, http.MethodGet, c.baseURL+"/api/flight/getAllFlights")
	if err != nil {
		return nil, domain.NewUnavailableError("FlightService unavailable", err)
	}

	var flights []domain.FlightSnapshot
	if err := json.Unmarshal(body, &flights); err != nil {
		return nil, domain.NewUnavailableError("FlightService unavailable", err)
	}

	for i := range flights {
		if flights[i].FlightID == flightID {
			return &flights[i], nil
		}
	}
	return nil, nil
}

// ReserveSeats is a hard failure: the orchestrator may already have persisted
// the booking, so the error must surface to the caller.
func (c *Client) ReserveSeats(ctx context.Context, flightID string, count int) error {
	url := fmt.Sprintf("%s/api/flight/%s/reserve?seats=%d", c.baseURL, flightID, count)
	if _, err := c.do(ctx, http.MethodPost, url); err != nil {
		return domain.NewUnavailableError("Seat reservation failed", err)
	}
	return nil
}

// ReleaseSeats is best-effort: it runs during cancellation after the booking
// is already marked cancelled, so failures are logged and swallowed.
func (c *Client) ReleaseSeats(ctx context.Context, flightID string, count int) error {
	url := fmt.Sprintf("%s/api/flight/%s/release?seats=%d", c.baseURL, flightID, count)
	if _, err := c.do(ctx, http.MethodPost, url); err != nil {
		logrus.WithError(err).WithField("flight_id", flightID).Warn("seat release failed")
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, url string) ([]byte, error) {
	if err := c.breaker.Allow(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.breaker.RecordFailure()
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.breaker.RecordFailure()
		return nil, err
	}
	if resp.StatusCode >= http.StatusBadRequest {
		c.breaker.RecordFailure()
		return nil, fmt.Errorf("inventory service returned %d", resp.StatusCode)
	}

	c.breaker.RecordSuccess()
	return body, nil
}

var _ InventoryLookup = (*Client)(nil)
