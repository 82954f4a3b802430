package inventory

import (
	"errors"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

var ErrBreakerOpen = errors.New("circuit breaker is open")

type breakerState int

const (
	stateClosed breakerState = iota
	stateOpen
	stateHalfOpen
)

// Breaker is an explicit closed/open/half-open circuit breaker shared by one
// family of remote operations. It is injected into the client rather than
// managed by any global registry.
type Breaker struct {
	mu sync.Mutex

	maxFailures int
	openFor     time.Duration
	halfOpenMax int

	state        breakerState
	failures     int
	halfOpenHits int
	openedAt     time.Time

	now func() time.Time
}

func NewBreaker(maxFailures int, openFor time.Duration, halfOpenMax int) *Breaker {
	if maxFailures <= 0 {
		maxFailures = 5
	}
	if openFor <= 0 {
		openFor = 30 * time.Second
	}
	if halfOpenMax <= 0 {
		halfOpenMax = 1
	}
	return &Breaker{
		maxFailures: maxFailures,
		openFor:     openFor,
		halfOpenMax: halfOpenMax,
		now:         time.Now,
	}
}

// Allow reports whether a call may proceed. In the open state it returns
// ErrBreakerOpen until the open window elapses, then admits a bounded number
// of probe calls in half-open state.
func (b *Breaker) Allow() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case stateClosed:
		return nil
	case stateOpen:
		if b.now().Sub(b.openedAt) < b.openFor {
			return ErrBreakerOpen
		}
		b.state = stateHalfOpen
		b.halfOpenHits = 0
		logrus.Info("inventory breaker: open -> half-open")
		fallthrough
	case stateHalfOpen:
		if b.halfOpenHits >= b.halfOpenMax {
			return ErrBreakerOpen
		}
		b.halfOpenHits++
		return nil
	}
	return nil
}

func (b *Breaker) RecordSuccess() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == stateHalfOpen {
		logrus.Info("inventory breaker: half-open -> closed")
	}
	b.state = stateClosed
	b.failures = 0
}

func (b *Breaker) RecordFailure() {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case stateHalfOpen:
		b.trip()
	case stateClosed:
		b.failures++
		if b.failures >= b.maxFailures {
			b.trip()
		}
	}
}

func (b *Breaker) trip() {
	b.state = stateOpen
	b.openedAt = b.now()
	b.failures = 0
	logrus.Warn("inventory breaker: tripped open")
}
