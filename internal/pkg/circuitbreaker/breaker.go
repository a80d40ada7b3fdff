// Package circuitbreaker stops calling an upstream that keeps failing and probes it again after
// a cool-down.
package circuitbreaker

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/piresc/transferflow/internal/pkg/logger"
)

var (
	// ErrOpen is returned without calling the upstream while the breaker is open
	ErrOpen = errors.New("circuit breaker is open")
	// ErrTooManyRequests is returned when the half-open probe budget is used up
	ErrTooManyRequests = errors.New("too many requests in half-open state")
)

// State of a breaker
type State int

const (
	StateClosed State = iota
	StateOpen
	StateHalfOpen
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpen:
		return "open"
	case StateHalfOpen:
		return "half_open"
	default:
		return "unknown"
	}
}

// Config tunes a breaker
type Config struct {
	// MaxRequests is the number of probes let through while half-open
	MaxRequests uint32
	// Interval clears the failure count while closed
	Interval time.Duration
	// Timeout is how long the breaker stays open before probing
	Timeout time.Duration
	// FailureThreshold consecutive failures open the breaker
	FailureThreshold uint32
	// IsFailure decides which errors count; nil counts every error
	IsFailure func(err error) bool
}

// DefaultConfig returns the settings used for upstream services
func DefaultConfig() Config {
	return Config{
		MaxRequests:      1,
		Interval:         30 * time.Second,
		Timeout:          30 * time.Second,
		FailureThreshold: 5,
	}
}

// Stats is a snapshot of a breaker
type Stats struct {
	Name                string `json:"name"`
	State               string `json:"state"`
	Requests            uint32 `json:"requests"`
	TotalFailures       uint32 `json:"total_failures"`
	ConsecutiveFailures uint32 `json:"consecutive_failures"`
}

// Breaker guards calls to one upstream
type Breaker struct {
	name   string
	config Config
	now    func() time.Time

	mu          sync.Mutex
	state       State
	requests    uint32
	failures    uint32
	consecutive uint32
	expiry      time.Time
}

// New creates a closed breaker
func New(name string, config Config) *Breaker {
	b := &Breaker{name: name, config: config, now: time.Now}
	b.expiry = b.now().Add(config.Interval)
	return b
}

// Execute calls fn unless the breaker is open
func (b *Breaker) Execute(ctx context.Context, fn func(context.Context) error) error {
	if err := b.before(); err != nil {
		return err
	}
	err := fn(ctx)
	b.after(err)
	return err
}

func (b *Breaker) before() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := b.now()
	switch b.state {
	case StateClosed:
		if b.config.Interval > 0 && b.expiry.Before(now) {
			b.reset(now.Add(b.config.Interval))
		}
	case StateOpen:
		if b.expiry.After(now) {
			return ErrOpen
		}
		b.transition(StateHalfOpen)
		b.reset(time.Time{})
	case StateHalfOpen:
		if b.requests >= b.config.MaxRequests {
			return ErrTooManyRequests
		}
	}
	b.requests++
	return nil
}

func (b *Breaker) after(err error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	failed := err != nil
	if b.config.IsFailure != nil {
		failed = b.config.IsFailure(err)
	}

	if !failed {
		b.consecutive = 0
		if b.state == StateHalfOpen {
			b.transition(StateClosed)
			b.reset(b.now().Add(b.config.Interval))
		}
		return
	}

	b.failures++
	b.consecutive++
	if b.state == StateHalfOpen || (b.state == StateClosed && b.consecutive >= b.config.FailureThreshold) {
		b.transition(StateOpen)
		b.expiry = b.now().Add(b.config.Timeout)
	}
}

func (b *Breaker) reset(expiry time.Time) {
	b.requests = 0
	b.failures = 0
	b.consecutive = 0
	b.expiry = expiry
}

func (b *Breaker) transition(to State) {
	if b.state == to {
		return
	}
	logger.Info("Circuit breaker state changed",
		logger.String("name", b.name),
		logger.String("from", b.state.String()),
		logger.String("to", to.String()),
		logger.Int("consecutive_failures", int(b.consecutive)))
	b.state = to
}

// State returns the current state
func (b *Breaker) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

// Stats returns a snapshot of the counters
func (b *Breaker) Stats() Stats {
	b.mu.Lock()
	defer b.mu.Unlock()
	return Stats{
		Name:                b.name,
		State:               b.state.String(),
		Requests:            b.requests,
		TotalFailures:       b.failures,
		ConsecutiveFailures: b.consecutive,
	}
}
