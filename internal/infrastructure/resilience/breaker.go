package resilience

import (
	"errors"
	"sync"
	"time"
)

// ErrCircuitOpen is returned without calling the remote when the breaker is
// open or its half-open trial budget is spent.
var ErrCircuitOpen = errors.New("circuit breaker is open")

// State represents the circuit breaker state
type State int

const (
	StateClosed State = iota
	StateHalfOpen
	StateOpen
)

// String returns the string representation of the state
func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateHalfOpen:
		return "half-open"
	case StateOpen:
		return "open"
	default:
		return "unknown"
	}
}

// Settings configures the circuit breaker behavior
type Settings struct {
	// Threshold is the number of consecutive failures that opens the breaker
	Threshold uint32
	// Cooldown is how long the breaker stays open before probing
	Cooldown time.Duration
	// Trials is the number of successful half-open calls needed to close
	Trials uint32
	// IsFailure decides whether an error counts against the remote. Errors
	// the remote reported deliberately (bad input, domain errors) should not.
	IsFailure func(err error) bool
	// OnStateChange is called whenever the state changes
	OnStateChange func(from, to State)
}

// Breaker stops calling a remote that keeps failing
type Breaker struct {
	settings Settings
	now      func() time.Time

	mu       sync.Mutex
	state    State
	failures uint32
	trials   uint32
	inflight uint32
	openedAt time.Time
}

// NewBreaker creates a breaker, filling zero settings with defaults
func NewBreaker(settings Settings) *Breaker {
	if settings.Threshold == 0 {
		settings.Threshold = 5
	}
	if settings.Cooldown == 0 {
		settings.Cooldown = 30 * time.Second
	}
	if settings.Trials == 0 {
		settings.Trials = 1
	}
	if settings.IsFailure == nil {
		settings.IsFailure = func(err error) bool { return err != nil }
	}
	return &Breaker{settings: settings, now: time.Now}
}

// State returns the current state of the circuit breaker
func (b *Breaker) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.current()
}

// Call runs fn through the breaker
func Call[T any](b *Breaker, fn func() (T, error)) (T, error) {
	var zero T
	if err := b.acquire(); err != nil {
		return zero, err
	}

	failed := true
	defer func() { b.release(failed) }()

	v, err := fn()
	failed = b.settings.IsFailure(err)
	return v, err
}

func (b *Breaker) acquire() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.current() {
	case StateOpen:
		return ErrCircuitOpen
	case StateHalfOpen:
		if b.trials+b.inflight >= b.settings.Trials {
			return ErrCircuitOpen
		}
	}
	b.inflight++
	return nil
}

func (b *Breaker) release(failed bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.inflight--
	state := b.current()
	if failed {
		b.trials = 0
		b.failures++
		if state == StateHalfOpen || b.failures >= b.settings.Threshold {
			b.openedAt = b.now()
			b.setState(StateOpen)
		}
		return
	}

	b.failures = 0
	if state == StateHalfOpen {
		b.trials++
		if b.trials >= b.settings.Trials {
			b.trials = 0
			b.setState(StateClosed)
		}
	}
}

// current must be called with mu held
func (b *Breaker) current() State {
	if b.state == StateOpen && b.now().Sub(b.openedAt) >= b.settings.Cooldown {
		b.setState(StateHalfOpen)
	}
	return b.state
}

func (b *Breaker) setState(to State) {
	if b.state == to {
		return
	}
	from := b.state
	b.state = to
	if to != StateOpen {
		b.failures = 0
	}
	if b.settings.OnStateChange != nil {
		b.settings.OnStateChange(from, to)
	}
}
