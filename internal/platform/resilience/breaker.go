// Package resilience guards calls to the football data provider.
package resilience

import (
	"errors"
	"sync"
	"time"
)

// ErrOpen is returned without calling the dependency while the breaker is
// open.
var ErrOpen = errors.New("circuit breaker is open")

type State string

const (
	StateClosed   State = "closed"
	StateOpen     State = "open"
	StateHalfOpen State = "half_open"
)

type BreakerConfig struct {
	Enabled bool
	// FailureThreshold consecutive failures open the breaker.
	FailureThreshold int
	// Cooldown is how long the breaker rejects calls before it lets a
	// probe through.
	Cooldown time.Duration
	// Probes is the number of successful half-open calls that close the
	// breaker again.
	Probes        int
	OnStateChange func(from, to State)
}

func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		Enabled:          true,
		FailureThreshold: 3,
		Cooldown:         30 * time.Second,
		Probes:           1,
	}
}

func (c BreakerConfig) withDefaults() BreakerConfig {
	defaults := DefaultBreakerConfig()
	if c.FailureThreshold < 1 {
		c.FailureThreshold = defaults.FailureThreshold
	}
	if c.Cooldown <= 0 {
		c.Cooldown = defaults.Cooldown
	}
	if c.Probes < 1 {
		c.Probes = defaults.Probes
	}
	return c
}

// Breaker fails fast after repeated provider failures so a long ingestion
// run stops hammering an API that is down. It is not a retry policy: a
// rejected call is reported to the caller like any other failure.
type Breaker struct {
	mu  sync.Mutex
	cfg BreakerConfig

	state     State
	failures  int
	successes int
	openedAt  time.Time
	now       func() time.Time
}

func NewBreaker(cfg BreakerConfig) *Breaker {
	return &Breaker{
		cfg:   cfg.withDefaults(),
		state: StateClosed,
		now:   time.Now,
	}
}

// Do runs fn unless the breaker is open. isFailure picks the errors that
// count against the dependency; nil counts every error.
func (b *Breaker) Do(fn func() error, isFailure func(error) bool) error {
	if !b.cfg.Enabled {
		return fn()
	}
	if err := b.allow(); err != nil {
		return err
	}

	err := fn()
	b.record(err != nil && (isFailure == nil || isFailure(err)))
	return err
}

func (b *Breaker) Enabled() bool {
	return b.cfg.Enabled
}

func (b *Breaker) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

func (b *Breaker) allow() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state != StateOpen {
		return nil
	}
	if b.now().Sub(b.openedAt) < b.cfg.Cooldown {
		return ErrOpen
	}
	b.transition(StateHalfOpen)
	return nil
}

func (b *Breaker) record(failed bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch {
	case failed && b.state == StateHalfOpen:
		b.transition(StateOpen)
	case failed:
		b.failures++
		if b.failures >= b.cfg.FailureThreshold {
			b.transition(StateOpen)
		}
	case b.state == StateHalfOpen:
		b.successes++
		if b.successes >= b.cfg.Probes {
			b.transition(StateClosed)
		}
	default:
		b.failures = 0
	}
}

// transition must be called with mu held.
func (b *Breaker) transition(to State) {
	from := b.state
	b.state = to
	b.failures = 0
	b.successes = 0
	if to == StateOpen {
		b.openedAt = b.now()
	}

	if b.cfg.OnStateChange != nil && from != to {
		b.cfg.OnStateChange(from, to)
	}
}
