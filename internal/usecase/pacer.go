package usecase

import (
	"context"
	"time"
)

// Pacer blocks between successive provider calls.
type Pacer interface {
	Wait(ctx context.Context) error
}

// FixedDelayPacer sleeps for a constant delay on every Wait. A zero delay
// returns immediately.
type FixedDelayPacer struct {
	delay time.Duration
	after func(time.Duration) <-chan time.Time
}

func NewFixedDelayPacer(delay time.Duration) *FixedDelayPacer {
	if delay < 0 {
		delay = 0
	}
	return &FixedDelayPacer{delay: delay, after: time.After}
}

func (p *FixedDelayPacer) Wait(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if p == nil || p.delay == 0 {
		return nil
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-p.after(p.delay):
		return nil
	}
}

type noopPacer struct{}

func (noopPacer) Wait(ctx context.Context) error {
	return ctx.Err()
}
