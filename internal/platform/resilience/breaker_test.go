package resilience

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var (
	errReset   = errors.New("connection reset")
	errNoRows  = errors.New("no results")
	onlyResets = func(err error) bool { return errors.Is(err, errReset) }
)

func newClockedBreaker(cfg BreakerConfig, now *time.Time, transitions *[]string) *Breaker {
	cfg.Enabled = true
	cfg.OnStateChange = func(from, to State) {
		*transitions = append(*transitions, string(from)+"->"+string(to))
	}
	b := NewBreaker(cfg)
	b.now = func() time.Time { return *now }
	return b
}

func TestBreaker_OpensAfterThresholdAndRecoversAfterCooldown(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)
	var transitions []string
	b := newClockedBreaker(BreakerConfig{FailureThreshold: 2, Cooldown: 10 * time.Second}, &now, &transitions)

	fail := func() error { return errReset }
	require.ErrorIs(t, b.Do(fail, nil), errReset)
	require.Equal(t, StateClosed, b.State())
	require.ErrorIs(t, b.Do(fail, nil), errReset)
	require.Equal(t, StateOpen, b.State())

	calls := 0
	ok := func() error { calls++; return nil }
	require.ErrorIs(t, b.Do(ok, nil), ErrOpen)
	require.Zero(t, calls)

	now = now.Add(11 * time.Second)
	require.NoError(t, b.Do(ok, nil))
	require.Equal(t, 1, calls)
	require.Equal(t, StateClosed, b.State())
	require.Equal(t, []string{"closed->open", "open->half_open", "half_open->closed"}, transitions)
}

func TestBreaker_SuccessResetsFailureCount(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)
	var transitions []string
	b := newClockedBreaker(BreakerConfig{FailureThreshold: 2}, &now, &transitions)

	require.Error(t, b.Do(func() error { return errReset }, nil))
	require.NoError(t, b.Do(func() error { return nil }, nil))
	require.Error(t, b.Do(func() error { return errReset }, nil))
	require.Equal(t, StateClosed, b.State())
	require.Empty(t, transitions)
}

func TestBreaker_IgnoresErrorsThatAreNotFailures(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)
	var transitions []string
	b := newClockedBreaker(BreakerConfig{FailureThreshold: 1}, &now, &transitions)

	require.ErrorIs(t, b.Do(func() error { return errNoRows }, onlyResets), errNoRows)
	require.Equal(t, StateClosed, b.State())

	require.ErrorIs(t, b.Do(func() error { return errReset }, onlyResets), errReset)
	require.Equal(t, StateOpen, b.State())
}

func TestBreaker_FailedProbeReopens(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)
	var transitions []string
	b := newClockedBreaker(BreakerConfig{FailureThreshold: 1, Cooldown: time.Second}, &now, &transitions)

	require.Error(t, b.Do(func() error { return errReset }, nil))
	now = now.Add(2 * time.Second)
	require.Error(t, b.Do(func() error { return errReset }, nil))
	require.Equal(t, StateOpen, b.State())
	require.ErrorIs(t, b.Do(func() error { return nil }, nil), ErrOpen)
}

func TestBreaker_DisabledPassesThrough(t *testing.T) {
	t.Parallel()

	b := NewBreaker(BreakerConfig{Enabled: false, FailureThreshold: 1})
	for i := 0; i < 3; i++ {
		require.ErrorIs(t, b.Do(func() error { return errReset }, nil), errReset)
	}
	require.Equal(t, StateClosed, b.State())
	require.False(t, b.Enabled())
}
