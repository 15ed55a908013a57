package retry_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AyushiSoni2003/Scrape-saas-news/internal/retry"
)

var errTransient = errors.New("transient")

func fastConfig(attempts int) retry.Config {
	return retry.Config{MaxAttempts: attempts, InitialDelay: time.Millisecond, MaxDelay: 5 * time.Millisecond}
}

func TestDo_DefaultIsSingleAttempt(t *testing.T) {
	t.Parallel()

	calls := 0
	err := retry.Do(context.Background(), retry.Config{}, func(context.Context) error {
		calls++
		return errTransient
	})

	require.ErrorIs(t, err, errTransient)
	require.NotErrorIs(t, err, retry.ErrMaxAttemptsExceeded)
	assert.Equal(t, 1, calls)
}

func TestDo_SucceedsAfterRetries(t *testing.T) {
	t.Parallel()

	calls := 0
	err := retry.Do(context.Background(), fastConfig(3), func(context.Context) error {
		calls++
		if calls < 3 {
			return errTransient
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestDo_ExhaustsAttempts(t *testing.T) {
	t.Parallel()

	calls := 0
	err := retry.Do(context.Background(), fastConfig(3), func(context.Context) error {
		calls++
		return errTransient
	})

	require.ErrorIs(t, err, retry.ErrMaxAttemptsExceeded)
	require.ErrorIs(t, err, errTransient)
	assert.Equal(t, 3, calls)
}

func TestDo_StopsOnNonRetryable(t *testing.T) {
	t.Parallel()

	permanent := errors.New("permanent")
	cfg := fastConfig(5)
	cfg.IsRetryable = func(err error) bool { return errors.Is(err, errTransient) }

	calls := 0
	err := retry.Do(context.Background(), cfg, func(context.Context) error {
		calls++
		return permanent
	})

	require.ErrorIs(t, err, permanent)
	assert.Equal(t, 1, calls)
}

func TestDo_ContextCancelledDuringBackoff(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cfg := retry.Config{MaxAttempts: 3, InitialDelay: time.Hour, MaxDelay: time.Hour}

	err := retry.Do(ctx, cfg, func(context.Context) error {
		cancel()
		return errTransient
	})

	require.ErrorIs(t, err, context.Canceled)
	require.ErrorIs(t, err, errTransient)
}

func TestConfig_Backoff(t *testing.T) {
	t.Parallel()

	cfg := retry.Config{InitialDelay: 100 * time.Millisecond, MaxDelay: 300 * time.Millisecond, Multiplier: 2}.WithDefaults()

	assert.Equal(t, 100*time.Millisecond, cfg.Backoff(1))
	assert.Equal(t, 200*time.Millisecond, cfg.Backoff(2))
	assert.Equal(t, 300*time.Millisecond, cfg.Backoff(3))
}
