// Package retry runs an operation again with exponential backoff while its
// error is classified as retryable.
package retry

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"
)

// ErrMaxAttemptsExceeded wraps the last error once every attempt failed.
var ErrMaxAttemptsExceeded = errors.New("max retry attempts exceeded")

const (
	defaultInitialDelay = 500 * time.Millisecond
	defaultMaxDelay     = 10 * time.Second
	defaultMultiplier   = 2.0
)

// Config controls the backoff. MaxAttempts counts the first call, so 1 means
// no retry.
type Config struct {
	MaxAttempts  int           `mapstructure:"max_attempts"`
	InitialDelay time.Duration `mapstructure:"initial_delay"`
	MaxDelay     time.Duration `mapstructure:"max_delay"`
	Multiplier   float64       `mapstructure:"multiplier"`

	// IsRetryable decides whether an error is worth another attempt.
	// Nil retries every error.
	IsRetryable func(error) bool `mapstructure:"-"`
}

// WithDefaults fills unset fields.
func (c Config) WithDefaults() Config {
	if c.MaxAttempts <= 0 {
		c.MaxAttempts = 1
	}
	if c.InitialDelay <= 0 {
		c.InitialDelay = defaultInitialDelay
	}
	if c.MaxDelay <= 0 {
		c.MaxDelay = defaultMaxDelay
	}
	if c.Multiplier <= 0 {
		c.Multiplier = defaultMultiplier
	}
	return c
}

// Backoff returns the wait before attempt n+1, n starting at 1.
func (c Config) Backoff(n int) time.Duration {
	d := time.Duration(float64(c.InitialDelay) * math.Pow(c.Multiplier, float64(n-1)))
	if d > c.MaxDelay || d <= 0 {
		return c.MaxDelay
	}
	return d
}

// Do calls fn until it succeeds, returns a non-retryable error, the attempts
// run out or ctx is done.
func Do(ctx context.Context, cfg Config, fn func(ctx context.Context) error) error {
	cfg = cfg.WithDefaults()

	var lastErr error
	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			if lastErr != nil {
				return fmt.Errorf("%w: %w", err, lastErr)
			}
			return err
		}

		lastErr = fn(ctx)
		if lastErr == nil {
			return nil
		}
		if cfg.IsRetryable != nil && !cfg.IsRetryable(lastErr) {
			return lastErr
		}
		if attempt == cfg.MaxAttempts {
			break
		}

		timer := time.NewTimer(cfg.Backoff(attempt))
		select {
		case <-ctx.Done():
			timer.Stop()
			return fmt.Errorf("%w: %w", ctx.Err(), lastErr)
		case <-timer.C:
		}
	}

	if cfg.MaxAttempts == 1 {
		return lastErr
	}
	return fmt.Errorf("%w after %d attempts: %w", ErrMaxAttemptsExceeded, cfg.MaxAttempts, lastErr)
}
