// Package retry runs an operation with exponential backoff and ±25% jitter.
// It is used for start-up work that may race a dependency coming online,
// such as opening the database connection pool.
//
//	err := retry.Do(ctx, cfg.Database.ConnectRetry, "storage.Open", func(ctx context.Context) error {
//		return pool.Ping(ctx)
//	})
package retry

import (
	"context"
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/jsamuelsen11/go-task-tracker/internal/platform/config"
	"github.com/jsamuelsen11/go-task-tracker/internal/platform/logging"
)

// jitterFraction is the maximum jitter as a fraction of the delay (±25%).
const jitterFraction = 0.25

// Permanent marks err as not worth retrying. Do returns the wrapped error
// immediately.
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return &permanentError{err: err}
}

type permanentError struct{ err error }

func (e *permanentError) Error() string { return e.err.Error() }
func (e *permanentError) Unwrap() error { return e.err }

// Do calls fn until it succeeds, returns a permanent or context error, or
// cfg.MaxAttempts is reached. The last error is returned.
func Do(ctx context.Context, cfg config.RetryConfig, operation string, fn func(context.Context) error) error {
	if cfg.MaxAttempts <= 0 {
		return fmt.Errorf("retry: max_attempts must be >= 1, got %d", cfg.MaxAttempts)
	}

	var lastErr error
	for attempt := range cfg.MaxAttempts {
		if attempt > 0 {
			if err := wait(ctx, cfg, operation, attempt, lastErr); err != nil {
				return err
			}
		}

		lastErr = fn(ctx)
		if !isRetryable(lastErr) {
			var perm *permanentError
			if errors.As(lastErr, &perm) {
				return perm.err
			}
			return lastErr
		}
	}

	return lastErr
}

// wait logs the retry at WARN level and sleeps for the backoff delay or until
// the context is done.
func wait(ctx context.Context, cfg config.RetryConfig, operation string, attempt int, lastErr error) error {
	delay := backoff(attempt, cfg)

	logging.FromContext(ctx).WarnContext(ctx, "retrying operation",
		slog.String("operation", operation),
		slog.Int("attempt", attempt+1),
		slog.Int("max_attempts", cfg.MaxAttempts),
		slog.Duration("backoff", delay),
		slog.Any("error", lastErr),
	)

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// backoff calculates the delay for a given retry attempt. The attempt
// parameter is 1-indexed (attempt 1 is the first retry).
func backoff(attempt int, cfg config.RetryConfig) time.Duration {
	delay := float64(cfg.InitialInterval) * math.Pow(cfg.Multiplier, float64(attempt-1))

	// Cap at max interval before applying jitter.
	if cfg.MaxInterval > 0 && delay > float64(cfg.MaxInterval) {
		delay = float64(cfg.MaxInterval)
	}

	jitter := delay * jitterFraction
	delay += jitter * (2*secureRandFloat64() - 1)

	if delay < 0 {
		delay = 0
	}

	return time.Duration(delay)
}

// IEEE 754 double-precision constants for random float generation.
const (
	significandBits = 53
	uint64Bits      = 64
)

// secureRandFloat64 returns a random float64 in [0, 1) using crypto/rand.
func secureRandFloat64() float64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0
	}
	return float64(binary.BigEndian.Uint64(b[:])>>(uint64Bits-significandBits)) / float64(uint64(1)<<significandBits)
}

// isRetryable reports whether fn should be called again after returning err.
// Success, context cancellation and permanent errors stop the loop.
func isRetryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var perm *permanentError
	return !errors.As(err, &perm)
}
