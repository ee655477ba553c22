// Package retry wraps a fallible operation with exponential backoff and
// jitter. It is a reusable primitive: submission retries stay
// user-triggered, but startup and outbound calls use it directly.
package retry

import (
	"context"
	"math/rand"
	"time"

	"github.com/magazine-editorial-api/internal/apperrors"
)

// Config controls backoff behavior. MaxRetries counts retries after the
// first attempt, so an operation runs at most MaxRetries+1 times.
type Config struct {
	MaxRetries int
	BaseDelay  time.Duration
	MaxDelay   time.Duration
	RetryIf    func(error) bool
}

// DefaultConfig matches the classifier's retryable network/5xx cases
func DefaultConfig() Config {
	return Config{
		MaxRetries: 3,
		BaseDelay:  500 * time.Millisecond,
		MaxDelay:   10 * time.Second,
		RetryIf:    apperrors.IsRetryable,
	}
}

// Do executes op, retrying on failure while the retry condition holds
// and attempts remain. The last error is returned once retries are
// exhausted or the condition rejects the error.
func Do(ctx context.Context, cfg Config, op func(ctx context.Context) error) error {
	_, err := DoValue(ctx, cfg, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, op(ctx)
	})
	return err
}

// DoValue is Do for operations that produce a value
func DoValue[T any](ctx context.Context, cfg Config, op func(ctx context.Context) (T, error)) (T, error) {
	retryIf := cfg.RetryIf
	if retryIf == nil {
		retryIf = apperrors.IsRetryable
	}

	var zero T
	var lastErr error
	for attempt := 0; ; attempt++ {
		v, err := op(ctx)
		if err == nil {
			return v, nil
		}
		lastErr = err

		if attempt >= cfg.MaxRetries || !retryIf(err) {
			return zero, lastErr
		}

		if err := sleep(ctx, backoff(cfg, attempt)); err != nil {
			return zero, lastErr
		}
	}
}

// backoff computes min(base * 2^attempt, max) plus up to 10% jitter
func backoff(cfg Config, attempt int) time.Duration {
	delay := cfg.BaseDelay << uint(attempt)
	if delay > cfg.MaxDelay || delay <= 0 {
		delay = cfg.MaxDelay
	}
	jitter := time.Duration(rand.Int63n(int64(delay)/10 + 1))
	return delay + jitter
}

// sleep waits for d, returning early if the context is cancelled
func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
