package extraction

import (
	"context"
	"strings"
	"time"

	"github.com/custodia-labs/repsync-cli/internal/logger"
)

// Submission retry policy. Polling loops are never retried; only the
// submission call is, and only for failures that look transient.
const (
	// MaxSubmitAttempts bounds submission attempts, first try included.
	MaxSubmitAttempts = 3

	// backoffBase doubles per attempt: 2s, 4s, 8s.
	backoffBase = 2 * time.Second
)

// SleepFunc suspends for the given duration or until the context is done.
// Injectable so tests can record delays instead of waiting them out.
type SleepFunc func(ctx context.Context, d time.Duration) error

// Sleep is the default SleepFunc.
func Sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// IsRetryable reports whether a submission error looks transient:
// overload, rate limiting, or an upstream 502/503/529 status. Everything
// else propagates immediately.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "overloaded") ||
		strings.Contains(msg, "rate limit") ||
		strings.Contains(msg, "529") ||
		strings.Contains(msg, "503") ||
		strings.Contains(msg, "502")
}

// RetrySubmission runs fn with exponential backoff on retryable errors.
// After MaxSubmitAttempts the last error propagates.
func RetrySubmission[T any](ctx context.Context, sleep SleepFunc, fn func() (T, error)) (T, error) {
	if sleep == nil {
		sleep = Sleep
	}

	var zero T
	var lastErr error
	for attempt := 1; attempt <= MaxSubmitAttempts; attempt++ {
		result, err := fn()
		if err == nil {
			return result, nil
		}
		lastErr = err

		if !IsRetryable(err) || attempt == MaxSubmitAttempts {
			return zero, err
		}

		delay := backoffBase << (attempt - 1)
		logger.Warn("extraction service overloaded, retrying in %s (attempt %d/%d)",
			delay, attempt, MaxSubmitAttempts)
		if err := sleep(ctx, delay); err != nil {
			return zero, err
		}
	}
	return zero, lastErr
}
