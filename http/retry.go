package http

import (
	"context"
	"errors"
	"time"
)

// fetchFunc performs one attempt.
type fetchFunc func(ctx context.Context) (string, error)

// fetchWithRetry calls fetch and, if it fails with a retryable status,
// calls it exactly once more after delay. logRetry, if not nil, is called
// before waiting.
func fetchWithRetry(ctx context.Context, fetch fetchFunc, logRetry func(error), delay time.Duration) (string, error) {
	html, err := fetch(ctx)
	if err == nil || !isRetryable(err) {
		return html, err
	}

	if logRetry != nil {
		logRetry(err)
	}

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-time.After(delay):
	}

	return fetch(ctx)
}

func isRetryable(err error) bool {
	var statusErr *StatusError
	return errors.As(err, &statusErr) && statusErr.Retryable()
}
