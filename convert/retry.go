package convert

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/markify"
)

// FetchFunc is the signature for a fetch function.
type FetchFunc func(ctx context.Context, source string) (string, error)

// DefaultRetryDelays returns the backoff delays for fetch retries: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// FetchWithRetryDelays calls fetch until it succeeds, waiting delays[i]
// before retry i. Errors classified EINVALID or ENOTFOUND are returned
// without retrying. logger, if non-nil, receives one record per retry.
func FetchWithRetryDelays(ctx context.Context, source string, fetch FetchFunc, logger *slog.Logger, delays []time.Duration) (string, error) {
	maxAttempts := len(delays) + 1

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		html, err := fetch(ctx, source)
		if err == nil {
			return html, nil
		}
		lastErr = err

		if !retryable(err) || attempt >= maxAttempts-1 {
			break
		}

		if err := ctx.Err(); err != nil {
			return "", err
		}

		if logger != nil {
			logger.Warn("retry fetch",
				"source", source,
				"attempt", attempt+2,
				"err", err,
			)
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}

	return "", lastErr
}

func retryable(err error) bool {
	switch markify.ErrorCode(err) {
	case markify.EINVALID, markify.ENOTFOUND:
		return false
	}
	return true
}
