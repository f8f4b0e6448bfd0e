package store

import (
	"context"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/MKhiriev/go-balance-keeper/internal/logger"
)

const (
	defaultMaxRetries = 3
	defaultRetryBase  = 50 * time.Millisecond
)

// withRetry runs fn until it succeeds, returns a non-retryable error or the
// retry budget is spent. The last error is returned unwrapped.
func withRetry(ctx context.Context, db *DB, base time.Duration, fn func(ctx context.Context) error) error {
	log := logger.FromContext(ctx)
	if base <= 0 {
		base = defaultRetryBase
	}

	attempt := 0
	backoff := retry.WithMaxRetries(defaultMaxRetries, retry.NewExponential(base))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		err := fn(ctx)
		if err == nil {
			return nil
		}

		if db.classify(err) == Retryable {
			log.Warn().Err(err).
				Str("func", "store.withRetry").
				Int("attempt", attempt).
				Msg("retryable database error")
			return retry.RetryableError(err)
		}

		return err
	})
}
