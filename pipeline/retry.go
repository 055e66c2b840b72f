package pipeline

import (
	"context"
	"time"

	"github.com/noto-news/noto"
)

// ExtractFunc is the signature for one extraction attempt.
type ExtractFunc func(ctx context.Context) (*noto.ExtractionResult, error)

// DefaultRetryDelays returns the backoff delays for extraction retries:
// 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// ExtractWithRetryDelays attempts an extraction with backoff between
// attempts. A (nil, nil) outcome means "no strategy produced acceptable
// content" and is returned without retrying; retries are for transient
// errors only.
func ExtractWithRetryDelays(ctx context.Context, extract ExtractFunc, delays []time.Duration) (*noto.ExtractionResult, error) {
	maxAttempts := len(delays) + 1 // 1 initial + N retries

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		result, err := extract(ctx)
		if err == nil {
			return result, nil
		}
		lastErr = err

		if attempt >= maxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}

	return nil, lastErr
}
