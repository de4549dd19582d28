package llm

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"time"
)

// retryClient is a decorator that retries transient errors with
// exponential backoff and jitter.
type retryClient struct {
	inner  Client
	config RetryConfig
}

// WithRetry wraps a Client with retry logic.
func WithRetry(c Client, cfg RetryConfig) Client {
	return &retryClient{inner: c, config: cfg}
}

func (r *retryClient) Complete(ctx context.Context, req Request) (*Result, error) {
	var lastErr error
	badReplyRetried := false

	for attempt := range r.config.MaxAttempts {
		res, err := r.inner.Complete(ctx, req)
		if err == nil {
			return res, nil
		}
		lastErr = err

		if !r.shouldRetry(err, &badReplyRetried) {
			return nil, err
		}

		if attempt == r.config.MaxAttempts-1 {
			break
		}

		wait := r.backoff(attempt, err)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(wait):
		}
	}

	return nil, lastErr
}

func (r *retryClient) Model() string {
	return r.inner.Model()
}

// shouldRetry determines whether an error is worth another attempt.
func (r *retryClient) shouldRetry(err error, badReplyRetried *bool) bool {
	// Context errors are never retried.
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	// Truncation is a configuration issue, not transient.
	var trunc *TruncatedError
	if errors.As(err, &trunc) {
		return false
	}

	// A malformed reply gets one retry.
	var bad *BadReplyError
	if errors.As(err, &bad) {
		if *badReplyRetried {
			return false
		}
		*badReplyRetried = true
		return true
	}

	// Rate limits, outages, and unknown network errors are transient.
	return true
}

// backoff computes the wait duration for the given attempt.
func (r *retryClient) backoff(attempt int, err error) time.Duration {
	// Respect RetryAfter for rate limits.
	var rl *RateLimitError
	if errors.As(err, &rl) && rl.RetryAfter > 0 {
		return rl.RetryAfter
	}

	wait := float64(r.config.InitialWait) * math.Pow(r.config.Multiplier, float64(attempt))
	if wait > float64(r.config.MaxWait) {
		wait = float64(r.config.MaxWait)
	}

	// ±20% jitter.
	jitter := wait * 0.2 * (2*rand.Float64() - 1)
	wait += jitter

	if wait < 0 {
		wait = 0
	}
	return time.Duration(wait)
}
