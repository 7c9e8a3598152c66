package llm

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"time"
)

// retrier re-issues calls that failed for transient reasons, with
// exponential backoff and jitter between attempts.
type retrier struct {
	next Provider
	cfg  RetryConfig
}

// WithRetry wraps a Provider with retry handling.
func WithRetry(p Provider, cfg RetryConfig) Provider {
	return &retrier{next: p, cfg: cfg}
}

func (r *retrier) Generate(ctx context.Context, req Request) (*Reply, error) {
	// A reply that fails validation earns exactly one re-ask; a model
	// that produced bad JSON twice will keep producing it.
	badReplySeen := false

	for attempt := 0; ; attempt++ {
		reply, err := r.next.Generate(ctx, req)
		if err == nil {
			return reply, nil
		}
		if attempt+1 >= r.cfg.MaxAttempts || !r.retryable(err, &badReplySeen) {
			return nil, err
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(r.wait(attempt, err)):
		}
	}
}

func (r *retrier) ModelID() string { return r.next.ModelID() }

func (r *retrier) retryable(err error, badReplySeen *bool) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	// A truncated reply means MaxTokens is too small. Asking again
	// produces the same cutoff.
	var truncated *ErrTruncated
	if errors.As(err, &truncated) {
		return false
	}

	var invalid *ErrInvalidResponse
	if errors.As(err, &invalid) {
		if *badReplySeen {
			return false
		}
		*badReplySeen = true
		return true
	}

	// Rate limits, outages and anything else (network flakes) are
	// worth another attempt.
	return true
}

// wait computes the pause before the next attempt. Rate-limit replies
// that name a wait win over the computed backoff.
func (r *retrier) wait(attempt int, err error) time.Duration {
	var rl *ErrRateLimit
	if errors.As(err, &rl) && rl.RetryAfter > 0 {
		return rl.RetryAfter
	}

	d := float64(r.cfg.InitialWait) * math.Pow(r.cfg.Multiplier, float64(attempt))
	d = math.Min(d, float64(r.cfg.MaxWait))

	// ±20% jitter keeps concurrent clients from synchronizing.
	d *= 1 + 0.2*(2*rand.Float64()-1)
	return time.Duration(math.Max(d, 0))
}
