package retry

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/piresc/armada/internal/pkg/logger"
)

// Policy controls how an operation is retried.
type Policy struct {
	MaxRetries int           // attempts after the first call
	BaseDelay  time.Duration // delay before the first retry
	MaxDelay   time.Duration // backoff ceiling
	Multiplier float64       // growth factor per attempt
	Jitter     bool          // randomize delays to spread reconnect storms
}

// DefaultPolicy is tuned for short-lived publish operations: three
// retries inside roughly a second.
func DefaultPolicy() Policy {
	return Policy{
		MaxRetries: 3,
		BaseDelay:  100 * time.Millisecond,
		MaxDelay:   30 * time.Second,
		Multiplier: 2.0,
		Jitter:     true,
	}
}

// Retrier runs operations under a backoff policy.
type Retrier struct {
	policy Policy
	logger *logger.ZapLogger
}

func New(policy Policy, l *logger.ZapLogger) *Retrier {
	return &Retrier{policy: policy, logger: l}
}

// Execute runs fn until it succeeds, the policy is exhausted, or the
// context is done. The last error is wrapped in the returned error.
func (r *Retrier) Execute(ctx context.Context, fn func(ctx context.Context) error) error {
	var lastErr error

	for attempt := 0; attempt <= r.policy.MaxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		lastErr = fn(ctx)
		if lastErr == nil {
			if attempt > 0 {
				r.logger.Info("Operation succeeded after retries",
					logger.Int("attempt", attempt+1))
			}
			return nil
		}

		if attempt == r.policy.MaxRetries {
			break
		}

		delay := r.delayFor(attempt)
		r.logger.Debug("Operation failed, backing off",
			logger.Err(lastErr),
			logger.Int("attempt", attempt+1),
			logger.Duration("delay", delay))

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}

	r.logger.Error("Operation failed after all retries",
		logger.Err(lastErr),
		logger.Int("total_attempts", r.policy.MaxRetries+1))

	return fmt.Errorf("retry limit exceeded after %d attempts: %w", r.policy.MaxRetries+1, lastErr)
}

func (r *Retrier) delayFor(attempt int) time.Duration {
	delay := float64(r.policy.BaseDelay) * math.Pow(r.policy.Multiplier, float64(attempt))
	delay = math.Min(delay, float64(r.policy.MaxDelay))

	if r.policy.Jitter {
		delay += delay * 0.1 * rand.Float64()
	}

	return time.Duration(delay)
}
