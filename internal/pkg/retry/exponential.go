package retry

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/piresc/loadboard/internal/pkg/logger"
)

// Func is an operation that may be retried
type Func func(ctx context.Context) error

// Config holds retry configuration
type Config struct {
	MaxRetries int           // attempts after the first one
	BaseDelay  time.Duration // delay before the first retry
	MaxDelay   time.Duration
	Multiplier float64
	Jitter     bool
	// Retryable reports whether err is worth another attempt. Nil retries everything.
	Retryable func(error) bool
}

// DefaultConfig returns a short backoff suited to calls made inside a request
func DefaultConfig() Config {
	return Config{
		MaxRetries: 2,
		BaseDelay:  50 * time.Millisecond,
		MaxDelay:   500 * time.Millisecond,
		Multiplier: 2.0,
		Jitter:     true,
	}
}

// Retrier runs operations with exponential backoff
type Retrier struct {
	config Config
}

// New creates a new retrier with the given configuration
func New(config Config) *Retrier {
	if config.Multiplier < 1 {
		config.Multiplier = 1
	}
	return &Retrier{config: config}
}

// Execute runs fn until it succeeds, returns a non-retryable error,
// exhausts MaxRetries or ctx is done. op names the operation in logs.
func (r *Retrier) Execute(ctx context.Context, op string, fn Func) error {
	var lastErr error

	for attempt := 0; attempt <= r.config.MaxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		err := fn(ctx)
		if err == nil {
			if attempt > 0 {
				logger.DebugCtx(ctx, "Operation succeeded after retries",
					logger.String("operation", op),
					logger.Int("attempts", attempt+1))
			}
			return nil
		}
		lastErr = err

		if r.config.Retryable != nil && !r.config.Retryable(err) {
			return err
		}
		if attempt == r.config.MaxRetries {
			break
		}

		delay := r.delay(attempt)
		logger.DebugCtx(ctx, "Operation failed, retrying",
			logger.String("operation", op),
			logger.Int("attempt", attempt+1),
			logger.Duration("delay", delay),
			logger.Err(err))

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", op, r.config.MaxRetries+1, lastErr)
}

func (r *Retrier) delay(attempt int) time.Duration {
	delay := float64(r.config.BaseDelay) * math.Pow(r.config.Multiplier, float64(attempt))
	if r.config.MaxDelay > 0 && delay > float64(r.config.MaxDelay) {
		delay = float64(r.config.MaxDelay)
	}
	if r.config.Jitter {
		// up to 10% extra
		delay += delay * 0.1 * rand.Float64()
	}
	return time.Duration(delay)
}
