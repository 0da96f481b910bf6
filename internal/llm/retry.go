package llm

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// DefaultMaxAttempts is the per-page retry budget.
const DefaultMaxAttempts = 3

// RetryConfig controls the bounded retry loop around one page's extraction.
type RetryConfig struct {
	MaxAttempts int
	BackoffUnit time.Duration // backoff before attempt n+1 is 2^(n-1) units
}

// Retrier wraps a single-page extraction callable with bounded retries and
// exponential backoff. The generative service is empirically nondeterministic:
// the same page re-submitted can succeed after a malformed attempt, so a blind
// bounded retry is the right strategy class here, not circuit breaking.
type Retrier struct {
	cfg    RetryConfig
	logger *slog.Logger
	sleep  func(ctx context.Context, d time.Duration) error
}

func NewRetrier(cfg RetryConfig, logger *slog.Logger) *Retrier {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = DefaultMaxAttempts
	}
	if cfg.BackoffUnit <= 0 {
		cfg.BackoffUnit = time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Retrier{cfg: cfg, logger: logger, sleep: sleepCtx}
}

// Outcome is the terminal result of the retry loop for one page.
type Outcome struct {
	Questions []RawQuestion
	Dropped   int
	Attempts  int
	Err       error // non-nil only when the budget is exhausted
}

// Do runs the attempt loop. call performs exactly one network request and
// returns raw completion text. Transport errors, malformed output, and schema
// mismatches all consume the same budget: both stem from the same upstream
// nondeterminism and both have been observed to self-correct on resubmission.
func (r *Retrier) Do(ctx context.Context, call func(ctx context.Context) (string, error)) Outcome {
	var lastErr error

	for attempt := 1; attempt <= r.cfg.MaxAttempts; attempt++ {
		if attempt > 1 {
			backoff := r.backoff(attempt - 1)
			r.logger.Debug("retry.backoff", "attempt", attempt, "wait", backoff)
			if err := r.sleep(ctx, backoff); err != nil {
				return Outcome{Attempts: attempt - 1, Err: err}
			}
		}

		raw, err := call(ctx)
		if err != nil {
			lastErr = fmt.Errorf("attempt %d: %w", attempt, err)
			r.logger.Warn("retry.transport_error", "attempt", attempt, "error", err)
			continue
		}

		questions, dropped, failure := ParseQuestions(raw)
		if failure != nil {
			lastErr = fmt.Errorf("attempt %d: %w", attempt, failure)
			r.logger.Warn("retry.parse_failure",
				"attempt", attempt,
				"kind", failure.Kind,
				"position", failure.Position,
			)
			continue
		}
		return Outcome{Questions: questions, Dropped: dropped, Attempts: attempt}
	}

	r.logger.Warn("retry.exhausted", "max_attempts", r.cfg.MaxAttempts, "error", lastErr)
	return Outcome{Attempts: r.cfg.MaxAttempts, Err: lastErr}
}

// backoff returns 2^(n-1) units before attempt n+1.
func (r *Retrier) backoff(n int) time.Duration {
	return r.cfg.BackoffUnit << (n - 1)
}

// sleepCtx waits without starving sibling page workers: the timer is a
// suspension point, cancellable with the job's context.
func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
