package llm

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func noSleep(calls *[]time.Duration) func(context.Context, time.Duration) error {
	return func(_ context.Context, d time.Duration) error {
		*calls = append(*calls, d)
		return nil
	}
}

func TestRetrierDo_FailTwiceThenSucceed(t *testing.T) {
	var waits []time.Duration
	r := NewRetrier(RetryConfig{MaxAttempts: 3, BackoffUnit: time.Second}, nil)
	r.sleep = noSleep(&waits)

	calls := 0
	outcome := r.Do(context.Background(), func(context.Context) (string, error) {
		calls++
		if calls < 3 {
			return "", errors.New("connection reset")
		}
		return `{"questions":[{"question":"third time"}]}`, nil
	})

	if calls != 3 {
		t.Fatalf("expected exactly 3 calls, got %d", calls)
	}
	if outcome.Err != nil {
		t.Fatalf("unexpected error: %v", outcome.Err)
	}
	if outcome.Attempts != 3 {
		t.Fatalf("expected 3 attempts recorded, got %d", outcome.Attempts)
	}
	if len(outcome.Questions) != 1 || outcome.Questions[0]["question"] != "third time" {
		t.Fatalf("expected the third attempt's records, got %v", outcome.Questions)
	}
	// backoff doubles: 1s before attempt 2, 2s before attempt 3
	if len(waits) != 2 || waits[0] != time.Second || waits[1] != 2*time.Second {
		t.Fatalf("unexpected backoff schedule: %v", waits)
	}
}

func TestRetrierDo_MalformedOutputConsumesBudget(t *testing.T) {
	var waits []time.Duration
	r := NewRetrier(RetryConfig{MaxAttempts: 3, BackoffUnit: time.Millisecond}, nil)
	r.sleep = noSleep(&waits)

	calls := 0
	outcome := r.Do(context.Background(), func(context.Context) (string, error) {
		calls++
		return `{"questions": [not json`, nil
	})

	if calls != 3 {
		t.Fatalf("expected 3 calls, got %d", calls)
	}
	if outcome.Err == nil {
		t.Fatal("expected exhaustion error")
	}
	var failure *ParseFailure
	if !errors.As(outcome.Err, &failure) || failure.Kind != Malformed {
		t.Fatalf("expected a malformed parse failure, got %v", outcome.Err)
	}
}

func TestRetrierDo_SchemaMismatchRetriedLikeMalformed(t *testing.T) {
	var waits []time.Duration
	r := NewRetrier(RetryConfig{MaxAttempts: 3, BackoffUnit: time.Millisecond}, nil)
	r.sleep = noSleep(&waits)

	// mismatched shape twice, then a usable response: the budget treats both
	// failure kinds identically
	responses := []string{
		`{"records":[]}`,
		`{"records":[]}`,
		`{"questions":[{"question":"ok"}]}`,
	}
	calls := 0
	outcome := r.Do(context.Background(), func(context.Context) (string, error) {
		resp := responses[calls]
		calls++
		return resp, nil
	})

	if calls != 3 {
		t.Fatalf("expected 3 calls, got %d", calls)
	}
	if outcome.Err != nil {
		t.Fatalf("expected recovery on third attempt, got %v", outcome.Err)
	}
	if len(outcome.Questions) != 1 {
		t.Fatalf("expected 1 question, got %d", len(outcome.Questions))
	}
}

func TestRetrierDo_SchemaMismatchExhaustsBudget(t *testing.T) {
	var waits []time.Duration
	r := NewRetrier(RetryConfig{MaxAttempts: 2, BackoffUnit: time.Millisecond}, nil)
	r.sleep = noSleep(&waits)

	calls := 0
	outcome := r.Do(context.Background(), func(context.Context) (string, error) {
		calls++
		return `[1,2,3]`, nil
	})

	if calls != 2 {
		t.Fatalf("expected 2 calls, got %d", calls)
	}
	if outcome.Err == nil || !strings.Contains(outcome.Err.Error(), string(SchemaMismatch)) {
		t.Fatalf("expected schema mismatch in error, got %v", outcome.Err)
	}
}

func TestRetrierDo_CancelDuringBackoff(t *testing.T) {
	r := NewRetrier(RetryConfig{MaxAttempts: 3, BackoffUnit: time.Hour}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	outcome := r.Do(ctx, func(context.Context) (string, error) {
		calls++
		cancel()
		return "", errors.New("transient")
	})

	if calls != 1 {
		t.Fatalf("expected 1 call before cancellation, got %d", calls)
	}
	if !errors.Is(outcome.Err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", outcome.Err)
	}
}

func TestRetrierDo_SingleAttemptBudget(t *testing.T) {
	r := NewRetrier(RetryConfig{MaxAttempts: 1, BackoffUnit: time.Second}, nil)

	calls := 0
	outcome := r.Do(context.Background(), func(context.Context) (string, error) {
		calls++
		return "", errors.New("down")
	})

	if calls != 1 {
		t.Fatalf("expected 1 call, got %d", calls)
	}
	if outcome.Err == nil {
		t.Fatal("expected an error")
	}
}
