package retry

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestRetry_SuccessOnFirstTry(t *testing.T) {
	ctx := context.Background()
	retrier := NewDefaultRetrier()

	counter := 0
	err := retrier.Do(ctx, func() error {
		counter++
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if counter != 1 {
		t.Errorf("expected 1 attempt, got %d", counter)
	}
}

func TestRetry_NonTransientAbortsImmediately(t *testing.T) {
	ctx := context.Background()
	retrier := NewDefaultRetrier()

	permanent := errors.New("permanent error")
	counter := 0
	err := retrier.Do(ctx, func() error {
		counter++
		return permanent
	})
	if !errors.Is(err, permanent) {
		t.Fatalf("expected %v, got %v", permanent, err)
	}
	if counter != 1 {
		t.Errorf("expected 1 attempt, got %d", counter)
	}
}

func TestRetry_SuccessAfterTransientFailures(t *testing.T) {
	ctx := context.Background()
	retrier := NewRetrier(&Config{MaxAttempts: 3, Unit: time.Millisecond})

	counter := 0
	err := retrier.Do(ctx, func() error {
		counter++
		if counter < 3 {
			return Transient(errors.New("temporary error"))
		}
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if counter != 3 {
		t.Errorf("expected 3 attempts, got %d", counter)
	}
}

func TestRetry_ExhaustedBudget(t *testing.T) {
	ctx := context.Background()
	underlying := errors.New("still throttled")
	retrier := NewRetrier(&Config{MaxAttempts: 3, Unit: time.Millisecond})

	counter := 0
	err := retrier.Do(ctx, func() error {
		counter++
		return Transient(underlying)
	})
	if !errors.Is(err, ErrExhausted) {
		t.Fatalf("expected ErrExhausted, got %v", err)
	}
	if !errors.Is(err, underlying) {
		t.Errorf("expected wrapped underlying error, got %v", err)
	}
	if counter != 3 {
		t.Errorf("expected exactly 3 attempts, got %d", counter)
	}
}

func TestRetry_BackoffScheduleDoubles(t *testing.T) {
	ctx := context.Background()

	var waits []time.Duration
	var attempts []int
	cfg := &Config{
		MaxAttempts: 3,
		Unit:        time.Millisecond,
		OnWait: func(attempt int, wait time.Duration) {
			attempts = append(attempts, attempt)
			waits = append(waits, wait)
		},
	}

	_ = NewRetrier(cfg).Do(ctx, func() error {
		return Transient(errors.New("throttled"))
	})

	// Waits before retries 2 and 3 must be 2^1 and 2^2 units.
	wantWaits := []time.Duration{2 * time.Millisecond, 4 * time.Millisecond}
	wantAttempts := []int{2, 3}
	if len(waits) != len(wantWaits) {
		t.Fatalf("expected %d waits, got %d", len(wantWaits), len(waits))
	}
	for i := range wantWaits {
		if waits[i] != wantWaits[i] {
			t.Errorf("wait %d: expected %v, got %v", i, wantWaits[i], waits[i])
		}
		if attempts[i] != wantAttempts[i] {
			t.Errorf("attempt %d: expected %d, got %d", i, wantAttempts[i], attempts[i])
		}
	}
}

func TestRetry_DefaultConfigMatchesPolicy(t *testing.T) {
	cfg := NewDefaultConfig()
	if cfg.MaxAttempts != 3 {
		t.Errorf("expected 3 max attempts, got %d", cfg.MaxAttempts)
	}
	if cfg.Unit != time.Second {
		t.Errorf("expected 1s backoff unit, got %v", cfg.Unit)
	}
}

func TestRetry_ContextCancelledDuringWait(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	retrier := NewRetrier(&Config{MaxAttempts: 3, Unit: time.Second})

	err := retrier.Do(ctx, func() error {
		cancel()
		return Transient(errors.New("throttled"))
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
