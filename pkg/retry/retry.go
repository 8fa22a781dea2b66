package retry

import (
	"context"
	"errors"
	"fmt"
	"time"
)

type Operation = func() error

// ErrExhausted is returned once every permitted attempt failed transiently.
var ErrExhausted = errors.New("retry attempts exhausted")

// TransientError marks a failure as retryable. Anything else aborts the loop.
type TransientError struct {
	Err error
}

func (e *TransientError) Error() string { return e.Err.Error() }

func (e *TransientError) Unwrap() error { return e.Err }

// Transient wraps err so a Retrier will retry the operation.
func Transient(err error) error {
	return &TransientError{Err: err}
}

func IsTransient(err error) bool {
	var te *TransientError
	return errors.As(err, &te)
}

type Config struct {
	// MaxAttempts is the total number of attempts, including the first one.
	MaxAttempts int
	// Unit scales the backoff: the wait before retry n is 2^n units.
	Unit time.Duration
	// OnWait, when set, is invoked before each backoff wait with the number
	// of the upcoming attempt and the wait duration.
	OnWait func(attempt int, wait time.Duration)
}

func NewDefaultConfig() *Config {
	return &Config{
		MaxAttempts: 3,
		Unit:        time.Second,
	}
}

type Retrier struct {
	config *Config
}

func NewRetrier(config *Config) *Retrier {
	return &Retrier{
		config: config,
	}
}

func NewDefaultRetrier() *Retrier {
	return NewRetrier(NewDefaultConfig())
}

// Do runs op until it succeeds, fails with a non-transient error, or the
// attempt budget runs out. Backoff waits are context-aware.
func (r *Retrier) Do(ctx context.Context, op Operation) error {
	var err error

	for attempt := 1; attempt <= r.config.MaxAttempts; attempt++ {
		err = op()
		if err == nil || !IsTransient(err) {
			return err
		}

		if attempt == r.config.MaxAttempts {
			break
		}

		// The wait before retry n is 2^n units: 2u, 4u, 8u, ...
		wait := time.Duration(1<<attempt) * r.config.Unit
		if r.config.OnWait != nil {
			r.config.OnWait(attempt+1, wait)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}

	return fmt.Errorf("%w after %d attempts: %w", ErrExhausted, r.config.MaxAttempts, err)
}
