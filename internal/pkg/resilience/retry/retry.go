// Package retry runs operations that may fail temporarily with exponential
// backoff. It wraps github.com/avast/retry-go and exposes a small interface
// with functional options.
//
//	r := retry.New(retry.WithAttempts(5), retry.WithDelay(500*time.Millisecond))
//	err := r.Execute(ctx, func() error {
//	    return client.Fetch(ctx)
//	})
//
// Errors wrapped with Permanent stop the retries immediately.
package retry

import (
	"context"
	"errors"
	"time"

	retry "github.com/avast/retry-go/v4"
)

// Retry executes an operation until it succeeds, fails permanently, runs out
// of attempts, or ctx is done.
type Retry interface {
	// Execute runs operation with the configured retry policy. The operation
	// must be idempotent. It returns nil on success; otherwise the last error,
	// or every attempt's error joined when WithLastErrorOnly(false) is set.
	Execute(ctx context.Context, operation func() error) error
}

// Permanent marks err as not worth retrying.
func Permanent(err error) error {
	return retry.Unrecoverable(err)
}

// config holds internal settings for the retry mechanism.
type config struct {
	attempts    uint
	delay       time.Duration
	maxDelay    time.Duration
	lastErrOnly bool
	onRetry     func(attempt uint, err error)
}

// Option configures the retry mechanism.
type Option func(*config)

type retrier struct {
	cfg config
}

var _ Retry = (*retrier)(nil)

// New creates a Retry. Defaults: 3 attempts, 1s base delay doubled after every
// attempt up to 5s, last error only.
func New(opts ...Option) Retry {
	cfg := config{
		attempts:    3,
		delay:       1 * time.Second,
		maxDelay:    5 * time.Second,
		lastErrOnly: true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &retrier{
		cfg: cfg,
	}
}

// Execute implements Retry.
func (r *retrier) Execute(ctx context.Context, operation func() error) error {
	options := []retry.Option{
		retry.Attempts(r.cfg.attempts),
		retry.Delay(r.cfg.delay),
		retry.MaxDelay(r.cfg.maxDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(r.cfg.lastErrOnly),
		retry.Context(ctx),
		retry.RetryIf(func(err error) bool {
			return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
		}),
	}

	if r.cfg.onRetry != nil {
		options = append(options, retry.OnRetry(r.cfg.onRetry))
	}

	err := retry.Do(operation, options...)

	var errs retry.Error
	if errors.As(err, &errs) {
		return errors.Join(errs.WrappedErrors()...)
	}

	return err
}

// WithAttempts sets the maximum number of attempts, including the first one.
// Default: 3.
func WithAttempts(n uint) Option {
	return func(c *config) {
		c.attempts = n
	}
}

// WithDelay sets the delay before the first retry. Default: 1s.
func WithDelay(d time.Duration) Option {
	return func(c *config) {
		c.delay = d
	}
}

// WithMaxDelay caps the delay between attempts. Default: 5s.
func WithMaxDelay(d time.Duration) Option {
	return func(c *config) {
		c.maxDelay = d
	}
}

// WithLastErrorOnly selects whether Execute returns only the error of the
// final attempt (true, default) or the errors of every attempt joined.
func WithLastErrorOnly(b bool) Option {
	return func(c *config) {
		c.lastErrOnly = b
	}
}

// WithOnRetry registers a callback invoked after every failed attempt that
// will be retried. attempt is zero based.
func WithOnRetry(f func(attempt uint, err error)) Option {
	return func(c *config) {
		c.onRetry = f
	}
}
