// Package retry provides a configurable retry mechanism for operations that may fail temporarily.
// It wraps the retry-go package from Avast and exposes a simple interface with functional
// options for customizing retry behavior.
//
// The package implements an exponential backoff strategy by default. Callers that need a
// different schedule (for example a capped doubling delay that retries forever) can replace
// it with WithDelayFunc and observe every failure with WithOnRetry.
//
// Basic usage:
//
//	r := retry.New()
//	err := r.Execute(context.Background(), func() error {
//	    return someOperation()
//	})
//
// Retrying forever with a custom schedule:
//
//	r := retry.New(
//	    retry.WithAttempts(0),
//	    retry.WithDelayFunc(func(failures uint) time.Duration { return time.Second }),
//	)
package retry

import (
	"context"
	"time"

	retry "github.com/avast/retry-go/v4"
)

// Retry defines the interface for retry operations.
// Implementations of this interface provide a mechanism to execute operations
// with automatic retry logic in case of failures.
type Retry interface {
	// Execute runs the given function with configured retry logic.
	// It will retry the operation according to the configured parameters
	// if it returns an error.
	//
	// The context allows for cancellation and timeout control. If the context
	// is canceled or times out, the operation will stop retrying and return
	// the context error.
	//
	// Execute returns nil if the operation succeeds within the configured
	// number of attempts, or an error if all attempts fail or the context is done.
	Execute(ctx context.Context, operation func() error) error
}

// Timer abstracts the wait between attempts so tests can observe or skip it.
type Timer interface {
	After(time.Duration) <-chan time.Time
}

// DelayFunc returns the wait before the next attempt given the number of
// failures observed so far (1 after the first failure).
type DelayFunc func(failures uint) time.Duration

// OnRetryFunc is called after every failed attempt that will be retried,
// before waiting. failures starts at 1.
type OnRetryFunc func(failures uint, err error)

// config holds internal settings for the retry mechanism.
type config struct {
	attempts    uint          // maximum number of attempts; 0 retries until success or cancellation
	delay       time.Duration // base delay between retry attempts
	maxDelay    time.Duration // maximum delay between retry attempts
	lastErrOnly bool          // whether to return only the last error
	delayFunc   DelayFunc     // replaces exponential backoff when set
	onRetry     OnRetryFunc   // optional failure hook
	timer       Timer         // optional timer used to wait between attempts
}

// Option defines a functional option for configuring the retry mechanism.
// Options are applied in the order they are provided to New().
type Option func(*config)

// retrier implements the Retry interface using the retry-go package.
type retrier struct {
	cfg config
}

// Compile-time assertion that retrier implements Retry interface
var _ Retry = (*retrier)(nil)

// New creates and returns a Retry implementation configured with
// the provided options. If no options are given, default values are used.
//
// Default configuration:
//   - attempts:    3 (1 initial attempt + 2 retries)
//   - delay:       1 second (base delay, will increase with exponential backoff)
//   - maxDelay:    5 seconds (maximum delay between retries)
//   - lastErrOnly: true (only the last error is returned)
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

// Execute implements the Retry interface.
// The operation is first attempted immediately. If it fails, it will be retried
// with the configured delays between attempts, up to the configured maximum
// number of attempts.
func (r *retrier) Execute(ctx context.Context, operation func() error) error {
	var failures uint

	options := []retry.Option{
		retry.Attempts(r.cfg.attempts),
		retry.Delay(r.cfg.delay),
		retry.MaxDelay(r.cfg.maxDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(r.cfg.lastErrOnly),
		retry.Context(ctx),
		retry.OnRetry(func(_ uint, err error) {
			failures++
			if r.cfg.onRetry != nil {
				r.cfg.onRetry(failures, err)
			}
		}),
	}

	if r.cfg.delayFunc != nil {
		options = append(options,
			retry.MaxDelay(0),
			retry.DelayType(func(_ uint, _ error, _ *retry.Config) time.Duration {
				return r.cfg.delayFunc(failures)
			}),
		)
	}

	if r.cfg.timer != nil {
		options = append(options, retry.WithTimer(r.cfg.timer))
	}

	return retry.Do(operation, options...)
}

// WithAttempts sets the maximum number of attempts (including the initial attempt).
// Zero retries until the operation succeeds or the context is done.
// Default: 3 (1 initial attempt + 2 retries).
func WithAttempts(n uint) Option {
	return func(c *config) {
		c.attempts = n
	}
}

// WithDelay sets the base delay between retry attempts.
// Default: 1 second.
func WithDelay(d time.Duration) Option {
	return func(c *config) {
		c.delay = d
	}
}

// WithMaxDelay sets the maximum delay between retry attempts.
// Default: 5 seconds. Ignored when WithDelayFunc is used.
func WithMaxDelay(d time.Duration) Option {
	return func(c *config) {
		c.maxDelay = d
	}
}

// WithLastErrorOnly sets whether to return only the last error.
// Default: true.
func WithLastErrorOnly(b bool) Option {
	return func(c *config) {
		c.lastErrOnly = b
	}
}

// WithDelayFunc replaces the exponential backoff with f.
func WithDelayFunc(f DelayFunc) Option {
	return func(c *config) {
		c.delayFunc = f
	}
}

// WithOnRetry registers a hook called after each failed attempt that will be retried.
func WithOnRetry(f OnRetryFunc) Option {
	return func(c *config) {
		c.onRetry = f
	}
}

// WithTimer overrides the timer used to wait between attempts.
func WithTimer(t Timer) Option {
	return func(c *config) {
		c.timer = t
	}
}
