// Package http provides a configurable HTTP client with retry logic.
// It wraps the retryablehttp.Client from HashiCorp and exposes functional
// options for customizing timeouts, retry behavior and client-side rate limiting.
package http

import (
	nethttp "net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"golang.org/x/time/rate"
)

// config holds internal settings for the HTTP client.
type config struct {
	timeout      time.Duration // maximum duration for a single HTTP request
	retryWaitMin time.Duration // minimum delay between retry attempts
	retryWaitMax time.Duration // maximum delay between retry attempts
	retryMax     int           // maximum number of retry attempts
	rateLimit    rate.Limit    // requests per second; zero disables limiting
	rateBurst    int           // token bucket burst size
}

// Option defines a functional option for configuring the HTTP client.
type Option func(*config)

// limitedTransport waits for a token before every round trip, retries included.
type limitedTransport struct {
	limiter *rate.Limiter
	next    nethttp.RoundTripper
}

func (t *limitedTransport) RoundTrip(req *nethttp.Request) (*nethttp.Response, error) {
	if err := t.limiter.Wait(req.Context()); err != nil {
		return nil, err
	}
	return t.next.RoundTrip(req)
}

// NewClient creates and returns a retryablehttp.Client configured with
// the provided options. If no options are given, default values are used:
//
//   - timeout:      5 seconds
//   - retryWaitMin: 1 second
//   - retryWaitMax: 5 seconds
//   - retryMax:     2 retries
//   - rate limit:   disabled
func NewClient(opts ...Option) *retryablehttp.Client {
	cfg := config{
		timeout:      5 * time.Second,
		retryWaitMin: 1 * time.Second,
		retryWaitMax: 5 * time.Second,
		retryMax:     2,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	client := retryablehttp.NewClient()
	client.Logger = nil
	client.HTTPClient.Timeout = cfg.timeout
	client.RetryWaitMin = cfg.retryWaitMin
	client.RetryWaitMax = cfg.retryWaitMax
	client.RetryMax = cfg.retryMax

	if cfg.rateLimit > 0 {
		next := client.HTTPClient.Transport
		if next == nil {
			next = nethttp.DefaultTransport
		}
		client.HTTPClient.Transport = &limitedTransport{
			limiter: rate.NewLimiter(cfg.rateLimit, max(cfg.rateBurst, 1)),
			next:    next,
		}
	}

	return client
}

// WithTimeout sets the maximum duration allowed for a single HTTP request.
// Default: 5 seconds.
func WithTimeout(d time.Duration) Option {
	return func(c *config) {
		c.timeout = d
	}
}

// WithRetryWaitMin sets the minimum delay between retry attempts.
// Default: 1 second.
func WithRetryWaitMin(d time.Duration) Option {
	return func(c *config) {
		c.retryWaitMin = d
	}
}

// WithRetryWaitMax sets the maximum delay between retry attempts.
// Default: 5 seconds.
func WithRetryWaitMax(d time.Duration) Option {
	return func(c *config) {
		c.retryWaitMax = d
	}
}

// WithRetryMax sets the maximum number of retry attempts for failed requests.
// Default: 2 retries.
func WithRetryMax(n int) Option {
	return func(c *config) {
		c.retryMax = n
	}
}

// WithRateLimit caps outgoing requests to rps per second with the given burst.
// Public ledger endpoints throttle aggressively, so every attempt, including
// retries, consumes a token.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *config) {
		c.rateLimit = rate.Limit(rps)
		c.rateBurst = burst
	}
}
