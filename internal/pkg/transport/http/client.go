// Package http provides a configurable HTTP client with retry logic. It wraps
// the retryablehttp.Client from HashiCorp and exposes functional options for
// customizing timeouts and retry behavior.
package http

import (
	"context"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

// config holds internal settings for the HTTP client.
type config struct {
	timeout      time.Duration // maximum duration for a single HTTP request
	retryWaitMin time.Duration // minimum delay between retry attempts
	retryWaitMax time.Duration // maximum delay between retry attempts
	retryMax     int           // maximum number of retry attempts
	checkRetry   retryablehttp.CheckRetry
}

// Option defines a functional option for configuring the HTTP client.
type Option func(*config)

// NewClient creates a retryablehttp.Client. Defaults: 5s timeout, 2 retries
// waiting between 1s and 5s, retryablehttp.DefaultRetryPolicy.
func NewClient(opts ...Option) *retryablehttp.Client {
	cfg := config{
		timeout:      5 * time.Second,
		retryWaitMin: 1 * time.Second,
		retryWaitMax: 5 * time.Second,
		retryMax:     2,
		checkRetry:   retryablehttp.DefaultRetryPolicy,
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
	client.CheckRetry = cfg.checkRetry
	client.ErrorHandler = retryablehttp.PassthroughErrorHandler
	return client
}

// KeepServerErrors is a retry policy for servers that report application
// errors with a 500 status and a meaningful body, such as JSON-RPC nodes.
// Those responses are returned as is; every other case follows
// retryablehttp.DefaultRetryPolicy.
func KeepServerErrors(ctx context.Context, resp *http.Response, err error) (bool, error) {
	if err == nil && resp != nil && resp.StatusCode == http.StatusInternalServerError {
		return false, nil
	}

	return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
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

// WithRetryPolicy decides which responses are retried.
func WithRetryPolicy(p retryablehttp.CheckRetry) Option {
	return func(c *config) {
		c.checkRetry = p
	}
}
