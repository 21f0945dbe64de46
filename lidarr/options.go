package lidarr

import (
	"net/http"
	"time"
)

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the default per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// WithMaxRetries sets the maximum number of retry attempts after the initial
// try.
func WithMaxRetries(retries int) Option {
	return func(c *Client) {
		if retries >= 0 {
			c.retry.MaxRetries = retries
		}
	}
}

// WithBackoffFactor sets the exponential backoff multiplier in seconds.
func WithBackoffFactor(factor float64) Option {
	return func(c *Client) {
		if factor > 0 {
			c.retry.BackoffFactor = factor
		}
	}
}

// WithRateLimit sets the maximum number of requests per second. Zero or
// negative disables throttling.
func WithRateLimit(perSecond float64) Option {
	return func(c *Client) {
		c.pacer = newPacer(perSecond)
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}
