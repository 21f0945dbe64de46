package lidarr

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Default configuration values for the client.
const (
	DefaultTimeout       = 60 * time.Second
	DefaultMaxRetries    = 3
	DefaultBackoffFactor = 0.3
	DefaultRateLimit     = 2.0

	apiBase = "/api/v1"
)

// Client wraps the Lidarr HTTP API. It is a flat client: one method per API
// operation, each delegating to the shared request executor.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	timeout    time.Duration
	pacer      *pacer
	retry      RetryPolicy
	sleep      func(ctx context.Context, d time.Duration) error
	logger     zerolog.Logger
}

// NewClient creates a new Lidarr client
func NewClient(baseURL, apiKey string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, ErrMissingURL
	}
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	client := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{},
		timeout:    DefaultTimeout,
		pacer:      newPacer(DefaultRateLimit),
		retry:      RetryPolicy{MaxRetries: DefaultMaxRetries, BackoffFactor: DefaultBackoffFactor},
		sleep:      sleepContext,
		logger:     logger,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

// Ping verifies connectivity and API key validity by fetching system status.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.GetSystemStatus(ctx)
	return err
}

// do executes a request and decodes the JSON response into out when non-nil.
func (c *Client) do(ctx context.Context, spec RequestSpec, out any) error {
	_, err := c.execute(ctx, spec, out)
	return err
}
