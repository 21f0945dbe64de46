package lidarr

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// RequestSpec describes one logical API call. It is never mutated once
// constructed; retries replay the identical spec.
type RequestSpec struct {
	Method string
	Path   string
	Query  url.Values
	Body   any

	// Timeout overrides the client's default per-request timeout when set.
	Timeout time.Duration
}

// outcome captures the raw result of a single transport attempt: either a
// response (status, headers, body) or a transport failure.
type outcome struct {
	status int
	header http.Header
	body   []byte
	err    error
}

func (oc outcome) detail() string {
	if oc.err != nil {
		return oc.err.Error()
	}
	body := strings.TrimSpace(string(oc.body))
	if len(body) > 200 {
		body = body[:200] + "..."
	}
	if body == "" {
		return fmt.Sprintf("unexpected status %d", oc.status)
	}
	return fmt.Sprintf("unexpected status %d: %s", oc.status, body)
}

// execute performs one logical API call: rate-limiter acquisition, the
// transport round-trip, error classification and the retry loop. On success
// the response body is decoded into out (when non-nil). It returns the number
// of attempts made; failures carry an *APIError with the final
// classification.
func (c *Client) execute(ctx context.Context, spec RequestSpec, out any) (int, error) {
	for attempt := 0; ; attempt++ {
		if err := c.pacer.acquire(ctx); err != nil {
			return attempt, fmt.Errorf("rate limit wait: %w", err)
		}

		oc := c.attempt(ctx, spec)

		if oc.err == nil && oc.status >= 200 && oc.status < 300 {
			c.logger.Debug().
				Str("method", spec.Method).
				Str("path", spec.Path).
				Int("status", oc.status).
				Int("attempt", attempt+1).
				Msg("Request succeeded")
			if out != nil && len(oc.body) > 0 {
				if err := json.Unmarshal(oc.body, out); err != nil {
					return attempt + 1, fmt.Errorf("failed to decode response: %w", err)
				}
			}
			return attempt + 1, nil
		}

		kind, _ := classify(oc)
		decision := c.retry.Next(attempt, kind, retryAfterHint(oc.header))

		if !decision.Retry {
			c.logger.Warn().
				Str("method", spec.Method).
				Str("path", spec.Path).
				Str("kind", string(kind)).
				Int("attempts", attempt+1).
				Str("reason", decision.Reason).
				Msg("Request failed")
			return attempt + 1, &APIError{
				Kind:       kind,
				StatusCode: oc.status,
				Detail:     oc.detail(),
				Attempts:   attempt + 1,
			}
		}

		c.logger.Debug().
			Str("method", spec.Method).
			Str("path", spec.Path).
			Str("kind", string(kind)).
			Int("attempt", attempt+1).
			Dur("wait", decision.Wait).
			Str("reason", decision.Reason).
			Msg("Retrying request")

		if err := c.sleep(ctx, decision.Wait); err != nil {
			return attempt + 1, fmt.Errorf("retry wait: %w", err)
		}
	}
}

// attempt performs a single HTTP round-trip for the spec and captures the
// outcome without interpreting it.
func (c *Client) attempt(ctx context.Context, spec RequestSpec) outcome {
	timeout := spec.Timeout
	if timeout <= 0 {
		timeout = c.timeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	requestURL := c.baseURL + apiBase + "/" + strings.TrimLeft(spec.Path, "/")
	if len(spec.Query) > 0 {
		requestURL += "?" + spec.Query.Encode()
	}

	var reader io.Reader
	if spec.Body != nil {
		payload, err := json.Marshal(spec.Body)
		if err != nil {
			return outcome{err: fmt.Errorf("failed to encode request body: %w", err)}
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, spec.Method, requestURL, reader)
	if err != nil {
		return outcome{err: fmt.Errorf("failed to create request: %w", err)}
	}

	req.Header.Set("X-Api-Key", c.apiKey)
	req.Header.Set("Accept", "application/json")
	if spec.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return outcome{err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return outcome{err: fmt.Errorf("failed to read response body: %w", err)}
	}

	return outcome{status: resp.StatusCode, header: resp.Header, body: body}
}

// sleepContext waits for d or until the context is cancelled.
func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
