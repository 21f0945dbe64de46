package lidarr

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// Common errors returned by the Lidarr client.
var (
	// ErrMissingURL indicates the client was created without a base URL.
	ErrMissingURL = errors.New("lidarr URL is required")

	// ErrMissingAPIKey indicates the client was created without an API key.
	ErrMissingAPIKey = errors.New("lidarr API key is required")
)

// ErrorKind classifies a failed API call into a closed set of categories.
type ErrorKind string

const (
	KindAuthentication ErrorKind = "authentication"
	KindNotFound       ErrorKind = "not_found"
	KindValidation     ErrorKind = "validation"
	KindRateLimited    ErrorKind = "rate_limited"
	KindServerError    ErrorKind = "server_error"
	KindNetwork        ErrorKind = "network"
	KindTimeout        ErrorKind = "timeout"
	KindUnknown        ErrorKind = "unknown"
)

// Retryable reports whether a further attempt could plausibly change the
// outcome. Only transient conditions (timeouts, connection failures, the
// server's explicit rate-limit signal and 5xx responses) qualify; client-side
// errors never do.
func (k ErrorKind) Retryable() bool {
	switch k {
	case KindTimeout, KindNetwork, KindRateLimited, KindServerError:
		return true
	default:
		return false
	}
}

// APIError represents a failed Lidarr API call after all retry attempts.
type APIError struct {
	Kind       ErrorKind
	StatusCode int
	Detail     string
	Attempts   int
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("lidarr API error (%s): status %d: %s (after %d attempt(s))",
			e.Kind, e.StatusCode, e.Detail, e.Attempts)
	}
	return fmt.Sprintf("lidarr API error (%s): %s (after %d attempt(s))", e.Kind, e.Detail, e.Attempts)
}

// IsNotFound checks if the error indicates a missing resource
func (e *APIError) IsNotFound() bool {
	return e.Kind == KindNotFound
}

// IsUnauthorized checks if the error indicates an authentication failure
func (e *APIError) IsUnauthorized() bool {
	return e.Kind == KindAuthentication
}

// IsTransient checks if the error was caused by a transient condition that
// already survived the configured retries.
func (e *APIError) IsTransient() bool {
	return e.Kind.Retryable()
}

// classify maps a raw transport outcome to an error kind and a retry
// eligibility flag. It is a pure function of the outcome.
func classify(oc outcome) (ErrorKind, bool) {
	if oc.err != nil {
		kind := classifyTransportError(oc.err)
		return kind, kind.Retryable()
	}
	kind := classifyStatus(oc.status)
	return kind, kind.Retryable()
}

// classifyTransportError distinguishes timeouts from other connection-level
// failures.
func classifyTransportError(err error) ErrorKind {
	if errors.Is(err, context.DeadlineExceeded) {
		return KindTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return KindTimeout
	}
	return KindNetwork
}

func classifyStatus(status int) ErrorKind {
	switch {
	case status == 401 || status == 403:
		return KindAuthentication
	case status == 404:
		return KindNotFound
	case status == 400 || status == 422:
		return KindValidation
	case status == 429:
		return KindRateLimited
	case status >= 500 && status <= 599:
		return KindServerError
	default:
		return KindUnknown
	}
}
