package lidarr

import (
	"fmt"
	"math"
	"net/http"
	"strconv"
	"time"
)

// RetryPolicy decides whether and how long to wait before another attempt.
type RetryPolicy struct {
	// MaxRetries is the number of retries after the initial attempt.
	MaxRetries int

	// BackoffFactor scales the exponential backoff. The delay before retrying
	// attempt n is BackoffFactor * 2^n seconds.
	BackoffFactor float64
}

// RetryDecision is the outcome of consulting the retry policy.
type RetryDecision struct {
	Retry  bool
	Wait   time.Duration
	Reason string
}

// Next computes the retry decision for a failed attempt. Attempt numbering
// starts at 0 for the first try. A server-provided wait hint (Retry-After)
// wins over the computed backoff when it is larger.
func (p RetryPolicy) Next(attempt int, kind ErrorKind, hint time.Duration) RetryDecision {
	if attempt >= p.MaxRetries {
		return RetryDecision{Reason: fmt.Sprintf("retries exhausted after %d attempts", attempt+1)}
	}
	if !kind.Retryable() {
		return RetryDecision{Reason: fmt.Sprintf("%s is not retryable", kind)}
	}

	wait := time.Duration(p.BackoffFactor * math.Pow(2, float64(attempt)) * float64(time.Second))
	reason := "exponential backoff"
	if hint > wait {
		wait = hint
		reason = "server retry hint"
	}

	return RetryDecision{Retry: true, Wait: wait, Reason: reason}
}

// retryAfterHint parses a Retry-After header into a wait duration. Both the
// numeric-seconds and the HTTP-date forms are accepted; anything malformed or
// in the past yields zero.
func retryAfterHint(header http.Header) time.Duration {
	value := header.Get("Retry-After")
	if value == "" {
		return 0
	}

	if seconds, err := strconv.ParseInt(value, 10, 64); err == nil {
		if seconds < 0 {
			return 0
		}
		return time.Duration(seconds) * time.Second
	}

	when, err := http.ParseTime(value)
	if err != nil {
		return 0
	}
	wait := time.Until(when)
	if wait < 0 {
		return 0
	}
	return wait
}
