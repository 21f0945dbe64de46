package lidarr

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyStatus(t *testing.T) {
	tests := []struct {
		status int
		want   ErrorKind
	}{
		{400, KindValidation},
		{401, KindAuthentication},
		{403, KindAuthentication},
		{404, KindNotFound},
		{422, KindValidation},
		{429, KindRateLimited},
		{500, KindServerError},
		{502, KindServerError},
		{599, KindServerError},
		{418, KindUnknown},
		{301, KindUnknown},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("status %d", tt.status), func(t *testing.T) {
			assert.Equal(t, tt.want, classifyStatus(tt.status))
		})
	}
}

type timeoutError struct{}

func (timeoutError) Error() string   { return "i/o timeout" }
func (timeoutError) Timeout() bool   { return true }
func (timeoutError) Temporary() bool { return true }

func TestClassifyTransportError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorKind
	}{
		{"deadline exceeded", context.DeadlineExceeded, KindTimeout},
		{"wrapped deadline", fmt.Errorf("request: %w", context.DeadlineExceeded), KindTimeout},
		{"net timeout", timeoutError{}, KindTimeout},
		{"connection refused", errors.New("connection refused"), KindNetwork},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifyTransportError(tt.err))
		})
	}
}

func TestClassifyIsPure(t *testing.T) {
	oc := outcome{status: 503}
	for i := 0; i < 3; i++ {
		kind, retryable := classify(oc)
		assert.Equal(t, KindServerError, kind)
		assert.True(t, retryable)
	}
}

func TestErrorKindRetryable(t *testing.T) {
	retryable := []ErrorKind{KindTimeout, KindNetwork, KindRateLimited, KindServerError}
	for _, kind := range retryable {
		assert.True(t, kind.Retryable(), "kind %s", kind)
	}

	permanent := []ErrorKind{KindAuthentication, KindNotFound, KindValidation, KindUnknown}
	for _, kind := range permanent {
		assert.False(t, kind.Retryable(), "kind %s", kind)
	}
}

func TestAPIError(t *testing.T) {
	err := &APIError{Kind: KindNotFound, StatusCode: 404, Detail: "unexpected status 404", Attempts: 1}
	assert.Contains(t, err.Error(), "not_found")
	assert.Contains(t, err.Error(), "404")
	assert.True(t, err.IsNotFound())
	assert.False(t, err.IsUnauthorized())
	assert.False(t, err.IsTransient())

	authErr := &APIError{Kind: KindAuthentication, StatusCode: 401, Attempts: 1}
	assert.True(t, authErr.IsUnauthorized())

	netErr := &APIError{Kind: KindNetwork, Detail: "connection refused", Attempts: 4}
	assert.True(t, netErr.IsTransient())
	assert.NotContains(t, netErr.Error(), "status")
}
