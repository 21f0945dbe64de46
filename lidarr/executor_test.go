package lidarr

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestClient creates a client pointed at a test server with throttling
// disabled and the retry sleep replaced by a recorder.
func newTestClient(t *testing.T, serverURL string, opts ...Option) (*Client, *sleepRecorder) {
	t.Helper()

	recorder := &sleepRecorder{}
	base := []Option{WithRateLimit(0)}
	client, err := NewClient(serverURL, "test-key", zerolog.Nop(), append(base, opts...)...)
	require.NoError(t, err)
	client.sleep = recorder.sleep

	return client, recorder
}

type sleepRecorder struct {
	mu    sync.Mutex
	waits []time.Duration
}

func (r *sleepRecorder) sleep(ctx context.Context, d time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.waits = append(r.waits, d)
	return ctx.Err()
}

func (r *sleepRecorder) recorded() []time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]time.Duration(nil), r.waits...)
}

func TestExecuteSucceedsAfterServerErrors(t *testing.T) {
	var requests int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		if requests <= 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode(map[string]string{"version": "2.0.7"})
	}))
	defer server.Close()

	client, recorder := newTestClient(t, server.URL)

	var out map[string]string
	attempts, err := client.execute(context.Background(), RequestSpec{
		Method: http.MethodGet,
		Path:   "system/status",
	}, &out)

	require.NoError(t, err)
	assert.Equal(t, 4, attempts)
	assert.Equal(t, 4, requests)
	assert.Equal(t, "2.0.7", out["version"])

	// Default backoff factor 0.3 doubles per attempt.
	assert.Equal(t, []time.Duration{
		300 * time.Millisecond,
		600 * time.Millisecond,
		1200 * time.Millisecond,
	}, recorder.recorded())
}

func TestExecuteExhaustsRetries(t *testing.T) {
	var requests int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client, _ := newTestClient(t, server.URL)

	attempts, err := client.execute(context.Background(), RequestSpec{
		Method: http.MethodGet,
		Path:   "artist",
	}, nil)

	require.Error(t, err)
	assert.Equal(t, 4, attempts)
	assert.Equal(t, 4, requests)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, KindServerError, apiErr.Kind)
	assert.Equal(t, http.StatusServiceUnavailable, apiErr.StatusCode)
	assert.Equal(t, 4, apiErr.Attempts)
}

func TestExecuteDoesNotRetryClientErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		kind   ErrorKind
	}{
		{"bad request", http.StatusBadRequest, KindValidation},
		{"unauthorized", http.StatusUnauthorized, KindAuthentication},
		{"forbidden", http.StatusForbidden, KindAuthentication},
		{"not found", http.StatusNotFound, KindNotFound},
		{"unprocessable", http.StatusUnprocessableEntity, KindValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var requests int
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				requests++
				w.WriteHeader(tt.status)
			}))
			defer server.Close()

			client, recorder := newTestClient(t, server.URL)

			attempts, err := client.execute(context.Background(), RequestSpec{
				Method: http.MethodGet,
				Path:   "artist/1",
			}, nil)

			require.Error(t, err)
			assert.Equal(t, 1, attempts)
			assert.Equal(t, 1, requests)
			assert.Empty(t, recorder.recorded())

			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.kind, apiErr.Kind)
			assert.Equal(t, 1, apiErr.Attempts)
		})
	}
}

func TestExecuteHonoursRetryAfterHint(t *testing.T) {
	var requests int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		if requests == 1 {
			w.Header().Set("Retry-After", "5")
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client, recorder := newTestClient(t, server.URL)

	attempts, err := client.execute(context.Background(), RequestSpec{
		Method: http.MethodGet,
		Path:   "queue",
	}, nil)

	require.NoError(t, err)
	assert.Equal(t, 2, attempts)
	assert.Equal(t, []time.Duration{5 * time.Second}, recorder.recorded())
}

func TestExecuteReplaysSpecUnchanged(t *testing.T) {
	type seen struct {
		method string
		path   string
		query  string
		body   string
	}

	var requests []seen
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		requests = append(requests, seen{
			method: r.Method,
			path:   r.URL.Path,
			query:  r.URL.RawQuery,
			body:   string(body),
		})
		if len(requests) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client, _ := newTestClient(t, server.URL)

	spec := RequestSpec{
		Method: http.MethodPost,
		Path:   "command",
		Body:   CommandRequest{Name: "AlbumSearch", AlbumIDs: []int64{42}},
	}
	_, err := client.execute(context.Background(), spec, nil)
	require.NoError(t, err)

	require.Len(t, requests, 2)
	assert.Equal(t, requests[0], requests[1])
}

func TestExecuteClassifiesTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	client, _ := newTestClient(t, server.URL,
		WithTimeout(20*time.Millisecond), WithMaxRetries(0))

	attempts, err := client.execute(context.Background(), RequestSpec{
		Method: http.MethodGet,
		Path:   "system/status",
	}, nil)

	require.Error(t, err)
	assert.Equal(t, 1, attempts)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, KindTimeout, apiErr.Kind)
	assert.True(t, apiErr.IsTransient())
}

func TestExecuteClassifiesConnectionError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	serverURL := server.URL
	server.Close()

	client, _ := newTestClient(t, serverURL, WithMaxRetries(0))

	attempts, err := client.execute(context.Background(), RequestSpec{
		Method: http.MethodGet,
		Path:   "system/status",
	}, nil)

	require.Error(t, err)
	assert.Equal(t, 1, attempts)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, KindNetwork, apiErr.Kind)
}

func TestExecuteUnknownStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer server.Close()

	client, _ := newTestClient(t, server.URL)

	attempts, err := client.execute(context.Background(), RequestSpec{
		Method: http.MethodGet,
		Path:   "artist",
	}, nil)

	require.Error(t, err)
	assert.Equal(t, 1, attempts)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, KindUnknown, apiErr.Kind)
}

func TestExecuteStopsWhenContextCancelledDuringWait(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client, err := NewClient(server.URL, "test-key", zerolog.Nop(), WithRateLimit(0))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	client.sleep = func(ctx context.Context, d time.Duration) error {
		cancel()
		return ctx.Err()
	}

	_, err = client.execute(ctx, RequestSpec{Method: http.MethodGet, Path: "artist"}, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestExecuteSendsAPIKeyHeader(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.Header.Get("X-Api-Key"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client, _ := newTestClient(t, server.URL)

	_, err := client.execute(context.Background(), RequestSpec{
		Method: http.MethodGet,
		Path:   "system/status",
	}, nil)
	require.NoError(t, err)
}
