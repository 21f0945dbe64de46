package lidarr

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	logger := zerolog.Nop()

	tests := []struct {
		name    string
		baseURL string
		apiKey  string
		wantErr error
	}{
		{
			name:    "valid config",
			baseURL: "http://localhost:8686",
			apiKey:  "test-key",
		},
		{
			name:    "missing URL",
			baseURL: "",
			apiKey:  "test-key",
			wantErr: ErrMissingURL,
		},
		{
			name:    "missing API key",
			baseURL: "http://localhost:8686",
			apiKey:  "",
			wantErr: ErrMissingAPIKey,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewClient(tt.baseURL, tt.apiKey, logger)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.baseURL, client.baseURL)
			assert.Equal(t, tt.apiKey, client.apiKey)
			assert.Equal(t, DefaultTimeout, client.timeout)
			assert.Equal(t, DefaultMaxRetries, client.retry.MaxRetries)
			assert.Equal(t, DefaultBackoffFactor, client.retry.BackoffFactor)
		})
	}
}

func TestNewClientTrimsTrailingSlash(t *testing.T) {
	client, err := NewClient("http://localhost:8686/", "test-key", zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8686", client.baseURL)
}

func TestClientOptions(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("with timeout", func(t *testing.T) {
		client, err := NewClient("http://localhost:8686", "k", logger, WithTimeout(5*time.Second))
		require.NoError(t, err)
		assert.Equal(t, 5*time.Second, client.timeout)
	})

	t.Run("with max retries", func(t *testing.T) {
		client, err := NewClient("http://localhost:8686", "k", logger, WithMaxRetries(7))
		require.NoError(t, err)
		assert.Equal(t, 7, client.retry.MaxRetries)
	})

	t.Run("with backoff factor", func(t *testing.T) {
		client, err := NewClient("http://localhost:8686", "k", logger, WithBackoffFactor(1.5))
		require.NoError(t, err)
		assert.Equal(t, 1.5, client.retry.BackoffFactor)
	})

	t.Run("with rate limit disabled", func(t *testing.T) {
		client, err := NewClient("http://localhost:8686", "k", logger, WithRateLimit(0))
		require.NoError(t, err)
		assert.Nil(t, client.pacer.limiter)
	})

	t.Run("with custom http client", func(t *testing.T) {
		custom := &http.Client{Timeout: 10 * time.Second}
		client, err := NewClient("http://localhost:8686", "k", logger, WithHTTPClient(custom))
		require.NoError(t, err)
		assert.Equal(t, custom, client.httpClient)
	})
}

func TestGetAllArtists(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v1/artist", r.URL.Path)
		json.NewEncoder(w).Encode([]Artist{
			{ID: 1, ArtistName: "Boards of Canada", Monitored: true},
			{ID: 2, ArtistName: "Autechre"},
		})
	}))
	defer server.Close()

	client, _ := newTestClient(t, server.URL)

	artists, err := client.GetAllArtists(context.Background())
	require.NoError(t, err)
	require.Len(t, artists, 2)
	assert.Equal(t, "Boards of Canada", artists[0].ArtistName)
	assert.True(t, artists[0].Monitored)
}

func TestLookupArtist(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/artist/lookup", r.URL.Path)
		assert.Equal(t, "aphex twin", r.URL.Query().Get("term"))
		json.NewEncoder(w).Encode([]Artist{{ArtistName: "Aphex Twin", ForeignArtistID: "f22942a1"}})
	}))
	defer server.Close()

	client, _ := newTestClient(t, server.URL)

	artists, err := client.LookupArtist(context.Background(), "aphex twin")
	require.NoError(t, err)
	require.Len(t, artists, 1)
	assert.Equal(t, "Aphex Twin", artists[0].ArtistName)
}

func TestAddArtist(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/artist", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var artist Artist
		require.NoError(t, json.NewDecoder(r.Body).Decode(&artist))
		assert.Equal(t, "Radiohead", artist.ArtistName)
		assert.Equal(t, "/music", artist.RootFolderPath)

		artist.ID = 99
		json.NewEncoder(w).Encode(artist)
	}))
	defer server.Close()

	client, _ := newTestClient(t, server.URL)

	added, err := client.AddArtist(context.Background(), &Artist{
		ArtistName:     "Radiohead",
		RootFolderPath: "/music",
		Monitored:      true,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(99), added.ID)
}

func TestSetArtistsMonitored(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/v1/artist/editor", r.URL.Path)

		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"artistIds":[1,2,3],"monitored":false}`, string(body))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	client, _ := newTestClient(t, server.URL)

	err := client.SetArtistsMonitored(context.Background(), []int64{1, 2, 3}, false)
	require.NoError(t, err)
}

func TestGetQueue(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/queue", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "50", r.URL.Query().Get("pageSize"))
		assert.Equal(t, "true", r.URL.Query().Get("includeArtist"))

		json.NewEncoder(w).Encode(QueuePage{
			Page: 2, PageSize: 50, TotalRecords: 120,
			Records: []QueueItem{{ID: 7, Title: "Some Album", Status: "downloading"}},
		})
	}))
	defer server.Close()

	client, _ := newTestClient(t, server.URL)

	queue, err := client.GetQueue(context.Background(), 2, 50)
	require.NoError(t, err)
	assert.Equal(t, 120, queue.TotalRecords)
	require.Len(t, queue.Records, 1)
	assert.Equal(t, "downloading", queue.Records[0].Status)
}

func TestDeleteQueueItem(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/v1/queue/42", r.URL.Path)
		assert.Equal(t, "true", r.URL.Query().Get("blocklist"))
		assert.Equal(t, "false", r.URL.Query().Get("removeFromClient"))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client, _ := newTestClient(t, server.URL)

	err := client.DeleteQueueItem(context.Background(), 42, true, false)
	require.NoError(t, err)
}

func TestSearchAlbumCommand(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/command", r.URL.Path)
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"name":"AlbumSearch","albumIds":[11]}`, string(body))
		json.NewEncoder(w).Encode(CommandResponse{ID: 1, Name: "AlbumSearch", Status: "queued"})
	}))
	defer server.Close()

	client, _ := newTestClient(t, server.URL)

	resp, err := client.SearchAlbum(context.Background(), 11)
	require.NoError(t, err)
	assert.Equal(t, "queued", resp.Status)
}

func TestPing(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/system/status", r.URL.Path)
		json.NewEncoder(w).Encode(SystemStatus{AppName: "Lidarr", Version: "2.0.7"})
	}))
	defer server.Close()

	client, _ := newTestClient(t, server.URL)
	require.NoError(t, client.Ping(context.Background()))
}

func TestGetTagByName(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]Tag{{ID: 1, Label: "rock"}, {ID: 2, Label: "ambient"}})
	}))
	defer server.Close()

	client, _ := newTestClient(t, server.URL)

	tag, err := client.GetTagByName(context.Background(), "ambient")
	require.NoError(t, err)
	assert.Equal(t, 2, tag.ID)

	_, err = client.GetTagByName(context.Background(), "jazz")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tag not found")
}
