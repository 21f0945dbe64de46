// Package lidarr provides a client for interacting with the Lidarr API.
//
// Lidarr is a music collection manager for Usenet and BitTorrent users. This
// package implements a clean, idiomatic Go client covering the v1 API surface
// the lidarrctl tool needs: artists, albums, queue, history, profiles, tags
// and system maintenance.
//
// # Architecture
//
// All endpoint methods delegate to a shared request executor that handles the
// mechanics of a reliable round-trip:
//
//   - Rate limiting: outbound calls are paced to a configurable requests/second
//     budget so bulk operations never overwhelm the instance
//   - Retries: transient failures (timeouts, connection errors, 429, 5xx) are
//     retried with exponential backoff; a server-provided Retry-After wait is
//     honoured when larger
//   - Error classification: failures surface as *APIError values carrying the
//     error kind, the last status, and the number of attempts made
//
// Client-caused errors (bad credentials, missing resources, invalid payloads)
// are never retried.
//
// # Usage
//
//	logger := zerolog.New(os.Stdout)
//	client, err := lidarr.NewClient(
//		"http://localhost:8686",
//		"your-api-key",
//		logger,
//		lidarr.WithTimeout(60*time.Second),
//		lidarr.WithRateLimit(2.0),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	ctx := context.Background()
//	artists, err := client.GetAllArtists(ctx)
//	if err != nil {
//		var apiErr *lidarr.APIError
//		if errors.As(err, &apiErr) && apiErr.IsUnauthorized() {
//			// Handle auth failure
//		}
//	}
package lidarr
