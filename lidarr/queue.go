package lidarr

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// GetQueue retrieves a page of the download queue.
func (c *Client) GetQueue(ctx context.Context, page, pageSize int) (*QueuePage, error) {
	query := url.Values{
		"page":          {strconv.Itoa(page)},
		"pageSize":      {strconv.Itoa(pageSize)},
		"includeArtist": {"true"},
		"includeAlbum":  {"true"},
	}

	var queue QueuePage
	spec := RequestSpec{Method: http.MethodGet, Path: "queue", Query: query}
	if err := c.do(ctx, spec, &queue); err != nil {
		return nil, err
	}
	return &queue, nil
}

// DeleteQueueItem removes an item from the queue, optionally blocklisting the
// release and removing the download from the client.
func (c *Client) DeleteQueueItem(ctx context.Context, queueID int64, blocklist, removeFromClient bool) error {
	query := url.Values{
		"blocklist":        {strconv.FormatBool(blocklist)},
		"removeFromClient": {strconv.FormatBool(removeFromClient)},
	}
	spec := RequestSpec{
		Method: http.MethodDelete,
		Path:   fmt.Sprintf("queue/%d", queueID),
		Query:  query,
	}
	if err := c.do(ctx, spec, nil); err != nil {
		return err
	}
	c.logger.Info().Int64("queue_id", queueID).Bool("blocklist", blocklist).Msg("Removed queue item")
	return nil
}

// GetHistory retrieves a page of download history.
func (c *Client) GetHistory(ctx context.Context, page, pageSize int) (*HistoryPage, error) {
	query := url.Values{
		"page":          {strconv.Itoa(page)},
		"pageSize":      {strconv.Itoa(pageSize)},
		"includeArtist": {"true"},
	}

	var history HistoryPage
	spec := RequestSpec{Method: http.MethodGet, Path: "history", Query: query}
	if err := c.do(ctx, spec, &history); err != nil {
		return nil, err
	}
	return &history, nil
}

// GetBlocklist retrieves a page of blocklisted releases. Slow on large
// instances, so it carries a longer per-call timeout.
func (c *Client) GetBlocklist(ctx context.Context, page, pageSize int) (*BlocklistPage, error) {
	query := url.Values{
		"page":          {strconv.Itoa(page)},
		"pageSize":      {strconv.Itoa(pageSize)},
		"includeArtist": {"true"},
	}

	var blocklist BlocklistPage
	spec := RequestSpec{
		Method:  http.MethodGet,
		Path:    "blocklist",
		Query:   query,
		Timeout: DefaultTimeout,
	}
	if err := c.do(ctx, spec, &blocklist); err != nil {
		return nil, err
	}
	return &blocklist, nil
}

// DeleteBlocklistItem removes one release from the blocklist.
func (c *Client) DeleteBlocklistItem(ctx context.Context, blocklistID int64) error {
	spec := RequestSpec{Method: http.MethodDelete, Path: fmt.Sprintf("blocklist/%d", blocklistID)}
	return c.do(ctx, spec, nil)
}

// ClearBlocklist removes every release from the blocklist.
func (c *Client) ClearBlocklist(ctx context.Context) error {
	spec := RequestSpec{Method: http.MethodDelete, Path: "blocklist"}
	if err := c.do(ctx, spec, nil); err != nil {
		return err
	}
	c.logger.Info().Msg("Cleared blocklist")
	return nil
}

// GetTrackFile retrieves a track file by ID.
func (c *Client) GetTrackFile(ctx context.Context, trackFileID int64) (*TrackFile, error) {
	var file TrackFile
	spec := RequestSpec{Method: http.MethodGet, Path: fmt.Sprintf("trackfile/%d", trackFileID)}
	if err := c.do(ctx, spec, &file); err != nil {
		return nil, err
	}
	return &file, nil
}

// DeleteTrackFile deletes a track file by ID.
func (c *Client) DeleteTrackFile(ctx context.Context, trackFileID int64) error {
	spec := RequestSpec{Method: http.MethodDelete, Path: fmt.Sprintf("trackfile/%d", trackFileID)}
	return c.do(ctx, spec, nil)
}

// GetManualImport lists import candidates found in a folder.
func (c *Client) GetManualImport(ctx context.Context, folder string) ([]ManualImportItem, error) {
	var items []ManualImportItem
	spec := RequestSpec{
		Method: http.MethodGet,
		Path:   "manualimport",
		Query:  url.Values{"folder": {folder}},
	}
	if err := c.do(ctx, spec, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// ExecuteManualImport imports the given files.
func (c *Client) ExecuteManualImport(ctx context.Context, files []ManualImportItem) (*CommandResponse, error) {
	return c.sendCommand(ctx, CommandRequest{Name: "ManualImport", Files: files})
}
