package lidarr

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// GetAlbum retrieves a single album by ID.
func (c *Client) GetAlbum(ctx context.Context, albumID int64) (*Album, error) {
	var album Album
	spec := RequestSpec{Method: http.MethodGet, Path: fmt.Sprintf("album/%d", albumID)}
	if err := c.do(ctx, spec, &album); err != nil {
		return nil, err
	}
	return &album, nil
}

// GetAlbumsByArtist retrieves all albums for an artist.
func (c *Client) GetAlbumsByArtist(ctx context.Context, artistID int64) ([]Album, error) {
	var albums []Album
	spec := RequestSpec{
		Method: http.MethodGet,
		Path:   "album",
		Query:  url.Values{"artistId": {strconv.FormatInt(artistID, 10)}},
	}
	if err := c.do(ctx, spec, &albums); err != nil {
		return nil, err
	}
	return albums, nil
}

// UpdateAlbum replaces an album's settings.
func (c *Client) UpdateAlbum(ctx context.Context, album *Album) (*Album, error) {
	var updated Album
	spec := RequestSpec{
		Method: http.MethodPut,
		Path:   fmt.Sprintf("album/%d", album.ID),
		Body:   album,
	}
	if err := c.do(ctx, spec, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// GetAlbumReleases retrieves all known releases for an album.
func (c *Client) GetAlbumReleases(ctx context.Context, albumID int64) ([]Release, error) {
	var releases []Release
	spec := RequestSpec{Method: http.MethodGet, Path: fmt.Sprintf("album/%d/releases", albumID)}
	if err := c.do(ctx, spec, &releases); err != nil {
		return nil, err
	}
	return releases, nil
}

// GetRelease retrieves a single release by ID.
func (c *Client) GetRelease(ctx context.Context, releaseID int64) (*Release, error) {
	var release Release
	spec := RequestSpec{Method: http.MethodGet, Path: fmt.Sprintf("release/%d", releaseID)}
	if err := c.do(ctx, spec, &release); err != nil {
		return nil, err
	}
	return &release, nil
}

// SearchAlbum triggers a download search for a specific album.
func (c *Client) SearchAlbum(ctx context.Context, albumID int64) (*CommandResponse, error) {
	return c.sendCommand(ctx, CommandRequest{Name: "AlbumSearch", AlbumIDs: []int64{albumID}})
}

// GetCalendar retrieves upcoming releases between start and end. Either bound
// may be empty to use the server default.
func (c *Client) GetCalendar(ctx context.Context, start, end string) ([]Album, error) {
	query := url.Values{}
	if start != "" {
		query.Set("start", start)
	}
	if end != "" {
		query.Set("end", end)
	}

	var albums []Album
	spec := RequestSpec{Method: http.MethodGet, Path: "calendar", Query: query}
	if err := c.do(ctx, spec, &albums); err != nil {
		return nil, err
	}
	return albums, nil
}

// GetWanted retrieves a page of wanted/missing albums. This endpoint can be
// slow on large libraries, so it carries a longer per-call timeout.
func (c *Client) GetWanted(ctx context.Context, page, pageSize int, includeArtist bool) (*WantedPage, error) {
	query := url.Values{
		"page":          {strconv.Itoa(page)},
		"pageSize":      {strconv.Itoa(pageSize)},
		"includeArtist": {strconv.FormatBool(includeArtist)},
	}

	var wanted WantedPage
	spec := RequestSpec{
		Method:  http.MethodGet,
		Path:    "wanted/missing",
		Query:   query,
		Timeout: DefaultTimeout,
	}
	if err := c.do(ctx, spec, &wanted); err != nil {
		return nil, err
	}
	return &wanted, nil
}
