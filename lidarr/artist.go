package lidarr

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// GetArtist retrieves a single artist by ID.
func (c *Client) GetArtist(ctx context.Context, artistID int64) (*Artist, error) {
	var artist Artist
	spec := RequestSpec{Method: http.MethodGet, Path: fmt.Sprintf("artist/%d", artistID)}
	if err := c.do(ctx, spec, &artist); err != nil {
		return nil, err
	}
	return &artist, nil
}

// GetAllArtists retrieves every artist in the library.
func (c *Client) GetAllArtists(ctx context.Context) ([]Artist, error) {
	var artists []Artist
	spec := RequestSpec{Method: http.MethodGet, Path: "artist"}
	if err := c.do(ctx, spec, &artists); err != nil {
		return nil, err
	}
	c.logger.Debug().Int("count", len(artists)).Msg("Retrieved artists from Lidarr")
	return artists, nil
}

// LookupArtist searches the metadata provider for artists matching term.
func (c *Client) LookupArtist(ctx context.Context, term string) ([]Artist, error) {
	var artists []Artist
	spec := RequestSpec{
		Method: http.MethodGet,
		Path:   "artist/lookup",
		Query:  url.Values{"term": {term}},
	}
	if err := c.do(ctx, spec, &artists); err != nil {
		return nil, err
	}
	return artists, nil
}

// AddArtist adds a new artist to the library.
func (c *Client) AddArtist(ctx context.Context, artist *Artist) (*Artist, error) {
	var added Artist
	spec := RequestSpec{Method: http.MethodPost, Path: "artist", Body: artist}
	if err := c.do(ctx, spec, &added); err != nil {
		return nil, err
	}
	c.logger.Info().Str("artist", added.ArtistName).Int64("id", added.ID).Msg("Added artist")
	return &added, nil
}

// UpdateArtist replaces an artist's settings.
func (c *Client) UpdateArtist(ctx context.Context, artist *Artist) (*Artist, error) {
	var updated Artist
	spec := RequestSpec{
		Method: http.MethodPut,
		Path:   fmt.Sprintf("artist/%d", artist.ID),
		Body:   artist,
	}
	if err := c.do(ctx, spec, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// SetArtistMonitored flips the monitored flag of a single artist. The artist
// is fetched first so the update replays the full resource, which is what the
// endpoint expects.
func (c *Client) SetArtistMonitored(ctx context.Context, artistID int64, monitored bool) (*Artist, error) {
	artist, err := c.GetArtist(ctx, artistID)
	if err != nil {
		return nil, err
	}
	artist.Monitored = monitored
	return c.UpdateArtist(ctx, artist)
}

// GetArtistEditor retrieves all artists in the bulk-editor shape.
func (c *Client) GetArtistEditor(ctx context.Context) ([]Artist, error) {
	var artists []Artist
	spec := RequestSpec{Method: http.MethodGet, Path: "artist/editor"}
	if err := c.do(ctx, spec, &artists); err != nil {
		return nil, err
	}
	return artists, nil
}

// artistEditorRequest is the payload for bulk artist edits.
type artistEditorRequest struct {
	ArtistIDs []int64 `json:"artistIds"`
	Monitored bool    `json:"monitored"`
}

// SetArtistsMonitored updates the monitored flag for multiple artists at once.
func (c *Client) SetArtistsMonitored(ctx context.Context, artistIDs []int64, monitored bool) error {
	spec := RequestSpec{
		Method: http.MethodPut,
		Path:   "artist/editor",
		Body:   artistEditorRequest{ArtistIDs: artistIDs, Monitored: monitored},
	}
	if err := c.do(ctx, spec, nil); err != nil {
		return err
	}
	c.logger.Info().Int("count", len(artistIDs)).Bool("monitored", monitored).
		Msg("Updated artist monitoring")
	return nil
}

// SearchArtistAlbums triggers a search for every album by an artist.
func (c *Client) SearchArtistAlbums(ctx context.Context, artistID int64) (*CommandResponse, error) {
	return c.sendCommand(ctx, CommandRequest{Name: "ArtistSearch", ArtistIDs: []int64{artistID}})
}
