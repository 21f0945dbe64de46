package library

import (
	"context"

	"github.com/s0up4200/lidarrctl/lidarr"
)

// LidarrAPI captures the client surface the library operations depend on,
// allowing tests to substitute a mock.
type LidarrAPI interface {
	GetAllArtists(ctx context.Context) ([]lidarr.Artist, error)
	GetTags(ctx context.Context) ([]lidarr.Tag, error)
	GetAlbumsByArtist(ctx context.Context, artistID int64) ([]lidarr.Album, error)
	LookupArtist(ctx context.Context, term string) ([]lidarr.Artist, error)
	AddArtist(ctx context.Context, artist *lidarr.Artist) (*lidarr.Artist, error)
	SetArtistsMonitored(ctx context.Context, artistIDs []int64, monitored bool) error
}
