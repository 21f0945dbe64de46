package library

import (
	"time"

	"github.com/s0up4200/lidarrctl/lidarr"
)

// ArtistInfo contains relevant artist information for filtering and display
type ArtistInfo struct {
	ID                int64
	Name              string
	ForeignID         string
	Type              string
	Status            string
	Ended             bool
	Genres            []string
	TagNames          []string
	Monitored         bool
	QualityProfileID  int64
	MetadataProfileID int64
	Path              string
	RootFolderPath    string
	Added             time.Time
	AlbumCount        int
	TrackCount        int
	TrackFileCount    int
	SizeOnDisk        int64
	PercentOfTracks   float64

	// Albums is populated only when an export requests album details.
	Albums []lidarr.Album
}

// newArtistInfo converts a Lidarr artist to an ArtistInfo, resolving tag IDs
// to labels.
func newArtistInfo(artist lidarr.Artist, tagsByID map[int]string) ArtistInfo {
	info := ArtistInfo{
		ID:                artist.ID,
		Name:              artist.ArtistName,
		ForeignID:         artist.ForeignArtistID,
		Type:              artist.ArtistType,
		Status:            artist.Status,
		Ended:             artist.Ended,
		Genres:            artist.Genres,
		TagNames:          make([]string, 0, len(artist.Tags)),
		Monitored:         artist.Monitored,
		QualityProfileID:  artist.QualityProfileID,
		MetadataProfileID: artist.MetadataProfileID,
		Path:              artist.Path,
		RootFolderPath:    artist.RootFolderPath,
		Added:             artist.Added,
	}

	for _, tagID := range artist.Tags {
		if label, ok := tagsByID[tagID]; ok {
			info.TagNames = append(info.TagNames, label)
		}
	}

	if artist.Statistics != nil {
		info.AlbumCount = artist.Statistics.AlbumCount
		info.TrackCount = artist.Statistics.TrackCount
		info.TrackFileCount = artist.Statistics.TrackFileCount
		info.SizeOnDisk = artist.Statistics.SizeOnDisk
		info.PercentOfTracks = artist.Statistics.PercentOfTracks
	}

	return info
}

// ImportResult summarises an artist-list import.
type ImportResult struct {
	Added   []string
	Skipped []string
	Failed  []string
}
