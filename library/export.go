package library

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/s0up4200/lidarrctl/lidarr"
)

// Export formats.
const (
	FormatJSON = "json"
	FormatCSV  = "csv"
	FormatTSV  = "tsv"
)

// albumFetchConcurrency bounds parallel album lookups during export.
const albumFetchConcurrency = 10

// ExportOptions controls an artist export.
type ExportOptions struct {
	Format        string
	IncludeAlbums bool
	FilterExpr    string
}

// exportedArtist is the JSON export shape, compatible with the import side.
type exportedArtist struct {
	ForeignArtistID   string          `json:"foreignArtistId"`
	ArtistName        string          `json:"artistName"`
	Disambiguation    string          `json:"disambiguation,omitempty"`
	ArtistType        string          `json:"artistType,omitempty"`
	Status            string          `json:"status,omitempty"`
	Ended             bool            `json:"ended"`
	Genres            []string        `json:"genres,omitempty"`
	Tags              []string        `json:"tags,omitempty"`
	Monitored         bool            `json:"monitored"`
	QualityProfileID  int64           `json:"qualityProfileId,omitempty"`
	MetadataProfileID int64           `json:"metadataProfileId,omitempty"`
	Path              string          `json:"path,omitempty"`
	RootFolderPath    string          `json:"rootFolderPath,omitempty"`
	Albums            []exportedAlbum `json:"albums,omitempty"`
}

type exportedAlbum struct {
	Title       string    `json:"title"`
	AlbumType   string    `json:"albumType,omitempty"`
	Monitored   bool      `json:"monitored"`
	ReleaseDate time.Time `json:"releaseDate,omitempty"`
}

// ExportArtists writes the filtered library to w in the requested format.
func (m *Manager) ExportArtists(ctx context.Context, w io.Writer, opts ExportOptions) (int, error) {
	artists, err := m.ListArtists(ctx, opts.FilterExpr)
	if err != nil {
		return 0, err
	}

	if opts.IncludeAlbums {
		if err := m.fetchAlbums(ctx, artists); err != nil {
			return 0, err
		}
	}

	switch opts.Format {
	case FormatJSON, "":
		err = exportJSON(w, artists)
	case FormatCSV:
		err = exportDelimited(w, artists, ',')
	case FormatTSV:
		err = exportDelimited(w, artists, '\t')
	default:
		return 0, fmt.Errorf("unsupported export format: %s", opts.Format)
	}
	if err != nil {
		return 0, err
	}

	m.logger.Info().Int("count", len(artists)).Str("format", opts.Format).Msg("Exported artists")
	return len(artists), nil
}

// fetchAlbums populates each artist's album list concurrently.
func (m *Manager) fetchAlbums(ctx context.Context, artists []ArtistInfo) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(albumFetchConcurrency)

	var mu sync.Mutex
	for i := range artists {
		i := i
		g.Go(func() error {
			albums, err := m.api.GetAlbumsByArtist(ctx, artists[i].ID)
			if err != nil {
				m.logger.Warn().
					Err(err).
					Str("artist", artists[i].Name).
					Msg("Failed to get albums, continuing without")
				return nil
			}
			mu.Lock()
			artists[i].Albums = albums
			mu.Unlock()
			return nil
		})
	}

	return g.Wait()
}

func exportJSON(w io.Writer, artists []ArtistInfo) error {
	records := make([]exportedArtist, 0, len(artists))
	for _, artist := range artists {
		record := exportedArtist{
			ForeignArtistID:   artist.ForeignID,
			ArtistName:        artist.Name,
			ArtistType:        artist.Type,
			Status:            artist.Status,
			Ended:             artist.Ended,
			Genres:            artist.Genres,
			Tags:              artist.TagNames,
			Monitored:         artist.Monitored,
			QualityProfileID:  artist.QualityProfileID,
			MetadataProfileID: artist.MetadataProfileID,
			Path:              artist.Path,
			RootFolderPath:    artist.RootFolderPath,
		}
		for _, album := range artist.Albums {
			record.Albums = append(record.Albums, exportedAlbum{
				Title:       album.Title,
				AlbumType:   album.AlbumType,
				Monitored:   album.Monitored,
				ReleaseDate: album.ReleaseDate,
			})
		}
		records = append(records, record)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}

func exportDelimited(w io.Writer, artists []ArtistInfo, comma rune) error {
	cw := csv.NewWriter(w)
	cw.Comma = comma

	header := []string{
		"artistName", "foreignArtistId", "monitored", "status",
		"albumCount", "trackFileCount", "sizeOnDisk", "genres", "tags", "path",
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, artist := range artists {
		row := []string{
			artist.Name,
			artist.ForeignID,
			strconv.FormatBool(artist.Monitored),
			artist.Status,
			strconv.Itoa(artist.AlbumCount),
			strconv.Itoa(artist.TrackFileCount),
			strconv.FormatInt(artist.SizeOnDisk, 10),
			strings.Join(artist.Genres, ";"),
			strings.Join(artist.TagNames, ";"),
			artist.Path,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// importedArtist is the accepted import shape; either a foreign artist ID or
// a name to look up must be present.
type importedArtist struct {
	ForeignArtistID string `json:"foreignArtistId"`
	ArtistName      string `json:"artistName"`
}

// ImportArtists reads an exported artist list from r and adds each artist to
// the library using the provided defaults. Artists already present are
// skipped.
func (m *Manager) ImportArtists(ctx context.Context, r io.Reader, defaults lidarr.Artist) (*ImportResult, error) {
	var records []importedArtist
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to parse import file: %w", err)
	}

	existing, err := m.api.GetAllArtists(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get artists: %w", err)
	}
	known := make(map[string]bool, len(existing))
	for _, artist := range existing {
		known[artist.ForeignArtistID] = true
	}

	result := &ImportResult{}
	for _, record := range records {
		name := record.ArtistName
		if name == "" {
			name = record.ForeignArtistID
		}

		if record.ForeignArtistID != "" && known[record.ForeignArtistID] {
			result.Skipped = append(result.Skipped, name)
			continue
		}

		candidate, err := m.resolve(ctx, record)
		if err != nil {
			m.logger.Warn().Err(err).Str("artist", name).Msg("Failed to resolve artist")
			result.Failed = append(result.Failed, name)
			continue
		}
		if known[candidate.ForeignArtistID] {
			result.Skipped = append(result.Skipped, candidate.ArtistName)
			continue
		}

		candidate.Monitored = defaults.Monitored
		candidate.RootFolderPath = defaults.RootFolderPath
		candidate.QualityProfileID = defaults.QualityProfileID
		candidate.MetadataProfileID = defaults.MetadataProfileID
		candidate.Tags = defaults.Tags
		candidate.AddOptions = defaults.AddOptions

		added, err := m.api.AddArtist(ctx, candidate)
		if err != nil {
			m.logger.Warn().Err(err).Str("artist", candidate.ArtistName).Msg("Failed to add artist")
			result.Failed = append(result.Failed, candidate.ArtistName)
			continue
		}

		known[added.ForeignArtistID] = true
		result.Added = append(result.Added, added.ArtistName)
	}

	m.logger.Info().
		Int("added", len(result.Added)).
		Int("skipped", len(result.Skipped)).
		Int("failed", len(result.Failed)).
		Msg("Import finished")

	return result, nil
}

// resolve turns an import record into an addable artist via metadata lookup.
func (m *Manager) resolve(ctx context.Context, record importedArtist) (*lidarr.Artist, error) {
	term := record.ArtistName
	if record.ForeignArtistID != "" {
		term = "lidarr:" + record.ForeignArtistID
	}

	matches, err := m.api.LookupArtist(ctx, term)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no match for %q", term)
	}

	artist := matches[0]
	artist.ID = 0
	return &artist, nil
}
