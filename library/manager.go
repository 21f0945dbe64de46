package library

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

// Manager performs library-wide operations over a Lidarr instance.
type Manager struct {
	api    LidarrAPI
	logger zerolog.Logger
}

// NewManager creates a new library manager.
func NewManager(api LidarrAPI, logger zerolog.Logger) *Manager {
	return &Manager{api: api, logger: logger}
}

// ListArtists fetches the library and returns artists matching the filter
// expression. An empty expression matches everything.
func (m *Manager) ListArtists(ctx context.Context, filterExpr string) ([]ArtistInfo, error) {
	var filter *Filter
	if filterExpr != "" {
		var err error
		filter, err = CompileFilter(filterExpr)
		if err != nil {
			return nil, err
		}
	}

	artists, err := m.api.GetAllArtists(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get artists: %w", err)
	}

	tags, err := m.api.GetTags(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get tags: %w", err)
	}
	tagsByID := make(map[int]string, len(tags))
	for _, tag := range tags {
		tagsByID[tag.ID] = tag.Label
	}

	var matched []ArtistInfo
	for _, artist := range artists {
		info := newArtistInfo(artist, tagsByID)
		if filter == nil || filter.Evaluate(info) {
			matched = append(matched, info)
		}
	}

	m.logger.Debug().
		Int("total", len(artists)).
		Int("matched", len(matched)).
		Str("filter", filterExpr).
		Msg("Filtered artists")

	return matched, nil
}

// BulkSetMonitored flips the monitored flag on every artist matching the
// filter expression and returns how many were changed. Artists already in the
// desired state are left alone.
func (m *Manager) BulkSetMonitored(ctx context.Context, filterExpr string, monitored bool) (int, error) {
	artists, err := m.ListArtists(ctx, filterExpr)
	if err != nil {
		return 0, err
	}

	var ids []int64
	for _, artist := range artists {
		if artist.Monitored != monitored {
			ids = append(ids, artist.ID)
		}
	}
	if len(ids) == 0 {
		return 0, nil
	}

	if err := m.api.SetArtistsMonitored(ctx, ids, monitored); err != nil {
		return 0, fmt.Errorf("failed to update monitoring: %w", err)
	}

	return len(ids), nil
}
