package library

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testArtist() ArtistInfo {
	return ArtistInfo{
		ID:         1,
		Name:       "Boards of Canada",
		Type:       "Group",
		Status:     "continuing",
		Genres:     []string{"electronic", "ambient"},
		TagNames:   []string{"idm", "vinyl"},
		Monitored:  true,
		Added:      time.Now().AddDate(0, 0, -400),
		AlbumCount: 4,
		SizeOnDisk: 3 << 30,
	}
}

func TestCompileFilter(t *testing.T) {
	tests := []struct {
		name       string
		expression string
		wantErr    bool
	}{
		{"simple property", "Monitored", false},
		{"comparison", "AlbumCount > 2", false},
		{"helper call", `hasTag("vinyl")`, false},
		{"date helper", "daysSince(Added) > 365", false},
		{"empty", "", true},
		{"whitespace only", "   ", true},
		{"syntax error", "Monitored &&", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter, err := CompileFilter(tt.expression)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expression, filter.String())
		})
	}
}

func TestFilterEvaluate(t *testing.T) {
	artist := testArtist()

	tests := []struct {
		expression string
		want       bool
	}{
		{"Monitored", true},
		{"!Monitored", false},
		{"AlbumCount > 2", true},
		{"AlbumCount > 10", false},
		{`hasTag("vinyl")`, true},
		{`hasTag("VINYL")`, true},
		{`hasTag("cassette")`, false},
		{`hasGenre("ambient")`, true},
		{`contains(Name, "canada")`, true},
		{`startsWith(Name, "boards")`, true},
		{`endsWith(Name, "canada")`, true},
		{"daysSince(Added) > 365", true},
		{"Added < daysAgo(30)", true},
		{"SizeOnDisk > 1024", true},
		{`Status == "continuing" && Monitored`, true},
		{`hasTag("idm") || hasTag("missing")`, true},
	}

	for _, tt := range tests {
		t.Run(tt.expression, func(t *testing.T) {
			filter, err := CompileFilter(tt.expression)
			require.NoError(t, err)
			assert.Equal(t, tt.want, filter.Evaluate(artist))
		})
	}
}

func TestFilterEvaluateNonBoolean(t *testing.T) {
	// A non-boolean result must not match.
	filter, err := CompileFilter("AlbumCount")
	require.NoError(t, err)
	assert.False(t, filter.Evaluate(testArtist()))
}
