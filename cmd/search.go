package cmd

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/s0up4200/lidarrctl/lidarr"
)

var (
	searchAdd        bool
	searchSelect     int
	searchRootFolder string
	searchQuality    int64
	searchMetadata   int64
	searchMonitored  bool
	searchMissing    bool
)

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search <term>",
	Short: "Search for artists and optionally add one to the library",
	Long: `Search the metadata server for artists matching the given term.

With --add the selected result (first by default, or --select N) is added to
the library using the saved artist defaults, which individual flags can
override.`,
	Args:    cobra.MinimumNArgs(1),
	PreRunE: initializeApp,
	RunE:    runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().BoolVar(&searchAdd, "add", false, "add the selected result to the library")
	searchCmd.Flags().IntVar(&searchSelect, "select", 1, "result to add, 1-based")
	searchCmd.Flags().StringVar(&searchRootFolder, "root-folder", "", "root folder path for the new artist")
	searchCmd.Flags().Int64Var(&searchQuality, "quality-profile", 0, "quality profile ID for the new artist")
	searchCmd.Flags().Int64Var(&searchMetadata, "metadata-profile", 0, "metadata profile ID for the new artist")
	searchCmd.Flags().BoolVar(&searchMonitored, "monitored", true, "monitor the new artist")
	searchCmd.Flags().BoolVar(&searchMissing, "search-missing", false, "search for missing albums after adding")
}

func runSearch(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	term := strings.Join(args, " ")

	logger.Info().Str("term", term).Msg("Searching artists")

	results, err := lidarrClient.LookupArtist(ctx, term)
	if err != nil {
		return fmt.Errorf("lookup failed: %w", err)
	}

	if len(results) == 0 {
		fmt.Println("No artists found.")
		return nil
	}

	t := newTable()
	t.AppendHeader(table.Row{"#", "Artist", "Type", "Status", "MusicBrainz ID"})
	for i, artist := range results {
		t.AppendRow(table.Row{i + 1, artist.ArtistName, artist.ArtistType, artist.Status, artist.ForeignArtistID})
	}
	t.Render()

	if !searchAdd {
		return nil
	}

	if searchSelect < 1 || searchSelect > len(results) {
		return fmt.Errorf("--select %d out of range, got %d results", searchSelect, len(results))
	}

	return addArtist(cmd, results[searchSelect-1])
}

// addArtist adds a lookup result, layering saved defaults under any flags
// given on the command line.
func addArtist(cmd *cobra.Command, artist lidarr.Artist) error {
	ctx := cmd.Context()

	if d := cfg.ArtistDefaults; d != nil {
		artist.RootFolderPath = d.RootFolderPath
		artist.QualityProfileID = d.QualityProfileID
		artist.MetadataProfileID = d.MetadataProfileID
		artist.Monitored = d.Monitored
		artist.Tags = d.TagIDs
		if d.AlbumMonitorOption != "" {
			artist.AddOptions = &lidarr.AddArtistOptions{Monitor: d.AlbumMonitorOption}
		}
	}

	if cmd.Flags().Changed("root-folder") {
		artist.RootFolderPath = searchRootFolder
	}
	if cmd.Flags().Changed("quality-profile") {
		artist.QualityProfileID = searchQuality
	}
	if cmd.Flags().Changed("metadata-profile") {
		artist.MetadataProfileID = searchMetadata
	}
	if cmd.Flags().Changed("monitored") {
		artist.Monitored = searchMonitored
	}
	if searchMissing {
		if artist.AddOptions == nil {
			artist.AddOptions = &lidarr.AddArtistOptions{}
		}
		artist.AddOptions.SearchForMissingAlbums = true
	}

	if artist.RootFolderPath == "" {
		return fmt.Errorf("no root folder configured; use --root-folder or save defaults first")
	}

	added, err := lidarrClient.AddArtist(ctx, &artist)
	if err != nil {
		return fmt.Errorf("failed to add artist: %w", err)
	}

	fmt.Printf("Added %s (ID: %d)\n", added.ArtistName, added.ID)
	return nil
}
