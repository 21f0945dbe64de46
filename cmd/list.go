package cmd

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/s0up4200/lidarrctl/monitor"
)

var (
	listMonitor   bool
	listUnmonitor bool
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List artists matching the filter criteria",
	Long: `List artists in your Lidarr library that match the filter expression.

With --monitor or --unmonitor the matched artists are bulk-updated through
the artist editor instead of only listed.

Example filters:
  Monitored && AlbumCount > 5
  hasTag("vinyl") && daysSince(Added) > 365
  Status == "ended" && SizeOnDisk == 0`,
	PreRunE: initializeApp,
	RunE:    runList,
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression")
	listCmd.Flags().BoolVar(&listMonitor, "monitor", false, "monitor all matched artists")
	listCmd.Flags().BoolVar(&listUnmonitor, "unmonitor", false, "unmonitor all matched artists")
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	if listMonitor && listUnmonitor {
		return fmt.Errorf("--monitor and --unmonitor are mutually exclusive")
	}

	if listMonitor || listUnmonitor {
		changed, err := manager.BulkSetMonitored(ctx, filterExpr, listMonitor)
		if err != nil {
			return err
		}
		state := "monitored"
		if listUnmonitor {
			state = "unmonitored"
		}
		fmt.Printf("%d artists %s\n", changed, state)
		return nil
	}

	artists, err := manager.ListArtists(ctx, filterExpr)
	if err != nil {
		return err
	}

	if len(artists) == 0 {
		fmt.Println("No artists found matching the filter criteria.")
		return nil
	}

	t := newTable()
	t.AppendHeader(table.Row{"ID", "Artist", "Status", "Monitored", "Albums", "Tracks", "Size"})
	var totalSize int64
	for _, artist := range artists {
		t.AppendRow(table.Row{
			artist.ID,
			artist.Name,
			artist.Status,
			artist.Monitored,
			artist.AlbumCount,
			fmt.Sprintf("%d/%d", artist.TrackFileCount, artist.TrackCount),
			monitor.FormatBytes(artist.SizeOnDisk),
		})
		totalSize += artist.SizeOnDisk
	}
	t.AppendFooter(table.Row{"", fmt.Sprintf("%d artists", len(artists)), "", "", "", "", monitor.FormatBytes(totalSize)})
	t.Render()

	return nil
}
