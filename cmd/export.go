package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/s0up4200/lidarrctl/lidarr"
	"github.com/s0up4200/lidarrctl/library"
)

var (
	exportFormat string
	exportOutput string
	exportAlbums bool
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:     "export",
	Short:   "Export the artist library to JSON, CSV or TSV",
	PreRunE: initializeApp,
	RunE:    runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVar(&exportFormat, "format", library.FormatJSON, "output format: json, csv or tsv")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default stdout)")
	exportCmd.Flags().BoolVar(&exportAlbums, "albums", false, "include album details (JSON only)")
	exportCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression")
}

func runExport(cmd *cobra.Command, args []string) error {
	var w io.Writer = os.Stdout
	if exportOutput != "" {
		f, err := os.Create(exportOutput)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	count, err := manager.ExportArtists(cmd.Context(), w, library.ExportOptions{
		Format:        exportFormat,
		IncludeAlbums: exportAlbums,
		FilterExpr:    filterExpr,
	})
	if err != nil {
		return err
	}

	if exportOutput != "" {
		fmt.Printf("Exported %d artists to %s\n", count, exportOutput)
	}
	return nil
}

// importCmd represents the import command
var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import artists from a previously exported JSON file",
	Long: `Import artists from a JSON export. Artists already in the library are
skipped; new ones are looked up by MusicBrainz ID and added with the saved
artist defaults filling any gaps. Pass - to read from stdin.`,
	Args:    cobra.ExactArgs(1),
	PreRunE: initializeApp,
	RunE:    runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	var r io.Reader = os.Stdin
	if args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open import file: %w", err)
		}
		defer f.Close()
		r = f
	}

	result, err := manager.ImportArtists(cmd.Context(), r, defaultsArtist())
	if err != nil {
		return err
	}

	fmt.Printf("Import finished: %d added, %d skipped, %d failed\n",
		len(result.Added), len(result.Skipped), len(result.Failed))
	for _, name := range result.Failed {
		fmt.Printf("  failed: %s\n", name)
	}
	if len(result.Failed) > 0 {
		return fmt.Errorf("%d artists failed to import", len(result.Failed))
	}
	return nil
}

// defaultsArtist converts the saved artist defaults into the template the
// importer applies to new artists.
func defaultsArtist() lidarr.Artist {
	d := cfg.ArtistDefaults
	if d == nil {
		return lidarr.Artist{}
	}
	artist := lidarr.Artist{
		RootFolderPath:    d.RootFolderPath,
		QualityProfileID:  d.QualityProfileID,
		MetadataProfileID: d.MetadataProfileID,
		Monitored:         d.Monitored,
		Tags:              d.TagIDs,
	}
	if d.AlbumMonitorOption != "" {
		artist.AddOptions = &lidarr.AddArtistOptions{Monitor: d.AlbumMonitorOption}
	}
	return artist
}
