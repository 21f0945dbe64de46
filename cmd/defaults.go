package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/s0up4200/lidarrctl/config"
)

var (
	defaultsRootFolder string
	defaultsQuality    string
	defaultsMetadata   string
	defaultsMonitored  bool
	defaultsOption     string
	defaultsTags       []string
)

// defaultsCmd represents the defaults command
var defaultsCmd = &cobra.Command{
	Use:   "defaults",
	Short: "Show or save the defaults applied when adding artists",
}

var defaultsShowCmd = &cobra.Command{
	Use:     "show",
	Short:   "Show the saved artist defaults",
	PreRunE: initializeApp,
	RunE: func(cmd *cobra.Command, args []string) error {
		d := cfg.ArtistDefaults
		if d == nil {
			fmt.Println("No artist defaults saved. Use 'lidarrctl defaults save' to create them.")
			return nil
		}

		t := newTable()
		t.AppendHeader(table.Row{"Setting", "Value"})
		t.AppendRow(table.Row{"Root folder", d.RootFolderPath})
		t.AppendRow(table.Row{"Quality profile", d.QualityProfileID})
		t.AppendRow(table.Row{"Metadata profile", d.MetadataProfileID})
		t.AppendRow(table.Row{"Monitored", d.Monitored})
		t.AppendRow(table.Row{"Album monitor option", d.AlbumMonitorOption})
		t.AppendRow(table.Row{"Tag IDs", fmt.Sprint(d.TagIDs)})
		t.Render()
		return nil
	},
}

var defaultsSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Save artist defaults to the config file",
	Long: `Resolve and save the defaults used when adding artists. Profiles can
be given by name or numeric ID; tags are given by label and created when
missing. The root folder must exist in Lidarr.`,
	PreRunE: initializeApp,
	RunE:    runDefaultsSave,
}

func init() {
	rootCmd.AddCommand(defaultsCmd)
	defaultsCmd.AddCommand(defaultsShowCmd)
	defaultsCmd.AddCommand(defaultsSaveCmd)

	defaultsSaveCmd.Flags().StringVar(&defaultsRootFolder, "root-folder", "", "root folder path")
	defaultsSaveCmd.Flags().StringVar(&defaultsQuality, "quality-profile", "", "quality profile name or ID")
	defaultsSaveCmd.Flags().StringVar(&defaultsMetadata, "metadata-profile", "", "metadata profile name or ID")
	defaultsSaveCmd.Flags().BoolVar(&defaultsMonitored, "monitored", true, "monitor added artists")
	defaultsSaveCmd.Flags().StringVar(&defaultsOption, "monitor-option", "all", "album monitor option (all/future/missing/existing/first/latest/none)")
	defaultsSaveCmd.Flags().StringSliceVar(&defaultsTags, "tag", nil, "tag label to apply, repeatable")

	defaultsSaveCmd.MarkFlagRequired("root-folder")
	defaultsSaveCmd.MarkFlagRequired("quality-profile")
	defaultsSaveCmd.MarkFlagRequired("metadata-profile")
}

func runDefaultsSave(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	rootFolder, err := resolveRootFolder(ctx, defaultsRootFolder)
	if err != nil {
		return err
	}

	qualityID, err := resolveQualityProfile(ctx, defaultsQuality)
	if err != nil {
		return err
	}

	metadataID, err := resolveMetadataProfile(ctx, defaultsMetadata)
	if err != nil {
		return err
	}

	tagIDs, err := resolveTags(ctx, defaultsTags)
	if err != nil {
		return err
	}

	defaults := &config.ArtistDefaults{
		RootFolderPath:     rootFolder,
		QualityProfileID:   qualityID,
		MetadataProfileID:  metadataID,
		Monitored:          defaultsMonitored,
		AlbumMonitorOption: defaultsOption,
		TagIDs:             tagIDs,
	}

	path := configPath()
	if err := config.SaveArtistDefaults(path, defaults); err != nil {
		return fmt.Errorf("failed to save defaults: %w", err)
	}

	logger.Info().Str("path", path).Msg("Artist defaults saved")
	fmt.Printf("Defaults saved to %s\n", path)
	return nil
}

func resolveRootFolder(ctx context.Context, path string) (string, error) {
	folders, err := lidarrClient.GetRootFolders(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to get root folders: %w", err)
	}
	for _, folder := range folders {
		if folder.Path == path {
			return folder.Path, nil
		}
	}
	return "", fmt.Errorf("root folder %q not configured in Lidarr", path)
}

func resolveQualityProfile(ctx context.Context, nameOrID string) (int64, error) {
	if id, err := strconv.ParseInt(nameOrID, 10, 64); err == nil {
		return id, nil
	}
	profiles, err := lidarrClient.GetQualityProfiles(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get quality profiles: %w", err)
	}
	for _, profile := range profiles {
		if strings.EqualFold(profile.Name, nameOrID) {
			return profile.ID, nil
		}
	}
	return 0, fmt.Errorf("quality profile %q not found", nameOrID)
}

func resolveMetadataProfile(ctx context.Context, nameOrID string) (int64, error) {
	if id, err := strconv.ParseInt(nameOrID, 10, 64); err == nil {
		return id, nil
	}
	profiles, err := lidarrClient.GetMetadataProfiles(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get metadata profiles: %w", err)
	}
	for _, profile := range profiles {
		if strings.EqualFold(profile.Name, nameOrID) {
			return profile.ID, nil
		}
	}
	return 0, fmt.Errorf("metadata profile %q not found", nameOrID)
}

// resolveTags maps labels to tag IDs, creating tags that do not exist yet.
func resolveTags(ctx context.Context, labels []string) ([]int, error) {
	if len(labels) == 0 {
		return nil, nil
	}

	existing, err := lidarrClient.GetTags(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get tags: %w", err)
	}
	byLabel := make(map[string]int, len(existing))
	for _, tag := range existing {
		byLabel[strings.ToLower(tag.Label)] = tag.ID
	}

	ids := make([]int, 0, len(labels))
	for _, label := range labels {
		if id, ok := byLabel[strings.ToLower(label)]; ok {
			ids = append(ids, id)
			continue
		}
		tag, err := lidarrClient.AddTag(ctx, label)
		if err != nil {
			return nil, fmt.Errorf("failed to create tag %q: %w", label, err)
		}
		ids = append(ids, tag.ID)
	}
	return ids, nil
}
