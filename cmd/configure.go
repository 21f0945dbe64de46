package cmd

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/s0up4200/lidarrctl/config"
	"github.com/s0up4200/lidarrctl/lidarr"
)

var configureSkipTest bool

// configureCmd represents the configure command
var configureCmd = &cobra.Command{
	Use:   "configure",
	Short: "Save the Lidarr connection settings to the config file",
	Long: `Verify the given --url and --api-key against the server and store them
in the config file for later runs.`,
	RunE: runConfigure,
}

func init() {
	rootCmd.AddCommand(configureCmd)

	configureCmd.Flags().BoolVar(&configureSkipTest, "skip-test", false, "save without testing the connection")
}

func runConfigure(cmd *cobra.Command, args []string) error {
	if flagURL == "" || flagAPIKey == "" {
		return fmt.Errorf("--url and --api-key are required")
	}

	if !configureSkipTest {
		client, err := lidarr.NewClient(flagURL, flagAPIKey, zerolog.Nop(), lidarr.WithTimeout(10*time.Second))
		if err != nil {
			return err
		}
		if err := client.Ping(cmd.Context()); err != nil {
			return fmt.Errorf("connection test failed: %w", err)
		}
	}

	path := configPath()
	if err := config.SaveConnection(path, flagURL, flagAPIKey); err != nil {
		return fmt.Errorf("failed to save connection: %w", err)
	}

	fmt.Printf("Connection saved to %s\n", path)
	return nil
}
