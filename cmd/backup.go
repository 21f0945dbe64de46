package cmd

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/s0up4200/lidarrctl/monitor"
)

// backupCmd represents the backup command
var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Manage Lidarr system backups",
}

var backupListCmd = &cobra.Command{
	Use:     "list",
	Short:   "List available backups",
	PreRunE: initializeApp,
	RunE: func(cmd *cobra.Command, args []string) error {
		backups, err := lidarrClient.GetBackups(cmd.Context())
		if err != nil {
			return err
		}

		if len(backups) == 0 {
			fmt.Println("No backups found.")
			return nil
		}

		t := newTable()
		t.AppendHeader(table.Row{"ID", "Name", "Type", "Size", "Time"})
		for _, b := range backups {
			t.AppendRow(table.Row{b.ID, b.Name, b.Type, monitor.FormatBytes(b.Size), b.Time.Format("2006-01-02 15:04")})
		}
		t.Render()
		return nil
	},
}

var backupCreateCmd = &cobra.Command{
	Use:     "create",
	Short:   "Trigger a manual backup",
	PreRunE: initializeApp,
	RunE: func(cmd *cobra.Command, args []string) error {
		resp, err := lidarrClient.CreateBackup(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Printf("Backup command queued (ID: %d, status: %s)\n", resp.ID, resp.Status)
		return nil
	},
}

var backupRestoreCmd = &cobra.Command{
	Use:     "restore <file>",
	Short:   "Restore a backup by file name",
	Args:    cobra.ExactArgs(1),
	PreRunE: initializeApp,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := lidarrClient.RestoreBackup(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Printf("Restore of %s started; Lidarr will restart\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(backupCmd)
	backupCmd.AddCommand(backupListCmd)
	backupCmd.AddCommand(backupCreateCmd)
	backupCmd.AddCommand(backupRestoreCmd)
}
