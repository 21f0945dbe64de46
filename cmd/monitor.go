package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/s0up4200/lidarrctl/monitor"
)

// errHealthCritical maps a critical health report to exit code 2.
var errHealthCritical = errors.New("health check reported critical status")

var monitorJSON bool

// monitorCmd represents the monitor command
var monitorCmd = &cobra.Command{
	Use:   "monitor",
	Short: "Run health checks against the Lidarr instance",
	Long: `Check connectivity, disk utilisation, the download queue and wanted
albums. The process exits 0 when everything is healthy, 2 when any check is
critical.`,
	PreRunE: initializeApp,
	RunE:    runMonitor,
}

func init() {
	rootCmd.AddCommand(monitorCmd)

	monitorCmd.Flags().BoolVar(&monitorJSON, "json", false, "print the report as JSON")
}

func runMonitor(cmd *cobra.Command, args []string) error {
	checker := monitor.NewChecker(lidarrClient, monitor.Options{
		DiskThresholdPercent: cfg.Monitor.DiskThresholdPercent,
		QueueWarningSize:     cfg.Monitor.QueueWarningSize,
	}, logger)

	report := checker.Run(cmd.Context())

	if monitorJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return err
		}
	} else {
		t := newTable()
		t.AppendHeader(table.Row{"Check", "Status", "Message"})
		for _, check := range report.Checks {
			t.AppendRow(table.Row{check.Name, check.Status, check.Message})
		}
		t.AppendFooter(table.Row{"", report.Status(), ""})
		t.Render()
	}

	switch report.Status() {
	case monitor.StatusCritical:
		return errHealthCritical
	case monitor.StatusWarning:
		fmt.Fprintln(os.Stderr, "one or more checks reported warnings")
	}
	return nil
}
