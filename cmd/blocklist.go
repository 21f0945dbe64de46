package cmd

import (
	"fmt"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var blocklistPageSize int

// blocklistCmd represents the blocklist command
var blocklistCmd = &cobra.Command{
	Use:   "blocklist",
	Short: "Inspect and clean the release blocklist",
}

var blocklistListCmd = &cobra.Command{
	Use:     "list",
	Short:   "List blocked releases",
	PreRunE: initializeApp,
	RunE: func(cmd *cobra.Command, args []string) error {
		page, err := lidarrClient.GetBlocklist(cmd.Context(), 1, blocklistPageSize)
		if err != nil {
			return err
		}

		if page.TotalRecords == 0 {
			fmt.Println("Blocklist is empty.")
			return nil
		}

		t := newTable()
		t.AppendHeader(table.Row{"ID", "Release", "Indexer", "Protocol", "Date"})
		for _, item := range page.Records {
			t.AppendRow(table.Row{item.ID, item.SourceTitle, item.Indexer, item.Protocol, item.Date.Format("2006-01-02")})
		}
		t.AppendFooter(table.Row{"", fmt.Sprintf("%d of %d entries", len(page.Records), page.TotalRecords), "", "", ""})
		t.Render()
		return nil
	},
}

var blocklistDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Short:   "Remove a single blocklist entry",
	Args:    cobra.ExactArgs(1),
	PreRunE: initializeApp,
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid blocklist ID %q", args[0])
		}
		if err := lidarrClient.DeleteBlocklistItem(cmd.Context(), id); err != nil {
			return err
		}
		fmt.Printf("Removed blocklist entry %d\n", id)
		return nil
	},
}

var blocklistCleanCmd = &cobra.Command{
	Use:     "clean",
	Short:   "Clear the entire blocklist",
	PreRunE: initializeApp,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := lidarrClient.ClearBlocklist(cmd.Context()); err != nil {
			return err
		}
		fmt.Println("Blocklist cleared.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(blocklistCmd)
	blocklistCmd.AddCommand(blocklistListCmd)
	blocklistCmd.AddCommand(blocklistDeleteCmd)
	blocklistCmd.AddCommand(blocklistCleanCmd)

	blocklistListCmd.Flags().IntVar(&blocklistPageSize, "page-size", 50, "number of entries to show")
}
