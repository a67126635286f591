// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/akovacs/motif-fetch/internal/history"
	"github.com/akovacs/motif-fetch/pkg/types"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect the local download history",
	Long: `History queries the local SQLite database of past downloads. Use
"history list" for the most recent entries or "history search" to match a
matrix id, TF name, or batch keyword.`,
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the most recent downloads",
	RunE:  runHistoryList,
}

var historySearchCmd = &cobra.Command{
	Use:   "search [term]",
	Short: "Search past downloads by matrix id, TF name, or keyword",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistorySearch,
}

func init() {
	for _, c := range []*cobra.Command{historyListCmd, historySearchCmd} {
		c.Flags().String("data-dir", "", "directory for the history database (default data/)")
		c.Flags().Int("max-results", 0, "maximum number of entries (default 20)")
		c.Flags().Bool("json", false, "output entries as JSON")
		historyCmd.AddCommand(c)
	}
	rootCmd.AddCommand(historyCmd)
}

func openHistory(cmd *cobra.Command) (*history.Store, error) {
	maxResults, _ := cmd.Flags().GetInt("max-results")
	return history.Open(types.HistoryConfig{
		DataDir:    setting(cmd, "data-dir", "data_dir", defaultDataDir),
		MaxResults: maxResults,
	})
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	store, err := openHistory(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	entries, err := store.List(cmd.Context())
	if err != nil {
		return err
	}
	return printHistory(cmd, entries)
}

func runHistorySearch(cmd *cobra.Command, args []string) error {
	store, err := openHistory(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	entries, err := store.Search(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	return printHistory(cmd, entries)
}

func printHistory(cmd *cobra.Command, entries []history.Entry) error {
	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	if len(entries) == 0 {
		fmt.Println("No downloads recorded.")
		return nil
	}

	fmt.Printf("%-12s  %-20s  %-16s  %-19s  %s\n", "Matrix ID", "TF Name", "Keyword", "Downloaded", "File")
	fmt.Println(strings.Repeat("-", 100))
	for _, e := range entries {
		name := e.Name
		if len(name) > 20 {
			name = name[:17] + "..."
		}
		fmt.Printf("%-12s  %-20s  %-16s  %-19s  %s\n",
			e.MatrixID, name, e.Keyword, e.DownloadedAt.Format("2006-01-02 15:04:05"), e.FilePath)
	}
	fmt.Printf("\n%d entries\n", len(entries))
	return nil
}
