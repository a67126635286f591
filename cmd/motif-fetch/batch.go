// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/akovacs/motif-fetch/internal/batch"
	"github.com/akovacs/motif-fetch/internal/history"
	"github.com/akovacs/motif-fetch/pkg/types"
)

var batchCmd = &cobra.Command{
	Use:   "batch [input.csv]",
	Short: "Download motifs for a CSV list of TF names",
	Long: `Batch reads TF names from the first column of a CSV file, downloads
the best-matching human motif for each, and writes a timestamped report CSV
with one row per input name. A failure on one name never stops the rest;
per-name outcomes appear in the report and the action log.`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().String("motifs-dir", "", "directory for downloaded matrix files (default motifs/)")
	batchCmd.Flags().String("reports-dir", "", "directory for report files (default reports/)")
	batchCmd.Flags().String("data-dir", "", "directory for the history database (default data/)")
	batchCmd.Flags().Duration("delay", 0, "pause between consecutive TFs (default 1s)")
	batchCmd.Flags().Bool("no-history", false, "do not record downloads in the history database")

	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	delay, _ := cmd.Flags().GetDuration("delay")
	if delay == 0 {
		delay = viper.GetDuration("download_delay")
	}
	if delay == 0 {
		delay = defaultDelay
	}

	httpCfg := types.HTTPConfig{
		Timeout:   httpTimeout(cmd),
		UserAgent: defaultUserAgent,
	}
	cfg := batch.Config{
		Search: types.SearchConfig{HTTPConfig: httpCfg},
		Download: types.DownloadConfig{
			HTTPConfig: httpCfg,
			MotifsDir:  setting(cmd, "motifs-dir", "motifs_dir", defaultMotifsDir),
		},
		Batch: types.BatchConfig{
			ReportsDir:    setting(cmd, "reports-dir", "reports_dir", defaultReportsDir),
			DownloadDelay: delay,
		},
	}

	deps := batch.Deps{
		Client: newClient(cmd),
		Log:    newLogger(cmd),
	}
	if noHistory, _ := cmd.Flags().GetBool("no-history"); !noHistory {
		store, err := history.Open(types.HistoryConfig{
			DataDir: setting(cmd, "data-dir", "data_dir", defaultDataDir),
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: history unavailable: %v\n", err)
		} else {
			defer store.Close()
			deps.History = store
		}
	}

	// Per-item failures land in the report and log, not the exit code; only
	// input and report errors fail the command.
	start := time.Now()
	if _, err := batch.Run(cmd.Context(), args[0], cfg, deps, os.Stdout); err != nil {
		return err
	}
	fmt.Printf("finished in %s\n", time.Since(start).Round(time.Second))
	return nil
}
