// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/akovacs/motif-fetch/internal/history"
	"github.com/akovacs/motif-fetch/internal/jaspar"
	"github.com/akovacs/motif-fetch/pkg/types"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch [keyword]",
	Short: "Download the matrix file for one motif",
	Long: `Fetch searches JASPAR for a TF name and downloads the selected
candidate's matrix in PFM format. By default the top-ranked candidate is
taken; --rank or --matrix-id select another. With --from, candidates come
from a YAML file saved by "search --save" instead of a live query, in which
case the keyword argument is optional.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().String("motifs-dir", "", "directory for downloaded matrix files (default motifs/)")
	fetchCmd.Flags().Int("rank", 1, "candidate rank to download (1 = best match)")
	fetchCmd.Flags().String("matrix-id", "", "download this matrix id instead of a rank")
	fetchCmd.Flags().String("from", "", "pick the candidate from a saved search YAML file")
	fetchCmd.Flags().String("data-dir", "", "directory for the history database (default data/)")
	fetchCmd.Flags().Bool("no-history", false, "do not record the download in the history database")

	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	client := newClient(cmd)
	log := newLogger(cmd)

	candidates, keyword, err := fetchCandidates(cmd, args, client)
	if err != nil {
		return err
	}
	if len(candidates) == 0 {
		logWarn(log.Logf("Fetch for '%s' found no human motif", keyword))
		return fmt.Errorf("no human motif found for %q", keyword)
	}

	candidate, err := selectCandidate(cmd, candidates)
	if err != nil {
		return err
	}

	dlCfg := types.DownloadConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   httpTimeout(cmd),
			UserAgent: defaultUserAgent,
		},
		MotifsDir: setting(cmd, "motifs-dir", "motifs_dir", defaultMotifsDir),
	}

	res := client.Download(cmd.Context(), candidate, dlCfg)
	if !res.Success {
		logWarn(log.Logf("Download failed for %s: %s", candidate.MatrixID, res.ErrMsg))
		return fmt.Errorf("downloading %s: %s", candidate.MatrixID, res.ErrMsg)
	}
	logWarn(log.Logf("Download successful for %s to %s", res.MatrixID, res.FilePath))

	if noHistory, _ := cmd.Flags().GetBool("no-history"); !noHistory {
		recordFetch(cmd, candidate, keyword, res.FilePath)
	}

	fmt.Printf("Downloaded %s (%s) to %s\n", res.MatrixID, candidate.Name, res.FilePath)
	return nil
}

// fetchCandidates returns the candidate list either from a saved search
// file or from a live query, along with the keyword for logging.
func fetchCandidates(cmd *cobra.Command, args []string, client *jaspar.Client) ([]types.MotifCandidate, string, error) {
	fromPath, _ := cmd.Flags().GetString("from")
	if fromPath != "" {
		sf, err := jaspar.ReadSearchFile(fromPath)
		if err != nil {
			return nil, "", err
		}
		return sf.Candidates, sf.Keyword, nil
	}

	if len(args) == 0 {
		return nil, "", fmt.Errorf("provide a TF keyword or --from with a saved search file")
	}
	keyword := args[0]

	cfg := types.SearchConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   httpTimeout(cmd),
			UserAgent: defaultUserAgent,
		},
	}
	candidates, err := client.Search(cmd.Context(), keyword, cfg)
	if err != nil {
		return nil, keyword, err
	}
	return candidates, keyword, nil
}

func selectCandidate(cmd *cobra.Command, candidates []types.MotifCandidate) (types.MotifCandidate, error) {
	if matrixID, _ := cmd.Flags().GetString("matrix-id"); matrixID != "" {
		for _, c := range candidates {
			if c.MatrixID == matrixID {
				return c, nil
			}
		}
		return types.MotifCandidate{}, fmt.Errorf("matrix id %q not among the %d candidates", matrixID, len(candidates))
	}

	rank, _ := cmd.Flags().GetInt("rank")
	if rank < 1 || rank > len(candidates) {
		return types.MotifCandidate{}, fmt.Errorf("rank %d out of range: %d candidates", rank, len(candidates))
	}
	return candidates[rank-1], nil
}

// recordFetch stores the download in the history database. History issues
// are reported but never fail the fetch.
func recordFetch(cmd *cobra.Command, candidate types.MotifCandidate, keyword, filePath string) {
	store, err := history.Open(types.HistoryConfig{
		DataDir: setting(cmd, "data-dir", "data_dir", defaultDataDir),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: history unavailable: %v\n", err)
		return
	}
	defer store.Close()

	if err := store.Record(cmd.Context(), candidate, keyword, filePath); err != nil {
		fmt.Fprintf(os.Stderr, "warning: history record failed: %v\n", err)
	}
}
