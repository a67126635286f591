// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/akovacs/motif-fetch/internal/jaspar"
	"github.com/akovacs/motif-fetch/pkg/types"
)

var searchCmd = &cobra.Command{
	Use:   "search [keyword]",
	Short: "Search JASPAR for human motifs matching a TF name",
	Long: `Search queries the JASPAR CORE collection for motifs matching a
transcription factor name, filtered to human (tax id 9606). Results keep
the API's relevance ordering; the first result is what batch mode would
download. Use --save to write the candidates to a YAML file for a later
fetch without re-querying.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().Int("max-results", 0, "maximum number of candidates (default 10)")
	searchCmd.Flags().Bool("json", false, "output candidates as JSON")
	searchCmd.Flags().String("save", "", "save candidates to a YAML file")

	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	keyword := args[0]
	maxResults, _ := cmd.Flags().GetInt("max-results")

	cfg := types.SearchConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   httpTimeout(cmd),
			UserAgent: defaultUserAgent,
		},
		MaxResults: maxResults,
	}

	client := newClient(cmd)
	log := newLogger(cmd)
	logWarn(log.Logf("Searching JASPAR for: '%s'", strings.TrimSpace(keyword)))

	candidates, err := client.Search(cmd.Context(), keyword, cfg)
	if err != nil {
		logWarn(log.Logf("JASPAR search error for '%s': %v", strings.TrimSpace(keyword), err))
		return err
	}
	logWarn(log.Logf("Search for '%s' returned %d human candidates", strings.TrimSpace(keyword), len(candidates)))

	if savePath, _ := cmd.Flags().GetString("save"); savePath != "" {
		if err := jaspar.WriteSearchFile(savePath, strings.TrimSpace(keyword), cfg, candidates); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Saved search to %s\n", savePath)
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(candidates)
	}

	printCandidates(candidates)
	return nil
}

func printCandidates(candidates []types.MotifCandidate) {
	if len(candidates) == 0 {
		fmt.Println("No human motifs found.")
		return
	}

	fmt.Printf("%-4s  %-12s  %-30s  %s\n", "Rank", "Matrix ID", "TF Name", "Tax ID")
	fmt.Println(strings.Repeat("-", 60))
	for i, c := range candidates {
		name := c.Name
		if len(name) > 30 {
			name = name[:27] + "..."
		}
		fmt.Printf("%-4d  %-12s  %-30s  %d\n", i+1, c.MatrixID, name, c.TaxID)
	}
	fmt.Printf("\n%d candidates\n", len(candidates))
}

// logWarn downgrades action log failures to a stderr warning.
func logWarn(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: action log write failed: %v\n", err)
	}
}
