// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package batch processes a CSV of transcription factor keywords: one
// search and download per keyword, one report row per keyword, with
// per-item failure isolation.
package batch

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/akovacs/motif-fetch/internal/actionlog"
	"github.com/akovacs/motif-fetch/internal/history"
	"github.com/akovacs/motif-fetch/internal/jaspar"
	"github.com/akovacs/motif-fetch/pkg/types"
)

// noMatchMessage is recorded when a search returns no human candidates.
const noMatchMessage = "no human motif found"

// reportColumns is the report header, in column order.
var reportColumns = []string{"TF_Keyword", "Status", "Matrix_ID", "File_Path", "Error_Message"}

// ErrEmptyInput reports an input file that yielded zero keywords.
var ErrEmptyInput = errors.New("input file contains no keywords")

// now is stubbed in tests for deterministic report filenames.
var now = time.Now

// Config collects the settings a batch run needs.
type Config struct {
	Search   types.SearchConfig
	Download types.DownloadConfig
	Batch    types.BatchConfig
}

// Deps collects the collaborators a batch run drives. History may be nil;
// recording downloads is best-effort either way.
type Deps struct {
	Client  *jaspar.Client
	Log     *actionlog.Logger
	History *history.Store
}

// Run reads TF keywords from inputPath, processes them strictly in input
// order, writes a timestamped CSV report, and returns summary counts.
//
// A failure on one keyword never aborts the rest: per-keyword errors are
// captured in the report rows. Only three conditions propagate as errors —
// an unreadable or malformed input file, an input with zero keywords
// (ErrEmptyInput), and a report that cannot be written. Progress lines go
// to w, and exactly one action log entry is appended per keyword, as each
// completes.
func Run(ctx context.Context, inputPath string, cfg Config, deps Deps, w io.Writer) (types.BatchSummary, error) {
	keywords, err := ReadKeywords(inputPath)
	if err != nil {
		return types.BatchSummary{}, err
	}

	total := len(keywords)
	fmt.Fprintf(w, "starting batch download for %d TFs from %s\n", total, inputPath)

	rows := make([]types.BatchRow, 0, total)
	var summary types.BatchSummary

	for i, keyword := range keywords {
		select {
		case <-ctx.Done():
			summary.Total = len(rows)
			return summary, ctx.Err()
		default:
		}

		if i > 0 && cfg.Batch.DownloadDelay > 0 {
			time.Sleep(cfg.Batch.DownloadDelay)
		}

		fmt.Fprintf(w, "[%d/%d] processing: %s\n", i+1, total, keyword)

		row := processKeyword(ctx, keyword, cfg, deps, w)
		rows = append(rows, row)

		if row.Status == types.StatusSuccess {
			summary.Succeeded++
			fmt.Fprintf(w, "  downloaded %s -> %s\n", row.MatrixID, row.FilePath)
			logAction(deps.Log, w, fmt.Sprintf("Batch item %s: downloaded %s to %s", keyword, row.MatrixID, row.FilePath))
		} else {
			summary.Failed++
			fmt.Fprintf(w, "  failed: %s\n", row.ErrMsg)
			logAction(deps.Log, w, fmt.Sprintf("Batch item %s: failed (%s)", keyword, row.ErrMsg))
		}
	}
	summary.Total = total

	reportPath, err := writeReport(cfg.Batch.ReportsDir, rows)
	if err != nil {
		return summary, err
	}
	summary.ReportPath = reportPath

	fmt.Fprintf(w, "\nbatch summary: %d succeeded, %d failed (total: %d)\nreport: %s\n",
		summary.Succeeded, summary.Failed, summary.Total, reportPath)
	return summary, nil
}

// processKeyword runs search-then-download for one keyword and maps the
// outcome to a report row. It never returns an error; all failure modes
// end up in the row.
func processKeyword(ctx context.Context, keyword string, cfg Config, deps Deps, w io.Writer) types.BatchRow {
	row := types.BatchRow{Keyword: keyword, Status: types.StatusFailed}

	candidates, err := deps.Client.Search(ctx, keyword, cfg.Search)
	if err != nil {
		row.ErrMsg = err.Error()
		return row
	}
	if len(candidates) == 0 {
		row.ErrMsg = noMatchMessage
		return row
	}

	// Best match: the API's top-ranked result.
	best := candidates[0]
	res := deps.Client.Download(ctx, best, cfg.Download)
	row.MatrixID = res.MatrixID
	if !res.Success {
		row.ErrMsg = res.ErrMsg
		return row
	}

	row.Status = types.StatusSuccess
	row.FilePath = res.FilePath

	if deps.History != nil {
		if err := deps.History.Record(ctx, best, keyword, res.FilePath); err != nil {
			fmt.Fprintf(w, "  warning: history record failed: %v\n", err)
		}
	}
	return row
}

// ReadKeywords parses inputPath as a CSV and returns the trimmed, uppercased
// first-column values, skipping blank rows. No header row is expected.
func ReadKeywords(inputPath string) ([]string, error) {
	f, err := os.Open(inputPath)
	if err != nil {
		return nil, fmt.Errorf("opening batch input %s: %w", inputPath, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing batch input %s: %w", inputPath, err)
	}

	var keywords []string
	for _, rec := range records {
		if len(rec) == 0 {
			continue
		}
		kw := strings.ToUpper(strings.TrimSpace(rec[0]))
		if kw == "" {
			continue
		}
		keywords = append(keywords, kw)
	}
	if len(keywords) == 0 {
		return nil, ErrEmptyInput
	}
	return keywords, nil
}

// writeReport writes one header row plus one data row per keyword to a new
// timestamped CSV in reportsDir and returns its path.
func writeReport(reportsDir string, rows []types.BatchRow) (string, error) {
	if err := os.MkdirAll(reportsDir, 0o755); err != nil {
		return "", fmt.Errorf("creating reports directory: %w", err)
	}

	name := fmt.Sprintf("jaspar_batch_report_%s.csv", now().Format("20060102_150405"))
	path := filepath.Join(reportsDir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("writing batch report %s: %w", path, err)
	}

	cw := csv.NewWriter(f)
	writeErr := cw.Write(reportColumns)
	for _, row := range rows {
		if writeErr != nil {
			break
		}
		writeErr = cw.Write([]string{row.Keyword, string(row.Status), row.MatrixID, row.FilePath, row.ErrMsg})
	}
	cw.Flush()
	if writeErr == nil {
		writeErr = cw.Error()
	}
	closeErr := f.Close()

	if writeErr != nil {
		os.Remove(path)
		return "", fmt.Errorf("writing batch report %s: %w", path, writeErr)
	}
	if closeErr != nil {
		os.Remove(path)
		return "", fmt.Errorf("closing batch report %s: %w", path, closeErr)
	}
	return path, nil
}

// logAction appends to the action log and downgrades failures to a warning
// on w; a broken log never aborts a batch.
func logAction(l *actionlog.Logger, w io.Writer, msg string) {
	if l == nil {
		return
	}
	if err := l.Log(msg); err != nil {
		fmt.Fprintf(w, "warning: action log write failed: %v\n", err)
	}
}
