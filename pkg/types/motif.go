// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for motif-fetch: search
// candidates, download outcomes, and batch report rows.
package types

// HumanTaxID is the NCBI taxonomy identifier for Homo sapiens. Search
// results are filtered to this species.
const HumanTaxID = 9606

// MotifCandidate is one motif record returned by a JASPAR search.
// Immutable once constructed; produced by Search, consumed by Download.
type MotifCandidate struct {
	// MatrixID is the stable JASPAR identifier (e.g. "MA0080.6").
	MatrixID string `json:"matrix_id" yaml:"matrix_id"`

	// Name is the transcription factor symbol (e.g. "SPI1"). Not unique.
	Name string `json:"name" yaml:"name"`

	// TaxID is the species taxonomy identifier (9606 for human).
	TaxID int `json:"tax_id" yaml:"tax_id"`
}

// DownloadResult holds the terminal outcome of one matrix download attempt.
// Download never propagates errors past its boundary; failures are captured
// here so batch processing can continue.
type DownloadResult struct {
	Success  bool   `json:"success" yaml:"success"`
	MatrixID string `json:"matrix_id,omitempty" yaml:"matrix_id,omitempty"`
	FilePath string `json:"file_path,omitempty" yaml:"file_path,omitempty"`
	ErrMsg   string `json:"error_message,omitempty" yaml:"error_message,omitempty"`
}

// RowStatus is the per-keyword outcome recorded in a batch report.
type RowStatus string

const (
	StatusSuccess RowStatus = "SUCCESS"
	StatusFailed  RowStatus = "FAILED"
)

// BatchRow is one report record. Exactly one row is produced per input
// keyword, in input order, independent of every other row.
type BatchRow struct {
	Keyword  string    `json:"tf_keyword" yaml:"tf_keyword"`
	Status   RowStatus `json:"status" yaml:"status"`
	MatrixID string    `json:"matrix_id,omitempty" yaml:"matrix_id,omitempty"`
	FilePath string    `json:"file_path,omitempty" yaml:"file_path,omitempty"`
	ErrMsg   string    `json:"error_message,omitempty" yaml:"error_message,omitempty"`
}

// BatchSummary holds the counts from a completed batch run.
type BatchSummary struct {
	Total      int    `json:"total" yaml:"total"`
	Succeeded  int    `json:"succeeded" yaml:"succeeded"`
	Failed     int    `json:"failed" yaml:"failed"`
	ReportPath string `json:"report_path" yaml:"report_path"`
}
