// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used by operations that talk to JASPAR.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "motif-fetch/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// SearchConfig holds settings for motif search.
type SearchConfig struct {
	HTTPConfig `yaml:",inline"`

	// MaxResults caps the number of candidates returned per search (default 10).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// DownloadConfig holds settings for matrix downloads.
type DownloadConfig struct {
	HTTPConfig `yaml:",inline"`

	// MotifsDir is the directory downloaded matrix files are written to.
	MotifsDir string `json:"motifs_dir" yaml:"motifs_dir"`
}

// BatchConfig holds settings for batch runs.
type BatchConfig struct {
	// ReportsDir is the directory batch report files are written to.
	ReportsDir string `json:"reports_dir" yaml:"reports_dir"`

	// DownloadDelay is the pause between consecutive keywords (default 1s).
	DownloadDelay time.Duration `json:"download_delay" yaml:"download_delay"`
}

// HistoryConfig holds settings for the local download history database.
type HistoryConfig struct {
	// DataDir is the directory containing history.db.
	DataDir string `json:"data_dir" yaml:"data_dir"`

	// MaxResults is the default maximum number of rows returned by
	// history queries (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// LogConfig holds settings for the action log.
type LogConfig struct {
	// Path is the append-only action log file (e.g. "logs/jaspar_log.txt").
	Path string `json:"path" yaml:"path"`
}
