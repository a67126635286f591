// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history persists a record of every successful matrix download in
// a local SQLite database, so prior work can be listed and searched without
// touching the JASPAR API.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/akovacs/motif-fetch/pkg/types"
)

const dbFile = "history.db"

// Entry is one recorded download.
type Entry struct {
	MatrixID     string    `json:"matrix_id"`
	Name         string    `json:"name"`
	Keyword      string    `json:"tf_keyword"`
	FilePath     string    `json:"file_path"`
	DownloadedAt time.Time `json:"downloaded_at"`
}

// Store manages the download history SQLite database.
type Store struct {
	db         *sql.DB
	maxResults int
}

// Open opens or creates the history database at cfg.DataDir/history.db and
// creates the schema if it does not exist.
func Open(cfg types.HistoryConfig) (*Store, error) {
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(cfg.DataDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 20
	}

	s := &Store{db: db, maxResults: maxResults}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS downloads (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			matrix_id TEXT NOT NULL,
			name TEXT,
			tf_keyword TEXT,
			file_path TEXT NOT NULL,
			downloaded_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_downloads_matrix_id ON downloads(matrix_id)`,
		`CREATE INDEX IF NOT EXISTS idx_downloads_name ON downloads(name)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Record inserts one download. keyword is the search term that led to the
// download; empty for single fetches driven by an explicit candidate.
func (s *Store) Record(ctx context.Context, candidate types.MotifCandidate, keyword, filePath string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO downloads (matrix_id, name, tf_keyword, file_path, downloaded_at)
		 VALUES (?, ?, ?, ?, ?)`,
		candidate.MatrixID, candidate.Name, keyword, filePath,
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("recording download %s: %w", candidate.MatrixID, err)
	}
	return nil
}

// List returns the most recent downloads, newest first.
func (s *Store) List(ctx context.Context) ([]Entry, error) {
	return s.query(ctx,
		`SELECT matrix_id, name, tf_keyword, file_path, downloaded_at
		 FROM downloads ORDER BY rowid DESC LIMIT ?`, s.maxResults)
}

// Search returns downloads whose matrix id, TF name, or originating keyword
// contains term (case-insensitive), newest first.
func (s *Store) Search(ctx context.Context, term string) ([]Entry, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, fmt.Errorf("empty search term")
	}
	pattern := "%" + term + "%"
	return s.query(ctx,
		`SELECT matrix_id, name, tf_keyword, file_path, downloaded_at
		 FROM downloads
		 WHERE matrix_id LIKE ? COLLATE NOCASE
		    OR name LIKE ? COLLATE NOCASE
		    OR tf_keyword LIKE ? COLLATE NOCASE
		 ORDER BY rowid DESC LIMIT ?`,
		pattern, pattern, pattern, s.maxResults)
}

func (s *Store) query(ctx context.Context, stmt string, args ...any) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var ts string
		if err := rows.Scan(&e.MatrixID, &e.Name, &e.Keyword, &e.FilePath, &ts); err != nil {
			return nil, fmt.Errorf("scanning history row: %w", err)
		}
		if t, parseErr := time.Parse(time.RFC3339, ts); parseErr == nil {
			e.DownloadedAt = t
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
