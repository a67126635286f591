// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package actionlog appends timestamped action records to a plain-text file.
// Each write opens the file in append mode and closes it again, so no file
// handle is held across calls and concurrent callers never share one.
package actionlog

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const timeFormat = "2006-01-02 15:04:05"

// now is stubbed in tests for deterministic timestamps.
var now = time.Now

// Logger writes one line per action to the file at Path, in the form
// "[2006-01-02 15:04:05] message". The zero value is not usable; construct
// with New so the path is explicit rather than ambient.
type Logger struct {
	path string
}

// New returns a Logger bound to path. The file and its parent directory are
// created on first write, not here.
func New(path string) *Logger {
	return &Logger{path: path}
}

// Path returns the log file path.
func (l *Logger) Path() string { return l.path }

// Log appends a single timestamped line. Failures are returned, not fatal:
// callers treat a broken log as a degraded condition, never as a reason to
// abort the operation that produced the entry.
func (l *Logger) Log(message string) error {
	if dir := filepath.Dir(l.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating log directory: %w", err)
		}
	}

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}

	line := fmt.Sprintf("[%s] %s\n", now().Format(timeFormat), message)
	_, writeErr := f.WriteString(line)
	closeErr := f.Close()
	if writeErr != nil {
		return fmt.Errorf("writing log entry: %w", writeErr)
	}
	if closeErr != nil {
		return fmt.Errorf("closing log file: %w", closeErr)
	}
	return nil
}

// Logf formats and appends a single timestamped line.
func (l *Logger) Logf(format string, args ...any) error {
	return l.Log(fmt.Sprintf(format, args...))
}
