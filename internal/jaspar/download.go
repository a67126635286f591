// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package jaspar

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/akovacs/motif-fetch/internal/httputil"
	"github.com/akovacs/motif-fetch/internal/sanitize"
	"github.com/akovacs/motif-fetch/pkg/types"
)

// Download fetches the PFM matrix for candidate and writes it to
// cfg.MotifsDir under "{matrix_id}_{safe_name}.pfm". Failures of any kind
// (network, HTTP status, empty payload, disk) are captured in the returned
// DownloadResult rather than raised, so a batch loop can always continue
// with the next keyword. Download does not log; recording the action is the
// caller's responsibility.
func (c *Client) Download(ctx context.Context, candidate types.MotifCandidate, cfg types.DownloadConfig) types.DownloadResult {
	path, err := c.fetchMatrix(ctx, candidate, cfg)
	if err != nil {
		return types.DownloadResult{
			Success:  false,
			MatrixID: candidate.MatrixID,
			ErrMsg:   err.Error(),
		}
	}
	return types.DownloadResult{
		Success:  true,
		MatrixID: candidate.MatrixID,
		FilePath: path,
	}
}

// MatrixFilename returns the filename a candidate's matrix is saved under.
// The matrix id keeps files distinct when two TFs share a display name.
func MatrixFilename(candidate types.MotifCandidate) string {
	return candidate.MatrixID + "_" + sanitize.Name(candidate.Name) + ".pfm"
}

// fetchMatrix downloads the matrix payload to a temp file and renames it
// into place on success, so a failed download never leaves a partial file.
func (c *Client) fetchMatrix(ctx context.Context, candidate types.MotifCandidate, cfg types.DownloadConfig) (string, error) {
	if candidate.MatrixID == "" {
		return "", fmt.Errorf("candidate has no matrix id")
	}

	destPath := filepath.Join(cfg.MotifsDir, MatrixFilename(candidate))
	if err := os.MkdirAll(cfg.MotifsDir, 0o755); err != nil {
		return "", fmt.Errorf("creating motifs directory: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.MatrixURL(candidate.MatrixID), nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.UserAgent)

	resp, err := httputil.DoWithRetry(c.HTTP, req, 0)
	if err != nil {
		return "", fmt.Errorf("matrix request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &StatusError{Code: resp.StatusCode}
	}

	tmpFile, err := os.CreateTemp(cfg.MotifsDir, ".fetch-*.tmp")
	if err != nil {
		return "", fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	n, copyErr := io.Copy(tmpFile, resp.Body)
	closeErr := tmpFile.Close()
	if copyErr != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("writing matrix payload: %w", copyErr)
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("closing temp file: %w", closeErr)
	}
	if n == 0 {
		os.Remove(tmpPath)
		return "", fmt.Errorf("empty matrix payload for %s", candidate.MatrixID)
	}

	if err := os.Rename(tmpPath, destPath); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("renaming temp file: %w", err)
	}
	return destPath, nil
}
