// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package jaspar

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/akovacs/motif-fetch/pkg/types"
)

const samplePFM = `>MA0080.6	SPI1
A  [  2284   2011   2373      0     66  12363  11963    610 ]
C  [  3881   2982   3723     23     30     10     11    577 ]
G  [  3855   4495   4438  12853  12618     31    270  10026 ]
T  [  2861   3393    347      5    167    477    637   1668 ]
`

func dlCfg(dir string) types.DownloadConfig {
	return types.DownloadConfig{
		HTTPConfig: types.HTTPConfig{UserAgent: "motif-fetch-test/0.1"},
		MotifsDir:  dir,
	}
}

var spi1 = types.MotifCandidate{MatrixID: "MA0080.6", Name: "SPI1", TaxID: 9606}

func TestDownloadWritesMatrixFile(t *testing.T) {
	var capturedPath string
	c := withServer(t, func(w http.ResponseWriter, r *http.Request) {
		capturedPath = r.URL.Path
		fmt.Fprint(w, samplePFM)
	})

	dir := t.TempDir()
	res := c.Download(context.Background(), spi1, dlCfg(dir))

	if !res.Success {
		t.Fatalf("Download failed: %s", res.ErrMsg)
	}
	if capturedPath != "/matrix/MA0080.6/" {
		t.Errorf("request path = %q, want %q", capturedPath, "/matrix/MA0080.6/")
	}

	wantPath := filepath.Join(dir, "MA0080.6_SPI1.pfm")
	if res.FilePath != wantPath {
		t.Errorf("FilePath = %q, want %q", res.FilePath, wantPath)
	}
	data, err := os.ReadFile(res.FilePath)
	if err != nil {
		t.Fatalf("reading downloaded file: %v", err)
	}
	if string(data) != samplePFM {
		t.Errorf("payload not persisted byte-for-byte:\ngot  %q\nwant %q", data, samplePFM)
	}
}

func TestDownloadSanitizesFilename(t *testing.T) {
	c := withServer(t, func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, samplePFM)
	})

	dir := t.TempDir()
	cand := types.MotifCandidate{MatrixID: "MA0099.3", Name: "FOS::JUN", TaxID: 9606}
	res := c.Download(context.Background(), cand, dlCfg(dir))

	if !res.Success {
		t.Fatalf("Download failed: %s", res.ErrMsg)
	}
	if got := filepath.Base(res.FilePath); got != "MA0099.3_FOS__JUN.pfm" {
		t.Errorf("filename = %q, want %q", got, "MA0099.3_FOS__JUN.pfm")
	}
}

func TestDownloadFailureIsResultNotError(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		wantMsg string
	}{
		{
			"remote 404",
			func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNotFound) },
			"HTTP 404",
		},
		{
			"zero-byte payload",
			func(w http.ResponseWriter, _ *http.Request) {},
			"empty matrix payload",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := withServer(t, tt.handler)
			dir := t.TempDir()

			res := c.Download(context.Background(), spi1, dlCfg(dir))
			if res.Success {
				t.Fatal("Download succeeded, want failure result")
			}
			if !strings.Contains(res.ErrMsg, tt.wantMsg) {
				t.Errorf("ErrMsg = %q, want substring %q", res.ErrMsg, tt.wantMsg)
			}
			if res.MatrixID != spi1.MatrixID {
				t.Errorf("MatrixID = %q, want %q", res.MatrixID, spi1.MatrixID)
			}

			// No partial file may survive a failed download.
			entries, err := os.ReadDir(dir)
			if err != nil {
				t.Fatalf("reading dir: %v", err)
			}
			if len(entries) != 0 {
				t.Errorf("found %d leftover files after failure", len(entries))
			}
		})
	}
}

func TestDownloadNetworkFailure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}))
	client := ts.Client()
	ts.Close()

	c := &Client{HTTP: client, BaseURL: ts.URL}
	res := c.Download(context.Background(), spi1, dlCfg(t.TempDir()))
	if res.Success {
		t.Fatal("Download succeeded against closed server")
	}
	if res.ErrMsg == "" {
		t.Error("ErrMsg empty, want transport error text")
	}
}

func TestMatrixFilename(t *testing.T) {
	tests := []struct {
		name string
		cand types.MotifCandidate
		want string
	}{
		{"plain", types.MotifCandidate{MatrixID: "MA0080.6", Name: "SPI1"}, "MA0080.6_SPI1.pfm"},
		{"dimer", types.MotifCandidate{MatrixID: "MA0099.3", Name: "FOS::JUN"}, "MA0099.3_FOS__JUN.pfm"},
		{"empty name", types.MotifCandidate{MatrixID: "MA0001.1", Name: ""}, "MA0001.1_unnamed.pfm"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MatrixFilename(tt.cand); got != tt.want {
				t.Errorf("MatrixFilename = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWriteAndReadSearchFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spi1-search.yaml")
	candidates := []types.MotifCandidate{spi1, {MatrixID: "MA0081.2", Name: "SPIB", TaxID: 9606}}

	if err := WriteSearchFile(path, "SPI1", testCfg(), candidates); err != nil {
		t.Fatalf("WriteSearchFile: %v", err)
	}

	sf, err := ReadSearchFile(path)
	if err != nil {
		t.Fatalf("ReadSearchFile: %v", err)
	}
	if sf.Keyword != "SPI1" {
		t.Errorf("Keyword = %q, want %q", sf.Keyword, "SPI1")
	}
	if len(sf.Candidates) != 2 || sf.Candidates[0].MatrixID != "MA0080.6" {
		t.Errorf("Candidates = %+v, want 2 entries starting with MA0080.6", sf.Candidates)
	}
	if sf.Timestamp.IsZero() {
		t.Error("Timestamp not set")
	}
}

func TestReadSearchFileErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := ReadSearchFile(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("ReadSearchFile(missing) succeeded, want error")
	}

	bad := filepath.Join(dir, "bad.yaml")
	os.WriteFile(bad, []byte("{{not yaml"), 0o644)
	if _, err := ReadSearchFile(bad); err == nil {
		t.Error("ReadSearchFile(bad) succeeded, want error")
	}
}
