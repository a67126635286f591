// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package jaspar queries the JASPAR database for human transcription factor
// motifs and downloads matrix files.
package jaspar

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/akovacs/motif-fetch/internal/httputil"
	"github.com/akovacs/motif-fetch/pkg/types"
)

// apiBase is the JASPAR REST API root. Declared as a var so tests can
// substitute an httptest server.
var apiBase = "https://jaspar.genereg.net/api/v1"

// collection restricts searches to the curated CORE collection.
const collection = "CORE"

const defaultMaxResults = 10

// ErrEmptyQuery reports a search keyword that is empty after trimming.
var ErrEmptyQuery = errors.New("empty query: provide a transcription factor name")

// StatusError reports a non-success HTTP status from the JASPAR API.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("JASPAR API returned HTTP %d", e.Code)
}

// Client talks to the JASPAR REST API. It holds no mutable state beyond the
// HTTP client, so one Client can serve any number of sequential operations.
type Client struct {
	HTTP      *http.Client
	UserAgent string

	// BaseURL overrides the JASPAR API root; empty means the public API.
	BaseURL string
}

func (c *Client) baseURL() string {
	if c.BaseURL != "" {
		return c.BaseURL
	}
	return apiBase
}

// MatrixURL returns the download URL for a matrix in PFM format.
func (c *Client) MatrixURL(matrixID string) string {
	return c.baseURL() + "/matrix/" + url.PathEscape(matrixID) + "/?format=pfm"
}

// Search queries JASPAR for motifs matching keyword and returns candidates
// filtered to human (tax id 9606), preserving the API's relevance ordering.
// An empty filtered set is returned as an empty slice, not an error; the
// caller decides whether that is a failure.
//
// Errors: ErrEmptyQuery for a blank keyword, a wrapped transport error on
// network failure, *StatusError on a non-200 response, and a wrapped decode
// error when the body is not the expected shape.
func (c *Client) Search(ctx context.Context, keyword string, cfg types.SearchConfig) ([]types.MotifCandidate, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil, ErrEmptyQuery
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}

	params := url.Values{
		"search":     {keyword},
		"tax_id":     {strconv.Itoa(types.HumanTaxID)},
		"collection": {collection},
	}
	reqURL := c.baseURL() + "/matrix/?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.UserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := httputil.DoWithRetry(c.HTTP, req, 0)
	if err != nil {
		return nil, fmt.Errorf("JASPAR search request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{Code: resp.StatusCode}
	}

	var mr matrixListResponse
	if err := json.NewDecoder(resp.Body).Decode(&mr); err != nil {
		return nil, fmt.Errorf("parsing JASPAR search response: %w", err)
	}

	// The tax_id query parameter is advisory; filter again here so mixed
	// payloads never leak non-human records to callers.
	var candidates []types.MotifCandidate
	for _, m := range mr.Results {
		taxID, ok := m.humanTaxID()
		if !ok {
			continue
		}
		candidates = append(candidates, types.MotifCandidate{
			MatrixID: m.MatrixID,
			Name:     m.Name,
			TaxID:    taxID,
		})
		if len(candidates) >= maxResults {
			break
		}
	}
	return candidates, nil
}

// JASPAR matrix list JSON structures.
type matrixListResponse struct {
	Count    int           `json:"count"`
	Next     string        `json:"next"`
	Previous string        `json:"previous"`
	Results  []matrixEntry `json:"results"`
}

type matrixEntry struct {
	MatrixID   string  `json:"matrix_id"`
	Name       string  `json:"name"`
	Collection string  `json:"collection"`
	Species    []taxon `json:"species"`
}

type taxon struct {
	TaxID int    `json:"tax_id"`
	Name  string `json:"name"`
}

// humanTaxID reports whether the entry is annotated with the human taxonomy
// id and returns it. Matrices tagged with several species count as human if
// any of them is 9606.
func (m matrixEntry) humanTaxID() (int, bool) {
	for _, s := range m.Species {
		if s.TaxID == types.HumanTaxID {
			return s.TaxID, true
		}
	}
	return 0, false
}
