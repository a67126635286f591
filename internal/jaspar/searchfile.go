// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package jaspar

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/akovacs/motif-fetch/pkg/types"
)

// SearchFile is the on-disk representation of a search and its candidates.
// A search can be saved to a file and a candidate fetched from it later
// without re-querying the API.
type SearchFile struct {
	Keyword    string                 `yaml:"keyword"`
	MaxResults int                    `yaml:"max_results"`
	Candidates []types.MotifCandidate `yaml:"candidates"`
	Timestamp  time.Time              `yaml:"timestamp"`
}

// WriteSearchFile saves a keyword and its candidates to a YAML file.
func WriteSearchFile(path, keyword string, cfg types.SearchConfig, candidates []types.MotifCandidate) error {
	sf := SearchFile{
		Keyword:    keyword,
		MaxResults: cfg.MaxResults,
		Candidates: candidates,
		Timestamp:  time.Now(),
	}
	data, err := yaml.Marshal(&sf)
	if err != nil {
		return fmt.Errorf("marshaling search file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadSearchFile loads a previously saved search from disk.
func ReadSearchFile(path string) (*SearchFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading search file: %w", err)
	}
	var sf SearchFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("parsing search file: %w", err)
	}
	return &sf, nil
}
