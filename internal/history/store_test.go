// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package history

import (
	"context"
	"fmt"
	"testing"

	"github.com/akovacs/motif-fetch/pkg/types"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(types.HistoryConfig{DataDir: t.TempDir()})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRecordAndList(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	cands := []types.MotifCandidate{
		{MatrixID: "MA0080.6", Name: "SPI1", TaxID: 9606},
		{MatrixID: "MA0099.3", Name: "FOS::JUN", TaxID: 9606},
	}
	for _, c := range cands {
		if err := s.Record(ctx, c, c.Name, "/motifs/"+c.MatrixID+".pfm"); err != nil {
			t.Fatalf("Record(%s): %v", c.MatrixID, err)
		}
	}

	entries, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	// Newest first.
	if entries[0].MatrixID != "MA0099.3" || entries[1].MatrixID != "MA0080.6" {
		t.Errorf("order = [%s %s], want [MA0099.3 MA0080.6]",
			entries[0].MatrixID, entries[1].MatrixID)
	}
	if entries[0].DownloadedAt.IsZero() {
		t.Error("DownloadedAt not recorded")
	}
}

func TestSearchMatchesIDNameAndKeyword(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.Record(ctx, types.MotifCandidate{MatrixID: "MA0080.6", Name: "SPI1"}, "SPI1", "/m/a.pfm"); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if err := s.Record(ctx, types.MotifCandidate{MatrixID: "MA0488.1", Name: "JUN"}, "jun", "/m/b.pfm"); err != nil {
		t.Fatalf("Record: %v", err)
	}

	tests := []struct {
		term string
		want int
	}{
		{"spi1", 1},   // name, case-insensitive
		{"MA0488", 1}, // matrix id prefix
		{"jun", 1},    // keyword
		{"zzz", 0},
	}
	for _, tt := range tests {
		entries, err := s.Search(ctx, tt.term)
		if err != nil {
			t.Fatalf("Search(%q): %v", tt.term, err)
		}
		if len(entries) != tt.want {
			t.Errorf("Search(%q) returned %d entries, want %d", tt.term, len(entries), tt.want)
		}
	}
}

func TestSearchEmptyTerm(t *testing.T) {
	s := openTestStore(t)
	if _, err := s.Search(context.Background(), "   "); err == nil {
		t.Error("Search with blank term succeeded, want error")
	}
}

func TestListHonorsMaxResults(t *testing.T) {
	s, err := Open(types.HistoryConfig{DataDir: t.TempDir(), MaxResults: 3})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close()

	ctx := context.Background()
	for i := 0; i < 5; i++ {
		c := types.MotifCandidate{MatrixID: fmt.Sprintf("MA%04d.1", i), Name: "TF"}
		if err := s.Record(ctx, c, "TF", "/m/x.pfm"); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}

	entries, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != 3 {
		t.Errorf("got %d entries, want 3", len(entries))
	}
}

func TestOpenIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < 2; i++ {
		s, err := Open(types.HistoryConfig{DataDir: dir})
		if err != nil {
			t.Fatalf("Open (pass %d): %v", i+1, err)
		}
		s.Close()
	}
}
