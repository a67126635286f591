// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package sanitize

import "testing"

func TestName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain symbol", "SPI1", "SPI1"},
		{"fusion name", "EWSR1-FLI1", "EWSR1-FLI1"},
		{"dimer with colons", "FOS::JUN", "FOS__JUN"},
		{"variant with parens", "SMAD2::SMAD3::SMAD4 (var.2)", "SMAD2__SMAD3__SMAD4__var.2_"},
		{"path separators", "a/b\\c", "a_b_c"},
		{"windows illegal chars", `n:*?"<>|m`, "n_______m"},
		{"surrounding whitespace", "  NFKB1  ", "NFKB1"},
		{"interior space", "HIF1A ARNT", "HIF1A_ARNT"},
		{"empty", "", "unnamed"},
		{"whitespace only", " \t\n ", "unnamed"},
		{"unicode", "αβγ", "___"},
		{"keeps dots and digits", "MA0080.6", "MA0080.6"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Name(tt.input)
			if got != tt.want {
				t.Errorf("Name(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNameIdempotent(t *testing.T) {
	inputs := []string{
		"SPI1", "FOS::JUN", "a/b\\c", "", "  spaced name  ", "αβγ", "MA0080.6_SPI1",
	}
	for _, in := range inputs {
		once := Name(in)
		twice := Name(once)
		if once != twice {
			t.Errorf("Name not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}

func TestNameOutputAlphabet(t *testing.T) {
	inputs := []string{
		"FOS::JUN", "a/b\\c", `n:*?"<>|m`, "tab\there", "MA0139.2 CTCF (var.3)",
	}
	for _, in := range inputs {
		out := Name(in)
		for _, r := range out {
			if !safe(r) {
				t.Errorf("Name(%q) = %q contains unsafe rune %q", in, out, r)
			}
		}
	}
}
