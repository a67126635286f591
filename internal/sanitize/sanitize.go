// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package sanitize maps display names to filesystem-safe filename stems.
package sanitize

import "strings"

// fallback is substituted when sanitization leaves nothing usable.
const fallback = "unnamed"

// Name returns a filesystem-safe version of raw. Letters, digits, hyphen,
// underscore, and period pass through; every other character becomes an
// underscore. Leading and trailing whitespace is dropped first. An empty
// result yields "unnamed". Name is total and idempotent.
func Name(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return fallback
	}

	var b strings.Builder
	b.Grow(len(trimmed))
	for _, r := range trimmed {
		if safe(r) {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	return b.String()
}

func safe(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z':
		return true
	case r >= 'A' && r <= 'Z':
		return true
	case r >= '0' && r <= '9':
		return true
	case r == '-' || r == '_' || r == '.':
		return true
	}
	return false
}
