// File: stringx.go
// Title: String Helpers
// Description: Implements blank checks, truncation and padding measured in
//              terminal cells.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core utilities
// - 2026-10-15 v0.2.0: Reduced to the helpers used for layer listings

package stringx

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
)

// IsBlank returns true if the string is empty or contains only whitespace
func IsBlank(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// Width returns the number of terminal cells s occupies
func Width(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate shortens s to at most maxWidth terminal cells, ending with
// ellipsis when cut. An ellipsis that does not fit is dropped.
func Truncate(s string, maxWidth int, ellipsis string) string {
	if maxWidth <= 0 {
		return ""
	}
	if Width(s) <= maxWidth {
		return s
	}
	if Width(ellipsis) >= maxWidth {
		return runewidth.Truncate(s, maxWidth, "")
	}
	return runewidth.Truncate(s, maxWidth, ellipsis)
}

// PadRight pads s with pad up to width terminal cells
func PadRight(s string, width int, pad rune) string {
	n := Width(s)
	pw := runewidth.RuneWidth(pad)
	if n >= width || pw == 0 {
		return s
	}
	return s + strings.Repeat(string(pad), (width-n)/pw)
}
