// File: stringx_test.go
// Title: String Helpers Tests
// Description: Unit tests for blank checks, truncation and padding.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-24 v0.1.0: Initial test implementation
// - 2026-10-15 v0.2.0: Cases for layer names

package stringx

import (
	"testing"
)

func TestIsBlank(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"empty string", "", true},
		{"single space", " ", true},
		{"multiple spaces", "   ", true},
		{"tab and spaces", " \t ", true},
		{"newline", "\n", true},
		{"mixed whitespace", " \t\n\r ", true},
		{"string with content", "hello", false},
		{"string with spaces around", " hello ", false},
		{"unicode content", "こんにちは", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsBlank(tt.input)
			if result != tt.expected {
				t.Errorf("IsBlank(%q) = %v; want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxLen   int
		ellipsis string
		expected string
	}{
		{"short string no truncation", "hello", 10, "...", "hello"},
		{"exact length no truncation", "hello", 5, "...", "hello"},
		{"basic truncation", "hello world", 8, "...", "hello..."},
		{"wide runes", "こんにちは世界", 7, "...", "こん..."},
		{"zero length", "hello", 0, "...", ""},
		{"negative length", "hello", -1, "...", ""},
		{"ellipsis longer than maxLen", "hello", 2, "...", "he"},
		{"empty ellipsis", "hello world", 5, "", "hello"},
		{"custom ellipsis", "hello world", 8, " more", "hel more"},
		{"layer name", "лапы и хвост", 8, "...", "лапы ..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Truncate(tt.input, tt.maxLen, tt.ellipsis)
			if result != tt.expected {
				t.Errorf("Truncate(%q, %d, %q) = %q; want %q", tt.input, tt.maxLen, tt.ellipsis, result, tt.expected)
			}
		})
	}
}

func TestPadRight(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		width    int
		pad      rune
		expected string
	}{
		{"pad with spaces", "hello", 10, ' ', "hello     "},
		{"pad with dashes", "test", 8, '-', "test----"},
		{"no padding needed", "hello", 3, ' ', "hello"},
		{"exact width", "hello", 5, ' ', "hello"},
		{"wide input", "こんにちは", 12, '*', "こんにちは**"},
		{"position column", "c:1/2", 7, ' ', "c:1/2  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := PadRight(tt.input, tt.width, tt.pad)
			if result != tt.expected {
				t.Errorf("PadRight(%q, %d, %q) = %q; want %q", tt.input, tt.width, tt.pad, result, tt.expected)
			}
		})
	}
}
