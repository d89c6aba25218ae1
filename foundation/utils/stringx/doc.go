// Package stringx provides Unicode-aware string helpers for terminal output.
//
// Package: stringx
// Title: String Helpers
// Description: Blank checks, truncation and padding measured in terminal
//              cells.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core utilities
// - 2026-10-15 v0.2.0: Reduced to the helpers used for layer listings
//
// Layer names come from decoded SVG ids and are often non-ASCII, so every
// width here is a cell count as computed by go-runewidth; wide CJK runes take
// two cells:
//
//	stringx.Truncate("лапы и хвост", 8, "...") // "лапы ..."
//	stringx.PadRight("c:1", 6, ' ')           // "c:1   "
package stringx
