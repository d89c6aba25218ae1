// ============================================================================
// layerdeck - SVG layer editor
// ============================================================================
//
// Package:     layerpanel
// Description: Message types for async operations in the layer panel
// Author:      Mike Stoffels
// Created:     2026-10-15
// License:     MIT
// ============================================================================

package layerpanel

// view selects what the panel lists
type view int

const (
	// viewCatalog lists categories and their members
	viewCatalog view = iota
	// viewStack lists the flat z-order, topmost first
	viewStack
)

func (v view) String() string {
	if v == viewStack {
		return "Stack"
	}
	return "Catalog"
}

// savedMsg is sent when a save finishes
type savedMsg struct {
	path string
	err  error
}
