// ============================================================================
// layerdeck - SVG layer editor
// ============================================================================
//
// Package:     layerpanel
// Description: Styles for the layer panel TUI
// Author:      Mike Stoffels
// Created:     2026-10-15
// License:     MIT
// ============================================================================

package layerpanel

import (
	"github.com/charmbracelet/lipgloss"
)

// Color Palette
var (
	ColorPrimary   = lipgloss.Color("#8B5CF6") // Violet
	ColorSecondary = lipgloss.Color("#06B6D4") // Cyan
	ColorSuccess   = lipgloss.Color("#10B981") // Emerald
	ColorWarning   = lipgloss.Color("#F59E0B") // Amber
	ColorError     = lipgloss.Color("#EF4444") // Red
	ColorDimmed    = lipgloss.Color("#374151") // Dark Gray

	ColorBgPanel    = lipgloss.Color("#1E293B") // Slate 800
	ColorBgSelected = lipgloss.Color("#3B0764") // Purple 950

	ColorText      = lipgloss.Color("#F8FAFC") // Slate 50
	ColorTextMuted = lipgloss.Color("#94A3B8") // Slate 400
	ColorTextDim   = lipgloss.Color("#64748B") // Slate 500
)

// Header styles
var (
	LogoStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	SubHeaderStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Italic(true)

	TitlePanelStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(ColorPrimary).
			Padding(0, 2)
)

// Row styles
var (
	RowStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	HiddenRowStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim).
			Strikethrough(true)

	CategoryRowStyle = lipgloss.NewStyle().
				Foreground(ColorSecondary).
				Bold(true)

	SelectedRowStyle = lipgloss.NewStyle().
				Background(ColorBgSelected).
				Bold(true)

	RadioBadgeStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	IDStyle = lipgloss.NewStyle().
		Foreground(ColorTextDim)

	IndexStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)
)

// Panel styles
var (
	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorDimmed).
			Padding(0, 1)

	StatusBarStyle = lipgloss.NewStyle().
			Background(ColorBgPanel).
			Foreground(ColorText).
			Padding(0, 1)

	StatusOKStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Bold(true)

	StatusDirtyStyle = lipgloss.NewStyle().
				Foreground(ColorWarning).
				Bold(true)

	StatusErrorStyle = lipgloss.NewStyle().
				Foreground(ColorError).
				Bold(true)
)

// Help styles
var (
	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	HelpDescStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)
)

// Icons
const (
	IconVisible  = "● "
	IconHidden   = "○ "
	IconCategory = "▸ "
)

// Logo
const Logo = "layerdeck"

// RenderKeyHint renders a keyboard shortcut hint
func RenderKeyHint(key, description string) string {
	return HelpKeyStyle.Render(key) + " " + HelpDescStyle.Render(description)
}
