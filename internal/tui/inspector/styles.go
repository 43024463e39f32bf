// ============================================================================
// sable - token-stream parser toolchain
// ============================================================================
//
// Package:     inspector
// Description: Styles for the AST inspector TUI
// Author:      Mike Stoffels
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package inspector

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/sable/internal/render"
)

// Background and text colors; accents come from the render palette
var (
	ColorDimmed  = lipgloss.Color("#374151") // Dark Gray
	ColorBgPanel = lipgloss.Color("#1E293B") // Slate 800
	ColorText    = lipgloss.Color("#F8FAFC") // Slate 50
)

var (
	LogoStyle = lipgloss.NewStyle().
			Foreground(render.ColorPrimary).
			Bold(true)

	SourceStyle = lipgloss.NewStyle().
			Foreground(render.ColorSecondary)

	TitlePanelStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(render.ColorPrimary).
			Padding(0, 2)

	FormPanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorDimmed).
			Padding(0, 1)

	StatusBarStyle = lipgloss.NewStyle().
			Background(ColorBgPanel).
			Foreground(ColorText).
			Padding(0, 1)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(render.ColorError).
			Bold(true)

	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(render.ColorPrimary).
			Bold(true)

	HelpDescStyle = lipgloss.NewStyle().
			Foreground(render.ColorTextMuted)
)

// Logo
const Logo = "sable inspect"

// RenderKeyHint renders a keyboard shortcut hint
func RenderKeyHint(key, description string) string {
	return HelpKeyStyle.Render(key) + " " + HelpDescStyle.Render(description)
}
