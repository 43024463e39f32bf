package render

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette shared with the inspector
var (
	ColorPrimary   = lipgloss.Color("#8B5CF6") // Violet
	ColorSecondary = lipgloss.Color("#06B6D4") // Cyan
	ColorSuccess   = lipgloss.Color("#10B981") // Emerald
	ColorWarning   = lipgloss.Color("#F59E0B") // Amber
	ColorError     = lipgloss.Color("#EF4444") // Red
	ColorTextMuted = lipgloss.Color("#94A3B8") // Slate 400
	ColorTextDim   = lipgloss.Color("#64748B") // Slate 500
)

// Styles groups the styles a Renderer uses. Plain styles render text
// unchanged.
type Styles struct {
	Position lipgloss.Style
	Message  lipgloss.Style
	Source   lipgloss.Style
	OK       lipgloss.Style
	Failed   lipgloss.Style
	Muted    lipgloss.Style
	Header   lipgloss.Style
}

// ColorStyles returns the terminal styles
func ColorStyles() Styles {
	return Styles{
		Position: lipgloss.NewStyle().Foreground(ColorWarning).Bold(true),
		Message:  lipgloss.NewStyle().Foreground(ColorError),
		Source:   lipgloss.NewStyle().Foreground(ColorSecondary),
		OK:       lipgloss.NewStyle().Foreground(ColorSuccess).Bold(true),
		Failed:   lipgloss.NewStyle().Foreground(ColorError).Bold(true),
		Muted:    lipgloss.NewStyle().Foreground(ColorTextDim),
		Header:   lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true),
	}
}

// PlainStyles returns styles that add no escape codes
func PlainStyles() Styles {
	plain := lipgloss.NewStyle()
	return Styles{
		Position: plain,
		Message:  plain,
		Source:   plain,
		OK:       plain,
		Failed:   plain,
		Muted:    plain,
		Header:   plain,
	}
}
