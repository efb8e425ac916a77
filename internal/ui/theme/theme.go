// Package theme computes the widget palette from the host-supplied
// configuration. The palette is a value, not package state: every
// widget instance carries its own Theme so two widgets with different
// accent colors can share a process.
package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// DefaultAccent matches the backend's default primary color.
const DefaultAccent = "#3b82f6"

// Mode selects the light or dark palette.
type Mode string

const (
	ModeLight Mode = "light"
	ModeDark  Mode = "dark"
)

// ParseMode maps a raw attribute value to a Mode, defaulting to light.
func ParseMode(raw string) Mode {
	if raw == string(ModeDark) {
		return ModeDark
	}
	return ModeLight
}

// Theme is the active palette, derived once from the immutable widget
// configuration.
type Theme struct {
	Accent  color.Color // host primary-color
	Text    color.Color
	TextDim color.Color
	Surface color.Color
	Border  color.Color
	Success color.Color
	Error   color.Color
}

// New builds the palette for a mode and accent color. An empty accent
// falls back to DefaultAccent.
func New(mode Mode, accent string) Theme {
	if accent == "" {
		accent = DefaultAccent
	}

	switch mode {
	case ModeDark:
		return Theme{
			Accent:  lipgloss.Color(accent),
			Text:    lipgloss.Color("#F8FAFC"), // White
			TextDim: lipgloss.Color("#94A3B8"), // Slate
			Surface: lipgloss.Color("#1E293B"), // Dark Slate
			Border:  lipgloss.Color("#334155"), // Slate
			Success: lipgloss.Color("#22C55E"), // Green
			Error:   lipgloss.Color("#F43F5E"), // Rose
		}
	default:
		return Theme{
			Accent:  lipgloss.Color(accent),
			Text:    lipgloss.Color("#0F172A"), // Deep Navy
			TextDim: lipgloss.Color("#64748B"), // Slate
			Surface: lipgloss.Color("#F1F5F9"), // Light Slate
			Border:  lipgloss.Color("#CBD5E1"), // Slate
			Success: lipgloss.Color("#16A34A"), // Green
			Error:   lipgloss.Color("#E11D48"), // Rose
		}
	}
}

// Title is the style for screen headings.
func (t Theme) Title() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(t.Accent).Align(lipgloss.Center)
}

// Hint is the style for secondary guidance text.
func (t Theme) Hint() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.TextDim).Italic(true)
}

// ButtonActive is the style for the focused action button.
func (t Theme) ButtonActive() lipgloss.Style {
	return lipgloss.NewStyle().
		Background(t.Accent).
		Foreground(lipgloss.Color("#FFFFFF")).
		Bold(true).
		Padding(0, 2)
}

// ButtonInactive is the style for an unfocused action button.
func (t Theme) ButtonInactive() lipgloss.Style {
	return lipgloss.NewStyle().
		Background(t.Surface).
		Foreground(t.Text).
		Padding(0, 2)
}
