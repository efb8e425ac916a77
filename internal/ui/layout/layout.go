package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/yusuke-kurosawa/diagnoleads-widget/internal/ui/theme"
)

// The widget often runs in a small embedded pane, so the minimum
// surface is deliberately modest.
const (
	MinWidth  = 56
	MinHeight = 16
)

// KeyHint represents a key binding hint shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// IsTooSmall returns true if the terminal is below minimum size.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage renders the "terminal too small" message.
func RenderMinSizeMessage(t theme.Theme, width, height int) string {
	return lipgloss.NewStyle().
		Align(lipgloss.Center).
		Foreground(t.Text).
		Width(width).
		Height(height).
		Render(fmt.Sprintf(
			"Window too small!\n\nPlease resize to at\nleast %d x %d\n\nCurrent: %d x %d",
			MinWidth, MinHeight, width, height,
		))
}

// RenderHeader renders the widget header bar: brand on the left, the
// active screen title centered.
func RenderHeader(t theme.Theme, title string, width int) string {
	left := lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true).
		Render("  DiagnoLeads")

	center := lipgloss.NewStyle().
		Foreground(t.Text).
		Render(title)

	leftLen := lipgloss.Width(left)
	centerLen := lipgloss.Width(center)

	innerWidth := width - 4 // account for border padding
	if innerWidth < 0 {
		innerWidth = 0
	}

	leftGap := (innerWidth-centerLen)/2 - leftLen
	if leftGap < 1 {
		leftGap = 1
	}

	content := left + strings.Repeat(" ", leftGap) + center

	return lipgloss.NewStyle().
		Width(width).
		Background(t.Surface).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Render(content)
}

// RenderFooter renders the footer with key hints.
func RenderFooter(t theme.Theme, hints []KeyHint, width int) string {
	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		part := lipgloss.NewStyle().Foreground(t.Text).Bold(true).Render(h.Key) +
			" " +
			lipgloss.NewStyle().Foreground(t.TextDim).Render(h.Description)
		parts = append(parts, part)
	}

	content := "  " + strings.Join(parts, "   ")

	return lipgloss.NewStyle().
		Width(width).
		Background(t.Surface).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Render(content)
}

// RenderFrame composes the full frame: header + content + footer.
func RenderFrame(header, content, footer string, width, height int) string {
	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)

	contentHeight := height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	styledContent := lipgloss.NewStyle().
		Width(width).
		Height(contentHeight).
		Render(content)

	return header + "\n" + styledContent + "\n" + footer
}
