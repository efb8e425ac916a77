package leadform

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/yusuke-kurosawa/diagnoleads-widget/internal/session"
)

func (s *Screen) View(width, height int) string {
	t := s.cfg.Theme
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(t.Accent).
		Bold(true).
		Render("Assessment complete!"))
	b.WriteString("\n")

	// The displayed score comes from the same function that feeds the
	// completion event and the submitted payload.
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(t.Text).
		Render(fmt.Sprintf("Your score: %d", session.AverageScore(s.state))))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(t.TextDim).
		Render("Enter your details to receive your full results."))
	b.WriteString("\n\n")

	formWidth := min(width-8, 48)
	var form strings.Builder
	for i := range s.inputs {
		form.WriteString(s.inputs[i].View(t))
		form.WriteString("\n\n")
	}
	form.WriteString(s.submit.View(t))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Width(formWidth).Render(form.String())))
	b.WriteString("\n")

	if s.state.Phase == session.PhaseSubmitting {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(t.TextDim).
			Render("Submitting..."))
	}

	if s.alert != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(t.Error).
			Bold(true).
			Render(s.alert))
	}

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
