package assessment

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/yusuke-kurosawa/diagnoleads-widget/internal/session"
	"github.com/yusuke-kurosawa/diagnoleads-widget/internal/ui/components"
)

func (s *Screen) View(width, height int) string {
	switch s.state.Phase {
	case session.PhaseLoading:
		return s.renderLoading(width)
	case session.PhaseError:
		return s.renderError(width)
	default:
		return s.renderQuestion(width)
	}
}

func (s *Screen) renderLoading(width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(s.cfg.Theme.TextDim).
		Render("\n\n\n  Loading assessment...")
}

// renderError is the terminal fetch-failure view. There is no retry
// path; the host re-embeds the widget to start over.
func (s *Screen) renderError(width int) string {
	t := s.cfg.Theme
	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(t.Error).
		Bold(true).
		Render("Unable to load the assessment."))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(t.TextDim).
		Render("Please try again later."))
	return b.String()
}

func (s *Screen) renderQuestion(width int) string {
	t := s.cfg.Theme
	q := s.state.CurrentQuestion()
	if q == nil {
		return ""
	}

	n := s.state.QuestionCount()
	var b strings.Builder

	// Progress line.
	counter := fmt.Sprintf("Question %d of %d", s.state.Index+1, n)
	b.WriteString("  " + lipgloss.NewStyle().Foreground(t.TextDim).Render(counter))
	b.WriteString("\n")
	bar := components.NewProgressBar("", session.Progress(s.state), true, min(width-4, 60))
	b.WriteString("  " + bar.View(t))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(t.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	// Question text (centered).
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(t.Text).
		Bold(true).
		Render(q.Text))
	b.WriteString("\n\n")

	// Options, centered as a block.
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.options.View(t)))
	b.WriteString("\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(t.TextDim).
		Render("Select an answer (1-9) or use arrows + Enter"))

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
