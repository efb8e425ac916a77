// Package thankyou is the terminal confirmation view. No transitions
// lead out of it; the widget session is over.
package thankyou

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/yusuke-kurosawa/diagnoleads-widget/internal/screen"
	"github.com/yusuke-kurosawa/diagnoleads-widget/internal/session"
	"github.com/yusuke-kurosawa/diagnoleads-widget/internal/ui/layout"
	"github.com/yusuke-kurosawa/diagnoleads-widget/internal/ui/theme"
)

// Screen implements screen.Screen for the post-submission confirmation.
type Screen struct {
	theme theme.Theme
	state *session.State
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates the confirmation screen.
func New(t theme.Theme, state *session.State) *Screen {
	return &Screen{theme: t, state: state}
}

func (s *Screen) Init() tea.Cmd {
	return nil
}

func (s *Screen) Title() string {
	return "Thank You"
}

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Close"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "q":
			return s, tea.Quit
		}
	}
	return s, nil
}

func (s *Screen) View(width, height int) string {
	t := s.theme
	var b strings.Builder

	b.WriteString("\n\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(t.Success).
		Bold(true).
		Render("Thank you!"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(t.Text).
		Render("Your results are on their way to your inbox."))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(t.TextDim).
		Render("You can close this window."))

	return b.String()
}
