package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/yusuke-kurosawa/diagnoleads-widget/internal/ui/theme"
)

// OptionList is the answer selector for one assessment question.
// Unlike a quiz there is no correct answer: every option is a valid
// choice carrying a score weight the caller never displays.
type OptionList struct {
	Options  []string
	Selected int
}

// NewOptionList creates a selector over the given option labels.
func NewOptionList(options []string) OptionList {
	return OptionList{Options: options}
}

// Update handles keyboard navigation. Choosing is owned by the caller
// (enter / number keys), since the choice drives a state transition.
func (o OptionList) Update(msg tea.Msg) (OptionList, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return o, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if o.Selected > 0 {
			o.Selected--
		}
	case "down", "j":
		if o.Selected < len(o.Options)-1 {
			o.Selected++
		}
	}

	return o, nil
}

// View renders the options in fetch order.
func (o OptionList) View(t theme.Theme) string {
	var s string
	for i, opt := range o.Options {
		prefix := "  "
		if i == o.Selected {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%d)  %s", prefix, i+1, opt)

		if i == o.Selected {
			s += lipgloss.NewStyle().Foreground(t.Accent).Bold(true).Render(line) + "\n"
		} else {
			s += lipgloss.NewStyle().Foreground(t.Text).Render(line) + "\n"
		}
	}
	return s
}
