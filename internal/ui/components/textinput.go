package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/yusuke-kurosawa/diagnoleads-widget/internal/ui/theme"
)

// TextInput wraps bubbles/textinput as one labeled lead-form field.
type TextInput struct {
	Model    textinput.Model
	Label    string
	Required bool
	MaxWidth int
}

// NewTextInput creates a labeled field. Required fields are marked in
// the rendered label and enforced at submit time by the lead form.
func NewTextInput(label, placeholder string, required bool, maxWidth int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder

	if maxWidth > 0 {
		ti.CharLimit = maxWidth
	}

	return TextInput{
		Model:    ti,
		Label:    label,
		Required: required,
		MaxWidth: maxWidth,
	}
}

// Init returns the initial command.
func (t TextInput) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// Focus gives the field keyboard focus.
func (t *TextInput) Focus() tea.Cmd {
	return t.Model.Focus()
}

// Blur removes keyboard focus.
func (t *TextInput) Blur() {
	t.Model.Blur()
}

// Focused reports whether the field has focus.
func (t TextInput) Focused() bool {
	return t.Model.Focused()
}

// View renders the label and the input line.
func (t TextInput) View(th theme.Theme) string {
	label := t.Label
	if t.Required {
		label += " *"
	}

	labelStyle := lipgloss.NewStyle().Foreground(th.TextDim)
	if t.Focused() {
		labelStyle = lipgloss.NewStyle().Foreground(th.Accent).Bold(true)
	}

	return labelStyle.Render(label) + "\n" + t.Model.View()
}

// Value returns the current input value.
func (t TextInput) Value() string {
	return t.Model.Value()
}
