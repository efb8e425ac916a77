package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/yusuke-kurosawa/diagnoleads-widget/internal/ui/layout"
)

// Screen is one view of the widget protocol (question loop, lead form,
// thank-you). Screens render their own content; the app frame supplies
// the header and footer.
type Screen interface {
	// Init returns an initial command when the screen is first shown.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface screens implement to
// provide footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}
