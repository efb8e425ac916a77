// Package app hosts the widget runtime: one root Bubble Tea model that
// frames the active screen and hands every event to the router. All
// interaction is single-threaded through Update; the only suspension
// points are the two network commands owned by the screens.
package app

import (
	"encoding/json"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/google/uuid"

	"github.com/yusuke-kurosawa/diagnoleads-widget/internal/router"
	"github.com/yusuke-kurosawa/diagnoleads-widget/internal/screen"
	"github.com/yusuke-kurosawa/diagnoleads-widget/internal/screens/assessment"
	"github.com/yusuke-kurosawa/diagnoleads-widget/internal/screens/leadform"
	"github.com/yusuke-kurosawa/diagnoleads-widget/internal/screens/thankyou"
	"github.com/yusuke-kurosawa/diagnoleads-widget/internal/session"
	"github.com/yusuke-kurosawa/diagnoleads-widget/internal/ui/layout"
	"github.com/yusuke-kurosawa/diagnoleads-widget/internal/ui/theme"
	"github.com/yusuke-kurosawa/diagnoleads-widget/track"
)

// Options carries the widget's wired collaborators into the runtime.
type Options struct {
	AssessmentID string
	Fetcher      assessment.Fetcher
	Submitter    leadform.Submitter
	Tracker      *track.Tracker
	Theme        theme.Theme
	OnComplete   func(json.RawMessage)
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	theme  theme.Theme
	width  int
	height int
}

// newAppModel builds the screen graph for one widget session.
func newAppModel(opts Options) AppModel {
	st := session.New(uuid.New().String())

	thankYouFactory := func(s *session.State) screen.Screen {
		return thankyou.New(opts.Theme, s)
	}
	leadFormFactory := func(s *session.State) screen.Screen {
		return leadform.New(leadform.Config{
			AssessmentID: opts.AssessmentID,
			Submitter:    opts.Submitter,
			Tracker:      opts.Tracker,
			Theme:        opts.Theme,
			OnComplete:   opts.OnComplete,
			ThankYou:     thankYouFactory,
		}, s)
	}

	first := assessment.New(assessment.Config{
		AssessmentID: opts.AssessmentID,
		Fetcher:      opts.Fetcher,
		Tracker:      opts.Tracker,
		Theme:        opts.Theme,
		LeadForm:     leadFormFactory,
	}, st)

	return AppModel{
		router: router.New(first),
		theme:  opts.Theme,
	}
}

func (m AppModel) Init() tea.Cmd {
	active := m.router.Active()
	if active == nil {
		return nil
	}
	return active.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		// Ctrl+C always quits. There is deliberately no "back"
		// navigation: question indexes only ever move forward.
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.theme, m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(m.theme, title, m.width)

	footerHints := []layout.KeyHint{
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if provider, ok := active.(screen.KeyHintProvider); ok {
		if hints := provider.KeyHints(); len(hints) > 0 {
			footerHints = hints
		}
	}

	footer := layout.RenderFooter(m.theme, footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program and blocks until the session ends.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running widget:", err)
		return err
	}
	return nil
}
