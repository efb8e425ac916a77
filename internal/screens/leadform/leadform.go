// Package leadform captures the visitor's contact details after the
// last question and owns the lead submission: LEAD_FORM -> SUBMITTING
// -> THANK_YOU, with transport failures returning to the form with
// everything the visitor typed intact.
package leadform

import (
	"context"
	"encoding/json"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/yusuke-kurosawa/diagnoleads-widget/api"
	"github.com/yusuke-kurosawa/diagnoleads-widget/internal/router"
	"github.com/yusuke-kurosawa/diagnoleads-widget/internal/screen"
	"github.com/yusuke-kurosawa/diagnoleads-widget/internal/session"
	"github.com/yusuke-kurosawa/diagnoleads-widget/internal/ui/components"
	"github.com/yusuke-kurosawa/diagnoleads-widget/internal/ui/layout"
	"github.com/yusuke-kurosawa/diagnoleads-widget/internal/ui/theme"
	"github.com/yusuke-kurosawa/diagnoleads-widget/track"
)

// Submitter posts the completed lead. Satisfied by *api.Client; tests
// substitute a stub.
type Submitter interface {
	SubmitLead(ctx context.Context, assessmentID string, lead api.LeadSubmission) (json.RawMessage, error)
}

// Config wires the screen's collaborators.
type Config struct {
	AssessmentID string
	Submitter    Submitter
	Tracker      *track.Tracker
	Theme        theme.Theme

	// OnComplete is the host callback, invoked exactly once after a
	// successful submission with the backend's opaque response body.
	OnComplete func(json.RawMessage)

	// ThankYou builds the terminal confirmation screen.
	ThankYou func(*session.State) screen.Screen
}

// Field indices into Screen.inputs.
const (
	fieldName = iota
	fieldEmail
	fieldCompany
	fieldPhone
	fieldCount
)

// Screen implements screen.Screen for the lead-capture form.
type Screen struct {
	cfg   Config
	state *session.State

	inputs [fieldCount]components.TextInput
	submit components.Button
	focus  int // 0..fieldCount-1 are inputs, fieldCount is the button

	// alert is the blocking message shown after a validation or
	// transport failure. Cleared on the next edit.
	alert string

	completeFired bool
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates the lead form over a completed session.
func New(cfg Config, state *session.State) *Screen {
	s := &Screen{cfg: cfg, state: state}
	s.inputs[fieldName] = components.NewTextInput("Name", "Jane Smith", true, 80)
	s.inputs[fieldEmail] = components.NewTextInput("Email", "jane@example.com", true, 120)
	s.inputs[fieldCompany] = components.NewTextInput("Company", "", false, 80)
	s.inputs[fieldPhone] = components.NewTextInput("Phone", "", false, 40)
	s.submit = components.NewButton("See my results", false, nil)
	return s
}

func (s *Screen) Title() string {
	return "Your Results"
}

func (s *Screen) KeyHints() []layout.KeyHint {
	if s.state.Phase == session.PhaseSubmitting {
		return []layout.KeyHint{{Key: "Ctrl+C", Description: "Quit"}}
	}
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Submit"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *Screen) Init() tea.Cmd {
	return s.inputs[fieldName].Focus()
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case submitResultMsg:
		return s.handleSubmitResult(msg)

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s.forwardToFocused(msg)
}

func (s *Screen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	// Interaction is locked while the POST is in flight.
	if s.state.Phase != session.PhaseLeadForm {
		return s, nil
	}

	switch msg.String() {
	case "tab", "down":
		return s, s.setFocus(s.focus + 1)
	case "shift+tab", "up":
		return s, s.setFocus(s.focus - 1)
	case "enter":
		if s.focus == fieldCount {
			return s.submitLead()
		}
		// Enter inside a field advances, enter on the last field submits.
		if s.focus == fieldPhone {
			return s.submitLead()
		}
		return s, s.setFocus(s.focus + 1)
	}

	s.alert = ""
	return s.forwardToFocused(msg)
}

func (s *Screen) forwardToFocused(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if s.focus >= fieldCount {
		return s, nil
	}
	var cmd tea.Cmd
	s.inputs[s.focus], cmd = s.inputs[s.focus].Update(msg)
	return s, cmd
}

func (s *Screen) setFocus(next int) tea.Cmd {
	if next < 0 {
		next = fieldCount
	}
	if next > fieldCount {
		next = 0
	}

	for i := range s.inputs {
		s.inputs[i].Blur()
	}
	s.submit.Active = false
	s.focus = next

	if next == fieldCount {
		s.submit.Active = true
		return nil
	}
	return s.inputs[next].Focus()
}

// submitLead validates required fields and starts the POST. Validation
// mirrors the original form's required-field semantics: presence only,
// no format checks.
func (s *Screen) submitLead() (screen.Screen, tea.Cmd) {
	name := strings.TrimSpace(s.inputs[fieldName].Value())
	email := strings.TrimSpace(s.inputs[fieldEmail].Value())

	if name == "" || email == "" {
		s.alert = "Name and email are required."
		return s, nil
	}

	if !session.BeginSubmit(s.state) {
		return s, nil
	}
	s.alert = ""

	lead := session.BuildLead(
		s.state,
		name,
		email,
		strings.TrimSpace(s.inputs[fieldCompany].Value()),
		strings.TrimSpace(s.inputs[fieldPhone].Value()),
	)

	submitter := s.cfg.Submitter
	assessmentID := s.cfg.AssessmentID
	return s, func() tea.Msg {
		body, err := submitter.SubmitLead(context.Background(), assessmentID, lead)
		return submitResultMsg{Body: body, Err: err}
	}
}

func (s *Screen) handleSubmitResult(msg submitResultMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		// Recoverable: back to the form, everything preserved, the
		// visitor may resubmit. No tracking event is emitted.
		session.SubmitFailed(s.state)
		s.alert = "Something went wrong sending your details. Please try again."
		return s, nil
	}

	session.CompleteSubmit(s.state)
	s.cfg.Tracker.LeadSubmitted(s.cfg.AssessmentID, strings.TrimSpace(s.inputs[fieldEmail].Value()))

	if s.cfg.OnComplete != nil && !s.completeFired {
		s.completeFired = true
		s.cfg.OnComplete(msg.Body)
	}

	thankYou := s.cfg.ThankYou(s.state)
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: thankYou}
	}
}
