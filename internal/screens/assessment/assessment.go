// Package assessment drives the question loop: it owns the fetch of
// the assessment definition and every QUESTION(i) transition, emitting
// tracking events at exactly the protocol points the engine defines.
package assessment

import (
	"context"
	"strconv"

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

// Fetcher retrieves the assessment definition. Satisfied by
// *api.Client; tests substitute a stub.
type Fetcher interface {
	FetchAssessment(ctx context.Context, assessmentID string) (*api.Assessment, error)
}

// Config wires the screen's collaborators.
type Config struct {
	AssessmentID string
	Fetcher      Fetcher
	Tracker      *track.Tracker
	Theme        theme.Theme

	// LeadForm builds the screen pushed once every question is
	// answered. Injected to keep this package testable in isolation.
	LeadForm func(*session.State) screen.Screen
}

// Screen implements screen.Screen for the question loop.
type Screen struct {
	cfg      Config
	state    *session.State
	options  components.OptionList
	fetching bool
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates the question-loop screen over an existing session.
func New(cfg Config, state *session.State) *Screen {
	return &Screen{cfg: cfg, state: state}
}

func (s *Screen) Title() string {
	if s.state != nil && s.state.Assessment != nil {
		return s.state.Assessment.Title
	}
	return "Assessment"
}

func (s *Screen) KeyHints() []layout.KeyHint {
	switch s.state.Phase {
	case session.PhaseQuestion:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Answer"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
}

// Init starts the one assessment fetch of the session. Guarded by an
// in-flight flag: a second Init while the first fetch is pending is a
// no-op rather than a duplicate request.
func (s *Screen) Init() tea.Cmd {
	if s.fetching || s.state.Phase != session.PhaseLoading {
		return nil
	}
	s.fetching = true
	return s.fetchCmd()
}

func (s *Screen) fetchCmd() tea.Cmd {
	fetcher := s.cfg.Fetcher
	id := s.cfg.AssessmentID
	return func() tea.Msg {
		a, err := fetcher.FetchAssessment(context.Background(), id)
		return assessmentLoadedMsg{Assessment: a, Err: err}
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case assessmentLoadedMsg:
		return s.handleLoaded(msg)

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s, nil
}

func (s *Screen) handleLoaded(msg assessmentLoadedMsg) (screen.Screen, tea.Cmd) {
	s.fetching = false

	if msg.Err != nil {
		session.Fail(s.state, msg.Err)
		return s, nil
	}

	session.Begin(s.state, msg.Assessment)
	if s.state.Phase != session.PhaseQuestion {
		return s, nil
	}

	s.cfg.Tracker.WidgetLoaded(s.cfg.AssessmentID, msg.Assessment.Title)
	s.resetOptions()
	return s, nil
}

func (s *Screen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.state.Phase != session.PhaseQuestion {
		return s, nil
	}

	key := msg.String()
	switch key {
	case "enter":
		return s.answer(s.options.Selected)
	case "up", "k", "down", "j":
		var cmd tea.Cmd
		s.options, cmd = s.options.Update(msg)
		return s, cmd
	}

	// Number keys answer directly.
	if n, err := strconv.Atoi(key); err == nil {
		q := s.state.CurrentQuestion()
		if q != nil && n >= 1 && n <= len(q.Options) {
			return s.answer(n - 1)
		}
	}

	return s, nil
}

// answer records the chosen option and applies the transition,
// emitting each tracking event exactly once per answer.
func (s *Screen) answer(optionIndex int) (screen.Screen, tea.Cmd) {
	outcome, ok := session.ApplyAnswer(s.state, optionIndex)
	if !ok {
		return s, nil
	}

	if outcome.Started {
		s.cfg.Tracker.AssessmentStarted(s.cfg.AssessmentID)
	}
	s.cfg.Tracker.QuestionAnswered(
		s.cfg.AssessmentID,
		string(outcome.Question.ID),
		outcome.Question.Text,
		string(outcome.Option.ID),
		outcome.Option.Score,
	)

	if outcome.Completed {
		s.cfg.Tracker.AssessmentCompleted(s.cfg.AssessmentID, session.AverageScore(s.state))
		leadForm := s.cfg.LeadForm(s.state)
		return s, func() tea.Msg {
			return router.PushScreenMsg{Screen: leadForm}
		}
	}

	s.resetOptions()
	return s, nil
}

// resetOptions rebuilds the selector for the current question.
func (s *Screen) resetOptions() {
	q := s.state.CurrentQuestion()
	if q == nil {
		return
	}
	labels := make([]string, len(q.Options))
	for i, opt := range q.Options {
		labels[i] = opt.Text
	}
	s.options = components.NewOptionList(labels)
}
