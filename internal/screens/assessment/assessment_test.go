package assessment

import (
	"context"
	"errors"
	"sync"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/yusuke-kurosawa/diagnoleads-widget/api"
	"github.com/yusuke-kurosawa/diagnoleads-widget/internal/router"
	"github.com/yusuke-kurosawa/diagnoleads-widget/internal/screen"
	"github.com/yusuke-kurosawa/diagnoleads-widget/internal/session"
	"github.com/yusuke-kurosawa/diagnoleads-widget/track"
)

type stubFetcher struct {
	assessment *api.Assessment
	err        error
	calls      int
}

func (f *stubFetcher) FetchAssessment(context.Context, string) (*api.Assessment, error) {
	f.calls++
	return f.assessment, f.err
}

type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return "lead form" }
func (s *stubScreen) Title() string                           { return "Lead Form" }

type recordingSink struct {
	mu     sync.Mutex
	events []track.Event
}

func (r *recordingSink) Send(_ context.Context, _ string, events []track.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, events...)
	return nil
}

func (r *recordingSink) count(name string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, ev := range r.events {
		if ev.Name == name {
			n++
		}
	}
	return n
}

func testAssessment() *api.Assessment {
	return &api.Assessment{
		ID:    "a1",
		Title: "Digital Readiness Check",
		Questions: []api.Question{
			{ID: "q1", Text: "First?", Type: "single", Options: []api.Option{
				{ID: "q1a", Text: "Low", Score: 10},
				{ID: "q1b", Text: "High", Score: 30},
			}},
			{ID: "q2", Text: "Second?", Type: "single", Options: []api.Option{
				{ID: "q2a", Text: "Low", Score: 20},
				{ID: "q2b", Text: "High", Score: 40},
			}},
		},
	}
}

func newTestScreen(fetcher Fetcher) (*Screen, *session.State, *recordingSink, *track.Tracker) {
	sink := &recordingSink{}
	tracker := track.New("G-TEST", "secret", track.WithSink(sink), track.WithLogf(func(string, ...any) {}))
	state := session.New("test-session")
	s := New(Config{
		AssessmentID: "a1",
		Fetcher:      fetcher,
		Tracker:      tracker,
		LeadForm:     func(*session.State) screen.Screen { return &stubScreen{} },
	}, state)
	return s, state, sink, tracker
}

// load runs the Init fetch command and feeds the result back in.
func load(t *testing.T, s *Screen) {
	t.Helper()
	cmd := s.Init()
	if cmd == nil {
		t.Fatal("Init returned no fetch command")
	}
	s.Update(cmd())
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func TestLoadSuccess(t *testing.T) {
	fetcher := &stubFetcher{assessment: testAssessment()}
	s, state, sink, tracker := newTestScreen(fetcher)

	load(t, s)
	tracker.Flush()

	if state.Phase != session.PhaseQuestion {
		t.Errorf("Phase = %v, want PhaseQuestion", state.Phase)
	}
	if got := sink.count("widget_loaded"); got != 1 {
		t.Errorf("widget_loaded fired %d times, want 1", got)
	}
}

func TestLoadFailure(t *testing.T) {
	fetcher := &stubFetcher{err: errors.New("backend returned 404 Not Found")}
	s, state, sink, tracker := newTestScreen(fetcher)

	load(t, s)
	tracker.Flush()

	if state.Phase != session.PhaseError {
		t.Errorf("Phase = %v, want PhaseError", state.Phase)
	}
	if got := sink.count("widget_loaded"); got != 0 {
		t.Errorf("widget_loaded fired %d times on failure", got)
	}

	// Keys are dead in the terminal error state.
	s.Update(keyPress('1'))
	if state.Responses.Len() != 0 {
		t.Error("answer recorded in error state")
	}
}

func TestInitIsSingleFlight(t *testing.T) {
	fetcher := &stubFetcher{assessment: testAssessment()}
	s, _, _, _ := newTestScreen(fetcher)

	first := s.Init()
	if s.Init() != nil {
		t.Error("second Init started a duplicate fetch")
	}
	s.Update(first())

	if fetcher.calls != 1 {
		t.Errorf("fetcher called %d times, want 1", fetcher.calls)
	}
	// A loaded session never refetches.
	if s.Init() != nil {
		t.Error("Init refetched after load")
	}
}

func TestAnswerFlow(t *testing.T) {
	fetcher := &stubFetcher{assessment: testAssessment()}
	s, state, sink, tracker := newTestScreen(fetcher)
	load(t, s)

	// Answer the first question by number key.
	s.Update(keyPress('2'))
	tracker.Flush()

	if state.Index != 1 {
		t.Errorf("Index = %d, want 1", state.Index)
	}
	if got := sink.count("assessment_started"); got != 1 {
		t.Errorf("assessment_started fired %d times, want 1", got)
	}
	if got := sink.count("question_answered"); got != 1 {
		t.Errorf("question_answered fired %d times, want 1", got)
	}

	// Answer the last question with the arrow-and-enter path.
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	tracker.Flush()

	if state.Phase != session.PhaseLeadForm {
		t.Errorf("Phase = %v, want PhaseLeadForm", state.Phase)
	}
	if got := sink.count("assessment_started"); got != 1 {
		t.Errorf("assessment_started fired %d times after two answers", got)
	}
	if got := sink.count("question_answered"); got != 2 {
		t.Errorf("question_answered fired %d times, want 2", got)
	}
	if got := sink.count("assessment_completed"); got != 1 {
		t.Errorf("assessment_completed fired %d times, want 1", got)
	}

	// Completion pushes the lead form.
	if cmd == nil {
		t.Fatal("completion produced no command")
	}
	msg := cmd()
	push, ok := msg.(router.PushScreenMsg)
	if !ok {
		t.Fatalf("completion command produced %T, want router.PushScreenMsg", msg)
	}
	if _, ok := push.Screen.(*stubScreen); !ok {
		t.Errorf("pushed screen is %T, want the injected lead form", push.Screen)
	}

	// Both answers chose the high option: 30 and 40.
	if got := session.AverageScore(state); got != 35 {
		t.Errorf("AverageScore = %d, want 35", got)
	}
}

func TestNumberKeyOutOfRange(t *testing.T) {
	fetcher := &stubFetcher{assessment: testAssessment()}
	s, state, _, _ := newTestScreen(fetcher)
	load(t, s)

	s.Update(keyPress('9'))
	if state.Index != 0 || state.Responses.Len() != 0 {
		t.Error("out-of-range number key advanced the session")
	}
}
