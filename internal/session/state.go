// Package session is the widget engine's state machine. All transition
// logic lives in pure functions over State so the protocol can be unit
// tested without a terminal, a transport, or a tracker.
package session

import "github.com/yusuke-kurosawa/diagnoleads-widget/api"

// Phase is the engine's position in the interaction protocol.
type Phase int

const (
	// PhaseLoading is the initial phase, before the assessment fetch resolves.
	PhaseLoading Phase = iota

	// PhaseQuestion means question State.Index is on screen.
	PhaseQuestion

	// PhaseLeadForm means all questions are answered and the
	// lead-capture form is on screen.
	PhaseLeadForm

	// PhaseSubmitting means a lead POST is in flight; interaction is locked.
	PhaseSubmitting

	// PhaseThankYou is terminal: the lead was accepted.
	PhaseThankYou

	// PhaseError is terminal: the assessment fetch failed.
	PhaseError
)

// State is one widget session. It is owned exclusively by a single
// widget instance; concurrent widgets on the same host are fully
// isolated because each holds its own State value.
type State struct {
	SessionID  string
	Assessment *api.Assessment

	Phase Phase

	// Index is the current question, 0-based. It only ever increases;
	// there is no back navigation.
	Index int

	// Responses accumulates one entry per answered question.
	Responses *ResponseSet

	// Err holds the fatal error when Phase is PhaseError.
	Err error

	// Completed is set when the last question is answered.
	Completed bool

	// Submitted is set when the backend accepts the lead.
	Submitted bool
}

// New returns a fresh session in PhaseLoading. A session is never
// reset; reconstructing the widget is the only way to start over.
func New(sessionID string) *State {
	return &State{
		SessionID: sessionID,
		Phase:     PhaseLoading,
		Responses: NewResponseSet(),
	}
}

// QuestionCount returns the number of questions in the fetched
// assessment, 0 before the fetch resolves.
func (s *State) QuestionCount() int {
	if s.Assessment == nil {
		return 0
	}
	return len(s.Assessment.Questions)
}

// CurrentQuestion returns the question at Index, or nil outside
// PhaseQuestion.
func (s *State) CurrentQuestion() *api.Question {
	if s.Phase != PhaseQuestion || s.Assessment == nil || s.Index >= len(s.Assessment.Questions) {
		return nil
	}
	return &s.Assessment.Questions[s.Index]
}

// RunningTotal is the cumulative score of all recorded answers.
func (s *State) RunningTotal() int {
	return s.Responses.Sum()
}
