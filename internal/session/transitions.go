package session

import (
	"errors"
	"math"

	"github.com/yusuke-kurosawa/diagnoleads-widget/api"
)

// Outcome reports what recording an answer caused, so the caller can
// emit each tracking event exactly once per transition and never on a
// re-render.
type Outcome struct {
	Question api.Question
	Option   api.Option

	// Started is set when the first question (index 0) was answered.
	Started bool

	// Completed is set when the answer moved the session to the lead form.
	Completed bool
}

// Begin applies a successful assessment fetch: LOADING -> QUESTION(0).
func Begin(s *State, a *api.Assessment) {
	if s.Phase != PhaseLoading {
		return
	}
	if a == nil || len(a.Questions) == 0 {
		Fail(s, errors.New("assessment has no questions"))
		return
	}
	s.Assessment = a
	s.Index = 0
	s.Phase = PhaseQuestion
}

// Fail applies a fatal fetch failure: LOADING -> ERROR. Terminal; the
// host must re-embed the widget to retry.
func Fail(s *State, err error) {
	s.Phase = PhaseError
	s.Err = err
}

// ApplyAnswer records the option at optionIndex for the current
// question and advances: QUESTION(i) -> QUESTION(i+1), or to the lead
// form after the last question. Returns false when the session is not
// on a question or the index is out of range.
func ApplyAnswer(s *State, optionIndex int) (Outcome, bool) {
	q := s.CurrentQuestion()
	if q == nil {
		return Outcome{}, false
	}
	if optionIndex < 0 || optionIndex >= len(q.Options) {
		return Outcome{}, false
	}

	opt := q.Options[optionIndex]
	s.Responses.Record(q.ID, opt.ID, opt.Score)

	out := Outcome{
		Question: *q,
		Option:   opt,
		Started:  s.Index == 0,
	}

	if s.Index+1 < len(s.Assessment.Questions) {
		s.Index++
	} else {
		s.Phase = PhaseLeadForm
		s.Completed = true
		out.Completed = true
	}
	return out, true
}

// BeginSubmit locks the lead form while the POST is in flight:
// LEAD_FORM -> SUBMITTING. Returns false if the session is elsewhere,
// which also guards against overlapping submissions.
func BeginSubmit(s *State) bool {
	if s.Phase != PhaseLeadForm {
		return false
	}
	s.Phase = PhaseSubmitting
	return true
}

// SubmitFailed returns to the lead form with all responses and form
// state intact: SUBMITTING -> LEAD_FORM.
func SubmitFailed(s *State) {
	if s.Phase == PhaseSubmitting {
		s.Phase = PhaseLeadForm
	}
}

// CompleteSubmit finishes the session: SUBMITTING -> THANK_YOU. Terminal.
func CompleteSubmit(s *State) {
	if s.Phase != PhaseSubmitting {
		return
	}
	s.Phase = PhaseThankYou
	s.Submitted = true
}

// AverageScore is the rounded mean of all recorded score weights, 0
// when nothing is answered yet. This single function feeds the lead
// form display, the completion tracking event, and the submitted
// payload, so the three can never drift apart.
func AverageScore(s *State) int {
	n := s.Responses.Len()
	if n == 0 {
		return 0
	}
	return int(math.Round(float64(s.Responses.Sum()) / float64(n)))
}

// Progress returns the percent of questions completed, for the
// progress bar shown above the current question.
func Progress(s *State) float64 {
	n := s.QuestionCount()
	if n == 0 {
		return 0
	}
	return float64(s.Index) / float64(n) * 100
}

// BuildLead assembles the write-once submission payload.
func BuildLead(s *State, name, email, company, phone string) api.LeadSubmission {
	return api.LeadSubmission{
		Name:      name,
		Email:     email,
		Company:   company,
		Phone:     phone,
		Responses: s.Responses.Payload(),
		Score:     AverageScore(s),
	}
}
