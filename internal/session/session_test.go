package session

import (
	"errors"
	"testing"

	"github.com/yusuke-kurosawa/diagnoleads-widget/api"
)

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
			{ID: "q3", Text: "Third?", Type: "single", Options: []api.Option{
				{ID: "q3a", Text: "Low", Score: 30},
				{ID: "q3b", Text: "High", Score: 50},
			}},
		},
	}
}

func startedState(t *testing.T) *State {
	t.Helper()
	s := New("test-session")
	Begin(s, testAssessment())
	if s.Phase != PhaseQuestion {
		t.Fatalf("Phase = %v, want PhaseQuestion", s.Phase)
	}
	return s
}

func TestBegin_MovesToFirstQuestion(t *testing.T) {
	s := New("test-session")
	Begin(s, testAssessment())

	if s.Phase != PhaseQuestion {
		t.Errorf("Phase = %v, want PhaseQuestion", s.Phase)
	}
	if s.Index != 0 {
		t.Errorf("Index = %d, want 0", s.Index)
	}
	q := s.CurrentQuestion()
	if q == nil || q.ID != "q1" {
		t.Errorf("CurrentQuestion = %v, want q1", q)
	}
}

func TestBegin_EmptyAssessmentFails(t *testing.T) {
	s := New("test-session")
	Begin(s, &api.Assessment{ID: "a1", Title: "Empty"})

	if s.Phase != PhaseError {
		t.Errorf("Phase = %v, want PhaseError", s.Phase)
	}
	if s.Err == nil {
		t.Error("expected Err to be set")
	}
}

func TestBegin_IgnoredOutsideLoading(t *testing.T) {
	s := startedState(t)
	Begin(s, testAssessment())
	if s.Index != 0 || s.Phase != PhaseQuestion {
		t.Errorf("Begin outside PhaseLoading changed state: phase %v index %d", s.Phase, s.Index)
	}

	Fail(s, errors.New("late failure"))
	if s.Phase != PhaseError {
		t.Errorf("Phase = %v, want PhaseError", s.Phase)
	}
}

func TestApplyAnswer_VisitsEveryQuestionOnce(t *testing.T) {
	s := startedState(t)

	var visited []string
	for s.Phase == PhaseQuestion {
		visited = append(visited, string(s.CurrentQuestion().ID))
		if _, ok := ApplyAnswer(s, 0); !ok {
			t.Fatal("ApplyAnswer failed mid-session")
		}
	}

	want := []string{"q1", "q2", "q3"}
	if len(visited) != len(want) {
		t.Fatalf("visited %d questions, want %d", len(visited), len(want))
	}
	for i := range want {
		if visited[i] != want[i] {
			t.Errorf("visited[%d] = %s, want %s", i, visited[i], want[i])
		}
	}
	if s.Phase != PhaseLeadForm {
		t.Errorf("Phase = %v, want PhaseLeadForm", s.Phase)
	}
	if !s.Completed {
		t.Error("expected Completed after the last answer")
	}
}

func TestApplyAnswer_Outcomes(t *testing.T) {
	s := startedState(t)

	out, ok := ApplyAnswer(s, 1)
	if !ok {
		t.Fatal("ApplyAnswer failed on first question")
	}
	if !out.Started {
		t.Error("expected Started on the first answer")
	}
	if out.Completed {
		t.Error("unexpected Completed on the first answer")
	}
	if out.Question.ID != "q1" || out.Option.ID != "q1b" {
		t.Errorf("outcome = %s/%s, want q1/q1b", out.Question.ID, out.Option.ID)
	}

	out, _ = ApplyAnswer(s, 0)
	if out.Started || out.Completed {
		t.Errorf("middle answer reported Started=%v Completed=%v", out.Started, out.Completed)
	}

	out, _ = ApplyAnswer(s, 0)
	if out.Started {
		t.Error("unexpected Started on the last answer")
	}
	if !out.Completed {
		t.Error("expected Completed on the last answer")
	}
}

func TestApplyAnswer_OutOfRange(t *testing.T) {
	s := startedState(t)

	if _, ok := ApplyAnswer(s, -1); ok {
		t.Error("expected failure for negative option index")
	}
	if _, ok := ApplyAnswer(s, 2); ok {
		t.Error("expected failure for option index past the end")
	}
	if s.Index != 0 || s.Responses.Len() != 0 {
		t.Error("rejected answer mutated state")
	}
}

func TestApplyAnswer_RejectedOutsideQuestionPhase(t *testing.T) {
	s := New("test-session")
	if _, ok := ApplyAnswer(s, 0); ok {
		t.Error("expected failure while loading")
	}

	s = startedState(t)
	ApplyAnswer(s, 0)
	ApplyAnswer(s, 0)
	ApplyAnswer(s, 0)
	if _, ok := ApplyAnswer(s, 0); ok {
		t.Error("expected failure after the last question")
	}
}

func TestAverageScore(t *testing.T) {
	s := startedState(t)

	if got := AverageScore(s); got != 0 {
		t.Errorf("AverageScore with no answers = %d, want 0", got)
	}

	// 10, 20, 30 -> 20.
	ApplyAnswer(s, 0)
	ApplyAnswer(s, 0)
	ApplyAnswer(s, 0)
	if got := AverageScore(s); got != 20 {
		t.Errorf("AverageScore = %d, want 20", got)
	}
}

func TestAverageScore_Rounds(t *testing.T) {
	s := startedState(t)

	// 30 + 40 + 30 = 100 over 3 -> 33.33 -> 33.
	ApplyAnswer(s, 1)
	ApplyAnswer(s, 1)
	ApplyAnswer(s, 0)
	if got := AverageScore(s); got != 33 {
		t.Errorf("AverageScore = %d, want 33", got)
	}
}

func TestResponseSet_OverwriteKeepsOrder(t *testing.T) {
	r := NewResponseSet()
	r.Record("q1", "q1a", 10)
	r.Record("q2", "q2a", 20)
	r.Record("q1", "q1b", 30)

	if r.Len() != 2 {
		t.Fatalf("Len = %d, want 2", r.Len())
	}
	entries := r.Entries()
	if entries[0].QuestionID != "q1" || entries[1].QuestionID != "q2" {
		t.Errorf("order = %v, want q1 then q2", entries)
	}
	if entries[0].Response.OptionID != "q1b" || entries[0].Response.Score != 30 {
		t.Errorf("q1 entry = %+v, want overwritten q1b/30", entries[0].Response)
	}
	if r.Sum() != 50 {
		t.Errorf("Sum = %d, want 50", r.Sum())
	}
}

func TestBuildLead_ScoreMatchesDisplayedAverage(t *testing.T) {
	s := startedState(t)
	ApplyAnswer(s, 1)
	ApplyAnswer(s, 1)
	ApplyAnswer(s, 1)

	lead := BuildLead(s, "Ada", "ada@example.com", "Acme", "")

	if lead.Score != AverageScore(s) {
		t.Errorf("lead score %d != displayed average %d", lead.Score, AverageScore(s))
	}
	if len(lead.Responses) != 3 {
		t.Fatalf("Responses has %d entries, want 3", len(lead.Responses))
	}
	if lead.Responses["q2"].OptionID != "q2b" || lead.Responses["q2"].Score != 40 {
		t.Errorf("q2 response = %+v, want q2b/40", lead.Responses["q2"])
	}
}

func TestSubmitLifecycle(t *testing.T) {
	s := startedState(t)
	ApplyAnswer(s, 0)
	ApplyAnswer(s, 0)
	ApplyAnswer(s, 0)

	if !BeginSubmit(s) {
		t.Fatal("BeginSubmit failed from PhaseLeadForm")
	}
	if s.Phase != PhaseSubmitting {
		t.Errorf("Phase = %v, want PhaseSubmitting", s.Phase)
	}

	// Overlapping submissions are rejected.
	if BeginSubmit(s) {
		t.Error("BeginSubmit succeeded while already submitting")
	}

	SubmitFailed(s)
	if s.Phase != PhaseLeadForm {
		t.Errorf("Phase after failure = %v, want PhaseLeadForm", s.Phase)
	}
	if s.Responses.Len() != 3 {
		t.Error("failure dropped recorded responses")
	}

	BeginSubmit(s)
	CompleteSubmit(s)
	if s.Phase != PhaseThankYou {
		t.Errorf("Phase = %v, want PhaseThankYou", s.Phase)
	}
	if !s.Submitted {
		t.Error("expected Submitted after CompleteSubmit")
	}
}

func TestProgress(t *testing.T) {
	s := New("test-session")
	if got := Progress(s); got != 0 {
		t.Errorf("Progress before load = %v, want 0", got)
	}

	s = startedState(t)
	if got := Progress(s); got != 0 {
		t.Errorf("Progress at q1 = %v, want 0", got)
	}
	ApplyAnswer(s, 0)
	want := 100.0 / 3.0
	if got := Progress(s); got < want-0.01 || got > want+0.01 {
		t.Errorf("Progress at q2 = %v, want ~%v", got, want)
	}
}
