package session

import "github.com/yusuke-kurosawa/diagnoleads-widget/api"

// Response is the recorded answer to one question.
type Response struct {
	OptionID api.ID
	Score    int
}

// AnsweredQuestion pairs a question id with its recorded response, in
// the order questions were first answered.
type AnsweredQuestion struct {
	QuestionID api.ID
	Response   Response
}

// ResponseSet maps question ids to chosen options. Keys are unique:
// re-answering a question overwrites its entry in place and keeps the
// original insertion order. The UI never exposes re-answering, but the
// invariant holds regardless.
type ResponseSet struct {
	order      []api.ID
	byQuestion map[api.ID]Response
}

// NewResponseSet returns an empty set.
func NewResponseSet() *ResponseSet {
	return &ResponseSet{byQuestion: make(map[api.ID]Response)}
}

// Record stores the chosen option for a question.
func (r *ResponseSet) Record(questionID, optionID api.ID, score int) {
	if _, seen := r.byQuestion[questionID]; !seen {
		r.order = append(r.order, questionID)
	}
	r.byQuestion[questionID] = Response{OptionID: optionID, Score: score}
}

// Len returns the number of answered questions.
func (r *ResponseSet) Len() int {
	return len(r.order)
}

// Sum returns the total of all recorded score weights.
func (r *ResponseSet) Sum() int {
	total := 0
	for _, resp := range r.byQuestion {
		total += resp.Score
	}
	return total
}

// Entries returns the recorded answers in insertion order.
func (r *ResponseSet) Entries() []AnsweredQuestion {
	out := make([]AnsweredQuestion, 0, len(r.order))
	for _, qid := range r.order {
		out = append(out, AnsweredQuestion{QuestionID: qid, Response: r.byQuestion[qid]})
	}
	return out
}

// Payload converts the set to the wire shape of a lead submission.
func (r *ResponseSet) Payload() map[string]api.LeadResponse {
	out := make(map[string]api.LeadResponse, len(r.byQuestion))
	for qid, resp := range r.byQuestion {
		out[string(qid)] = api.LeadResponse{OptionID: resp.OptionID, Score: resp.Score}
	}
	return out
}
