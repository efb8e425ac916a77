package widget

import (
	"context"
	"encoding/json"

	"github.com/yusuke-kurosawa/diagnoleads-widget/api"
)

const sampleAssessmentID = "sample"

// sampleBackend serves a built-in assessment and accepts every lead
// without touching the network. Preview mode only.
type sampleBackend struct{}

func (sampleBackend) FetchAssessment(_ context.Context, _ string) (*api.Assessment, error) {
	return sampleAssessment(), nil
}

func (sampleBackend) SubmitLead(_ context.Context, _ string, _ api.LeadSubmission) (json.RawMessage, error) {
	return json.RawMessage(`{"status":"preview"}`), nil
}

func sampleAssessment() *api.Assessment {
	return &api.Assessment{
		ID:          sampleAssessmentID,
		Title:       "Digital Readiness Check",
		Description: "A three-question sample assessment.",
		Questions: []api.Question{
			{
				ID:   "q1",
				Text: "How much of your customer intake is digital today?",
				Type: "single",
				Options: []api.Option{
					{ID: "q1a", Text: "None of it", Score: 10},
					{ID: "q1b", Text: "Some forms are online", Score: 20},
					{ID: "q1c", Text: "Most of it", Score: 30},
				},
			},
			{
				ID:   "q2",
				Text: "Do you follow up with new leads within a day?",
				Type: "single",
				Options: []api.Option{
					{ID: "q2a", Text: "Rarely", Score: 10},
					{ID: "q2b", Text: "Usually", Score: 20},
					{ID: "q2c", Text: "Always, automatically", Score: 30},
				},
			},
			{
				ID:   "q3",
				Text: "How do you measure marketing performance?",
				Type: "single",
				Options: []api.Option{
					{ID: "q3a", Text: "We don't", Score: 10},
					{ID: "q3b", Text: "Spreadsheets", Score: 20},
					{ID: "q3c", Text: "A live analytics dashboard", Score: 30},
				},
			},
		},
	}
}
