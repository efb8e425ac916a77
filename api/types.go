package api

import (
	"encoding/json"
	"fmt"
)

// ID identifies an assessment, question, or option. Older tenants emit
// numeric ids while newer ones emit strings, so it decodes from either
// and always round-trips as a string.
type ID string

func (id *ID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id must be a string or number: %w", err)
	}
	*id = ID(n.String())
	return nil
}

// Option is a single weighted answer choice.
type Option struct {
	ID    ID     `json:"id"`
	Text  string `json:"text"`
	Score int    `json:"score"`
}

// Question is one step of the assessment. Options keep the order the
// backend returned them in; the widget never reorders.
type Question struct {
	ID      ID       `json:"id"`
	Text    string   `json:"text"`
	Type    string   `json:"type"`
	Options []Option `json:"options"`
}

// Assessment is the quiz definition fetched once per widget session.
type Assessment struct {
	ID          ID         `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Questions   []Question `json:"questions"`
}

// LeadResponse is one recorded answer inside a lead submission.
type LeadResponse struct {
	OptionID ID  `json:"option_id"`
	Score    int `json:"score"`
}

// LeadSubmission is the write-once payload posted to the backend after
// the visitor completes the lead-capture form.
type LeadSubmission struct {
	Name      string                  `json:"name"`
	Email     string                  `json:"email"`
	Company   string                  `json:"company,omitempty"`
	Phone     string                  `json:"phone,omitempty"`
	Responses map[string]LeadResponse `json:"responses"`
	Score     int                     `json:"score"`
}
