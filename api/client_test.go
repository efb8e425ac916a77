package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

const validAssessmentJSON = `{
	"id": 42,
	"title": "Digital Readiness Check",
	"description": "Three questions.",
	"questions": [
		{
			"id": "q1",
			"text": "First?",
			"type": "single",
			"options": [
				{"id": 1, "text": "Low", "score": 10},
				{"id": "q1b", "text": "High", "score": 30}
			]
		},
		{
			"id": 7,
			"text": "Second?",
			"type": "single",
			"options": [
				{"id": "q2a", "text": "Low", "score": 20}
			]
		}
	]
}`

func TestFetchAssessment(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(validAssessmentJSON))
	}))
	defer server.Close()

	c := NewClient(server.URL, "tenant-1")
	a, err := c.FetchAssessment(context.Background(), "asmt-1")
	if err != nil {
		t.Fatalf("FetchAssessment: %v", err)
	}

	if gotPath != "/api/v1/tenants/tenant-1/assessments/asmt-1/public" {
		t.Errorf("request path = %s", gotPath)
	}
	if a.ID != "42" {
		t.Errorf("ID = %s, want numeric id decoded as \"42\"", a.ID)
	}
	if len(a.Questions) != 2 {
		t.Fatalf("got %d questions, want 2", len(a.Questions))
	}
	if a.Questions[0].ID != "q1" || a.Questions[1].ID != "7" {
		t.Errorf("question ids = %s, %s", a.Questions[0].ID, a.Questions[1].ID)
	}
	// Option order is the backend's order.
	opts := a.Questions[0].Options
	if opts[0].ID != "1" || opts[1].ID != "q1b" {
		t.Errorf("option ids = %s, %s", opts[0].ID, opts[1].ID)
	}
	if opts[1].Score != 30 {
		t.Errorf("score = %d, want 30", opts[1].Score)
	}
}

func TestFetchAssessment_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	c := NewClient(server.URL, "tenant-1")
	_, err := c.FetchAssessment(context.Background(), "missing")

	var terr *TransportError
	if !errors.As(err, &terr) {
		t.Fatalf("error = %v, want *TransportError", err)
	}
	if terr.StatusCode != http.StatusNotFound {
		t.Errorf("StatusCode = %d, want 404", terr.StatusCode)
	}
}

func TestFetchAssessment_InvalidPayload(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", `<html>gateway error</html>`},
		{"missing title", `{"id":"a1","questions":[{"id":"q1","text":"?","type":"single","options":[{"id":"o1","text":"x","score":1}]}]}`},
		{"no questions", `{"id":"a1","title":"T","questions":[]}`},
		{"question without options", `{"id":"a1","title":"T","questions":[{"id":"q1","text":"?","type":"single","options":[]}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			c := NewClient(server.URL, "tenant-1")
			_, err := c.FetchAssessment(context.Background(), "asmt-1")

			var verr *InvalidAssessmentError
			if !errors.As(err, &verr) {
				t.Fatalf("error = %v, want *InvalidAssessmentError", err)
			}
		})
	}
}

func TestSubmitLead(t *testing.T) {
	var gotPath, gotContentType string
	var gotBody LeadSubmission
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"lead_id":"L-99","status":"accepted"}`))
	}))
	defer server.Close()

	c := NewClient(server.URL+"/", "tenant-1")
	lead := LeadSubmission{
		Name:  "Ada",
		Email: "ada@example.com",
		Responses: map[string]LeadResponse{
			"q1": {OptionID: "q1b", Score: 30},
		},
		Score: 30,
	}

	body, err := c.SubmitLead(context.Background(), "asmt-1", lead)
	if err != nil {
		t.Fatalf("SubmitLead: %v", err)
	}

	// Trailing slash on the base URL must not produce a double slash.
	if gotPath != "/api/v1/tenants/tenant-1/assessments/asmt-1/leads" {
		t.Errorf("request path = %s", gotPath)
	}
	if gotContentType != "application/json" {
		t.Errorf("Content-Type = %s", gotContentType)
	}
	if gotBody.Email != "ada@example.com" || gotBody.Score != 30 {
		t.Errorf("posted lead = %+v", gotBody)
	}
	if string(body) != `{"lead_id":"L-99","status":"accepted"}` {
		t.Errorf("response body forwarded as %s", body)
	}
}

func TestSubmitLead_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
	}))
	defer server.Close()

	c := NewClient(server.URL, "tenant-1")
	_, err := c.SubmitLead(context.Background(), "asmt-1", LeadSubmission{Name: "Ada", Email: "a@b.c"})

	var terr *TransportError
	if !errors.As(err, &terr) {
		t.Fatalf("error = %v, want *TransportError", err)
	}
	if terr.Op != "submit lead" {
		t.Errorf("Op = %s", terr.Op)
	}
}
