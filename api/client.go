// Package api is the transport client for the DiagnoLeads backend. It
// issues the two HTTP operations the widget needs (fetch an assessment
// definition, submit a captured lead) against a tenant-scoped base URL.
//
// The client carries no policy: no retry, no timeout, no caching. Every
// call is a fresh round trip and the caller decides what a failure means.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Client talks to one tenant's assessments.
type Client struct {
	baseURL  string
	tenantID string
	httpc    *http.Client
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(h *http.Client) ClientOption {
	return func(c *Client) { c.httpc = h }
}

// NewClient creates a transport client for the given backend and
// tenant. A single trailing slash on baseURL is trimmed.
func NewClient(baseURL, tenantID string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL:  strings.TrimSuffix(baseURL, "/"),
		tenantID: tenantID,
		httpc:    http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchAssessment retrieves the public assessment definition. A non-2xx
// status or a payload that fails the wire contract is returned as an
// error; the widget treats either as fatal for the session.
func (c *Client) FetchAssessment(ctx context.Context, assessmentID string) (*Assessment, error) {
	url := fmt.Sprintf("%s/api/v1/tenants/%s/assessments/%s/public", c.baseURL, c.tenantID, assessmentID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch assessment: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch assessment: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("fetch assessment: read body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &TransportError{Op: "fetch assessment", StatusCode: resp.StatusCode, Status: resp.Status}
	}

	if err := validateAssessment(body); err != nil {
		return nil, err
	}

	var a Assessment
	if err := json.Unmarshal(body, &a); err != nil {
		return nil, &InvalidAssessmentError{Err: err}
	}
	return &a, nil
}

// SubmitLead posts a completed lead. The success body is opaque to the
// widget and is forwarded untouched to the host's completion callback.
// A non-2xx status is returned as an error; the widget treats it as
// recoverable and lets the visitor retry.
func (c *Client) SubmitLead(ctx context.Context, assessmentID string, lead LeadSubmission) (json.RawMessage, error) {
	url := fmt.Sprintf("%s/api/v1/tenants/%s/assessments/%s/leads", c.baseURL, c.tenantID, assessmentID)

	payload, err := json.Marshal(lead)
	if err != nil {
		return nil, fmt.Errorf("submit lead: encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("submit lead: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("submit lead: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("submit lead: read body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &TransportError{Op: "submit lead", StatusCode: resp.StatusCode, Status: resp.Status}
	}

	return json.RawMessage(body), nil
}
