package track

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
)

// Event is a single GA4 Measurement Protocol event.
type Event struct {
	Name   string         `json:"name"`
	Params map[string]any `json:"params,omitempty"`
}

// Sink delivers events to an analytics backend. Tests substitute a
// fake sink so tracking behavior can be asserted without network or
// global state.
type Sink interface {
	Send(ctx context.Context, clientID string, events []Event) error
}

const collectEndpoint = "https://www.google-analytics.com/mp/collect"

// httpSink posts events to the GA4 collect endpoint. The widget owns
// its own event semantics, so only explicit events are ever sent;
// there is no implicit page-view equivalent.
type httpSink struct {
	endpoint      string
	measurementID string
	apiSecret     string
	httpc         *http.Client
}

type collectPayload struct {
	ClientID string  `json:"client_id"`
	Events   []Event `json:"events"`
}

func (s *httpSink) Send(ctx context.Context, clientID string, events []Event) error {
	body, err := json.Marshal(collectPayload{ClientID: clientID, Events: events})
	if err != nil {
		return fmt.Errorf("encode events: %w", err)
	}

	url := fmt.Sprintf("%s?measurement_id=%s&api_secret=%s", s.endpoint, s.measurementID, s.apiSecret)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpc.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("collect endpoint returned %s", resp.Status)
	}
	return nil
}

// The collect sink is process-wide: even with multiple widget
// instances in one host process, at most one sink exists per
// measurement id. Mirrors the one-loader-script-per-page rule of the
// embedding environment.
var (
	sharedMu    sync.Mutex
	sharedSinks = make(map[string]Sink)
)

func sharedSink(measurementID, apiSecret string) Sink {
	sharedMu.Lock()
	defer sharedMu.Unlock()

	if s, ok := sharedSinks[measurementID]; ok {
		return s
	}
	s := &httpSink{
		endpoint:      collectEndpoint,
		measurementID: measurementID,
		apiSecret:     apiSecret,
		httpc:         http.DefaultClient,
	}
	sharedSinks[measurementID] = s
	return s
}
