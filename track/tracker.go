// Package track sends best-effort widget telemetry to Google Analytics 4
// via the Measurement Protocol. Delivery is fire-and-forget: a tracking
// call never blocks a state transition, never returns an error to the
// engine, and degrades to a silent no-op when unconfigured.
package track

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
)

// sendTimeout bounds a single background delivery so abandoned
// goroutines cannot pile up behind a dead endpoint.
const sendTimeout = 5 * time.Second

// Tracker emits the widget's five named events. The zero-config case
// (missing measurement id or API secret) yields a disabled tracker
// whose methods are all safe no-ops.
type Tracker struct {
	sink     Sink
	clientID string
	enabled  bool
	debug    bool
	logf     func(format string, args ...any)
	inflight sync.WaitGroup
}

// TrackerOption configures a Tracker.
type TrackerOption func(*Tracker)

// WithSink substitutes the delivery sink. Used by tests and by the
// preview mode; bypasses the shared per-process collect sink.
func WithSink(s Sink) TrackerOption {
	return func(t *Tracker) { t.sink = s }
}

// WithDebug logs every emitted event to stderr.
func WithDebug(on bool) TrackerOption {
	return func(t *Tracker) { t.debug = on }
}

// WithLogf overrides where suppressed delivery failures are written.
func WithLogf(logf func(format string, args ...any)) TrackerOption {
	return func(t *Tracker) { t.logf = logf }
}

// New creates a Tracker. Active only when both the measurement id and
// the API secret are present; otherwise every call is a logged no-op.
// The client identifier is minted once and reused for the tracker's
// whole lifetime.
func New(measurementID, apiSecret string, opts ...TrackerOption) *Tracker {
	t := &Tracker{
		clientID: uuid.New().String(),
		logf: func(format string, args ...any) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		},
	}
	for _, opt := range opts {
		opt(t)
	}

	if measurementID == "" || apiSecret == "" {
		t.logf("analytics disabled: no GA4 measurement id configured")
		return t
	}

	t.enabled = true
	if t.sink == nil {
		t.sink = sharedSink(measurementID, apiSecret)
	}
	return t
}

// ClientID returns the identifier attached to every event.
func (t *Tracker) ClientID() string { return t.clientID }

// Enabled reports whether events will actually be delivered.
func (t *Tracker) Enabled() bool { return t != nil && t.enabled }

// Flush blocks until all in-flight deliveries finish. Callers invoke it
// before process exit so the final events are not lost.
func (t *Tracker) Flush() {
	if t == nil {
		return
	}
	t.inflight.Wait()
}

// WidgetLoaded fires once per session, after a successful assessment fetch.
func (t *Tracker) WidgetLoaded(assessmentID, title string) {
	t.emit("widget_loaded", map[string]any{
		"assessment_id":    assessmentID,
		"assessment_title": title,
	})
}

// AssessmentStarted fires once, when the first question is answered.
func (t *Tracker) AssessmentStarted(assessmentID string) {
	t.emit("assessment_started", map[string]any{
		"assessment_id": assessmentID,
	})
}

// QuestionAnswered fires once per answered question with the question
// being answered at that moment.
func (t *Tracker) QuestionAnswered(assessmentID, questionID, questionText, optionID string, score int) {
	t.emit("question_answered", map[string]any{
		"assessment_id": assessmentID,
		"question_id":   questionID,
		"question_text": questionText,
		"option_id":     optionID,
		"score":         score,
	})
}

// AssessmentCompleted fires when the visitor reaches the lead form. The
// average score doubles as the generic conversion value.
func (t *Tracker) AssessmentCompleted(assessmentID string, score int) {
	t.emit("assessment_completed", map[string]any{
		"assessment_id": assessmentID,
		"score":         score,
		"value":         score,
	})
}

// LeadSubmitted fires after the backend accepts the lead. Only a
// one-way hash of the email is transmitted.
func (t *Tracker) LeadSubmitted(assessmentID, email string) {
	t.emit("lead_submitted", map[string]any{
		"assessment_id": assessmentID,
		"email_hash":    HashEmail(email),
	})
}

// emit dispatches one event in the background. Every failure mode is
// contained here: disabled trackers skip silently, delivery errors and
// panics are logged and swallowed.
func (t *Tracker) emit(name string, params map[string]any) {
	if t == nil || !t.enabled {
		return
	}
	if t.debug {
		t.logf("track: %s %v", name, params)
	}

	ev := Event{Name: name, Params: params}
	t.inflight.Add(1)
	go func() {
		defer t.inflight.Done()
		defer func() {
			if r := recover(); r != nil {
				t.logf("warning: analytics panic for %s: %v", name, r)
			}
		}()

		ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
		defer cancel()

		if err := t.sink.Send(ctx, t.clientID, []Event{ev}); err != nil {
			t.logf("warning: analytics event %s dropped: %v", name, err)
		}
	}()
}
