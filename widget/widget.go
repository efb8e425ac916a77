// Package widget is the embedding surface of the DiagnoLeads
// assessment widget. Hosts construct a Widget from an attribute bag
// (markup-style embedding goes through the CLI, programmatic embedding
// through New) and run it; the widget fetches its assessment, drives
// the question loop, captures the lead, and reports analytics.
package widget

import (
	"encoding/json"

	"github.com/yusuke-kurosawa/diagnoleads-widget/api"
	"github.com/yusuke-kurosawa/diagnoleads-widget/internal/app"
	"github.com/yusuke-kurosawa/diagnoleads-widget/internal/screens/assessment"
	"github.com/yusuke-kurosawa/diagnoleads-widget/internal/screens/leadform"
	"github.com/yusuke-kurosawa/diagnoleads-widget/internal/ui/theme"
	"github.com/yusuke-kurosawa/diagnoleads-widget/track"
)

// Version identifies this widget build to hosts and to the updater.
const Version = "0.4.2"

// Widget is one independent assessment session. Two widgets in the
// same process share nothing but the per-process analytics sink.
type Widget struct {
	cfg     Config
	client  *api.Client
	tracker *track.Tracker

	fetcher    assessment.Fetcher
	submitter  leadform.Submitter
	onComplete func(json.RawMessage)
}

// New constructs a Widget from configuration. It never fails: a
// missing tenant or assessment id produces a widget whose load ends in
// the error view, and a missing GA4 id produces a disabled tracker.
func New(cfg Config) *Widget {
	client := api.NewClient(cfg.APIURL, cfg.TenantID)
	tracker := track.New(cfg.GA4ID, cfg.GA4APISecret, track.WithDebug(cfg.Debug))

	return &Widget{
		cfg:       cfg,
		client:    client,
		tracker:   tracker,
		fetcher:   client,
		submitter: client,
	}
}

// NewPreview constructs a Widget over a built-in sample assessment
// with transport and tracking disabled. Intended for theming work on
// host pages before a real assessment exists.
func NewPreview(cfg Config) *Widget {
	w := New(Config{
		APIURL:       cfg.APIURL,
		Theme:        cfg.Theme,
		PrimaryColor: cfg.PrimaryColor,
		// No GA4 id: the tracker stays a no-op in preview.
	})
	w.cfg.AssessmentID = sampleAssessmentID
	w.fetcher = sampleBackend{}
	w.submitter = sampleBackend{}
	return w
}

// OnComplete registers the host callback fired exactly once after a
// successful lead submission, with the backend's opaque response body.
func (w *Widget) OnComplete(fn func(json.RawMessage)) {
	w.onComplete = fn
}

// Client returns the widget's transport client.
func (w *Widget) Client() *api.Client { return w.client }

// Tracker returns the widget's analytics tracker.
func (w *Widget) Tracker() *track.Tracker { return w.tracker }

// Run blocks until the session reaches a terminal state or the host
// quits. In-flight analytics events are flushed before it returns.
func (w *Widget) Run() error {
	defer w.tracker.Flush()

	return app.Run(app.Options{
		AssessmentID: w.cfg.AssessmentID,
		Fetcher:      w.fetcher,
		Submitter:    w.submitter,
		Tracker:      w.tracker,
		Theme:        theme.New(w.cfg.Theme, w.cfg.PrimaryColor),
		OnComplete:   w.onComplete,
	})
}
