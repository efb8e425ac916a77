package widget

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/yusuke-kurosawa/diagnoleads-widget/internal/ui/theme"
)

// DefaultAPIURL is the backend used when the host supplies none.
const DefaultAPIURL = "http://localhost:8000"

// Attributes is the raw attribute bag a host supplies, before any
// defaulting. Every field is optional at this layer; missing values
// never fail construction (a missing tenant or assessment id surfaces
// later as a fetch failure, not a crash).
type Attributes struct {
	TenantID     string `yaml:"tenant-id"`
	AssessmentID string `yaml:"assessment-id"`
	APIURL       string `yaml:"api-url"`
	GA4ID        string `yaml:"ga4-id"`
	GA4APISecret string `yaml:"ga4-api-secret"`
	Theme        string `yaml:"theme"`
	PrimaryColor string `yaml:"primary-color"`
	Debug        bool   `yaml:"debug"`
}

// Merge overlays b onto a: any value set in b wins.
func Merge(a, b Attributes) Attributes {
	if b.TenantID != "" {
		a.TenantID = b.TenantID
	}
	if b.AssessmentID != "" {
		a.AssessmentID = b.AssessmentID
	}
	if b.APIURL != "" {
		a.APIURL = b.APIURL
	}
	if b.GA4ID != "" {
		a.GA4ID = b.GA4ID
	}
	if b.GA4APISecret != "" {
		a.GA4APISecret = b.GA4APISecret
	}
	if b.Theme != "" {
		a.Theme = b.Theme
	}
	if b.PrimaryColor != "" {
		a.PrimaryColor = b.PrimaryColor
	}
	if b.Debug {
		a.Debug = true
	}
	return a
}

// LoadFile reads an attribute bag from a YAML file.
func LoadFile(path string) (Attributes, error) {
	var attrs Attributes
	data, err := os.ReadFile(path)
	if err != nil {
		return attrs, err
	}
	if err := yaml.Unmarshal(data, &attrs); err != nil {
		return attrs, fmt.Errorf("parse %s: %w", path, err)
	}
	return attrs, nil
}

// FromEnv reads an attribute bag from DIAGNOLEADS_* environment
// variables.
func FromEnv() Attributes {
	return Attributes{
		TenantID:     os.Getenv("DIAGNOLEADS_TENANT_ID"),
		AssessmentID: os.Getenv("DIAGNOLEADS_ASSESSMENT_ID"),
		APIURL:       os.Getenv("DIAGNOLEADS_API_URL"),
		GA4ID:        os.Getenv("DIAGNOLEADS_GA4_ID"),
		GA4APISecret: os.Getenv("DIAGNOLEADS_GA4_API_SECRET"),
		Theme:        os.Getenv("DIAGNOLEADS_THEME"),
		PrimaryColor: os.Getenv("DIAGNOLEADS_PRIMARY_COLOR"),
		Debug:        os.Getenv("DIAGNOLEADS_DEBUG") == "1",
	}
}

// Config is the immutable widget configuration, derived once from the
// attribute bag at construction.
type Config struct {
	TenantID     string
	AssessmentID string
	APIURL       string
	GA4ID        string
	GA4APISecret string
	Theme        theme.Mode
	PrimaryColor string
	Debug        bool
}

// FromAttributes applies defaults. It never fails: absent tenant or
// assessment ids stay empty and produce a fetch failure at load time
// rather than a construction-time error.
func FromAttributes(attrs Attributes) Config {
	cfg := Config{
		TenantID:     attrs.TenantID,
		AssessmentID: attrs.AssessmentID,
		APIURL:       attrs.APIURL,
		GA4ID:        attrs.GA4ID,
		GA4APISecret: attrs.GA4APISecret,
		Theme:        theme.ParseMode(attrs.Theme),
		PrimaryColor: attrs.PrimaryColor,
		Debug:        attrs.Debug,
	}
	if cfg.APIURL == "" {
		cfg.APIURL = DefaultAPIURL
	}
	if cfg.PrimaryColor == "" {
		cfg.PrimaryColor = theme.DefaultAccent
	}
	return cfg
}
