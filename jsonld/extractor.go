// Package jsonld extracts job postings from schema.org JSON-LD blocks
// embedded in HTML.
package jsonld

import (
	"log/slog"
	"strings"

	"github.com/fwojciec/jobfetch"
	"github.com/fwojciec/jobfetch/html"
)

var _ jobfetch.Extractor = (*Extractor)(nil)

const jobPostingType = "JobPosting"

// Extractor finds the first JobPosting record in a document's JSON-LD.
type Extractor struct {
	logger *slog.Logger
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithLogger sets the logger that reports skipped blocks at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Extractor) {
		e.logger = logger
	}
}

// NewExtractor creates a new Extractor.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract implements jobfetch.Extractor.
//
// Script blocks with no type or type application/ld+json are parsed in
// document order; blocks that fail to parse are skipped. Each payload is
// searched depth-first for an object whose @type is or includes JobPosting.
func (e *Extractor) Extract(doc string) (*jobfetch.Job, bool) {
	for i, script := range html.CollectScripts(doc) {
		if !eligible(script) {
			continue
		}
		payload, err := decode(script.Content)
		if err != nil {
			e.logger.Debug("skip json-ld block", "index", i, "err", err)
			continue
		}
		posting := findJobPosting(payload, 0)
		if posting == nil {
			continue
		}
		if job := normalize(posting); job.Usable() {
			return job, true
		}
		e.logger.Debug("skip empty job posting", "index", i)
	}
	return nil, false
}

func eligible(s html.Script) bool {
	if s.Type == nil {
		return true
	}
	typ := strings.TrimSpace(*s.Type)
	return typ == "" || strings.EqualFold(typ, "application/ld+json")
}

// findJobPosting returns the first JobPosting object in pre-order.
func findJobPosting(v any, depth int) object {
	if depth > maxDepth {
		return nil
	}
	switch v := v.(type) {
	case object:
		if t, ok := v.get("@type"); ok && isJobPosting(t) {
			return v
		}
		for _, m := range v {
			if found := findJobPosting(m.value, depth+1); found != nil {
				return found
			}
		}
	case []any:
		for _, item := range v {
			if found := findJobPosting(item, depth+1); found != nil {
				return found
			}
		}
	}
	return nil
}

func isJobPosting(t any) bool {
	switch t := t.(type) {
	case string:
		return t == jobPostingType
	case []any:
		for _, item := range t {
			if s, ok := item.(string); ok && s == jobPostingType {
				return true
			}
		}
	}
	return false
}

func normalize(posting object) *jobfetch.Job {
	title := stringField(posting, "title")
	if title == "" {
		title = stringField(posting, "name")
	}
	return &jobfetch.Job{
		Title:       strings.TrimSpace(title),
		Company:     strings.TrimSpace(organizationName(posting)),
		Description: html.RenderText(stringField(posting, "description")),
	}
}

// organizationName reads hiringOrganization as a single object or as a
// list, in which case the first entry with a name wins.
func organizationName(posting object) string {
	org, _ := posting.get("hiringOrganization")
	switch org := org.(type) {
	case object:
		return stringField(org, "name")
	case []any:
		for _, item := range org {
			if o, ok := item.(object); ok {
				if name := stringField(o, "name"); name != "" {
					return name
				}
			}
		}
	}
	return ""
}

func stringField(o object, key string) string {
	v, _ := o.get(key)
	s, _ := v.(string)
	return s
}
