package html

import (
	"strings"
	"unicode"

	"github.com/fwojciec/jobfetch"
)

var _ jobfetch.Extractor = (*IndeedExtractor)(nil)

// IndeedExtractor recovers a job from Indeed-style job board markup.
// It also serves as the generic fallback for unrecognized sites.
type IndeedExtractor struct{}

// NewIndeedExtractor creates a new IndeedExtractor.
func NewIndeedExtractor() *IndeedExtractor {
	return &IndeedExtractor{}
}

// Extract implements jobfetch.Extractor.
//
// Title comes from the first h1, company from the first company-name element
// and description from the job description container. Missing title and
// description are backfilled from og:title and og:description.
func (e *IndeedExtractor) Extract(html string) (*jobfetch.Job, bool) {
	title := NewFieldTracker(func(t Token) bool { return t.Tag == "h1" })
	company := NewFieldTracker(isIndeedCompany)
	description := NewFieldTracker(isIndeedDescription)

	for tok := range Tokens(html) {
		title.Feed(tok)
		company.Feed(tok)
		description.Feed(tok)
	}

	job := &jobfetch.Job{
		Title:       title.Text(),
		Company:     companyName(company),
		Description: description.Block(),
	}

	if job.Title == "" || job.Description == "" {
		meta := CollectMeta(html)
		if job.Title == "" {
			job.Title = collapseSpace(meta["og:title"])
		}
		if job.Description == "" {
			job.Description = NormalizeLines(meta["og:description"])
		}
	}

	if !job.Usable() {
		return nil, false
	}
	return job, true
}

// companyName returns the company element's text. An element with no text
// falls back to its data-company-name value unless that value is only a
// boolean flag.
func companyName(f *FieldTracker) string {
	if text := f.Text(); text != "" {
		return text
	}
	start, ok := f.Start()
	if !ok {
		return ""
	}
	for _, key := range []string{"data-company-name", "data-companyname"} {
		v, ok := start.Attr(key)
		if !ok {
			continue
		}
		v = collapseSpace(v)
		if hasLetter(v) && !isBoolMarker(v) {
			return v
		}
	}
	return ""
}

func isBoolMarker(s string) bool {
	return strings.EqualFold(s, "true") || strings.EqualFold(s, "false")
}

func isIndeedCompany(t Token) bool {
	if _, ok := t.Attr("data-company-name"); ok {
		return true
	}
	if _, ok := t.Attr("data-companyname"); ok {
		return true
	}
	testID, _ := t.Attr("data-testid")
	testID = strings.ToLower(testID)
	if strings.Contains(testID, "company") && strings.Contains(testID, "name") {
		return true
	}
	class, _ := t.Attr("class")
	class = strings.ToLower(class)
	return strings.Contains(class, "companyname") || strings.Contains(class, "company-name")
}

func isIndeedDescription(t Token) bool {
	if id, _ := t.Attr("id"); id == "jobDescriptionText" {
		return true
	}
	switch testID, _ := t.Attr("data-testid"); testID {
	case "jobDescriptionText", "job-description":
		return true
	}
	class, _ := t.Attr("class")
	return strings.Contains(class, "jobDescriptionText")
}

func hasLetter(s string) bool {
	return strings.IndexFunc(s, unicode.IsLetter) >= 0
}
