package html

import (
	"regexp"
	"strings"

	"github.com/fwojciec/jobfetch"
)

var _ jobfetch.Extractor = (*LinkedInExtractor)(nil)

var (
	// og:title of a LinkedIn posting: "<company> hiring <title> in <location>".
	hiringTitle    = regexp.MustCompile(`^(.+?)\s+hiring\s+(.+?)\s+in\s+`)
	linkedInSuffix = regexp.MustCompile(`\s*\|\s*LinkedIn\s*$`)
)

// LinkedInExtractor recovers a job from a public LinkedIn job page.
type LinkedInExtractor struct{}

// NewLinkedInExtractor creates a new LinkedInExtractor.
func NewLinkedInExtractor() *LinkedInExtractor {
	return &LinkedInExtractor{}
}

// Extract implements jobfetch.Extractor.
func (e *LinkedInExtractor) Extract(html string) (*jobfetch.Job, bool) {
	meta := CollectMeta(html)

	var job jobfetch.Job
	og := meta["og:title"]
	if m := hiringTitle.FindStringSubmatch(og); m != nil {
		job.Company = strings.TrimSpace(m[1])
		job.Title = strings.TrimSpace(m[2])
	} else {
		job.Title = strings.TrimSpace(linkedInSuffix.ReplaceAllString(og, ""))
	}

	description := NewFieldTracker(classContains("show-more-less-html__markup"))
	company := NewFieldTracker(classContains("topcard__org-name-link"))
	for tok := range Tokens(html) {
		description.Feed(tok)
		company.Feed(tok)
	}

	job.Description = description.Block()
	if job.Description == "" {
		job.Description = NormalizeLines(meta["og:description"])
	}
	if job.Description == "" {
		job.Description = NormalizeLines(meta["description"])
	}
	if job.Company == "" {
		job.Company = company.Text()
	}

	if !job.Usable() {
		return nil, false
	}
	return &job, true
}

// classContains matches tags whose class attribute contains substr,
// ignoring case.
func classContains(substr string) func(Token) bool {
	substr = strings.ToLower(substr)
	return func(t Token) bool {
		class, ok := t.Attr("class")
		return ok && strings.Contains(strings.ToLower(class), substr)
	}
}
