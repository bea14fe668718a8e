package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/jobfetch"
)

var _ jobfetch.SiteDetector = (*Detector)(nil)

// savedFrom matches the marker browsers write into pages saved to disk.
var savedFrom = regexp.MustCompile(`saved from url=\(\d+\)(\S+)`)

// Detector identifies the job site a saved page came from.
// It checks the URLs a page records about itself, site name meta tags, and
// structural markers unique to each site.
type Detector struct{}

// NewDetector creates a new Detector.
func NewDetector() *Detector {
	return &Detector{}
}

// Detect analyzes HTML and returns the identified site.
// Returns SiteUnknown if the site cannot be determined.
func (d *Detector) Detect(html string) jobfetch.Site {
	if m := savedFrom.FindStringSubmatch(html); m != nil {
		if site := jobfetch.DetectSite(m[1]); site != jobfetch.SiteUnknown {
			return site
		}
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return jobfetch.SiteUnknown
	}

	// Self-declared URLs are the most reliable signal.
	for _, sel := range []struct{ selector, attr string }{
		{"link[rel='canonical']", "href"},
		{"meta[property='og:url']", "content"},
	} {
		if v, ok := doc.Find(sel.selector).First().Attr(sel.attr); ok {
			if site := jobfetch.DetectSite(v); site != jobfetch.SiteUnknown {
				return site
			}
		}
	}

	if site := d.detectFromSiteName(doc); site != jobfetch.SiteUnknown {
		return site
	}

	if d.hasSelector(doc, ".show-more-less-html__markup") ||
		d.hasSelector(doc, ".topcard__org-name-link") {
		return jobfetch.SiteLinkedIn
	}

	if d.hasSelector(doc, "#jobDescriptionText") ||
		d.hasSelector(doc, ".jobsearch-JobComponent") {
		return jobfetch.SiteIndeed
	}

	return jobfetch.SiteUnknown
}

// detectFromSiteName checks og:site_name and application-name meta tags.
func (d *Detector) detectFromSiteName(doc *goquery.Document) jobfetch.Site {
	var name string
	doc.Find("meta[property='og:site_name'], meta[name='application-name']").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if content, exists := s.Attr("content"); exists && content != "" {
			name = strings.ToLower(content)
			return false
		}
		return true
	})

	switch {
	case strings.Contains(name, "linkedin"):
		return jobfetch.SiteLinkedIn
	case strings.Contains(name, "indeed"):
		return jobfetch.SiteIndeed
	}
	return jobfetch.SiteUnknown
}

// hasSelector checks if the document contains at least one element matching the selector.
func (d *Detector) hasSelector(doc *goquery.Document, selector string) bool {
	return doc.Find(selector).Length() > 0
}
