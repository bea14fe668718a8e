// Package scrape provides job extraction orchestration.
// It coordinates source resolution, fetching, the extraction strategies,
// and failure classification for one or many job postings.
package scrape

import (
	"context"

	"github.com/fwojciec/jobfetch"
)

// Scraper runs the extraction pipeline.
type Scraper struct {
	Sources    jobfetch.SourceResolver
	Local      jobfetch.Fetcher
	Remote     jobfetch.Fetcher
	Structured jobfetch.Extractor
	Extractors jobfetch.ExtractorRegistry

	// Detector identifies the site of saved pages. Optional.
	Detector jobfetch.SiteDetector
}

// Scrape fetches input and returns the first job any strategy recovers.
//
// Structured data is tried first, then the structural extractors for the
// input's site. When every strategy comes up empty the page is classified
// and an ECAPTCHA, EAUTHWALL or ENODATA error is returned. Fetch errors are
// returned unchanged.
func (s *Scraper) Scrape(ctx context.Context, input string) (*jobfetch.Job, error) {
	src := s.Sources.Resolve(input)

	fetcher := s.Remote
	if src.Kind == jobfetch.SourceLocal {
		fetcher = s.Local
	}
	html, err := fetcher.Fetch(ctx, src.Location)
	if err != nil {
		return nil, err
	}

	if job, ok := s.Structured.Extract(html); ok {
		return job, nil
	}

	site := s.site(src, html)
	for _, e := range s.Extractors.Chain(site) {
		if job, ok := e.Extract(html); ok {
			return job, nil
		}
	}

	return nil, jobfetch.Classify(html, site, src.Location)
}

// site returns the site family of a source: from the URL for remote
// pages and from the content for saved ones.
func (s *Scraper) site(src jobfetch.Source, html string) jobfetch.Site {
	if src.Kind == jobfetch.SourceRemote {
		return jobfetch.DetectSite(src.Location)
	}
	if s.Detector != nil {
		return s.Detector.Detect(html)
	}
	return jobfetch.SiteUnknown
}
