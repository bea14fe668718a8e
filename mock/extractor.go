package mock

import "github.com/fwojciec/jobfetch"

var _ jobfetch.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of jobfetch.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*jobfetch.Job, bool)
}

func (e *Extractor) Extract(html string) (*jobfetch.Job, bool) {
	return e.ExtractFn(html)
}

var _ jobfetch.ExtractorRegistry = (*ExtractorRegistry)(nil)

// ExtractorRegistry is a mock implementation of jobfetch.ExtractorRegistry.
type ExtractorRegistry struct {
	RegisterFn func(site jobfetch.Site, extractor jobfetch.Extractor)
	ChainFn    func(site jobfetch.Site) []jobfetch.Extractor
}

func (r *ExtractorRegistry) Register(site jobfetch.Site, extractor jobfetch.Extractor) {
	r.RegisterFn(site, extractor)
}

func (r *ExtractorRegistry) Chain(site jobfetch.Site) []jobfetch.Extractor {
	return r.ChainFn(site)
}

var _ jobfetch.SiteDetector = (*SiteDetector)(nil)

// SiteDetector is a mock implementation of jobfetch.SiteDetector.
type SiteDetector struct {
	DetectFn func(html string) jobfetch.Site
}

func (d *SiteDetector) Detect(html string) jobfetch.Site {
	return d.DetectFn(html)
}
