package html

import "github.com/fwojciec/jobfetch"

var _ jobfetch.ExtractorRegistry = (*Registry)(nil)

// Registry holds site-specific structural extractors and a fallback used
// for every site, including recognized ones whose own extractor found
// nothing.
type Registry struct {
	fallback   jobfetch.Extractor
	extractors map[jobfetch.Site]jobfetch.Extractor
}

// NewRegistry creates a new Registry with the given fallback extractor.
func NewRegistry(fallback jobfetch.Extractor) *Registry {
	return &Registry{
		fallback:   fallback,
		extractors: make(map[jobfetch.Site]jobfetch.Extractor),
	}
}

// Register adds an extractor for a site family.
// If an extractor is already registered for the site, it is replaced.
func (r *Registry) Register(site jobfetch.Site, extractor jobfetch.Extractor) {
	r.extractors[site] = extractor
}

// Chain returns the site's extractor, if any, followed by the fallback.
func (r *Registry) Chain(site jobfetch.Site) []jobfetch.Extractor {
	if e, ok := r.extractors[site]; ok {
		return []jobfetch.Extractor{e, r.fallback}
	}
	return []jobfetch.Extractor{r.fallback}
}
