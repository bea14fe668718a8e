package jobfetch

// Extractor recovers a job from raw HTML using one strategy.
type Extractor interface {
	// Extract returns the job and true, or nil and false when this
	// strategy finds nothing. Malformed input is never an error.
	Extract(html string) (*Job, bool)
}

// ExtractorRegistry maps site families to structural extractors.
type ExtractorRegistry interface {
	// Register adds an extractor for a site family, replacing any previous one.
	Register(site Site, extractor Extractor)

	// Chain returns the extractors to try for a site, in order: the
	// site-specific extractor if one is registered, then the fallback.
	Chain(site Site) []Extractor
}
