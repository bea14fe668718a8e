package jobfetch

import "context"

// Fetcher retrieves the HTML of a job page.
type Fetcher interface {
	// Fetch returns the document at location decoded as UTF-8, with
	// undecodable bytes replaced rather than reported.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, location string) (html string, err error)
}

// DomainLimiter paces requests per domain.
type DomainLimiter interface {
	// Wait blocks until a request to domain is allowed or ctx is done.
	Wait(ctx context.Context, domain string) error
}
