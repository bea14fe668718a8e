package mock

import (
	"context"

	"github.com/fwojciec/jobfetch"
)

var _ jobfetch.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of jobfetch.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, location string) (string, error)
}

func (f *Fetcher) Fetch(ctx context.Context, location string) (string, error) {
	return f.FetchFn(ctx, location)
}

var _ jobfetch.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of jobfetch.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return d.WaitFn(ctx, domain)
}
