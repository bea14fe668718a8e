package mock

import "github.com/fwojciec/jobfetch"

var _ jobfetch.SourceResolver = (*SourceResolver)(nil)

// SourceResolver is a mock implementation of jobfetch.SourceResolver.
type SourceResolver struct {
	ResolveFn func(input string) jobfetch.Source
}

func (r *SourceResolver) Resolve(input string) jobfetch.Source {
	return r.ResolveFn(input)
}
