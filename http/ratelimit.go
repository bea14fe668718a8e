package http

import (
	"context"
	"net"
	"strings"
	"sync"

	"github.com/fwojciec/jobfetch"
	"golang.org/x/net/publicsuffix"
	"golang.org/x/time/rate"
)

var _ jobfetch.DomainLimiter = (*SiteLimiter)(nil)

// SiteLimiter paces requests per registrable domain, so ca.indeed.com and
// www.indeed.com draw from the same token bucket. Buckets hold one token.
type SiteLimiter struct {
	rps float64

	mu      sync.Mutex
	buckets map[string]*rate.Limiter
}

// NewSiteLimiter creates a SiteLimiter allowing rps requests per second to
// each site. A non-positive rps disables limiting.
func NewSiteLimiter(rps float64) *SiteLimiter {
	return &SiteLimiter{rps: rps, buckets: make(map[string]*rate.Limiter)}
}

// Wait blocks until a request to host is allowed or ctx is done.
func (l *SiteLimiter) Wait(ctx context.Context, host string) error {
	if l.rps <= 0 {
		return ctx.Err()
	}
	return l.bucket(siteKey(host)).Wait(ctx)
}

func (l *SiteLimiter) bucket(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()
	b, ok := l.buckets[key]
	if !ok {
		b = rate.NewLimiter(rate.Limit(l.rps), 1)
		l.buckets[key] = b
	}
	return b
}

// siteKey reduces host to its registrable domain. Hosts without one, such
// as IP addresses and localhost, are their own key.
func siteKey(host string) string {
	host = strings.TrimSuffix(strings.ToLower(host), ".")
	if net.ParseIP(host) != nil {
		return host
	}
	if site, err := publicsuffix.EffectiveTLDPlusOne(host); err == nil {
		return site
	}
	return host
}
