// Package http provides a net/http implementation of jobfetch.Fetcher that
// presents itself as a desktop browser, replays exported cookies and retries
// once when a job site throttles or blocks it.
package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"runtime"
	"time"

	"github.com/fwojciec/jobfetch"
)

const (
	// DefaultFetchTimeout bounds a single request attempt.
	DefaultFetchTimeout = 30 * time.Second

	// DefaultRetryDelay is the pause before the single retry.
	DefaultRetryDelay = time.Second
)

// Ensure Fetcher implements jobfetch.Fetcher at compile time.
var _ jobfetch.Fetcher = (*Fetcher)(nil)

// StatusError is returned for responses outside the 2xx range.
type StatusError struct {
	StatusCode int
	URL        string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d for %s", e.StatusCode, e.URL)
}

// Retryable reports whether the status is one job sites use for throttling
// or bot blocking: 403, 429 or LinkedIn's 999.
func (e *StatusError) Retryable() bool {
	switch e.StatusCode {
	case http.StatusForbidden, http.StatusTooManyRequests, 999:
		return true
	}
	return false
}

// Fetcher retrieves job pages over HTTP.
type Fetcher struct {
	client     *http.Client
	timeout    time.Duration
	retryDelay time.Duration
	jar        http.CookieJar
	limiter    jobfetch.DomainLimiter
	logger     *slog.Logger
	platform   string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithClient sets the client whose transport and redirect policy are used.
// Its timeout and cookie jar are replaced per request.
func WithClient(c *http.Client) Option {
	return func(f *Fetcher) {
		f.client = c
	}
}

// WithTimeout sets the timeout for each request attempt.
// Defaults to DefaultFetchTimeout (30s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithRetryDelay sets the pause before the retry.
// Defaults to DefaultRetryDelay (1s) if not specified.
func WithRetryDelay(d time.Duration) Option {
	return func(f *Fetcher) {
		f.retryDelay = d
	}
}

// WithCookieJar sets cookies replayed on every request. The jar is only
// read; cookies set by responses live for the duration of one Fetch.
func WithCookieJar(jar http.CookieJar) Option {
	return func(f *Fetcher) {
		f.jar = jar
	}
}

// WithLimiter paces requests per host.
func WithLimiter(l jobfetch.DomainLimiter) Option {
	return func(f *Fetcher) {
		f.limiter = l
	}
}

// WithLogger sets the logger used to report retries.
func WithLogger(logger *slog.Logger) Option {
	return func(f *Fetcher) {
		f.logger = logger
	}
}

// WithPlatform sets the operating system the User-Agent claims, using
// runtime.GOOS values. Defaults to the host platform.
func WithPlatform(goos string) Option {
	return func(f *Fetcher) {
		f.platform = goos
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		client:     &http.Client{},
		timeout:    DefaultFetchTimeout,
		retryDelay: DefaultRetryDelay,
		logger:     slog.New(slog.DiscardHandler),
		platform:   runtime.GOOS,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch retrieves the page at rawURL and returns it decoded as UTF-8.
//
// A 403, 429 or 999 response is retried once after the retry delay. If the
// retry fails the same way on a recognized job site, Fetch returns an
// EBLOCKED error naming the site; otherwise the *StatusError is returned.
// Other statuses and transport errors are returned without retrying.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", jobfetch.Errorf(jobfetch.EINVALID, "Invalid URL: %s", rawURL)
	}

	client := f.sessionClient()
	get := func(ctx context.Context) (string, error) {
		return f.get(ctx, client, u)
	}
	logRetry := func(err error) {
		f.logger.Info("retrying fetch", "url", rawURL, "delay", f.retryDelay, "err", err)
	}

	html, err := fetchWithRetry(ctx, get, logRetry, f.retryDelay)
	if err != nil {
		var statusErr *StatusError
		if errors.As(err, &statusErr) && statusErr.Retryable() {
			if site := jobfetch.DetectSite(rawURL); site != jobfetch.SiteUnknown {
				return "", jobfetch.BlockedError(site, statusErr.StatusCode, rawURL, err)
			}
		}
		return "", err
	}
	return html, nil
}

// sessionClient returns a client for one Fetch call, sharing the
// transport but not the cookie state of f.client.
func (f *Fetcher) sessionClient() *http.Client {
	return &http.Client{
		Transport:     f.client.Transport,
		CheckRedirect: f.client.CheckRedirect,
		Jar:           newSessionJar(f.jar),
		Timeout:       f.timeout,
	}
}

func (f *Fetcher) get(ctx context.Context, client *http.Client, u *url.URL) (string, error) {
	if f.limiter != nil {
		if err := f.limiter.Wait(ctx, u.Hostname()); err != nil {
			return "", err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return "", err
	}
	setBrowserHeaders(req.Header, u, f.platform)

	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodySize))
		return "", &StatusError{StatusCode: resp.StatusCode, URL: u.String()}
	}

	body, err := readAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", u, err)
	}
	body, err = Decompress(body, resp.Header.Get("Content-Encoding"))
	if err != nil {
		return "", fmt.Errorf("decode %s: %w", u, err)
	}
	return jobfetch.DecodeText(body), nil
}
