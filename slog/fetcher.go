// Package slog provides log/slog decorators for the jobfetch interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/jobfetch"
)

// Ensure LoggingFetcher implements jobfetch.Fetcher.
var _ jobfetch.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with logging.
type LoggingFetcher struct {
	next   jobfetch.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next jobfetch.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the operation.
func (f *LoggingFetcher) Fetch(ctx context.Context, location string) (html string, err error) {
	defer func(begin time.Time) {
		f.logger.Info("fetch",
			"url", location,
			"bytes", len(html),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, location)
}
