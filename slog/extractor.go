package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/jobfetch"
)

// Ensure LoggingExtractor implements jobfetch.Extractor.
var _ jobfetch.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with debug logging of each attempt.
type LoggingExtractor struct {
	next     jobfetch.Extractor
	strategy string
	logger   *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor. The strategy names
// the wrapped extractor in log records.
func NewLoggingExtractor(next jobfetch.Extractor, strategy string, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, strategy: strategy, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the outcome.
func (e *LoggingExtractor) Extract(html string) (job *jobfetch.Job, ok bool) {
	defer func(begin time.Time) {
		e.logger.Debug("extract",
			"strategy", e.strategy,
			"found", ok,
			"duration", time.Since(begin),
		)
	}(time.Now())
	return e.next.Extract(html)
}
