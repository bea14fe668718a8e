package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/jobfetch"
)

// Ensure LoggingDetector implements jobfetch.SiteDetector.
var _ jobfetch.SiteDetector = (*LoggingDetector)(nil)

// LoggingDetector wraps a SiteDetector with debug logging of detected sites.
type LoggingDetector struct {
	next   jobfetch.SiteDetector
	logger *slog.Logger
}

// NewLoggingDetector creates a new LoggingDetector.
func NewLoggingDetector(next jobfetch.SiteDetector, logger *slog.Logger) *LoggingDetector {
	return &LoggingDetector{next: next, logger: logger}
}

// Detect delegates to the wrapped detector and logs the result.
func (d *LoggingDetector) Detect(html string) jobfetch.Site {
	begin := time.Now()
	site := d.next.Detect(html)
	siteName := string(site)
	if site == jobfetch.SiteUnknown {
		siteName = "(unknown)"
	}
	d.logger.Debug("site detection",
		"site", siteName,
		"duration", time.Since(begin),
	)
	return site
}
