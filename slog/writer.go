package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/jobfetch"
)

// Ensure LoggingWriter implements jobfetch.JobWriter.
var _ jobfetch.JobWriter = (*LoggingWriter)(nil)

// LoggingWriter wraps a JobWriter with logging.
type LoggingWriter struct {
	next   jobfetch.JobWriter
	logger *slog.Logger
}

// NewLoggingWriter creates a new LoggingWriter.
func NewLoggingWriter(next jobfetch.JobWriter, logger *slog.Logger) *LoggingWriter {
	return &LoggingWriter{next: next, logger: logger}
}

// WriteJob delegates to the wrapped writer and logs the operation.
func (w *LoggingWriter) WriteJob(ctx context.Context, job *jobfetch.Job) (files *jobfetch.JobFiles, err error) {
	defer func(begin time.Time) {
		var folder string
		if files != nil {
			folder = files.Folder
		}
		w.logger.Info("write job",
			"folder", folder,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.next.WriteJob(ctx, job)
}
