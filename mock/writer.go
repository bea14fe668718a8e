package mock

import (
	"context"

	"github.com/fwojciec/jobfetch"
)

var _ jobfetch.JobWriter = (*JobWriter)(nil)

// JobWriter is a mock implementation of jobfetch.JobWriter.
type JobWriter struct {
	WriteJobFn func(ctx context.Context, job *jobfetch.Job) (*jobfetch.JobFiles, error)
}

func (w *JobWriter) WriteJob(ctx context.Context, job *jobfetch.Job) (*jobfetch.JobFiles, error) {
	return w.WriteJobFn(ctx, job)
}

var _ jobfetch.PromptSource = (*PromptSource)(nil)

// PromptSource is a mock implementation of jobfetch.PromptSource.
type PromptSource struct {
	PromptFn func(french bool) (string, error)
}

func (p *PromptSource) Prompt(french bool) (string, error) {
	return p.PromptFn(french)
}
