package jobfetch

import "context"

// JobWriter files a job on disk.
type JobWriter interface {
	// WriteJob creates the job folder and its files.
	// Returns EINVALID if the job lacks a title or company.
	WriteJob(ctx context.Context, job *Job) (*JobFiles, error)
}

// PromptSource supplies the prompt text written alongside a job.
type PromptSource interface {
	// Prompt returns the main and cover-letter templates joined together.
	// Returns ENOTFOUND if a template is missing.
	Prompt(french bool) (string, error)
}
