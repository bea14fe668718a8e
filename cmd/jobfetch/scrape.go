package main

import (
	"fmt"

	"github.com/fwojciec/jobfetch"
	"github.com/fwojciec/jobfetch/scrape"
)

// ScrapeCmd extracts each source and files the resulting jobs.
type ScrapeCmd struct {
	Sources     []string
	DryRun      bool
	Concurrency int
}

// Run executes the scrape command. It reports every failed source and
// returns an error if any failed.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	progress := func(e scrape.ProgressEvent) {
		switch e.Type {
		case scrape.ProgressCompleted:
			deps.Logger.Debug("scraped", "input", e.Input, "completed", e.Completed, "total", e.Total)
		case scrape.ProgressFailed:
			deps.Logger.Debug("scrape failed", "input", e.Input, "completed", e.Completed, "total", e.Total, "err", e.Error)
		}
	}

	results := deps.Scraper.ScrapeAll(deps.Ctx, c.Sources, c.Concurrency, progress)

	var failed int
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", errorMessage(r.Err))
			failed++
			continue
		}
		if r.DuplicateOf >= 0 {
			fmt.Fprintf(deps.Stdout, "Skipped %s: same job as %s\n", r.Input, results[r.DuplicateOf].Input)
			continue
		}
		if c.DryRun {
			printJob(deps, r.Job)
			continue
		}

		files, err := deps.Writer.WriteJob(deps.Ctx, r.Job)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", errorMessage(err))
			failed++
			continue
		}
		fmt.Fprintf(deps.Stdout, "Created folder: %s\n", files.Folder)
		fmt.Fprintf(deps.Stdout, "Wrote description: %s\n", files.Description)
		if files.Prompt != "" {
			fmt.Fprintf(deps.Stdout, "Wrote prompt: %s\n", files.Prompt)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d sources failed", failed, len(results))
	}
	return nil
}

func printJob(deps *Dependencies, job *jobfetch.Job) {
	fmt.Fprintf(deps.Stdout, "Title: %s\n", job.Title)
	fmt.Fprintf(deps.Stdout, "Company: %s\n", job.Company)
	fmt.Fprintf(deps.Stdout, "Folder: %s\n", jobfetch.FolderName(job.Title, job.Company))
	fmt.Fprintf(deps.Stdout, "\n%s\n\n", job.Description)
}
