package scrape

import (
	"context"

	"github.com/fwojciec/jobfetch"
	"golang.org/x/sync/errgroup"
)

// Result holds the outcome of scraping one input.
type Result struct {
	Input string
	Job   *jobfetch.Job
	Err   error

	// DuplicateOf is the index of an earlier input that produced the same
	// job, or -1.
	DuplicateOf int
}

// ProgressEvent reports progress during a batch run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Input     string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting batch progress.
type ProgressFunc func(event ProgressEvent)

// ScrapeAll scrapes inputs with at most concurrency pipelines running at
// once and returns one Result per input, in input order. A failed input
// does not stop the others. Jobs identical to one scraped from an earlier
// input are marked with DuplicateOf.
//
// The progress callback, if provided, is called from a single goroutine.
func (s *Scraper) ScrapeAll(ctx context.Context, inputs []string, concurrency int, progress ProgressFunc) []Result {
	if concurrency <= 0 {
		concurrency = 1
	}

	type indexed struct {
		position int
		result   Result
	}
	resultCh := make(chan indexed, len(inputs))
	total := len(inputs)

	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	var g errgroup.Group
	g.SetLimit(concurrency)
	go func() {
		for i, input := range inputs {
			g.Go(func() error {
				job, err := s.Scrape(ctx, input)
				resultCh <- indexed{position: i, result: Result{Input: input, Job: job, Err: err, DuplicateOf: -1}}
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	results := make([]Result, total)
	var completed int
	for r := range resultCh {
		completed++
		results[r.position] = r.result

		if progress == nil {
			continue
		}
		event := ProgressEvent{Type: ProgressCompleted, Completed: completed, Total: total, Input: r.result.Input}
		if r.result.Err != nil {
			event.Type = ProgressFailed
			event.Error = r.result.Err
		}
		progress(event)
	}

	markDuplicates(results)

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}
	return results
}

func markDuplicates(results []Result) {
	seen := make(map[string]int)
	for i := range results {
		if results[i].Job == nil {
			continue
		}
		hash := ComputeHash(results[i].Job)
		if first, ok := seen[hash]; ok {
			results[i].DuplicateOf = first
			continue
		}
		seen[hash] = i
	}
}
