package scrape

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/jobfetch"
)

// ComputeHash computes a hash of a job's fields using xxhash.
func ComputeHash(job *jobfetch.Job) string {
	h := xxhash.Sum64String(job.Title + "\x00" + job.Company + "\x00" + job.Description)
	return fmt.Sprintf("%x", h)
}
