package fs

import (
	"context"
	"errors"
	"os"

	"github.com/fwojciec/jobfetch"
)

// Ensure Fetcher implements jobfetch.Fetcher at compile time.
var _ jobfetch.Fetcher = (*Fetcher)(nil)

// Fetcher reads saved HTML pages from disk.
type Fetcher struct{}

// NewFetcher creates a new Fetcher.
func NewFetcher() *Fetcher {
	return &Fetcher{}
}

// Fetch reads the file at path as UTF-8, replacing undecodable bytes.
// Returns ENOTFOUND if the file does not exist.
func (f *Fetcher) Fetch(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return "", jobfetch.Errorf(jobfetch.ENOTFOUND, "File not found: %s", path)
	} else if err != nil {
		return "", err
	}

	return jobfetch.DecodeText(b), nil
}
