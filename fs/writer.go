// Package fs provides file-based sources, job folders and prompt templates.
package fs

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/fwojciec/jobfetch"
)

const (
	// DefaultWidth is the column the description file is wrapped at.
	DefaultWidth = 80

	// PromptFile is the name of the prompt written next to the description.
	PromptFile = "prompt.txt"

	// MissingDescription stands in for an empty description.
	MissingDescription = "Description not found."
)

// Ensure Writer implements jobfetch.JobWriter at compile time.
var _ jobfetch.JobWriter = (*Writer)(nil)

// Writer files each job in its own folder under a base directory.
type Writer struct {
	baseDir string
	width   int
	prompts jobfetch.PromptSource
	french  bool
}

// WriterOption configures a Writer.
type WriterOption func(*Writer)

// WithWidth sets the description wrap column.
// Defaults to DefaultWidth (80) if not specified.
func WithWidth(n int) WriterOption {
	return func(w *Writer) {
		w.width = n
	}
}

// WithPrompts makes the writer add a prompt file built from src.
func WithPrompts(src jobfetch.PromptSource, french bool) WriterOption {
	return func(w *Writer) {
		w.prompts = src
		w.french = french
	}
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string, opts ...WriterOption) *Writer {
	w := &Writer{
		baseDir: baseDir,
		width:   DefaultWidth,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// WriteJob creates <base>/<folder>/<folder>.txt holding the wrapped
// description, and prompt.txt when a prompt source is configured. The
// folder name comes from jobfetch.FolderName. Existing files are replaced.
func (w *Writer) WriteJob(ctx context.Context, job *jobfetch.Job) (*jobfetch.JobFiles, error) {
	if err := job.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	name := jobfetch.FolderName(job.Title, job.Company)
	folder := filepath.Join(w.baseDir, name)
	if err := os.MkdirAll(folder, 0755); err != nil {
		return nil, err
	}

	description := strings.TrimSpace(job.Description)
	if description == "" {
		description = MissingDescription
	}

	files := &jobfetch.JobFiles{
		Folder:      folder,
		Description: filepath.Join(folder, name+".txt"),
	}
	content := strings.TrimRightFunc(Wrap(description, w.width), unicode.IsSpace) + "\n"
	if err := os.WriteFile(files.Description, []byte(content), 0644); err != nil {
		return nil, err
	}

	if w.prompts == nil {
		return files, nil
	}

	prompt, err := w.prompts.Prompt(w.french)
	if err != nil {
		return nil, err
	}
	files.Prompt = filepath.Join(folder, PromptFile)
	content = strings.TrimSpace(prompt) + "\n\n" + description + "\n"
	if err := os.WriteFile(files.Prompt, []byte(content), 0644); err != nil {
		return nil, err
	}

	return files, nil
}
