package fs

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/jobfetch"
)

// Template layout inside a template directory.
const (
	EnglishDir = "templates"
	FrenchDir  = "templates_vf"

	MainTemplate  = "prompt-template.txt"
	CoverTemplate = "cover-letter-template.txt"
)

// Ensure TemplateStore implements jobfetch.PromptSource at compile time.
var _ jobfetch.PromptSource = (*TemplateStore)(nil)

// TemplateStore loads prompt templates from a directory holding a
// templates/ and a templates_vf/ subdirectory.
type TemplateStore struct {
	dir string
}

// NewTemplateStore creates a new TemplateStore rooted at dir.
func NewTemplateStore(dir string) *TemplateStore {
	return &TemplateStore{dir: dir}
}

// Prompt returns the main template and the cover letter template, each
// trimmed, separated by a blank line. Returns ENOTFOUND if either is missing.
func (s *TemplateStore) Prompt(french bool) (string, error) {
	sub := EnglishDir
	if french {
		sub = FrenchDir
	}

	main, err := s.read(filepath.Join(s.dir, sub, MainTemplate))
	if err != nil {
		return "", err
	}
	cover, err := s.read(filepath.Join(s.dir, sub, CoverTemplate))
	if err != nil {
		return "", err
	}

	return main + "\n\n" + cover, nil
}

func (s *TemplateStore) read(path string) (string, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return "", jobfetch.Errorf(jobfetch.ENOTFOUND, "Template not found: %s", path)
	} else if err != nil {
		return "", err
	}
	return strings.TrimSpace(jobfetch.DecodeText(b)), nil
}
