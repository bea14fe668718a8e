package fs

import (
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/fwojciec/jobfetch"
)

// Ensure Resolver implements jobfetch.SourceResolver at compile time.
var _ jobfetch.SourceResolver = (*Resolver)(nil)

// Resolver classifies inputs as saved snapshots or remote pages.
type Resolver struct{}

// NewResolver creates a new Resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// Resolve treats file:// URLs and paths of existing files as local sources
// and anything else as a remote URL. A leading ~ in a path is expanded.
func (r *Resolver) Resolve(input string) jobfetch.Source {
	value := strings.TrimSpace(input)

	if hasFileScheme(value) {
		return jobfetch.Source{Kind: jobfetch.SourceLocal, Input: input, Location: fileURLPath(value)}
	}

	path := expandHome(value)
	if _, err := os.Stat(path); err == nil {
		return jobfetch.Source{Kind: jobfetch.SourceLocal, Input: input, Location: path}
	}

	return jobfetch.Source{Kind: jobfetch.SourceRemote, Input: input, Location: value}
}

func hasFileScheme(s string) bool {
	return len(s) >= len("file://") && strings.EqualFold(s[:len("file://")], "file://")
}

// fileURLPath converts a file:// URL to a local path. A host other than
// localhost becomes a UNC-style //host prefix.
func fileURLPath(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return filepath.FromSlash(raw[len("file://"):])
	}
	path := u.Path
	if u.Host != "" && u.Host != "localhost" {
		path = "//" + u.Host + path
	}
	// file:///C:/jobs/x.html
	if runtime.GOOS == "windows" && len(path) >= 3 && path[0] == '/' && path[2] == ':' {
		path = path[1:]
	}
	return filepath.FromSlash(path)
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") && !strings.HasPrefix(path, `~\`) {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
