package jobfetch

// SourceKind distinguishes remote pages from saved snapshots.
type SourceKind int

const (
	SourceRemote SourceKind = iota
	SourceLocal
)

func (k SourceKind) String() string {
	if k == SourceLocal {
		return "local"
	}
	return "remote"
}

// Source is a resolved fetch target.
type Source struct {
	Kind SourceKind

	// Input is the string the user supplied.
	Input string

	// Location is the URL for remote sources and the filesystem path for
	// local ones (file:// decoded, ~ expanded).
	Location string
}

// SourceResolver decides, before any network I/O, whether an input is a
// local snapshot or a remote page.
type SourceResolver interface {
	// Resolve treats file:// URLs and existing paths as local and
	// everything else as remote.
	Resolve(input string) Source
}
