package jobfetch

import (
	"regexp"
	"strings"
)

// DefaultFolderName is used when neither title nor company has a usable word.
const DefaultFolderName = "Job-Posting"

// titleWordLen caps each title word in a folder name.
const titleWordLen = 4

var nonAlnum = regexp.MustCompile(`[^A-Za-z0-9]+`)

// FolderName derives a filesystem-safe folder name from a job.
// Example: ("Senior Software Engineer", "Acme Corp.") → "Seni-Soft-Engi-Acme-Corp"
func FolderName(title, company string) string {
	titlePart := strings.Join(abbreviate(splitWords(title), titleWordLen), "-")
	companyPart := strings.Join(splitWords(company), "-")

	switch {
	case titlePart != "" && companyPart != "":
		return titlePart + "-" + companyPart
	case titlePart != "":
		return titlePart
	case companyPart != "":
		return companyPart
	}
	return DefaultFolderName
}

func splitWords(s string) []string {
	return strings.Fields(nonAlnum.ReplaceAllString(s, " "))
}

func abbreviate(words []string, n int) []string {
	out := make([]string, len(words))
	for i, w := range words {
		if len(w) > n {
			w = w[:n]
		}
		out[i] = w
	}
	return out
}
