package jobfetch

import (
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// DecodeText decodes b as UTF-8, replacing ill-formed sequences with U+FFFD.
func DecodeText(b []byte) string {
	out, _, err := transform.Bytes(runes.ReplaceIllFormed(), b)
	if err != nil {
		return string(b)
	}
	return string(out)
}
