package fs

import (
	"strings"

	"github.com/mitchellh/go-wordwrap"
)

// Wrap fills each line of text to at most width characters, breaking only
// at whitespace. Words longer than width, including hyphenated ones, are
// kept whole on a line of their own. Blank lines are preserved and a
// non-positive width disables wrapping.
func Wrap(text string, width int) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		line = strings.Join(strings.Fields(line), " ")
		if width > 0 {
			line = wordwrap.WrapString(line, uint(width))
		}
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}
