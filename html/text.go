package html

import "strings"

// Tags that start a new line when opened or closed.
var (
	openBreaks  = map[string]bool{"br": true, "p": true, "li": true}
	closeBreaks = map[string]bool{"p": true, "li": true, "ul": true, "ol": true}
	hiddenTags  = map[string]bool{"script": true, "style": true}
)

// RenderText converts an HTML fragment to plain text with one line per
// paragraph, list item or line break. Lines are trimmed and blank lines
// dropped. Already plain text passes through unchanged apart from that
// normalization.
func RenderText(fragment string) string {
	var tb textBuilder
	for tok := range Tokens(fragment) {
		tb.add(tok)
	}
	return NormalizeLines(tb.String())
}

// NormalizeLines trims every line of s and removes the empty ones.
func NormalizeLines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")

	lines := strings.Split(s, "\n")
	out := lines[:0]
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}

// collapseSpace joins the whitespace-separated words of s with single spaces.
func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// textBuilder accumulates rendered text from a token stream.
type textBuilder struct {
	b      strings.Builder
	hidden int
}

func (t *textBuilder) add(tok Token) {
	switch tok.Type {
	case StartTag:
		if hiddenTags[tok.Tag] && !tok.SelfClosing {
			t.hidden++
			return
		}
		if t.hidden == 0 && openBreaks[tok.Tag] {
			t.b.WriteByte('\n')
		}
	case EndTag:
		if hiddenTags[tok.Tag] {
			if t.hidden > 0 {
				t.hidden--
			}
			return
		}
		if t.hidden == 0 && closeBreaks[tok.Tag] {
			t.b.WriteByte('\n')
		}
	case Text:
		if t.hidden == 0 {
			t.b.WriteString(tok.Text)
		}
	}
}

func (t *textBuilder) String() string {
	return t.b.String()
}
