package html

import "strings"

// Script is the content of one <script> element.
type Script struct {
	// Type is the declared type attribute, or nil when absent.
	Type    *string
	Content string
}

// CollectScripts returns every script block of s in document order.
// Content is trimmed.
func CollectScripts(s string) []Script {
	var (
		scripts []Script
		current Script
		buf     strings.Builder
		depth   int
	)
	for tok := range Tokens(s) {
		switch tok.Type {
		case StartTag:
			if depth > 0 {
				if !tok.SelfClosing {
					depth++
				}
				continue
			}
			if tok.Tag != "script" || tok.SelfClosing {
				continue
			}
			current = Script{}
			if typ, ok := tok.Attr("type"); ok {
				current.Type = &typ
			}
			buf.Reset()
			depth = 1
		case EndTag:
			if depth == 0 {
				continue
			}
			depth--
			if depth == 0 {
				current.Content = strings.TrimSpace(buf.String())
				scripts = append(scripts, current)
			}
		case Text:
			if depth > 0 {
				buf.WriteString(tok.Text)
			}
		}
	}
	return scripts
}
