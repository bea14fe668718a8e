// Package html provides a tolerant streaming tokenizer built on
// golang.org/x/net/html and the job extractors that consume it.
package html

import (
	"iter"
	"strings"

	"golang.org/x/net/html"
)

// TokenType is the kind of a Token.
type TokenType int

const (
	StartTag TokenType = iota
	EndTag
	Text
)

// Attr is a single tag attribute. Keys are lowercased.
type Attr struct {
	Key string
	Val string
}

// Token is one event in a document: an opened tag, a closed tag, or text.
type Token struct {
	Type TokenType
	Tag  string // lowercased; empty for Text
	Text string // unescaped; only for Text

	Attrs []Attr

	// SelfClosing is set on StartTag tokens for void elements and <x/>
	// forms. No EndTag follows them.
	SelfClosing bool
}

// Attr returns the value of the named attribute.
func (t Token) Attr(key string) (string, bool) {
	for _, a := range t.Attrs {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// voidElements never have content or an end tag.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"source": true, "track": true, "wbr": true,
}

// Tokens streams the tokens of s in document order.
//
// The stream is always balanced: an end tag closes the nearest open element
// with the same name, emitting EndTag tokens for any elements opened after it;
// an end tag with no open match is dropped; elements still open at the end of
// input are closed. Comments and doctypes are skipped. Tokens never fails.
func Tokens(s string) iter.Seq[Token] {
	return func(yield func(Token) bool) {
		z := html.NewTokenizer(strings.NewReader(s))
		var open []string

		for {
			switch z.Next() {
			case html.ErrorToken:
				// io.EOF or a read error; either way the input is exhausted.
				for i := len(open) - 1; i >= 0; i-- {
					if !yield(Token{Type: EndTag, Tag: open[i]}) {
						return
					}
				}
				return

			case html.TextToken:
				if !yield(Token{Type: Text, Text: string(z.Text())}) {
					return
				}

			case html.StartTagToken, html.SelfClosingTagToken:
				tok := z.Token()
				name := strings.ToLower(tok.Data)
				selfClosing := tok.Type == html.SelfClosingTagToken || voidElements[name]
				if !yield(Token{Type: StartTag, Tag: name, Attrs: convertAttrs(tok.Attr), SelfClosing: selfClosing}) {
					return
				}
				if !selfClosing {
					open = append(open, name)
				}

			case html.EndTagToken:
				name, _ := z.TagName()
				tag := strings.ToLower(string(name))
				idx := lastIndex(open, tag)
				if idx < 0 {
					continue
				}
				for i := len(open) - 1; i >= idx; i-- {
					if !yield(Token{Type: EndTag, Tag: open[i]}) {
						return
					}
				}
				open = open[:idx]
			}
		}
	}
}

func convertAttrs(attrs []html.Attribute) []Attr {
	if len(attrs) == 0 {
		return nil
	}
	out := make([]Attr, len(attrs))
	for i, a := range attrs {
		out[i] = Attr{Key: strings.ToLower(a.Key), Val: a.Val}
	}
	return out
}

func lastIndex(stack []string, tag string) int {
	for i := len(stack) - 1; i >= 0; i-- {
		if stack[i] == tag {
			return i
		}
	}
	return -1
}
