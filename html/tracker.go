package html

// FieldTracker captures the content of the first element that satisfies a
// predicate. Feed it every token of a document in order.
//
// A tracker is single-use and not safe for concurrent use.
type FieldTracker struct {
	match func(Token) bool

	start Token
	found bool
	depth int
	buf   textBuilder
}

// NewFieldTracker returns a tracker that activates on the first start tag
// for which match returns true.
func NewFieldTracker(match func(Token) bool) *FieldTracker {
	return &FieldTracker{match: match}
}

// Feed advances the tracker by one token.
func (f *FieldTracker) Feed(tok Token) {
	if f.depth > 0 {
		switch tok.Type {
		case StartTag:
			if !tok.SelfClosing {
				f.depth++
			}
		case EndTag:
			f.depth--
		}
		f.buf.add(tok)
		return
	}
	if f.found || tok.Type != StartTag || !f.match(tok) {
		return
	}
	f.found = true
	f.start = tok
	f.buf.add(tok)
	if !tok.SelfClosing {
		f.depth = 1
	}
}

// Start returns the tag that activated the tracker.
func (f *FieldTracker) Start() (Token, bool) {
	return f.start, f.found
}

// Text returns the captured content as a single line.
func (f *FieldTracker) Text() string {
	return collapseSpace(f.buf.String())
}

// Block returns the captured content rendered like RenderText.
func (f *FieldTracker) Block() string {
	return NormalizeLines(f.buf.String())
}
