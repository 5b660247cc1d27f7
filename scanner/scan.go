package scanner

import (
	"iter"

	"github.com/rubiojr/quotescan/quote"
	"github.com/rubiojr/quotescan/span"
)

// Hit reports where a key matched.
type Hit struct {
	// Index is the absolute offset of the match.
	Index int
	// Len is the number of bytes the match covers. It is 0 only for the
	// synthetic end-of-input hit produced by reader.ReadToEnd.
	Len int
	// Which is the index of the matching candidate for AnyOf and
	// AnyString keys, -1 otherwise.
	Which int
}

// End returns the offset just past the match.
func (h Hit) End() int { return h.Index + h.Len }

// Scan returns the first position in sp where key matches outside every
// region of rule. An unterminated region hides the rest of the span, so
// the result is then not found rather than an error.
func Scan(sp span.Span, key Key, rule quote.Rule) (Hit, bool) {
	for h := range Hits(sp, key, rule) {
		return h, true
	}
	return Hit{}, false
}

// Hits yields every unprotected match in sp from left to right. Scanning
// resumes after each match, keeping the quote state.
func Hits(sp span.Span, key Key, rule quote.Rule) iter.Seq[Hit] {
	return func(yield func(Hit) bool) {
		data := sp.Data()
		t := NewTracker(sp, rule)
		for ch, ok := t.Next(); ok; ch, ok = t.Next() {
			if t.Protected() {
				continue
			}
			which, n, matched := key.match(data[t.Pos():sp.End()], ch, t.Width())
			if !matched {
				continue
			}
			if !yield(Hit{Index: t.Pos(), Len: n, Which: which}) {
				return
			}
			t.skipTo(t.Pos() + n)
		}
	}
}

// ScanAll is like Hits but collects the matches.
func ScanAll(sp span.Span, key Key, rule quote.Rule) []Hit {
	var hits []Hit
	for h := range Hits(sp, key, rule) {
		hits = append(hits, h)
	}
	return hits
}

// FindTopLevel scans s for a rune matching pred outside string literals
// and at bracket depth 0. Returns the byte offset or -1.
func FindTopLevel(s string, pred func(rune) bool) int {
	if h, ok := Scan(span.New(s), Func(pred), quote.TopLevel()); ok {
		return h.Index
	}
	return -1
}
