package reader

import (
	"iter"

	"github.com/rubiojr/quotescan/quote"
	"github.com/rubiojr/quotescan/scanner"
)

// All yields consecutive segments of r, each ending at the next match of
// key outside the regions of rule. StopAfterKey is always set so every
// step makes progress.
//
// With ReadToEnd the segments follow strings.Split: the text after the
// last delimiter is yielded even when empty, and empty input yields one
// empty segment. Without it iteration stops at the last delimiter and any
// unterminated tail is left unread.
func (r *Reader) All(key scanner.Key, rule quote.Rule, opts Options) iter.Seq[*Reader] {
	opts |= StopAfterKey
	return func(yield func(*Reader) bool) {
		// pending is true while a segment may still follow the last
		// consumed delimiter, even at the end of input.
		pending := opts.Has(ReadToEnd)
		for !r.Done() || pending {
			seg, hit, ok := r.Extract(key, rule, opts)
			if !ok {
				return
			}
			pending = hit.Len > 0 && opts.Has(ReadToEnd)
			if !yield(seg) {
				return
			}
		}
	}
}

// Split slices s into the text of each segment produced by All.
func Split(s string, key scanner.Key, rule quote.Rule, opts Options) []string {
	var parts []string
	for seg := range New(s).All(key, rule, opts) {
		parts = append(parts, seg.String())
	}
	return parts
}
