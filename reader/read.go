package reader

import (
	"github.com/rubiojr/quotescan/quote"
	"github.com/rubiojr/quotescan/scanner"
)

// The helpers below are thin wrappers over Extract with a key shape and
// options baked in.

// ReadTo extracts up to the next ch, ignoring quotes.
func (r *Reader) ReadTo(ch rune, opts Options) (*Reader, bool) {
	return r.ReadToQuoted(ch, quote.NoQuotes(), opts)
}

// ReadToQuoted extracts up to the next ch outside the regions of rule.
func (r *Reader) ReadToQuoted(ch rune, rule quote.Rule, opts Options) (*Reader, bool) {
	seg, _, ok := r.Extract(scanner.Rune(ch), rule, opts)
	return seg, ok
}

// ReadToAny extracts up to the next rune from set outside the regions of
// rule and reports which element of set matched. which is -1 when the
// segment ended at the end of input.
func (r *Reader) ReadToAny(set []rune, rule quote.Rule, opts Options) (seg *Reader, which int, ok bool) {
	seg, hit, ok := r.Extract(scanner.AnyOf(set...), rule, opts)
	if !ok {
		return nil, -1, false
	}
	return seg, hit.Which, true
}

// ReadToString extracts up to the next occurrence of delim outside the
// regions of rule.
func (r *Reader) ReadToString(delim string, rule quote.Rule, opts Options) (*Reader, bool) {
	seg, _, ok := r.Extract(scanner.AnyString(delim), rule, opts)
	return seg, ok
}

// ReadToFunc extracts up to the first rune satisfying pred outside the
// regions of rule.
func (r *Reader) ReadToFunc(pred func(rune) bool, rule quote.Rule, opts Options) (*Reader, bool) {
	seg, _, ok := r.Extract(scanner.Func(pred), rule, opts)
	return seg, ok
}

var lineEnd = scanner.AnyString("\r\n", "\n", "\r")

// ReadLine extracts the next line without its terminator. The last line
// need not be terminated. Returns false once the input is exhausted.
func (r *Reader) ReadLine() (*Reader, bool) {
	if r.Done() {
		return nil, false
	}
	seg, _, ok := r.Extract(lineEnd, quote.NoQuotes(), Field)
	return seg, ok
}

// ReadField extracts the next sep-separated field outside the regions of
// rule; the last field runs to the end of input. The delimiter is always
// consumed and dropped, so opts only adds trimming. Returns false once the
// input is exhausted. Use All when a trailing empty field matters.
func (r *Reader) ReadField(sep rune, rule quote.Rule, opts Options) (*Reader, bool) {
	if r.Done() {
		return nil, false
	}
	return r.ReadToQuoted(sep, rule, opts|Field)
}

// ReadQuoted reads a region that starts at the current position with
// open and ends at its matching close, and returns the text between the
// delimiters. Nested open/close pairs are kept in the content when the
// delimiters differ. Returns false, leaving the position unchanged, when
// the input does not start with open or the region is unterminated.
func (r *Reader) ReadQuoted(open, close rune) (*Reader, bool) {
	if ch, ok := r.Peek(); !ok || ch != open {
		return nil, false
	}
	t := scanner.NewTracker(r.Remaining(), quote.Single(open, close))
	t.Next()
	inner := t.Pos() + t.Width()
	for _, ok := t.Next(); ok; _, ok = t.Next() {
		if !t.Open() {
			seg := FromSpan(r.sp.Narrow(inner, t.Pos()))
			r.pos = t.Pos() + t.Width()
			return seg, true
		}
	}
	return nil, false
}
