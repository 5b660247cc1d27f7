// Package reader provides a cursor that slices text into consecutive
// segments, each bounded by one quote-aware scan.
//
// A Reader holds a span and a position inside it. Extract runs the
// scanner from the position, advances it, and returns the content as a new
// Reader that shares the underlying text but is otherwise independent.
//
// A Reader is not safe for concurrent use. Separate Readers over the same
// string can be used from different goroutines.
package reader

import (
	"fmt"
	"unicode"

	"github.com/rubiojr/quotescan/span"
)

// Reader is a position within a span.
type Reader struct {
	sp  span.Span
	pos int
}

// New returns a Reader over all of s.
func New(s string) *Reader {
	return FromSpan(span.New(s))
}

// FromSpan returns a Reader positioned at the start of sp.
func FromSpan(sp span.Span) *Reader {
	return &Reader{sp: sp, pos: sp.Start()}
}

// Span returns the full span the reader was created over.
func (r *Reader) Span() span.Span { return r.sp }

// Pos returns the absolute offset of the next unread byte.
func (r *Reader) Pos() int { return r.pos }

// Remaining returns the unread part of the span.
func (r *Reader) Remaining() span.Span {
	return r.sp.Narrow(r.pos, r.sp.End())
}

// Len returns the number of unread bytes.
func (r *Reader) Len() int { return r.sp.End() - r.pos }

// Done reports whether all input has been consumed.
func (r *Reader) Done() bool { return r.pos >= r.sp.End() }

// IsEmpty reports whether the reader spans no text at all. Extract
// returns such a reader when a delimiter was found but the content
// between it and the position is empty.
func (r *Reader) IsEmpty() bool { return r.sp.IsEmpty() }

// String returns the whole spanned text, consumed or not.
func (r *Reader) String() string { return r.sp.String() }

// Seek moves the position to the absolute offset off.
func (r *Reader) Seek(off int) error {
	if !r.sp.Contains(off) {
		return fmt.Errorf("seek to %d in [%d, %d]: %w", off, r.sp.Start(), r.sp.End(), span.ErrOutOfRange)
	}
	r.pos = off
	return nil
}

// Reset moves the position back to the start of the span.
func (r *Reader) Reset() { r.pos = r.sp.Start() }

// Peek returns the next rune without consuming it.
func (r *Reader) Peek() (rune, bool) {
	if r.Done() {
		return 0, false
	}
	ch, _ := r.sp.RuneAt(r.pos)
	return ch, true
}

// ReadRune consumes and returns the next rune and its width.
func (r *Reader) ReadRune() (rune, int, bool) {
	if r.Done() {
		return 0, 0, false
	}
	ch, w := r.sp.RuneAt(r.pos)
	r.pos += w
	return ch, w, true
}

// Skip consumes up to n runes and returns how many were skipped.
func (r *Reader) Skip(n int) int {
	skipped := 0
	for ; skipped < n; skipped++ {
		if _, _, ok := r.ReadRune(); !ok {
			break
		}
	}
	return skipped
}

// SkipFunc consumes runes while f returns true and returns the number of
// bytes skipped.
func (r *Reader) SkipFunc(f func(rune) bool) int {
	start := r.pos
	for !r.Done() {
		ch, w := r.sp.RuneAt(r.pos)
		if !f(ch) {
			break
		}
		r.pos += w
	}
	return r.pos - start
}

// SkipWhitespace consumes leading whitespace.
func (r *Reader) SkipWhitespace() int { return r.SkipFunc(unicode.IsSpace) }
