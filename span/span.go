// Package span provides an immutable half-open view over shared text.
//
// A Span never copies or edits its underlying string. Narrowing a span
// yields a new value that records a smaller [start, end) range over the
// same data, so any number of spans can point into one input.
package span

import (
	"errors"
	"fmt"
	"unicode"
	"unicode/utf8"
)

// ErrOutOfRange is returned when offsets fall outside the valid range.
var ErrOutOfRange = errors.New("offset out of range")

// Span is a half-open byte range [start, end) over data.
// Offsets are absolute byte offsets into data.
type Span struct {
	data  string
	start int
	end   int
}

// New returns a span covering all of s.
func New(s string) Span {
	return Span{data: s, end: len(s)}
}

// Of returns the span [start, end) over s.
func Of(s string, start, end int) (Span, error) {
	if start < 0 || start > end || end > len(s) {
		return Span{}, fmt.Errorf("span [%d, %d) over %d bytes: %w", start, end, len(s), ErrOutOfRange)
	}
	return Span{data: s, start: start, end: end}, nil
}

// Start returns the absolute offset of the first byte in the span.
func (s Span) Start() int { return s.start }

// End returns the absolute offset one past the last byte in the span.
func (s Span) End() int { return s.end }

// Len returns the span length in bytes.
func (s Span) Len() int { return s.end - s.start }

// IsEmpty reports whether the span covers no bytes.
func (s Span) IsEmpty() bool { return s.start == s.end }

// Data returns the full underlying text, not just the spanned range.
func (s Span) Data() string { return s.data }

// String returns the spanned text.
func (s Span) String() string { return s.data[s.start:s.end] }

// Contains reports whether off lies within [start, end].
// The end offset is included so a cursor may sit at the end.
func (s Span) Contains(off int) bool {
	return off >= s.start && off <= s.end
}

// Slice narrows the span to [from, to). Both offsets are absolute and must
// lie within the current span.
func (s Span) Slice(from, to int) (Span, error) {
	if from < s.start || from > to || to > s.end {
		return Span{}, fmt.Errorf("slice [%d, %d) of span [%d, %d): %w", from, to, s.start, s.end, ErrOutOfRange)
	}
	return Span{data: s.data, start: from, end: to}, nil
}

// From narrows the span to [off, end).
func (s Span) From(off int) (Span, error) {
	return s.Slice(off, s.end)
}

// narrow is Slice without bounds checking, for callers that already
// validated the offsets.
func (s Span) narrow(from, to int) Span {
	return Span{data: s.data, start: from, end: to}
}

// Narrow is like Slice but clamps the offsets to the span instead of
// failing. It is meant for offsets produced by scanning this span.
func (s Span) Narrow(from, to int) Span {
	from = max(from, s.start)
	to = min(to, s.end)
	if from > to {
		from = to
	}
	return s.narrow(from, to)
}

// RuneAt decodes the rune at absolute offset off and returns it with its
// width in bytes. Returns (utf8.RuneError, 0) when off is outside the span.
func (s Span) RuneAt(off int) (rune, int) {
	if off < s.start || off >= s.end {
		return utf8.RuneError, 0
	}
	r, w := utf8.DecodeRuneInString(s.data[off:s.end])
	return r, w
}

// TrimStart drops leading whitespace.
func (s Span) TrimStart() Span {
	i := s.start
	for i < s.end {
		r, w := utf8.DecodeRuneInString(s.data[i:s.end])
		if !unicode.IsSpace(r) {
			break
		}
		i += w
	}
	return s.narrow(i, s.end)
}

// TrimEnd drops trailing whitespace.
func (s Span) TrimEnd() Span {
	j := s.end
	for j > s.start {
		r, w := utf8.DecodeLastRuneInString(s.data[s.start:j])
		if !unicode.IsSpace(r) {
			break
		}
		j -= w
	}
	return s.narrow(s.start, j)
}

// TrimSpace drops leading and trailing whitespace.
func (s Span) TrimSpace() Span {
	return s.TrimStart().TrimEnd()
}
