// Package scanner locates stop positions in text while stepping over
// quoted and bracketed regions.
//
// Tracker walks a span rune by rune and keeps the protection state for a
// quote.Rule, so callers check Protected() instead of maintaining their own
// inQuote/depth flags. Scan and ScanAll are built on it.
package scanner

import (
	"strings"

	"github.com/rubiojr/quotescan/quote"
	"github.com/rubiojr/quotescan/span"
)

// layer is the state of one rule layer: which pair is active and how
// deep. A toggling pair only ever reaches depth 1.
type layer struct {
	pairs  []quote.Pair
	active int
	depth  int
}

func newLayer(r quote.Rule) layer {
	return layer{pairs: r.Pairs(), active: -1}
}

func (l *layer) open() bool { return l.active >= 0 }

// step feeds ch to the layer and reports whether ch belongs to a protected
// region, delimiters included. A closing delimiter is consumed here and is
// never tested as a key.
func (l *layer) step(ch rune) bool {
	if l.active >= 0 {
		p := l.pairs[l.active]
		switch {
		case ch == p.Close:
			l.depth--
			if p.Toggle() || l.depth == 0 {
				l.active, l.depth = -1, 0
			}
		case ch == p.Open:
			l.depth++
		}
		return true
	}
	for i, p := range l.pairs {
		if ch == p.Open {
			l.active, l.depth = i, 1
			return true
		}
	}
	return false
}

// Tracker iterates over a span, tracking quote-region boundaries for a
// rule.
//
// Protected() is true for the whole region including both the opening and
// closing delimiters, matching the convention that delimiters are never
// reported as hits.
type Tracker struct {
	sp        span.Span
	pos       int
	next      int
	width     int
	protected bool
	primary   layer
	secondary layer
}

// NewTracker creates a Tracker for sp under rule.
// Call Next() to advance to the first rune.
func NewTracker(sp span.Span, rule quote.Rule) *Tracker {
	t := &Tracker{sp: sp, pos: -1, next: sp.Start()}
	if rule.Kind() == quote.TwoLayer {
		t.primary = newLayer(rule.Primary())
		t.secondary = newLayer(rule.Secondary())
	} else {
		t.primary = newLayer(rule)
		t.secondary = layer{active: -1}
	}
	return t
}

// Next advances to the next rune, updating the quote state.
// Returns the rune and true, or (0, false) at the end of the span.
func (t *Tracker) Next() (rune, bool) {
	if t.next >= t.sp.End() {
		t.pos, t.width, t.protected = t.sp.End(), 0, false
		return 0, false
	}
	ch, w := t.sp.RuneAt(t.next)
	t.pos, t.width = t.next, w
	t.next += w
	// The primary layer claims every rune while it is open, so the
	// secondary layer only sees runes outside primary regions.
	t.protected = t.primary.step(ch) || t.secondary.step(ch)
	return ch, true
}

// skipTo moves the read offset to off without feeding the skipped runes to
// the quote state. Used to step over multi-rune delimiters.
func (t *Tracker) skipTo(off int) {
	if off > t.next && off <= t.sp.End() {
		t.next = off
	}
}

// Protected reports whether the current rune is inside a protected region,
// including the delimiters that open and close it.
func (t *Tracker) Protected() bool { return t.protected }

// InCode reports whether the current rune is outside all regions.
func (t *Tracker) InCode() bool { return !t.protected }

// Open reports whether a region is still open after the current rune.
// At the end of the span this reports an unterminated region.
func (t *Tracker) Open() bool { return t.primary.open() || t.secondary.open() }

// Depth returns the nesting depth of the innermost open region, 0 when no
// region is open.
func (t *Tracker) Depth() int {
	if t.primary.open() {
		return t.primary.depth
	}
	return t.secondary.depth
}

// Pos returns the absolute offset of the last rune returned by Next.
// Returns -1 before the first call to Next and the span end once Next has
// reported the end.
func (t *Tracker) Pos() int { return t.pos }

// Width returns the byte width of the last rune returned by Next.
func (t *Tracker) Width() int { return t.width }

// Span returns the span being scanned.
func (t *Tracker) Span() span.Span { return t.sp }

// Peek returns the next rune without advancing, or (0, false) at the end.
func (t *Tracker) Peek() (rune, bool) {
	if t.next >= t.sp.End() {
		return 0, false
	}
	ch, _ := t.sp.RuneAt(t.next)
	return ch, true
}

// LookingAt checks whether the text from the current rune starts with
// prefix. The span end bounds the comparison.
func (t *Tracker) LookingAt(prefix string) bool {
	if t.pos < t.sp.Start() || t.pos >= t.sp.End() {
		return false
	}
	return strings.HasPrefix(t.sp.Data()[t.pos:t.sp.End()], prefix)
}

// IsProtected reports whether the rune at absolute offset off lies inside
// a region of rule when sp is scanned from its start. Offsets outside the
// span are never protected.
func IsProtected(sp span.Span, rule quote.Rule, off int) bool {
	t := NewTracker(sp, rule)
	for _, ok := t.Next(); ok; _, ok = t.Next() {
		if t.Pos() >= off {
			return t.Pos() == off && t.Protected()
		}
	}
	return false
}
