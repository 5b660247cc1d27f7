package reader

import (
	"github.com/rubiojr/quotescan/quote"
	"github.com/rubiojr/quotescan/scanner"
)

// endHit is the synthetic hit reported when ReadToEnd turns a miss into a
// match at the end of the span.
func endHit(end int) scanner.Hit {
	return scanner.Hit{Index: end, Len: 0, Which: -1}
}

// Extract scans the unread input for key outside the regions of rule and
// returns the content up to the hit as a new Reader.
//
// When nothing matches and ReadToEnd is not set, Extract returns
// (nil, Hit{}, false) and leaves the position where it was. When the hit
// leaves no content, the returned Reader is non-nil and IsEmpty.
//
// Without StopAfterKey the position stops on the delimiter, so the next
// call with the same key finds it again.
func (r *Reader) Extract(key scanner.Key, rule quote.Rule, opts Options) (*Reader, scanner.Hit, bool) {
	start := r.pos
	hit, ok := scanner.Scan(r.Remaining(), key, rule)
	if !ok {
		if !opts.Has(ReadToEnd) {
			return nil, scanner.Hit{}, false
		}
		hit = endHit(r.sp.End())
	}

	end := hit.Index
	r.pos = hit.Index
	if opts.Has(StopAfterKey) {
		r.pos = hit.End()
		if !opts.Has(DiscardKey) {
			end = hit.End()
		}
	}

	content := r.sp.Narrow(start, end)
	if opts.Has(TrimStart) {
		content = content.TrimStart()
	}
	if opts.Has(TrimEnd) {
		content = content.TrimEnd()
	}
	return FromSpan(content), hit, true
}

// ReadRest returns the unread input, trimmed according to opts, and moves
// the position to the end. Only the trim options apply.
func (r *Reader) ReadRest(opts Options) *Reader {
	content := r.Remaining()
	r.pos = r.sp.End()
	if opts.Has(TrimStart) {
		content = content.TrimStart()
	}
	if opts.Has(TrimEnd) {
		content = content.TrimEnd()
	}
	return FromSpan(content)
}

// Sub returns an independent Reader over the unread input without
// consuming it.
func (r *Reader) Sub() *Reader {
	return FromSpan(r.Remaining())
}

// Narrowed returns a Reader over [from, to) of the span. Offsets are
// absolute.
func (r *Reader) Narrowed(from, to int) (*Reader, error) {
	sp, err := r.sp.Slice(from, to)
	if err != nil {
		return nil, err
	}
	return FromSpan(sp), nil
}
