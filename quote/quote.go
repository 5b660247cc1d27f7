// Package quote describes which characters open and close regions that a
// scan must step over.
//
// A Rule is plain data. The scanner package turns it into a small state
// machine; nothing here holds scanning state.
package quote

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var (
	// ErrMismatchedQuotes is returned when the left and right quote sets
	// have different lengths.
	ErrMismatchedQuotes = errors.New("mismatched quote sets")
	// ErrNestedLayers is returned when a two-layer rule is used as a layer.
	ErrNestedLayers = errors.New("two-layer rule cannot be nested")
)

// Kind identifies the shape of a Rule.
type Kind uint8

const (
	None       Kind = iota // no protected regions
	SinglePair             // one open/close pair
	MultiPair              // ordered palette of pairs, one active at a time
	TwoLayer               // primary rule that suppresses a secondary rule
)

func (k Kind) String() string {
	switch k {
	case None:
		return "none"
	case SinglePair:
		return "single"
	case MultiPair:
		return "multi"
	case TwoLayer:
		return "two-layer"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Pair is one open/close delimiter pair.
type Pair struct {
	Open  rune
	Close rune
}

// Toggle reports whether the pair toggles (same open and close character)
// rather than nesting.
func (p Pair) Toggle() bool { return p.Open == p.Close }

func (p Pair) String() string { return string(p.Open) + string(p.Close) }

// Rule is a tagged quote description. The zero Rule is None.
type Rule struct {
	kind      Kind
	pairs     []Pair
	primary   *Rule
	secondary *Rule
}

// NoQuotes returns the rule with no protected regions.
func NoQuotes() Rule { return Rule{} }

// Single returns a rule with one delimiter pair. When open == close the
// region toggles; otherwise each open increments a depth counter and each
// close decrements it.
func Single(open, close rune) Rule {
	return Rule{kind: SinglePair, pairs: []Pair{{Open: open, Close: close}}}
}

// Symmetric returns a toggling rule for q, such as '"'.
func Symmetric(q rune) Rule { return Single(q, q) }

// Multi returns a rule over an ordered palette of pairs. With no pairs it
// is None, with one pair it is equivalent to Single.
func Multi(pairs ...Pair) Rule {
	switch len(pairs) {
	case 0:
		return Rule{}
	case 1:
		return Single(pairs[0].Open, pairs[0].Close)
	}
	return Rule{kind: MultiPair, pairs: slices.Clone(pairs)}
}

// FromSets builds a rule from parallel arrays of left and right quotes;
// lefts[i] closes with rights[i].
func FromSets(lefts, rights []rune) (Rule, error) {
	if len(lefts) != len(rights) {
		return Rule{}, fmt.Errorf("%d left quotes, %d right quotes: %w", len(lefts), len(rights), ErrMismatchedQuotes)
	}
	pairs := make([]Pair, len(lefts))
	for i := range lefts {
		pairs[i] = Pair{Open: lefts[i], Close: rights[i]}
	}
	return Multi(pairs...), nil
}

// FromStrings is FromSets over the runes of two strings, e.g.
// FromStrings(`"([`, `")]`).
func FromStrings(lefts, rights string) (Rule, error) {
	return FromSets([]rune(lefts), []rune(rights))
}

// Layered returns a two-layer rule. While a primary region is open every
// character other than the primary closer is inert; the secondary rule only
// sees characters outside primary regions.
func Layered(primary, secondary Rule) (Rule, error) {
	if primary.kind == TwoLayer || secondary.kind == TwoLayer {
		return Rule{}, ErrNestedLayers
	}
	return Rule{kind: TwoLayer, primary: &primary, secondary: &secondary}, nil
}

// Kind returns the rule shape.
func (r Rule) Kind() Kind { return r.kind }

// Pairs returns the delimiter pairs of a SinglePair or MultiPair rule.
func (r Rule) Pairs() []Pair { return slices.Clone(r.pairs) }

// Primary returns the primary layer of a TwoLayer rule and None otherwise.
func (r Rule) Primary() Rule {
	if r.primary == nil {
		return Rule{}
	}
	return *r.primary
}

// Secondary returns the secondary layer of a TwoLayer rule and None otherwise.
func (r Rule) Secondary() Rule {
	if r.secondary == nil {
		return Rule{}
	}
	return *r.secondary
}

func (r Rule) String() string {
	switch r.kind {
	case SinglePair, MultiPair:
		var sb strings.Builder
		for i, p := range r.pairs {
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(p.String())
		}
		return sb.String()
	case TwoLayer:
		return r.Primary().String() + " | " + r.Secondary().String()
	}
	return "none"
}

// Brackets returns the nesting rule over (), [] and {}.
func Brackets() Rule {
	return Multi(Pair{'(', ')'}, Pair{'[', ']'}, Pair{'{', '}'})
}

// Strings returns the toggling rule over double quotes, single quotes and
// backticks.
func Strings() Rule {
	return Multi(Pair{'"', '"'}, Pair{'\'', '\''}, Pair{'`', '`'})
}

// TopLevel returns Strings layered over Brackets: string literals hide
// brackets, and brackets hide everything they enclose.
func TopLevel() Rule {
	primary, secondary := Strings(), Brackets()
	return Rule{kind: TwoLayer, primary: &primary, secondary: &secondary}
}
