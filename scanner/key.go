package scanner

import "strings"

type keyKind uint8

const (
	keyNone keyKind = iota
	keyRune
	keySet
	keyStrings
	keyFunc
)

// Key is a stop test evaluated at every unprotected position.
// The zero Key never matches.
type Key struct {
	kind keyKind
	r    rune
	set  []rune
	strs []string
	pred func(rune) bool
}

// Rune stops at ch.
func Rune(ch rune) Key { return Key{kind: keyRune, r: ch} }

// AnyOf stops at any rune in set. Hit.Which reports the index of the
// matching rune; duplicates resolve to the lowest index.
func AnyOf(set ...rune) Key { return Key{kind: keySet, set: set} }

// AnyString stops where any of the candidates starts. When several
// candidates start at the same position the lowest-indexed one wins, so
// list "\r\n" before "\r". Empty candidates never match.
func AnyString(candidates ...string) Key { return Key{kind: keyStrings, strs: candidates} }

// Func stops at the first rune for which pred returns true.
func Func(pred func(rune) bool) Key { return Key{kind: keyFunc, pred: pred} }

// match tests the key against ch, the rune of width w that starts rest.
// It returns the candidate index (-1 when the key is not a set) and the
// number of bytes the match covers.
func (k Key) match(rest string, ch rune, w int) (which, n int, ok bool) {
	switch k.kind {
	case keyRune:
		if ch == k.r {
			return -1, w, true
		}
	case keySet:
		for i, c := range k.set {
			if ch == c {
				return i, w, true
			}
		}
	case keyStrings:
		for i, s := range k.strs {
			if s != "" && strings.HasPrefix(rest, s) {
				return i, len(s), true
			}
		}
	case keyFunc:
		if k.pred != nil && k.pred(ch) {
			return -1, w, true
		}
	}
	return -1, 0, false
}
