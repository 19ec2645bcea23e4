package chromstring

import (
	"slices"
	"strings"
)

// Set is a set of rearrangements. Canonical form makes a rearrangement and
// its reverse reading collapse to one member.
type Set map[ChromString]struct{}

// NewSet returns a set holding the given members.
func NewSet(members ...ChromString) Set {
	s := make(Set, len(members))
	for _, m := range members {
		s.Add(m)
	}
	return s
}

// Add inserts c.
func (s Set) Add(c ChromString) { s[c] = struct{}{} }

// Sorted returns the members ordered by notation.
func (s Set) Sorted() []ChromString {
	out := make([]ChromString, 0, len(s))
	for c := range s {
		out = append(out, c)
	}
	Sort(out)
	return out
}

// MaxLen returns the largest token count among the members.
func (s Set) MaxLen() int {
	n := 0
	for c := range s {
		n = max(n, c.Len())
	}
	return n
}

// Sort orders rearrangements by notation.
func Sort(cs []ChromString) {
	slices.SortFunc(cs, func(a, b ChromString) int {
		return strings.Compare(a.s, b.s)
	})
}
