// Package chromstring provides ChromString, a rearrangement in canonical form.
//
// A rearranged chromosome read from either end describes the same molecule:
// "AB'C" and its reverse-and-flip "C'BA'" are one rearrangement. ChromString
// always stores the representative with fewer inverted tokens, breaking ties
// by string order, so equal rearrangements compare equal with == and can be
// used as map keys.
package chromstring

import (
	"slices"

	"github.com/inodb/svtools/internal/notation"
)

// ChromString is an immutable canonical rearrangement.
// The zero value is the empty (fully deleted) chromosome.
type ChromString struct {
	s string
}

// New parses raw notation and canonicalizes it.
func New(raw string) (ChromString, error) {
	tokens, err := notation.Parse(raw)
	if err != nil {
		return ChromString{}, err
	}
	return FromTokens(tokens), nil
}

// MustNew is like New but panics on malformed notation.
func MustNew(raw string) ChromString {
	cs, err := New(raw)
	if err != nil {
		panic(err)
	}
	return cs
}

// FromTokens canonicalizes a token sequence.
func FromTokens(tokens []notation.Token) ChromString {
	reversed := notation.ReverseFlip(tokens)
	raw, rev := notation.Join(tokens), notation.Join(reversed)

	rawMarks, revMarks := notation.CountMarks(tokens), notation.CountMarks(reversed)
	switch {
	case rawMarks < revMarks:
		return ChromString{s: raw}
	case rawMarks > revMarks:
		return ChromString{s: rev}
	case raw <= rev:
		return ChromString{s: raw}
	default:
		return ChromString{s: rev}
	}
}

// String returns the canonical notation.
func (c ChromString) String() string { return c.s }

// Tokens returns the canonical tokens. The stored string is always valid
// notation.
func (c ChromString) Tokens() []notation.Token {
	return notation.MustParse(c.s)
}

// Len returns the number of tokens.
func (c ChromString) Len() int {
	n := 0
	for i := 0; i < len(c.s); i++ {
		if c.s[i] != notation.Mark {
			n++
		}
	}
	return n
}

// IsEmpty reports whether every token has been deleted.
func (c ChromString) IsEmpty() bool { return c.s == "" }

// Reversed returns the non-canonical reading of the chromosome from the
// other end.
func (c ChromString) Reversed() string {
	return notation.Join(notation.ReverseFlip(c.Tokens()))
}

// FlippedIndices returns the rearrangement with the tokens at the given
// 0-based indices inverted. Indices outside the token range are ignored.
func (c ChromString) FlippedIndices(indices ...int) ChromString {
	tokens := c.Tokens()
	for i := range tokens {
		if slices.Contains(indices, i) {
			tokens[i] = tokens[i].Flip()
		}
	}
	return FromTokens(tokens)
}

// DeletedIndices returns the rearrangement without the tokens at the given
// 0-based indices. Indices outside the token range are ignored.
func (c ChromString) DeletedIndices(indices ...int) ChromString {
	tokens := c.Tokens()
	kept := make([]notation.Token, 0, len(tokens))
	for i, t := range tokens {
		if !slices.Contains(indices, i) {
			kept = append(kept, t)
		}
	}
	return FromTokens(kept)
}
