// Package notation parses the compact rearrangement notation, e.g. "AB'CE".
//
// Each token is one ASCII letter optionally followed by a single mark (')
// denoting reverse orientation.
package notation

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Mark is the reverse-orientation mark.
const Mark = '\''

// Token is one letter of a rearrangement with its orientation.
type Token struct {
	Letter   byte
	Inverted bool
}

func (t Token) String() string {
	if t.Inverted {
		return string([]byte{t.Letter, Mark})
	}
	return string(t.Letter)
}

// Flip returns the token with the opposite orientation.
func (t Token) Flip() Token {
	return Token{Letter: t.Letter, Inverted: !t.Inverted}
}

// ParseError reports malformed rearrangement notation.
type ParseError struct {
	Input  string
	Offset int  // byte offset of the offending character
	Char   rune // offending character
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("notation parse error at offset %d (%q) in %q: %s",
		e.Offset, e.Char, e.Input, e.Reason)
}

// IsLetter reports whether c can start a token.
func IsLetter(c byte) bool {
	return ('A' <= c && c <= 'Z') || ('a' <= c && c <= 'z')
}

// Parse splits s into tokens. The empty string parses to no tokens.
func Parse(s string) ([]Token, error) {
	tokens := make([]Token, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case IsLetter(c):
			tokens = append(tokens, Token{Letter: c})
		case c == Mark:
			if i == 0 {
				return nil, &ParseError{Input: s, Offset: i, Char: Mark, Reason: "mark without a preceding letter"}
			}
			if s[i-1] == Mark {
				return nil, &ParseError{Input: s, Offset: i, Char: Mark, Reason: "doubled mark"}
			}
			tokens[len(tokens)-1].Inverted = true
		default:
			r, _ := utf8.DecodeRuneInString(s[i:])
			return nil, &ParseError{Input: s, Offset: i, Char: r, Reason: "not a letter or mark"}
		}
	}
	return tokens, nil
}

// MustParse is like Parse but panics on malformed input.
func MustParse(s string) []Token {
	tokens, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return tokens
}

// Join renders tokens back to notation.
func Join(tokens []Token) string {
	var b strings.Builder
	b.Grow(2 * len(tokens))
	for _, t := range tokens {
		b.WriteByte(t.Letter)
		if t.Inverted {
			b.WriteByte(Mark)
		}
	}
	return b.String()
}

// ReverseFlip reverses the token order and flips every token, i.e. reads the
// same chromosome from the other end.
func ReverseFlip(tokens []Token) []Token {
	out := make([]Token, len(tokens))
	for i, t := range tokens {
		out[len(tokens)-1-i] = t.Flip()
	}
	return out
}

// CountMarks returns the number of inverted tokens.
func CountMarks(tokens []Token) int {
	n := 0
	for _, t := range tokens {
		if t.Inverted {
			n++
		}
	}
	return n
}
