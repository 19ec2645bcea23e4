// Package simulate expands rearrangement notation into simulated sequencing
// positions and recovers fusions and copy number from them.
//
// Each letter covers a block of Width consecutive integer positions starting
// at (letter-'A')*Width. A forward token emits its block ascending, an
// inverted token descending. Jumps between neighbouring blocks are the
// structural joins of the rearranged chromosome.
package simulate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/inodb/svtools/internal/notation"
)

// DefaultWidth is the number of positions per letter.
const DefaultWidth = 10

// ErrUnclassifiedWindow is matched by *UnclassifiedWindowError.
var ErrUnclassifiedWindow = errors.New("unclassified window")

// LengthError reports a position list whose length is not a multiple of the
// block width.
type LengthError struct {
	Len   int
	Width int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("position list length %d is not a multiple of width %d", e.Len, e.Width)
}

// UnclassifiedWindowError reports a window that is not one whole block read
// forwards or backwards.
type UnclassifiedWindowError struct {
	Index  int // window number
	Window []int
}

func (e *UnclassifiedWindowError) Error() string {
	return fmt.Sprintf("window %d %v is not a single forward or reverse block", e.Index, e.Window)
}

func (e *UnclassifiedWindowError) Unwrap() error { return ErrUnclassifiedWindow }

// Codec converts between notation and position lists at a fixed width.
type Codec struct {
	Width int
}

// NewCodec returns a codec with the given block width. A block needs at
// least two positions to carry an orientation.
func NewCodec(width int) (Codec, error) {
	if width < 2 {
		return Codec{}, fmt.Errorf("invalid block width %d", width)
	}
	return Codec{Width: width}, nil
}

// DefaultCodec returns a codec with DefaultWidth.
func DefaultCodec() Codec {
	return Codec{Width: DefaultWidth}
}

// LettersToPositions expands notation into simulated positions.
func (c Codec) LettersToPositions(letters string) ([]int, error) {
	tokens, err := notation.Parse(letters)
	if err != nil {
		return nil, err
	}
	return c.TokensToPositions(tokens), nil
}

// TokensToPositions expands already parsed tokens.
func (c Codec) TokensToPositions(tokens []notation.Token) []int {
	positions := make([]int, 0, len(tokens)*c.Width)
	for _, t := range tokens {
		start := int(t.Letter-'A') * c.Width
		if t.Inverted {
			for p := start + c.Width - 1; p >= start; p-- {
				positions = append(positions, p)
			}
		} else {
			for p := start; p < start+c.Width; p++ {
				positions = append(positions, p)
			}
		}
	}
	return positions
}

// PositionsToLetters recovers notation from a position list.
func (c Codec) PositionsToLetters(positions []int) (string, error) {
	tokens, err := c.PositionsToTokens(positions)
	if err != nil {
		return "", err
	}
	return notation.Join(tokens), nil
}

// PositionsToTokens splits positions into Width-sized windows and decodes
// each one to a token.
func (c Codec) PositionsToTokens(positions []int) ([]notation.Token, error) {
	if len(positions)%c.Width != 0 {
		return nil, &LengthError{Len: len(positions), Width: c.Width}
	}

	tokens := make([]notation.Token, 0, len(positions)/c.Width)
	for i := 0; i < len(positions); i += c.Width {
		window := positions[i : i+c.Width]
		tok, ok := c.decodeWindow(window)
		if !ok {
			return nil, &UnclassifiedWindowError{
				Index:  i / c.Width,
				Window: append([]int(nil), window...),
			}
		}
		tokens = append(tokens, tok)
	}
	return tokens, nil
}

func (c Codec) decodeWindow(window []int) (notation.Token, bool) {
	first, last := window[0], window[len(window)-1]
	base := min(first, last)
	if base < 0 || base%c.Width != 0 {
		return notation.Token{}, false
	}

	inverted := last == base && first != base
	for i, p := range window {
		want := base + i
		if inverted {
			want = base + c.Width - 1 - i
		}
		if p != want {
			return notation.Token{}, false
		}
	}

	letter := base/c.Width + 'A'
	if letter > 'z' || !notation.IsLetter(byte(letter)) {
		return notation.Token{}, false
	}
	return notation.Token{Letter: byte(letter), Inverted: inverted}, true
}

// PositionsToTicks returns the mean position of each window, for labelling
// letters along an axis.
func (c Codec) PositionsToTicks(positions []int) ([]float64, error) {
	if len(positions)%c.Width != 0 {
		return nil, &LengthError{Len: len(positions), Width: c.Width}
	}

	ticks := make([]float64, 0, len(positions)/c.Width)
	for i := 0; i < len(positions); i += c.Width {
		sum := 0
		for _, p := range positions[i : i+c.Width] {
			sum += p
		}
		ticks = append(ticks, float64(sum)/float64(c.Width))
	}
	return ticks, nil
}

// LetterList splits notation into token strings, e.g. "AB'" -> ["A", "B'"].
func LetterList(letters string) ([]string, error) {
	tokens, err := notation.Parse(letters)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = t.String()
	}
	return out, nil
}

// Letters returns the distinct letters of the notation in sorted order.
func Letters(letters string) string {
	var seen [256]bool
	for i := 0; i < len(letters); i++ {
		if notation.IsLetter(letters[i]) {
			seen[letters[i]] = true
		}
	}
	var b strings.Builder
	for c, ok := range seen {
		if ok {
			b.WriteByte(byte(c))
		}
	}
	return b.String()
}
