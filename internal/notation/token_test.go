package notation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  []Token
	}{
		{"", []Token{}},
		{"A", []Token{{Letter: 'A'}}},
		{"A'", []Token{{Letter: 'A', Inverted: true}}},
		{"AB'C", []Token{{Letter: 'A'}, {Letter: 'B', Inverted: true}, {Letter: 'C'}}},
		{"AAB", []Token{{Letter: 'A'}, {Letter: 'A'}, {Letter: 'B'}}},
		{"a'Z", []Token{{Letter: 'a', Inverted: true}, {Letter: 'Z'}}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.input, Join(got))
		})
	}
}

func TestParse_Malformed(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		offset int
		char   rune
	}{
		{"leading mark", "'A", 0, '\''},
		{"doubled mark", "A''B", 2, '\''},
		{"digit", "A1", 1, '1'},
		{"space", "A B", 1, ' '},
		{"non-ascii", "Aé", 1, 'é'},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			require.Error(t, err)

			var perr *ParseError
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, tt.offset, perr.Offset)
			assert.Equal(t, tt.char, perr.Char)
			assert.Contains(t, err.Error(), tt.input)
		})
	}
}

func TestParse_NonASCIIMessage(t *testing.T) {
	_, err := Parse("ABé")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "offset 2 ('é')")
}

func TestMustParse_Panics(t *testing.T) {
	assert.Panics(t, func() { MustParse("'") })
	assert.NotPanics(t, func() { MustParse("AB") })
}

func TestReverseFlip(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"A", "A'"},
		{"AB'C", "C'BA'"},
		{"B'A'", "AB"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := Join(ReverseFlip(MustParse(tt.input)))
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.input, Join(ReverseFlip(MustParse(got))), "involution")
		})
	}
}

func TestCountMarks(t *testing.T) {
	assert.Equal(t, 0, CountMarks(MustParse("ABC")))
	assert.Equal(t, 2, CountMarks(MustParse("A'BC'")))
}

func TestToken_Flip(t *testing.T) {
	tok := Token{Letter: 'C'}
	assert.Equal(t, "C'", tok.Flip().String())
	assert.Equal(t, "C", tok.Flip().Flip().String())
}
