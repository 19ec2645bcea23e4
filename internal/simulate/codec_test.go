package simulate

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inodb/svtools/internal/notation"
)

func seq(from, to int) []int {
	var out []int
	if from <= to {
		for p := from; p <= to; p++ {
			out = append(out, p)
		}
	} else {
		for p := from; p >= to; p-- {
			out = append(out, p)
		}
	}
	return out
}

func TestLettersToPositions(t *testing.T) {
	c := DefaultCodec()

	tests := []struct {
		letters string
		want    []int
	}{
		{"A", seq(0, 9)},
		{"A'", seq(9, 0)},
		{"AB", seq(0, 19)},
		{"AB'", append(seq(0, 9), seq(19, 10)...)},
		{"C'A", append(seq(29, 20), seq(0, 9)...)},
	}

	for _, tt := range tests {
		t.Run(tt.letters, func(t *testing.T) {
			got, err := c.LettersToPositions(tt.letters)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Zero(t, len(got)%c.Width)
		})
	}
}

func TestLettersToPositions_Empty(t *testing.T) {
	got, err := DefaultCodec().LettersToPositions("")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestLettersToPositions_Malformed(t *testing.T) {
	_, err := DefaultCodec().LettersToPositions("'AB")
	require.Error(t, err)

	var perr *notation.ParseError
	assert.True(t, errors.As(err, &perr))
}

func TestRoundTrip(t *testing.T) {
	for _, width := range []int{2, 3, 10} {
		c, err := NewCodec(width)
		require.NoError(t, err)

		for _, s := range []string{"", "A", "A'", "AB'C", "C'BA'", "AAB", "DB'A'C", "Zz'a"} {
			positions, err := c.LettersToPositions(s)
			require.NoError(t, err)

			got, err := c.PositionsToLetters(positions)
			require.NoError(t, err)
			assert.Equal(t, s, got, "width %d", width)
		}
	}
}

func TestNewCodec_InvalidWidth(t *testing.T) {
	_, err := NewCodec(0)
	assert.Error(t, err)
	_, err = NewCodec(1)
	assert.Error(t, err, "width 1 cannot encode orientation")
}

func TestPositionsToLetters_LengthViolation(t *testing.T) {
	_, err := DefaultCodec().PositionsToLetters(seq(0, 14))
	require.Error(t, err)

	var lerr *LengthError
	require.True(t, errors.As(err, &lerr))
	assert.Equal(t, 15, lerr.Len)
	assert.Equal(t, 10, lerr.Width)
}

func TestPositionsToLetters_Unclassified(t *testing.T) {
	tests := []struct {
		name      string
		positions []int
		index     int
	}{
		{"not monotonic", append(seq(0, 9), 10, 11, 12, 13, 14, 19, 16, 17, 18, 15), 1},
		{"spans two blocks", seq(5, 14), 0},
		{"reverse unaligned", seq(14, 5), 0},
		{"negative", seq(-10, -1), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DefaultCodec().PositionsToLetters(tt.positions)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrUnclassifiedWindow))

			var werr *UnclassifiedWindowError
			require.True(t, errors.As(err, &werr))
			assert.Equal(t, tt.index, werr.Index)
			assert.Len(t, werr.Window, 10)
		})
	}
}

func TestPositionsToTicks(t *testing.T) {
	c := DefaultCodec()

	ticks, err := c.PositionsToTicks(seq(0, 19))
	require.NoError(t, err)
	assert.Equal(t, []float64{4.5, 14.5}, ticks)

	_, err = c.PositionsToTicks(seq(0, 3))
	assert.Error(t, err)
}

func TestLetterList(t *testing.T) {
	got, err := LetterList("AB'C")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B'", "C"}, got)

	_, err = LetterList("A''")
	assert.Error(t, err)
}

func TestLetters(t *testing.T) {
	assert.Equal(t, "ABC", Letters("CAB'A"))
	assert.Equal(t, "", Letters(""))
}
