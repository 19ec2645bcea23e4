package identify

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inodb/svtools/internal/chromstring"
)

func strs(set chromstring.Set) []string {
	var out []string
	for _, cs := range set.Sorted() {
		out = append(out, cs.String())
	}
	return out
}

func TestPermutations(t *testing.T) {
	e := NewEnumerator()

	tests := []struct {
		input string
		want  []string
	}{
		{"", []string{""}},
		{"A", []string{"A"}},
		{"AA", []string{"AA"}},
		{"AB", []string{"AB", "BA"}},
		{"ABC", []string{"ABC", "ACB", "BAC", "BCA", "CAB", "CBA"}},
		{"AB'", []string{"A'B", "AB'"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := e.Permutations(chromstring.MustNew(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, strs(got))
		})
	}
}

func TestPermutations_CardinalityBound(t *testing.T) {
	got, err := NewEnumerator().Permutations(chromstring.MustNew("AB"))
	require.NoError(t, err)
	assert.LessOrEqual(t, len(got), 2)
}

func TestInversions(t *testing.T) {
	e := NewEnumerator()

	got, err := e.Inversions(chromstring.NewSet(chromstring.MustNew("A")))
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, strs(got))

	got, err = e.Inversions(chromstring.NewSet(chromstring.MustNew("AB")))
	require.NoError(t, err)
	assert.Equal(t, []string{"A'B", "AB", "AB'", "BA"}, strs(got))
}

func TestDeletions(t *testing.T) {
	e := NewEnumerator()

	got, err := e.Deletions(chromstring.NewSet(chromstring.MustNew("AB")))
	require.NoError(t, err)
	assert.Equal(t, []string{"", "A", "AB", "B"}, strs(got))
}

func TestRearrangements(t *testing.T) {
	got, err := NewEnumerator().Rearrangements(chromstring.MustNew("AB"))
	require.NoError(t, err)
	assert.Equal(t, []string{"", "A", "A'B", "AB", "AB'", "B", "BA"}, strs(got))
}

func TestTooManyTokens(t *testing.T) {
	e := NewEnumerator()
	e.SetMaxTokens(2)

	abc := chromstring.MustNew("ABC")

	_, err := e.Permutations(abc)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTooManyTokens))

	var terr *TooManyTokensError
	require.True(t, errors.As(err, &terr))
	assert.Equal(t, 3, terr.Tokens)
	assert.Equal(t, 2, terr.Max)

	_, err = e.Inversions(chromstring.NewSet(chromstring.MustNew("A"), abc))
	assert.True(t, errors.Is(err, ErrTooManyTokens))

	_, err = e.Deletions(chromstring.NewSet(abc))
	assert.True(t, errors.Is(err, ErrTooManyTokens))

	_, err = e.Rearrangements(abc)
	assert.True(t, errors.Is(err, ErrTooManyTokens))
}

func TestPowerset(t *testing.T) {
	var subsets [][]int
	powerset(2, func(indices []int) {
		subsets = append(subsets, append([]int(nil), indices...))
	})
	// Copies of the empty subset are nil.
	assert.Equal(t, [][]int{nil, {0}, {1}, {0, 1}}, subsets)

	var count int
	powerset(0, func(indices []int) {
		assert.Empty(t, indices)
		count++
	})
	assert.Equal(t, 1, count, "the empty set has one subset")
}
