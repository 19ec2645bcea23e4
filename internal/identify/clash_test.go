package identify

import (
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inodb/svtools/internal/chromstring"
	"github.com/inodb/svtools/internal/simulate"
)

func chroms(ss ...string) []chromstring.ChromString {
	out := make([]chromstring.ChromString, len(ss))
	for i, s := range ss {
		out[i] = chromstring.MustNew(s)
	}
	return out
}

func memberStrings(c Clash) []string {
	var out []string
	for _, m := range c.Members {
		out = append(out, m.String())
	}
	return out
}

// lettersOnly observes nothing but which letters are present.
func lettersOnly(cs chromstring.ChromString) (Signature, error) {
	return Signature{Letters: simulate.Letters(cs.String())}, nil
}

func TestFindClashes_CustomSignature(t *testing.T) {
	e := NewEnumerator()
	e.SetWorkers(4)

	clashes, err := e.FindClashes(chroms("A", "AB", "BA", "A'B", "C", "CD", "DC"), lettersOnly)
	require.NoError(t, err)
	require.Len(t, clashes, 2)

	assert.Equal(t, []string{"A'B", "AB", "BA"}, memberStrings(clashes[0]))
	assert.Equal(t, "AB", clashes[0].Signature.Letters)
	assert.Equal(t, []string{"CD", "DC"}, memberStrings(clashes[1]))
}

func TestFindClashes_DuplicateInputIsNotAClash(t *testing.T) {
	clashes, err := NewEnumerator().FindClashes(chroms("AB", "B'A'"), lettersOnly)
	require.NoError(t, err)
	assert.Empty(t, clashes)
}

func TestFindClashes_DiagramSignature(t *testing.T) {
	e := NewEnumerator()

	clashes, err := e.FindClashes(chroms("ABAB", "BABA", "AB", "BA"), DiagramSignature(simulate.DefaultCodec()))
	require.NoError(t, err)
	require.Len(t, clashes, 1)
	assert.Equal(t, []string{"ABAB", "BABA"}, memberStrings(clashes[0]))
	assert.Len(t, clashes[0].Signature.Fusions, 1)
}

func TestFindClashes_Deterministic(t *testing.T) {
	input := chroms("A", "AB", "BA", "A'B", "C", "CD", "DC", "E", "EF", "FE")
	var first []Clash
	for _, workers := range []int{1, 2, 8} {
		e := NewEnumerator()
		e.SetWorkers(workers)
		clashes, err := e.FindClashes(input, lettersOnly)
		require.NoError(t, err)
		if first == nil {
			first = clashes
			continue
		}
		assert.Equal(t, first, clashes, "workers=%d", workers)
	}
}

func TestFindClashes_SignatureError(t *testing.T) {
	boom := errors.New("boom")
	fn := func(cs chromstring.ChromString) (Signature, error) {
		if cs.String() == "B" {
			return Signature{}, boom
		}
		return lettersOnly(cs)
	}

	clashes, err := NewEnumerator().FindClashes(chroms("A", "B", "C"), fn)
	require.Error(t, err)
	assert.True(t, errors.Is(err, boom))
	assert.Nil(t, clashes)
}

func TestClashes_Enumerated(t *testing.T) {
	clashes, err := NewEnumerator().Clashes(chromstring.MustNew("ABAB"))
	require.NoError(t, err)
	require.NotEmpty(t, clashes)

	var found *Clash
	for i, c := range clashes {
		assert.GreaterOrEqual(t, len(c.Members), 2)
		if slices.Contains(memberStrings(c), "ABAB") {
			found = &clashes[i]
		}
	}
	require.NotNil(t, found, "ABAB clashes with another rearrangement")
	assert.Contains(t, memberStrings(*found), "BABA")
	assert.Equal(t, mustSig(t, "ABAB").Key(), found.Signature.Key())
}

func TestClashes_NoClashForTwoLetters(t *testing.T) {
	clashes, err := NewEnumerator().Clashes(chromstring.MustNew("AB"))
	require.NoError(t, err)
	assert.Empty(t, clashes)
}

func mustSig(t *testing.T, s string) Signature {
	t.Helper()
	sig, err := DiagramSignature(simulate.DefaultCodec())(chromstring.MustNew(s))
	require.NoError(t, err)
	return sig
}

func TestDiagramSignature(t *testing.T) {
	empty := mustSig(t, "")
	assert.True(t, empty.Empty)
	assert.Equal(t, "-", empty.Key())

	sig := mustSig(t, "AB'")
	assert.Equal(t, "AB", sig.Letters)
	assert.Len(t, sig.CN, 20)
	require.Len(t, sig.Fusions, 1)

	assert.NotEqual(t, mustSig(t, "AB").Key(), mustSig(t, "BA").Key())
	assert.Equal(t, mustSig(t, "ABAB").Key(), mustSig(t, "BABA").Key())
}
