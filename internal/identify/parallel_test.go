package identify

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inodb/svtools/internal/chromstring"
)

func makeItems(n int) []chromstring.ChromString {
	out := make([]chromstring.ChromString, n)
	for i := range n {
		out[i] = chromstring.MustNew(string(rune('A' + i%26)))
	}
	return out
}

func TestParallelSignatures_OrderPreservation(t *testing.T) {
	results := ParallelSignatures(feed(makeItems(200)), lettersOnly, 8)

	var collected []int
	err := OrderedCollect(results, func(r WorkResult) error {
		require.NoError(t, r.Err)
		collected = append(collected, r.Seq)
		return nil
	})
	require.NoError(t, err)

	assert.Len(t, collected, 200)
	for i, seq := range collected {
		assert.Equal(t, i, seq, "result %d out of order", i)
	}
}

func TestParallelSignatures_SingleWorker(t *testing.T) {
	items := makeItems(50)
	results := ParallelSignatures(feed(items), lettersOnly, 1)

	var collected []string
	err := OrderedCollect(results, func(r WorkResult) error {
		collected = append(collected, r.Sig.Letters)
		return nil
	})
	require.NoError(t, err)

	require.Len(t, collected, 50)
	for i, letters := range collected {
		assert.Equal(t, items[i].String(), letters)
	}
}

func TestOrderedCollect_ErrorStops(t *testing.T) {
	results := ParallelSignatures(feed(makeItems(100)), lettersOnly, 4)

	count := 0
	err := OrderedCollect(results, func(r WorkResult) error {
		count++
		if r.Seq == 10 {
			return fmt.Errorf("stop at %d", r.Seq)
		}
		return nil
	})
	require.Error(t, err)
	assert.Equal(t, 11, count)
}
