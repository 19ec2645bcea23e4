package simulate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inodb/svtools/internal/sv"
)

func TestDiagram(t *testing.T) {
	d, err := DefaultCodec().Diagram("AC'")
	require.NoError(t, err)

	assert.Equal(t, "AC'", d.Letters)
	assert.Len(t, d.X, 20)
	assert.Len(t, d.CN, 20)
	assert.Equal(t, 1, d.MaxCN())

	require.Len(t, d.Fusions, 1)
	assert.Equal(t, sv.FusionTailTail, d.Fusions[0].Type())

	// The deleted B block still gets a label across the covered range.
	assert.Equal(t, []string{"A", "B", "C"}, d.XLetters)
	assert.Equal(t, []float64{4.5, 14.5, 24.5}, d.XTicks)
}

func TestDiagram_Duplication(t *testing.T) {
	d, err := DefaultCodec().Diagram("ABA")
	require.NoError(t, err)
	assert.Equal(t, 2, d.MaxCN())
	assert.Equal(t, []string{"A", "B"}, d.XLetters)
}

func TestDiagram_Empty(t *testing.T) {
	d, err := DefaultCodec().Diagram("")
	require.NoError(t, err)
	assert.Empty(t, d.X)
	assert.Empty(t, d.Fusions)
	assert.Zero(t, d.MaxCN())
}

func TestDiagram_Malformed(t *testing.T) {
	_, err := DefaultCodec().Diagram("A'''")
	assert.Error(t, err)
}
