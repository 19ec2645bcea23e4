package simulate

import (
	"fmt"
	"slices"

	"github.com/inodb/svtools/internal/sv"
)

// DiagramData is everything a copy-number/fusion diagram needs for one
// simulated chromosome.
type DiagramData struct {
	Letters  string
	X        []int
	CN       []int
	Fusions  []sv.Fusion
	XLetters []string  // one label per block across the covered x range
	XTicks   []float64 // label positions, parallel to XLetters
}

// MaxCN returns the largest copy number, or 0 for an empty chromosome.
func (d DiagramData) MaxCN() int {
	if len(d.CN) == 0 {
		return 0
	}
	return slices.Max(d.CN)
}

// Diagram simulates the rearrangement given in notation and derives the
// diagram triple (x, cn, fusions) plus axis labels. An empty rearrangement
// yields empty data.
func (c Codec) Diagram(letters string) (DiagramData, error) {
	positions, err := c.LettersToPositions(letters)
	if err != nil {
		return DiagramData{}, err
	}

	d := DiagramData{Letters: letters, Fusions: Fusions(positions)}
	d.X, d.CN = CopyNumber(positions)
	if len(d.X) == 0 {
		return d, nil
	}

	lo, hi := slices.Min(d.X), slices.Max(d.X)
	xRange := make([]int, 0, hi-lo+1)
	for p := lo; p <= hi; p++ {
		xRange = append(xRange, p)
	}

	rangeLetters, err := c.PositionsToLetters(xRange)
	if err != nil {
		return DiagramData{}, fmt.Errorf("label x range: %w", err)
	}
	if d.XLetters, err = LetterList(rangeLetters); err != nil {
		return DiagramData{}, fmt.Errorf("label x range: %w", err)
	}
	if d.XTicks, err = c.PositionsToTicks(xRange); err != nil {
		return DiagramData{}, fmt.Errorf("tick x range: %w", err)
	}
	return d, nil
}
