package simulate

import "github.com/inodb/svtools/internal/sv"

// PositionScale converts a simulated position to a breakpoint coordinate.
const PositionScale = 1_000_000

// fusionWindow is the number of consecutive positions examined per join,
// like a paired-end read spanning it.
const fusionWindow = 4

// DetectFusion inspects four consecutive sites. If the middle pair is not
// adjacent it returns the fusion joining them, e.g.
//
//	01[2398]7
//	   -><-
//	   T  T
func DetectFusion(a, b, c, d int) (sv.Fusion, bool) {
	if abs(b-c) == 1 {
		return sv.Fusion{}, false
	}

	var strand1, strand2 sv.Strand
	switch a - b {
	case -1:
		strand1 = sv.StrandPlus
	case 1:
		strand1 = sv.StrandMinus
	default:
		strand1 = sv.StrandUnknown
	}
	switch c - d {
	case 1:
		strand2 = sv.StrandPlus
	case -1:
		strand2 = sv.StrandMinus
	default:
		strand2 = sv.StrandUnknown
	}

	bp1 := sv.Breakpoint{Pos: int64(b) * PositionScale, Strand: strand1}
	bp2 := sv.Breakpoint{Pos: int64(c) * PositionScale, Strand: strand2}
	return sv.NewFusion(bp1, bp2), true
}

// Fusions slides a four-site window along positions and returns every
// detected fusion in window order. Repeated joins are reported repeatedly.
func Fusions(positions []int) []sv.Fusion {
	var fusions []sv.Fusion
	for i := 0; i+fusionWindow <= len(positions); i++ {
		w := positions[i : i+fusionWindow]
		if f, ok := DetectFusion(w[0], w[1], w[2], w[3]); ok {
			fusions = append(fusions, f)
		}
	}
	return fusions
}

// CopyNumber returns each position alongside the number of times it occurs
// in the list. x and cn are parallel and keep the order of positions.
//
// Counting every position against the whole list is quadratic; a count map
// gives the same result in linear time, but the output is still one entry
// per position, so this is meant for simulation-scale inputs only.
func CopyNumber(positions []int) (x, cn []int) {
	counts := make(map[int]int, len(positions))
	for _, p := range positions {
		counts[p]++
	}

	x = make([]int, len(positions))
	cn = make([]int, len(positions))
	for i, p := range positions {
		x[i] = p
		cn[i] = counts[p]
	}
	return x, cn
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
