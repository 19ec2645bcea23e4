// Package stats implements the rearrangement randomness tests run over
// observed fusions: the fusion-type chi-square (test E1) and the walk
// alternation test (test F).
package stats

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/inodb/svtools/internal/sv"
)

// ErrTooFewObservations is returned when a test has nothing to measure.
var ErrTooFewObservations = errors.New("too few observations")

// TypeCounts holds the number of fusions of each type.
type TypeCounts struct {
	Counts       [4]int // in sv.FusionTypes order
	Undetermined int
}

// CountFusionTypes tallies fusions by type. Fusions with an end of unknown
// orientation are counted apart and take no part in the test.
func CountFusionTypes(fusions []sv.Fusion) TypeCounts {
	var tc TypeCounts
	for _, f := range fusions {
		switch f.Type() {
		case sv.FusionDeletion:
			tc.Counts[0]++
		case sv.FusionTandemDuplication:
			tc.Counts[1]++
		case sv.FusionHeadHead:
			tc.Counts[2]++
		case sv.FusionTailTail:
			tc.Counts[3]++
		default:
			tc.Undetermined++
		}
	}
	return tc
}

// Get returns the count for t.
func (tc TypeCounts) Get(t sv.FusionType) int {
	for i, ft := range sv.FusionTypes {
		if ft == t {
			return tc.Counts[i]
		}
	}
	if t == sv.FusionUndetermined {
		return tc.Undetermined
	}
	return 0
}

// Total returns the number of classified fusions.
func (tc TypeCounts) Total() int {
	n := 0
	for _, c := range tc.Counts {
		n += c
	}
	return n
}

// ChiSquareUniform runs Pearson's chi-square test of counts against equal
// expected frequencies and returns the statistic and its p-value.
func ChiSquareUniform(counts []int) (chisq, p float64, err error) {
	if len(counts) < 2 {
		return 0, 0, fmt.Errorf("chi-square over %d categories: %w", len(counts), ErrTooFewObservations)
	}
	total := 0
	for _, c := range counts {
		total += c
	}
	if total == 0 {
		return 0, 0, fmt.Errorf("chi-square over empty counts: %w", ErrTooFewObservations)
	}

	expected := float64(total) / float64(len(counts))
	for _, c := range counts {
		d := float64(c) - expected
		chisq += d * d / expected
	}
	dist := distuv.ChiSquared{K: float64(len(counts) - 1)}
	return chisq, dist.Survival(chisq), nil
}

// JoinResult is the outcome of the fusion-type test.
type JoinResult struct {
	Counts TypeCounts
	ChiSq  float64
	P      float64
}

// JoinTest checks whether fragment joins are random: under random joining
// the four fusion types are equally likely.
func JoinTest(fusions []sv.Fusion) (JoinResult, error) {
	tc := CountFusionTypes(fusions)
	chisq, p, err := ChiSquareUniform(tc.Counts[:])
	if err != nil {
		return JoinResult{Counts: tc}, err
	}
	return JoinResult{Counts: tc, ChiSq: chisq, P: p}, nil
}
