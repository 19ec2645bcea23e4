package stats

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/inodb/svtools/internal/sv"
)

// ErrUnknownOrientation is returned for a walk holding anything but H and T.
var ErrUnknownOrientation = errors.New("walk has an end of unknown orientation")

// Walk concatenates the orientations of breakpoints, which must already be
// sorted by position. Ends of unknown orientation are left out and counted
// in dropped.
func Walk(bps []sv.Breakpoint) (walk string, dropped int) {
	var b strings.Builder
	for _, bp := range bps {
		o := bp.Orientation()
		if o == sv.OrientationUnknown {
			dropped++
			continue
		}
		b.WriteString(string(o))
	}
	return b.String(), dropped
}

// AlternatingRuns splits a walk into maximal alternating segments: a letter
// extends the current segment when it differs from the segment's last
// letter and starts a new one otherwise.
//
//	HTHHTT -> HTH|HT|T
func AlternatingRuns(walk string) []string {
	var runs []string
	for i := 0; i < len(walk); i++ {
		n := len(runs)
		if n == 0 || runs[n-1][len(runs[n-1])-1] == walk[i] {
			runs = append(runs, walk[i:i+1])
			continue
		}
		runs[n-1] += walk[i : i+1]
	}
	return runs
}

// ModifiedWaldWolfowitz returns the mean and variance of the approximate
// sampling distribution of the number of alternating runs in a sequence of
// n1 heads and n2 tails, and the one-sided p-value of observing runs or
// fewer.
//
// The number of alternating runs is N - R + 1 where R counts ordinary runs,
// so the normal approximation of Wald-Wolfowitz carries over with a
// shifted mean.
func ModifiedWaldWolfowitz(runs, n1, n2 int) (mean, variance, p float64, err error) {
	n := float64(n1 + n2)
	if n < 2 {
		return 0, 0, 0, fmt.Errorf("walk of length %d: %w", n1+n2, ErrTooFewObservations)
	}
	prod := 2 * float64(n1) * float64(n2)
	meanRuns := 1 + prod/n
	variance = prod * (prod - n) / (n * n * (n - 1))
	mean = n - meanRuns + 1

	if variance <= 0 {
		// All heads or all tails: the distribution is a point mass.
		if float64(runs) >= mean {
			return mean, 0, 1, nil
		}
		return mean, 0, 0, nil
	}
	dist := distuv.Normal{Mu: mean, Sigma: math.Sqrt(variance)}
	return mean, variance, dist.CDF(float64(runs)), nil
}

// WalkResult is the outcome of the walk test over one chromosome.
type WalkResult struct {
	Walk             string
	Runs             []string
	Heads            int
	Tails            int
	AverageRunLength float64
	Mean             float64 // expected alternating runs
	SD               float64
	P                float64
}

// WalkTest checks whether the derivative chromosome can be walked: a walk
// through a single derivative alternates heads and tails far more than
// chance, so few alternating runs give a small p-value.
func WalkTest(walk string) (WalkResult, error) {
	if i := strings.IndexFunc(walk, func(c rune) bool {
		return c != rune(sv.OrientationHead[0]) && c != rune(sv.OrientationTail[0])
	}); i >= 0 {
		return WalkResult{Walk: walk}, fmt.Errorf("%q at offset %d: %w", walk[i], i, ErrUnknownOrientation)
	}
	r := WalkResult{
		Walk:  walk,
		Runs:  AlternatingRuns(walk),
		Heads: strings.Count(walk, string(sv.OrientationHead)),
		Tails: strings.Count(walk, string(sv.OrientationTail)),
	}
	mean, variance, p, err := ModifiedWaldWolfowitz(len(r.Runs), r.Heads, r.Tails)
	if err != nil {
		return r, err
	}
	r.AverageRunLength = float64(r.Heads+r.Tails) / float64(len(r.Runs))
	r.Mean, r.SD, r.P = mean, math.Sqrt(variance), p
	return r, nil
}
