package identify

import (
	"slices"
	"strconv"
	"strings"

	"github.com/inodb/svtools/internal/chromstring"
	"github.com/inodb/svtools/internal/simulate"
	"github.com/inodb/svtools/internal/sv"
)

// Signature is what an observation reveals about a rearrangement: which
// letters are present, the copy number along the simulated chromosome, and
// the set of fusions.
type Signature struct {
	Empty   bool        // fully deleted chromosome, nothing observed
	Letters string      // distinct letters, sorted
	CN      []int       // copy number in position order
	Fusions []sv.Fusion // distinct fusions, sorted
}

// Key encodes the signature so that two signatures are equal iff their keys
// are equal.
func (s Signature) Key() string {
	if s.Empty {
		return "-"
	}

	var b strings.Builder
	b.WriteString(s.Letters)
	b.WriteByte('|')
	for i, c := range s.CN {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(c))
	}
	b.WriteByte('|')
	for i, f := range s.Fusions {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteString(f.String())
	}
	return b.String()
}

// SignatureFunc derives the observable signature of a rearrangement.
type SignatureFunc func(chromstring.ChromString) (Signature, error)

// DiagramSignature returns the signature visible on a copy-number/fusion
// diagram simulated with codec.
func DiagramSignature(codec simulate.Codec) SignatureFunc {
	return func(cs chromstring.ChromString) (Signature, error) {
		if cs.IsEmpty() {
			return Signature{Empty: true}, nil
		}

		positions := codec.TokensToPositions(cs.Tokens())
		_, cn := simulate.CopyNumber(positions)
		return Signature{
			Letters: simulate.Letters(cs.String()),
			CN:      cn,
			Fusions: FusionSet(simulate.Fusions(positions)),
		}, nil
	}
}

// FusionSet returns the distinct fusions in sorted order.
func FusionSet(fusions []sv.Fusion) []sv.Fusion {
	seen := make(map[sv.Fusion]struct{}, len(fusions))
	out := make([]sv.Fusion, 0, len(fusions))
	for _, f := range fusions {
		if _, ok := seen[f]; ok {
			continue
		}
		seen[f] = struct{}{}
		out = append(out, f)
	}
	slices.SortFunc(out, func(a, b sv.Fusion) int {
		switch {
		case sv.Less(a, b):
			return -1
		case sv.Less(b, a):
			return 1
		}
		return 0
	})
	return out
}
