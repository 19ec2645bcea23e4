// Package sv provides the breakpoint and fusion model for structural variants.
package sv

import "fmt"

// Strand is the strand of a breakpoint: "+", "-", or "?" when it could not be
// determined.
type Strand string

const (
	StrandPlus    Strand = "+"
	StrandMinus   Strand = "-"
	StrandUnknown Strand = "?"
)

// Orientation is the end of a fragment a breakpoint sits on.
type Orientation string

const (
	OrientationTail    Orientation = "T" // + strand
	OrientationHead    Orientation = "H" // - strand
	OrientationUnknown Orientation = "?"
)

// ParseStrand converts a strand column value.
// Anything other than "+" or "-" becomes StrandUnknown.
func ParseStrand(s string) Strand {
	switch s {
	case "+":
		return StrandPlus
	case "-":
		return StrandMinus
	default:
		return StrandUnknown
	}
}

// Breakpoint is a chromosomal coordinate with a strand.
// Two breakpoints are equal iff all fields are equal.
type Breakpoint struct {
	Chrom  string // Chromosome name, empty for simulated data
	Pos    int64  // Position in bp
	Strand Strand
}

// Orientation returns T for the + strand, H for the - strand and
// OrientationUnknown otherwise.
func (b Breakpoint) Orientation() Orientation {
	switch b.Strand {
	case StrandPlus:
		return OrientationTail
	case StrandMinus:
		return OrientationHead
	default:
		return OrientationUnknown
	}
}

// PosScaled returns the position in Mb.
func (b Breakpoint) PosScaled() float64 {
	return float64(b.Pos) / 1e6
}

func (b Breakpoint) String() string {
	return fmt.Sprintf("%s:%d(%s)", b.Chrom, b.Pos, b.Orientation())
}
