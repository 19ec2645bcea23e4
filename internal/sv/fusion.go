package sv

// FusionType classifies a fusion by the orientations of its two ends.
type FusionType string

const (
	FusionDeletion          FusionType = "D"  // TH
	FusionTandemDuplication FusionType = "TD" // HT
	FusionHeadHead          FusionType = "HH"
	FusionTailTail          FusionType = "TT"
	// FusionUndetermined is returned when either end has an unknown strand.
	FusionUndetermined FusionType = "?"
)

// FusionTypes lists the classifiable fusion types in reporting order.
var FusionTypes = []FusionType{
	FusionDeletion,
	FusionTandemDuplication,
	FusionHeadHead,
	FusionTailTail,
}

var orientationTypes = map[string]FusionType{
	"TH": FusionDeletion,
	"HT": FusionTandemDuplication,
	"HH": FusionHeadHead,
	"TT": FusionTailTail,
}

// Fusion is a pair of breakpoints joined by a rearrangement.
// The breakpoints are held in ascending position order; the zero value is
// not meaningful, use NewFusion.
type Fusion struct {
	bp1 Breakpoint
	bp2 Breakpoint
}

// NewFusion orders the two breakpoints by position. Equal positions keep
// argument order.
func NewFusion(a, b Breakpoint) Fusion {
	if b.Pos < a.Pos {
		a, b = b, a
	}
	return Fusion{bp1: a, bp2: b}
}

// BP1 returns the lower-position breakpoint.
func (f Fusion) BP1() Breakpoint { return f.bp1 }

// BP2 returns the higher-position breakpoint.
func (f Fusion) BP2() Breakpoint { return f.bp2 }

// Orientations returns the fusion in TH/HT/HH/TT form.
func (f Fusion) Orientations() string {
	return string(f.bp1.Orientation()) + string(f.bp2.Orientation())
}

// Type returns the fusion type in D/TD/HH/TT form, or FusionUndetermined
// when an end has no known orientation.
func (f Fusion) Type() FusionType {
	if t, ok := orientationTypes[f.Orientations()]; ok {
		return t
	}
	return FusionUndetermined
}

// IsIntrachromosomal reports whether both ends are on the same chromosome.
func (f Fusion) IsIntrachromosomal() bool {
	return f.bp1.Chrom == f.bp2.Chrom
}

func (f Fusion) String() string {
	return f.bp1.String() + "--->" + f.bp2.String()
}

// Less orders fusions by first then second breakpoint.
func Less(a, b Fusion) bool {
	if c := compareBreakpoints(a.bp1, b.bp1); c != 0 {
		return c < 0
	}
	return compareBreakpoints(a.bp2, b.bp2) < 0
}

func compareBreakpoints(a, b Breakpoint) int {
	switch {
	case a.Chrom != b.Chrom:
		if a.Chrom < b.Chrom {
			return -1
		}
		return 1
	case a.Pos != b.Pos:
		if a.Pos < b.Pos {
			return -1
		}
		return 1
	case a.Strand != b.Strand:
		if a.Strand < b.Strand {
			return -1
		}
		return 1
	}
	return 0
}
