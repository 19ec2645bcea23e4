package tabular

import (
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/grailbio/base/tsv"

	"github.com/inodb/svtools/internal/identify"
	"github.com/inodb/svtools/internal/simulate"
	"github.com/inodb/svtools/internal/sv"
)

// WriteFusions writes fusions in the input table layout plus their
// orientations and type.
func WriteFusions(w io.Writer, fusions []sv.Fusion) error {
	tw := tsv.NewWriter(w)
	tw.WriteString(strings.Join(append(slices.Clone(FusionColumns), "orientations", "type"), "\t"))
	if err := tw.EndLine(); err != nil {
		return err
	}
	for _, f := range fusions {
		for _, bp := range []sv.Breakpoint{f.BP1(), f.BP2()} {
			tw.WriteString(bp.Chrom)
			tw.WriteString(strconv.FormatInt(bp.Pos, 10))
			tw.WriteString(string(bp.Strand))
		}
		tw.WriteString(f.Orientations())
		tw.WriteString(string(f.Type()))
		if err := tw.EndLine(); err != nil {
			return err
		}
	}
	return tw.Flush()
}

// WriteCopyNumber writes parallel x and cn series as two columns.
func WriteCopyNumber(w io.Writer, x, cn []int) error {
	tw := tsv.NewWriter(w)
	tw.WriteString("x\tcn")
	if err := tw.EndLine(); err != nil {
		return err
	}
	for i := range x {
		tw.WriteString(strconv.Itoa(x[i]))
		tw.WriteString(strconv.Itoa(cn[i]))
		if err := tw.EndLine(); err != nil {
			return err
		}
	}
	return tw.Flush()
}

// WriteSegments writes observed copy-number segment starts and values.
func WriteSegments(w io.Writer, x []int64, cn []float64) error {
	tw := tsv.NewWriter(w)
	tw.WriteString("x\tcn")
	if err := tw.EndLine(); err != nil {
		return err
	}
	for i := range x {
		tw.WriteString(strconv.FormatInt(x[i], 10))
		tw.WriteString(strconv.FormatFloat(cn[i], 'f', -1, 64))
		if err := tw.EndLine(); err != nil {
			return err
		}
	}
	return tw.Flush()
}

// WriteDiagram writes the diagram data of a simulated chromosome: a comment
// block with the axis labels followed by the copy-number series and the
// fusion table.
func WriteDiagram(w io.Writer, d simulate.DiagramData) error {
	tw := tsv.NewWriter(w)
	tw.WriteString("#letters=" + d.Letters)
	if err := tw.EndLine(); err != nil {
		return err
	}
	ticks := make([]string, len(d.XTicks))
	for i, t := range d.XTicks {
		ticks[i] = strconv.FormatFloat(t, 'f', -1, 64)
	}
	tw.WriteString("#xletters=" + strings.Join(d.XLetters, ","))
	if err := tw.EndLine(); err != nil {
		return err
	}
	tw.WriteString("#xticks=" + strings.Join(ticks, ","))
	if err := tw.EndLine(); err != nil {
		return err
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if err := WriteCopyNumber(w, d.X, d.CN); err != nil {
		return err
	}
	return WriteFusions(w, d.Fusions)
}

// WriteClashes writes one row per clash member: the component number, the
// rearrangement, and the shared signature key.
func WriteClashes(w io.Writer, clashes []identify.Clash) error {
	tw := tsv.NewWriter(w)
	tw.WriteString("component\trearrangement\tletters\tsignature")
	if err := tw.EndLine(); err != nil {
		return err
	}
	for i, c := range clashes {
		for _, m := range c.Members {
			tw.WriteString(strconv.Itoa(i + 1))
			tw.WriteString(m.String())
			tw.WriteString(c.Signature.Letters)
			tw.WriteString(c.Signature.Key())
			if err := tw.EndLine(); err != nil {
				return err
			}
		}
	}
	return tw.Flush()
}
