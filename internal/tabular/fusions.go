// Package tabular reads and writes the flat tab-delimited files exchanged
// with the outside world: fusion tables, diagram series and clash reports.
package tabular

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/grailbio/base/tsv"
	"github.com/klauspost/compress/gzip"

	"github.com/inodb/svtools/internal/sv"
)

// FusionColumns is the header of a fusion table.
var FusionColumns = []string{"chrom1", "pos1", "strand1", "chrom2", "pos2", "strand2"}

// fusionRow is one line of a fusion table.
type fusionRow struct {
	Chrom1  string `tsv:"chrom1"`
	Pos1    int64  `tsv:"pos1"`
	Strand1 string `tsv:"strand1"`
	Chrom2  string `tsv:"chrom2"`
	Pos2    int64  `tsv:"pos2"`
	Strand2 string `tsv:"strand2"`
}

func (r fusionRow) fusion() sv.Fusion {
	return sv.NewFusion(
		sv.Breakpoint{Chrom: r.Chrom1, Pos: r.Pos1, Strand: sv.ParseStrand(r.Strand1)},
		sv.Breakpoint{Chrom: r.Chrom2, Pos: r.Pos2, Strand: sv.ParseStrand(r.Strand2)},
	)
}

// RowError reports a table row that could not be read.
type RowError struct {
	Line int
	Err  error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("fusion table error at line %d: %v", e.Line, e.Err)
}

func (e *RowError) Unwrap() error { return e.Err }

// ReadFusions reads a tab-delimited fusion table with a header row naming
// FusionColumns. Lines starting with # are skipped.
func ReadFusions(r io.Reader) ([]sv.Fusion, error) {
	tr := tsv.NewReader(r)
	tr.HasHeaderRow = true
	tr.UseHeaderNames = true
	tr.Comment = '#'

	var fusions []sv.Fusion
	for line := 2; ; line++ {
		var row fusionRow
		if err := tr.Read(&row); err != nil {
			if err == io.EOF {
				break
			}
			return nil, &RowError{Line: line, Err: err}
		}
		fusions = append(fusions, row.fusion())
	}
	return fusions, nil
}

// LoadFusions reads a fusion table from a plain or gzipped file.
// Use "-" for stdin.
func LoadFusions(path string) ([]sv.Fusion, error) {
	if path == "-" {
		return ReadFusions(os.Stdin)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open fusion table: %w", err)
	}
	defer f.Close()

	br := bufio.NewReader(f)
	magic, err := br.Peek(2)
	if err == nil && magic[0] == 0x1f && magic[1] == 0x8b {
		gz, err := gzip.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("create gzip reader: %w", err)
		}
		defer gz.Close()
		return ReadFusions(gz)
	}
	return ReadFusions(br)
}

// FilterChrom returns the fusions with both ends on chrom.
func FilterChrom(fusions []sv.Fusion, chrom string) []sv.Fusion {
	var out []sv.Fusion
	for _, f := range fusions {
		if f.BP1().Chrom == chrom && f.BP2().Chrom == chrom {
			out = append(out, f)
		}
	}
	return out
}

// Breakpoints returns both ends of every fusion on chrom, sorted by
// position. An empty chrom keeps every breakpoint.
func Breakpoints(fusions []sv.Fusion, chrom string) []sv.Breakpoint {
	var bps []sv.Breakpoint
	for _, f := range fusions {
		for _, bp := range []sv.Breakpoint{f.BP1(), f.BP2()} {
			if chrom == "" || bp.Chrom == chrom {
				bps = append(bps, bp)
			}
		}
	}
	slices.SortStableFunc(bps, func(a, b sv.Breakpoint) int {
		switch {
		case a.Pos < b.Pos:
			return -1
		case a.Pos > b.Pos:
			return 1
		}
		return 0
	})
	return bps
}
