package main

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/inodb/svtools/internal/stats"
	"github.com/inodb/svtools/internal/sv"
	"github.com/inodb/svtools/internal/tabular"
)

func newTestCmd() *cobra.Command {
	var (
		fusionPath string
		chrom      string
	)

	cmd := &cobra.Command{
		Use:   "test",
		Short: "Run randomness tests over observed fusions",
		Long: `Run two tests over the fusions of a sample, or of one chromosome with
--chrom:

  joins  chi-square test of the four fusion types against equal frequencies
  walk   modified Wald-Wolfowitz test on the head/tail walk of the
         position-sorted breakpoints of each chromosome; few alternating
         runs mean the derivative chromosome can be walked`,
		Example: `  svtools test --fusions sample.fusions.tsv
  svtools test --fusions sample.fusions.tsv.gz --chrom 3`,
		Args:    usageArgs(cobra.NoArgs),
		PreRunE: requireFlags("fusions"),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger()
			if err != nil {
				return err
			}
			defer logger.Sync()

			fusions, err := tabular.LoadFusions(fusionPath)
			if err != nil {
				return err
			}
			joined := fusions
			if chrom != "" {
				joined = tabular.FilterChrom(fusions, chrom)
			}
			logger.Debug("loaded fusions",
				zap.Int("total", len(fusions)),
				zap.Int("tested", len(joined)))

			out := cmd.OutOrStdout()
			if err := reportJoins(out, joined); err != nil {
				if !errors.Is(err, stats.ErrTooFewObservations) {
					return err
				}
				logger.Warn("skipping join test", zap.Error(err))
			}
			walked := []string{chrom}
			if chrom == "" {
				walked = chromosomes(fusions)
			}
			for _, c := range walked {
				if err := reportWalk(out, logger, c, tabular.Breakpoints(fusions, c)); err != nil {
					if !errors.Is(err, stats.ErrTooFewObservations) {
						return err
					}
					logger.Warn("skipping walk test", zap.String("chrom", c), zap.Error(err))
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&fusionPath, "fusions", "", "Fusion table (use '-' for stdin)")
	cmd.Flags().StringVar(&chrom, "chrom", "", "Restrict the tests to one chromosome")
	return cmd
}

func reportJoins(w io.Writer, fusions []sv.Fusion) error {
	r, err := stats.JoinTest(fusions)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "## joins")
	for i, t := range sv.FusionTypes {
		fmt.Fprintf(w, "%s: %d\n", t, r.Counts.Counts[i])
	}
	if r.Counts.Undetermined > 0 {
		fmt.Fprintf(w, "undetermined: %d\n", r.Counts.Undetermined)
	}
	_, err = fmt.Fprintf(w, "chi-square: %.4f; p-value: %.4f\n\n", r.ChiSq, r.P)
	return err
}

// chromosomes returns the distinct chromosomes of all fusion ends, sorted.
func chromosomes(fusions []sv.Fusion) []string {
	var out []string
	for _, f := range fusions {
		for _, c := range []string{f.BP1().Chrom, f.BP2().Chrom} {
			if !slices.Contains(out, c) {
				out = append(out, c)
			}
		}
	}
	slices.Sort(out)
	return out
}

func reportWalk(w io.Writer, logger *zap.Logger, chrom string, bps []sv.Breakpoint) error {
	walk, dropped := stats.Walk(bps)
	if dropped > 0 {
		logger.Warn("breakpoints of unknown orientation left out of walk",
			zap.String("chrom", chrom),
			zap.Int("dropped", dropped))
	}
	r, err := stats.WalkTest(walk)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "## walk %s\n", chrom)
	fmt.Fprintln(w, r.Walk)
	fmt.Fprintln(w, strings.Join(r.Runs, "|"))
	fmt.Fprintf(w, "heads: %d; tails: %d\n", r.Heads, r.Tails)
	fmt.Fprintf(w, "alternating runs: %d; average run length: %.2f\n", len(r.Runs), r.AverageRunLength)
	fmt.Fprintf(w, "expected alternating runs: ~ %g; sd: %g\n", r.Mean, r.SD)
	_, err = fmt.Fprintf(w, "p-value: %.4g\n", r.P)
	return err
}
