package main

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/inodb/svtools/internal/frame"
	"github.com/inodb/svtools/internal/sv"
	"github.com/inodb/svtools/internal/tabular"
)

// observation is the diagram data of one chromosome read from files.
type observation struct {
	fusions []sv.Fusion
	x       []int64
	cn      []float64
	summary frame.Summary
	chroms  []string // chromosomes present in the CN table
}

// loadObservation reads the fusion table and the CN table concurrently.
func loadObservation(fusionPath, cnPath, chrom string) (*observation, error) {
	obs := &observation{}

	var g errgroup.Group
	g.Go(func() error {
		fusions, err := tabular.LoadFusions(fusionPath)
		if err != nil {
			return err
		}
		obs.fusions = tabular.FilterChrom(fusions, chrom)
		return nil
	})
	g.Go(func() error {
		f, err := frame.Open()
		if err != nil {
			return err
		}
		defer f.Close()

		if obs.chroms, err = f.Chroms(cnPath); err != nil {
			return err
		}
		if obs.x, obs.cn, err = f.CopyNumber(cnPath, chrom); err != nil {
			return err
		}
		obs.summary, err = f.Summarize(cnPath, chrom)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return obs, nil
}

func newDiagramCmd() *cobra.Command {
	var (
		fusionPath string
		cnPath     string
		chrom      string
	)

	cmd := &cobra.Command{
		Use:   "diagram",
		Short: "Extract diagram data for one chromosome of a sample",
		Long: `Read a fusion table and a copy-number BED table and print the
copy-number series and intrachromosomal fusions of one chromosome.

The fusion table has a header row with columns
chrom1 pos1 strand1 chrom2 pos2 strand2 and may be gzipped.
The CN table has no header: chrom start end name CN.`,
		Example: `  svtools diagram --fusions sample.fusions.tsv.gz --cn sample.cn.bed --chrom 3`,
		Args:    usageArgs(cobra.NoArgs),
		PreRunE: requireFlags("fusions", "cn", "chrom"),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger()
			if err != nil {
				return err
			}
			defer logger.Sync()

			obs, err := loadObservation(fusionPath, cnPath, chrom)
			if err != nil {
				return err
			}
			logger.Info("loaded observation",
				zap.String("chrom", chrom),
				zap.Int("fusions", len(obs.fusions)),
				zap.Int("segments", obs.summary.Segments),
				zap.Int("cn_states", obs.summary.States))
			if !slices.Contains(obs.chroms, chrom) {
				logger.Warn("chromosome not in CN table",
					zap.String("chrom", chrom),
					zap.Strings("available", obs.chroms))
			}

			out := cmd.OutOrStdout()
			if _, err := fmt.Fprintf(out, "#chrom=%s\n", chrom); err != nil {
				return err
			}
			if err := tabular.WriteSegments(out, obs.x, obs.cn); err != nil {
				return err
			}
			return tabular.WriteFusions(out, obs.fusions)
		},
	}

	cmd.Flags().StringVar(&fusionPath, "fusions", "", "Fusion table (use '-' for stdin)")
	cmd.Flags().StringVar(&cnPath, "cn", "", "Copy-number BED table")
	cmd.Flags().StringVar(&chrom, "chrom", "", "Chromosome to extract")
	return cmd
}
