package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/inodb/svtools/internal/chromstring"
	"github.com/inodb/svtools/internal/identify"
	"github.com/inodb/svtools/internal/simulate"
	"github.com/inodb/svtools/internal/tabular"
)

func newEnumerator(cmd *cobra.Command, logger *zap.Logger) (*identify.Enumerator, error) {
	codec, err := codecFor(cmd)
	if err != nil {
		return nil, err
	}
	e := identify.NewEnumerator()
	e.SetMaxTokens(intSetting(cmd, "max-tokens", keyMaxTokens))
	e.SetWorkers(intSetting(cmd, "workers", keyWorkers))
	e.SetCodec(codec)
	e.SetLogger(logger)
	return e, nil
}

func newEnumerateCmd() *cobra.Command {
	var countOnly bool

	cmd := &cobra.Command{
		Use:   "enumerate <chromosome>",
		Short: "List every rearrangement reachable from a chromosome",
		Long: `List the canonical forms of every rearrangement reachable from the
chromosome by reordering, inverting and deleting its blocks, one per line.
The empty chromosome is printed as -.`,
		Example: `  svtools enumerate ABC
  svtools enumerate --count ABCD`,
		Args: usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger()
			if err != nil {
				return err
			}
			defer logger.Sync()

			cs, err := chromstring.New(args[0])
			if err != nil {
				return &usageError{err}
			}
			e, err := newEnumerator(cmd, logger)
			if err != nil {
				return err
			}
			set, err := e.Rearrangements(cs)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if countOnly {
				_, err := fmt.Fprintln(out, len(set))
				return err
			}
			for _, r := range set.Sorted() {
				s := r.String()
				if r.IsEmpty() {
					s = "-"
				}
				if _, err := fmt.Fprintln(out, s); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().Int("max-tokens", identify.DefaultMaxTokens, "Refuse chromosomes with more blocks than this")
	cmd.Flags().Int("width", simulate.DefaultWidth, "Positions per letter block")
	cmd.Flags().BoolVar(&countOnly, "count", false, "Print the number of rearrangements only")
	return cmd
}

func newClashesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clashes <chromosome>",
		Short: "Find rearrangements that cannot be told apart",
		Long: `Enumerate the rearrangements of a chromosome, simulate each one, and
report the groups whose letters, copy number and fusions are identical.
Each output row is one member of a group.`,
		Example: `  svtools clashes ABC
  svtools clashes --workers 8 ABCD`,
		Args: usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger()
			if err != nil {
				return err
			}
			defer logger.Sync()

			cs, err := chromstring.New(args[0])
			if err != nil {
				return &usageError{err}
			}
			e, err := newEnumerator(cmd, logger)
			if err != nil {
				return err
			}
			clashes, err := e.Clashes(cs)
			if err != nil {
				return err
			}
			logger.Info("clash search done",
				zap.String("chromosome", cs.String()),
				zap.Int("groups", len(clashes)))
			return tabular.WriteClashes(cmd.OutOrStdout(), clashes)
		},
	}

	cmd.Flags().Int("max-tokens", identify.DefaultMaxTokens, "Refuse chromosomes with more blocks than this")
	cmd.Flags().Int("workers", 0, "Signature workers (0 = one per CPU)")
	cmd.Flags().Int("width", simulate.DefaultWidth, "Positions per letter block")
	return cmd
}
