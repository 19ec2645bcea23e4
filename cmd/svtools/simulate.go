package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/inodb/svtools/internal/chromstring"
	"github.com/inodb/svtools/internal/simulate"
	"github.com/inodb/svtools/internal/tabular"
)

// intSetting returns the flag value when it was given on the command line
// and the configured value otherwise.
func intSetting(cmd *cobra.Command, flag, key string) int {
	if f := cmd.Flags().Lookup(flag); f != nil && f.Changed {
		n, _ := cmd.Flags().GetInt(flag)
		return n
	}
	return viper.GetInt(key)
}

func codecFor(cmd *cobra.Command) (simulate.Codec, error) {
	c, err := simulate.NewCodec(intSetting(cmd, "width", keyWidth))
	if err != nil {
		return simulate.Codec{}, &usageError{err}
	}
	return c, nil
}

func newSimulateCmd() *cobra.Command {
	var positionsOnly bool

	cmd := &cobra.Command{
		Use:   "simulate <rearrangement>",
		Short: "Simulate a rearranged chromosome",
		Long: `Simulate the chromosome written in letter notation and print its
copy-number series and fusions. Each letter is a block of --width positions;
a trailing ' marks an inverted block.`,
		Example: `  svtools simulate "AB'C"
  svtools simulate --positions "AB'"
  svtools simulate --width 4 ABAB`,
		Args: usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger()
			if err != nil {
				return err
			}
			defer logger.Sync()

			codec, err := codecFor(cmd)
			if err != nil {
				return err
			}
			cs, err := chromstring.New(args[0])
			if err != nil {
				return &usageError{err}
			}
			logger.Debug("simulating",
				zap.String("input", args[0]),
				zap.String("canonical", cs.String()),
				zap.Int("width", codec.Width))

			out := cmd.OutOrStdout()
			if positionsOnly {
				positions, err := codec.LettersToPositions(args[0])
				if err != nil {
					return err
				}
				fields := make([]string, len(positions))
				for i, p := range positions {
					fields[i] = strconv.Itoa(p)
				}
				_, err = fmt.Fprintln(out, strings.Join(fields, " "))
				return err
			}

			d, err := codec.Diagram(args[0])
			if err != nil {
				return err
			}
			logger.Info("simulated",
				zap.String("rearrangement", args[0]),
				zap.Int("fusions", len(d.Fusions)),
				zap.Int("max_cn", d.MaxCN()))
			return tabular.WriteDiagram(out, d)
		},
	}

	cmd.Flags().Int("width", simulate.DefaultWidth, "Positions per letter block")
	cmd.Flags().BoolVar(&positionsOnly, "positions", false, "Print the position list only")
	return cmd
}
