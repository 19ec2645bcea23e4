// Package main provides the svtools command-line tool.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Exit codes
const (
	ExitSuccess = 0
	ExitError   = 1
	ExitUsage   = 2
)

// Version information (set at build time)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Config keys and their defaults.
const (
	keyWidth     = "simulate.width"
	keyMaxTokens = "enumerate.max_tokens"
	keyWorkers   = "enumerate.workers"
	keyLogLevel  = "log.level"
)

// usageError marks errors caused by how the command was invoked.
type usageError struct{ err error }

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

// usageArgs wraps a positional argument validator so its failures exit with
// ExitUsage.
func usageArgs(fn cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := fn(cmd, args); err != nil {
			return &usageError{err}
		}
		return nil
	}
}

// requireFlags fails with a usage error when any named flag is unset.
func requireFlags(names ...string) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		for _, name := range names {
			if f := cmd.Flags().Lookup(name); f == nil || !f.Changed {
				return &usageError{fmt.Errorf("required flag --%s not set", name)}
			}
		}
		return nil
	}
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		var uerr *usageError
		if errors.As(err, &uerr) {
			fmt.Fprintf(stderr, "Run 'svtools --help' for usage.\n")
			return ExitUsage
		}
		return ExitError
	}
	return ExitSuccess
}

func newRootCmd() *cobra.Command {
	var (
		cfgFile string
		verbose bool
	)

	root := &cobra.Command{
		Use:   "svtools",
		Short: "Structural variant rearrangement simulation and identifiability",
		Long: `svtools simulates chromosome rearrangements written in letter notation,
enumerates the rearrangements reachable from a chromosome, finds distinct
rearrangements that produce the same copy-number and fusion observation, and
runs randomness tests over observed fusions.`,
		Version:       fmt.Sprintf("%s (%s) built %s", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(cfgFile)
		},
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default: ~/.svtools.yaml)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log at debug level")
	viper.BindPFlag("log.verbose", root.PersistentFlags().Lookup("verbose"))

	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &usageError{err}
	})

	root.AddCommand(newSimulateCmd())
	root.AddCommand(newEnumerateCmd())
	root.AddCommand(newClashesCmd())
	root.AddCommand(newDiagramCmd())
	root.AddCommand(newTestCmd())
	root.AddCommand(newConfigCmd())

	return root
}

// initConfig loads ~/.svtools.yaml (or cfgFile) and SVTOOLS_* environment
// overrides. A missing config file is not an error.
func initConfig(cfgFile string) error {
	viper.SetDefault(keyWidth, 10)
	viper.SetDefault(keyMaxTokens, 6)
	viper.SetDefault(keyWorkers, 0)
	viper.SetDefault(keyLogLevel, "info")

	viper.SetEnvPrefix("SVTOOLS")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil
		}
		viper.SetConfigFile(filepath.Join(home, ".svtools.yaml"))
	}
	viper.SetConfigType("yaml")

	if err := viper.ReadInConfig(); err != nil {
		if cfgFile == "" && errors.Is(err, os.ErrNotExist) {
			return nil
		}
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("reading config: %w", err)
	}
	return nil
}

// newLogger builds a console logger on stderr at the configured level.
func newLogger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(viper.GetString(keyLogLevel))
	if err != nil {
		return nil, &usageError{fmt.Errorf("invalid %s: %w", keyLogLevel, err)}
	}
	if viper.GetBool("log.verbose") {
		level = zapcore.DebugLevel
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.DisableStacktrace = true
	return cfg.Build()
}
