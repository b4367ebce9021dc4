package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// cliFlags holds the root command's persistent flags, read by every
// subcommand and by legacy batch mode.
type cliFlags struct {
	seed    int64
	verbose bool
}

// newRootCmd builds the cobra command tree: solve, generate, and a
// no-arg RunE that falls back to legacy batch mode, matching
// spec.md §6's "(no args): batch mode" contract.
func newRootCmd() *cobra.Command {
	flags := &cliFlags{}

	root := &cobra.Command{
		Use:   "nonogram",
		Short: "Solve and generate square Nonogram puzzles",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatchMode(flags)
		},
	}

	root.PersistentFlags().Int64Var(&flags.seed, "seed", 0, "override the Zobrist memoization seed (0 = use default/env)")
	root.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "log solve metrics to stderr")

	root.AddCommand(newSolveCmd(flags))
	root.AddCommand(newGenerateCmd(flags))

	return root
}

// consoleLogger returns the human-readable logger used for verbose CLI
// output, level gated by flags.verbose.
func consoleLogger(flags *cliFlags) zerolog.Logger {
	level := zerolog.Disabled
	if flags.verbose {
		level = zerolog.InfoLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger().Level(level)
}
