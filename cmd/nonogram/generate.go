package main

import (
	"fmt"

	"github.com/lineforge/nonogram/nonogram"
	"github.com/spf13/cobra"
)

// newGenerateCmd builds the "generate <puzzle-file>" subcommand: read
// one puzzle, print a single integer — positive node count for a
// unique solution, -1 for no solution, -2 for multiple solutions
// (spec.md §6).
func newGenerateCmd(flags *cliFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "generate <puzzle-file>",
		Short: "Verify a puzzle has a unique solution",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, args[0], flags)
		},
	}
}

func runGenerate(cmd *cobra.Command, path string, flags *cliFlags) error {
	p, err := loadSinglePuzzle(path)
	if err != nil {
		return err
	}

	sc, err := nonogram.NewSolveContext(p, solveOptions(flags)...)
	if err != nil {
		return err
	}

	outcome, err := sc.VerifyUnique()
	if err != nil {
		return err
	}

	if flags.verbose {
		consoleLogger(flags).Info().
			Bool("unique", outcome.Unique).
			Bool("contradiction", outcome.Contradiction).
			Msg("generate metrics")
	}

	result := -2
	switch {
	case outcome.Contradiction:
		result = -1
	case outcome.Unique:
		result = outcome.Nodes
		if result == 0 {
			// Fully decided by propagation/probing alone: still a
			// unique solution, reported with the minimum meaningful
			// node count.
			result = 1
		}
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), result)

	return err
}
