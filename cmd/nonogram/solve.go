package main

import (
	"time"

	"github.com/lineforge/nonogram/batch"
	"github.com/lineforge/nonogram/nonogram"
	"github.com/lineforge/nonogram/puzzle"
	"github.com/spf13/cobra"
)

// newSolveCmd builds the "solve <puzzle-file>" subcommand: read one
// puzzle, print "<node_count>\t<seconds>" then N lines of N characters
// from {0,1} (spec.md §6).
func newSolveCmd(flags *cliFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "solve <puzzle-file>",
		Short: "Solve a single puzzle and print its grid",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, args[0], flags)
		},
	}
}

func runSolve(cmd *cobra.Command, path string, flags *cliFlags) error {
	p, err := loadSinglePuzzle(path)
	if err != nil {
		return err
	}

	opts := solveOptions(flags)
	sc, err := nonogram.NewSolveContext(p, opts...)
	if err != nil {
		return err
	}

	start := time.Now()
	outcome, err := sc.SolveOne()
	elapsed := time.Since(start)
	if err != nil {
		return err
	}

	if flags.verbose {
		logger := consoleLogger(flags)
		logger.Info().
			Int("propagations", outcome.Propagations).
			Int("probes_tried", outcome.ProbesTried).
			Msg("solve metrics")
	}

	return batch.WriteSolution(cmd.OutOrStdout(), batch.Result{
		Index:   0,
		Puzzle:  p,
		Outcome: outcome,
		Elapsed: elapsed,
	})
}

// loadSinglePuzzle reads path as a TAAI stream and returns its first
// puzzle block.
func loadSinglePuzzle(path string) (*puzzle.Puzzle, error) {
	puzzles, err := batch.ParseInputFile(path)
	if err != nil {
		return nil, err
	}

	return puzzles[0], nil
}

// solveOptions translates the persistent --seed flag into a
// nonogram.Option, per SPEC_FULL.md §7's reproducible-bug-report
// supplement. A zero seed means "use the default/environment seed".
func solveOptions(flags *cliFlags) []nonogram.Option {
	if flags.seed == 0 {
		return nil
	}

	return []nonogram.Option{nonogram.WithZobristSeed(flags.seed)}
}
