package batch

import (
	"context"
	"time"

	"github.com/lineforge/nonogram/nonogram"
	"github.com/lineforge/nonogram/puzzle"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// solveOne builds a fresh SolveContext for p and runs SolveOne,
// timing the call. opts are forwarded to nonogram.NewSolveContext, so
// callers share a Zobrist seed/capacity policy across a whole batch
// without sharing any mutable state between puzzles.
func solveOne(index int, p *puzzle.Puzzle, opts ...nonogram.Option) Result {
	start := time.Now()

	sc, err := nonogram.NewSolveContext(p, opts...)
	if err != nil {
		return Result{Index: index, Puzzle: p, Err: err}
	}

	outcome, err := sc.SolveOne()
	elapsed := time.Since(start)
	if err != nil {
		return Result{Index: index, Puzzle: p, Elapsed: elapsed, Err: err}
	}

	return Result{Index: index, Puzzle: p, Outcome: outcome, Elapsed: elapsed}
}

// RunSequential solves every puzzle on the caller's goroutine, in
// order, logging one structured event per puzzle via logger.
func RunSequential(puzzles []*puzzle.Puzzle, logger zerolog.Logger, opts ...nonogram.Option) []Result {
	results := make([]Result, len(puzzles))
	for i, p := range puzzles {
		results[i] = solveOne(i, p, opts...)
		logOutcome(logger, results[i])
	}

	return results
}

// RunConcurrent solves independent puzzles across a bounded pool of
// goroutines via errgroup, each with its own SolveContext (its own
// Board and Zobrist table), matching spec.md §5's "no synchronization
// beyond the input/output queues of the scheduler". limit caps the
// number of puzzles solved at once; a non-positive limit means
// unbounded.
func RunConcurrent(ctx context.Context, puzzles []*puzzle.Puzzle, logger zerolog.Logger, limit int, opts ...nonogram.Option) ([]Result, error) {
	results := make([]Result, len(puzzles))

	var g errgroup.Group
	if limit > 0 {
		g.SetLimit(limit)
	}

	for i, p := range puzzles {
		i, p := i, p
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = solveOne(i, p, opts...)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}

	for _, res := range results {
		logOutcome(logger, res)
	}

	return results, nil
}
