package batch

import (
	"time"

	"github.com/lineforge/nonogram/nonogram"
	"github.com/lineforge/nonogram/puzzle"
)

// Result is one puzzle's outcome from a batch run.
type Result struct {
	// Index is the puzzle's position in the input stream, 0-based.
	Index int
	// Puzzle is the parsed clue set solved. It is never nil for a
	// Result from RunSequential/RunConcurrent: ParseInput rejects the
	// whole stream when any block is malformed, so no Result is ever
	// built for a malformed puzzle.
	Puzzle *puzzle.Puzzle
	// Outcome is the solve result; meaningful only when Err is nil.
	Outcome nonogram.Outcome
	// Elapsed is wall-clock time spent inside SolveOne.
	Elapsed time.Duration
	// Err is non-nil when building the SolveContext or solving the
	// puzzle failed; the puzzle is skipped rather than aborting the
	// whole batch.
	Err error
}
