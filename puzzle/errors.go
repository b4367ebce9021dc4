package puzzle

import "errors"

// Sentinel errors for puzzle construction and TAAI parsing.
// Callers MUST use errors.Is; these are never wrapped with format
// strings at the definition site (wrap with "%w" at call boundaries if
// extra context is needed).
var (
	// ErrBadSide indicates N is outside (0, bitline.MaxWidth].
	ErrBadSide = errors.New("puzzle: side length out of range")

	// ErrWrongLineCount indicates Rows or Cols does not have exactly N entries.
	ErrWrongLineCount = errors.New("puzzle: wrong number of line clues")

	// ErrNonPositiveRun indicates a run-length <= 0 appeared in a clue.
	ErrNonPositiveRun = errors.New("puzzle: clue contains a non-positive run length")

	// ErrInfeasibleClue indicates sum(runs) + (k-1) gaps exceeds the line width.
	ErrInfeasibleClue = errors.New("puzzle: clue is infeasible for this line width")

	// ErrMalformedInput indicates the TAAI stream is structurally wrong:
	// a missing/short puzzle block, or a non-numeric token in a clue line.
	ErrMalformedInput = errors.New("puzzle: malformed TAAI input")

	// ErrNoPuzzles indicates a TAAI stream contained zero puzzle blocks.
	ErrNoPuzzles = errors.New("puzzle: input contains no puzzles")
)
