package linedp

import "errors"

// ErrClueTooLong indicates a clue cannot fit in the given width at all
// (sum of runs plus mandatory single-cell gaps exceeds N). Solve returns
// this for any clue puzzle.ValidateClue rejects, including one with a
// non-positive run; puzzle.NewPuzzle rejects such clues before a solve
// ever begins.
var ErrClueTooLong = errors.New("linedp: clue cannot fit in line width")
