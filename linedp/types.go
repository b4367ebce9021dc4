package linedp

import "github.com/lineforge/nonogram/bitline"

// Result is the outcome of solving one line against its current masks.
//
// When Contradiction is false, MustFill and MustEmpty give the absolute
// set of cells (including ones already decided on the line) that every
// feasible placement of the clue agrees on. A caller merges these into
// a board by masking off bits already known, per spec.md §4.1.
type Result struct {
	Contradiction bool
	MustFill      bitline.Mask
	MustEmpty     bitline.Mask
}
