package search

import "github.com/lineforge/nonogram/puzzle"

// Mode selects how many distinct solutions the search looks for.
type Mode int

const (
	// ModeSolve stops at the first fully-decided, contradiction-free
	// leaf (spec.md's first-solution SOLVE).
	ModeSolve Mode = iota
	// ModeVerify keeps searching after the first leaf until a second
	// distinct solution is found, or the tree is exhausted (spec.md's
	// two-solution GENERATE/uniqueness check).
	ModeVerify
)

// Outcome is the result of a search Run.
type Outcome struct {
	// Solutions holds up to one (ModeSolve) or two (ModeVerify)
	// distinct fully-decided grids found, in discovery order.
	Solutions [][puzzle.N][puzzle.N]bool
	// Nodes counts DFS entries (spec.md §4.5: "increment on every DFS
	// entry, not on propagation steps").
	Nodes int
	// Contradiction is true when the tree was exhausted with zero
	// solutions found: the puzzle itself admits no valid grid.
	Contradiction bool
}
