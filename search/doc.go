// Package search implements the DFS branch-and-bound layer of spec.md
// §4.5: when propagation and probing both stall with unknown cells
// remaining, branch on one cell, recurse, and backtrack.
//
// Structured after the teacher's tsp/bb.go bbEngine: a dedicated engine
// struct (not a closure) carries the board, the per-puzzle Zobrist
// table, a node counter, and the search Mode, and dfs is a method on it
// rather than a free function threading state through parameters.
// Branching order is FILLED then EMPTY, a fixed tie-break (spec.md
// §4.5), on the cell probe.BestUnknownCell names: the unknown cell on
// the line with fewest remaining unknowns, ties broken by the cell's
// ascending row and then column, whichever of its two lines is the
// tighter one (the Open Question resolution in SPEC_FULL.md §8). The
// id of that line plays no part in the tie-break.
//
// ModeSolve returns on the first fully-decided, contradiction-free
// leaf. ModeVerify keeps searching after the first leaf, generalizing
// tsp/bb.go's single "best tour so far" incumbent into a small slice of
// up to two distinct solutions, and stops as soon as a second is found
// or the tree is exhausted.
package search
