// Package puzzle defines the immutable Nonogram puzzle model: per-line
// run-length Clues, the Puzzle they form, feasibility validation, and the
// TAAI text format the batch scheduler and CLI read puzzles from.
//
// A Puzzle is read-only once constructed (spec.md §3 "Ownership": "The
// Puzzle (immutable clues) is shared read-only across the entire solve").
// Nothing in this package mutates a Puzzle after NewPuzzle returns it.
package puzzle
