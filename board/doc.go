// Package board implements the mutable partial-assignment state for one
// Nonogram solve: the per-line (known, filled) mask pairs of spec.md §3,
// stored twice — once row-indexed, once column-indexed — as mirror
// views of the same N×N cell grid (spec.md §9 "Cyclic mirror state").
//
// SetCell is the only per-cell mutator (ApplyLineResult writes through
// it) and is the single point where both views are kept in sync: a
// write to cell (r,c) updates Rows[r] and Cols[c] in the same call, so
// the two views can never observe a cell differently between
// operations (spec.md §8 invariant 2). Restore replaces both views
// together from a Snapshot.
//
// Board is single-writer per spec.md §5: exactly one active search frame
// mutates it at a time. Branching takes a Snapshot (a flat value-type
// copy of both [N]Line arrays, not a deep object clone — spec.md §9
// "Deep-copy at branch") and Restore rewinds to it in O(N) time.
package board
