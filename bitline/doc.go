// Package bitline provides fixed-width bitmask primitives over a single
// Nonogram line (one row or one column).
//
// A Mask is a uint32 in which bit i represents cell i of the line (column i
// for a row-mask, row i for a column-mask). Every package-level width is
// bounded by MaxWidth (32); callers pass the logical line width n (Puzzle's
// N) explicitly so the same Mask type serves any n <= MaxWidth, and every
// mutator re-masks its result to n bits before returning, per spec invariant
// "top bits beyond N must be masked to zero after every operation".
//
// Why uint32: the reference configuration (N = 25) is chosen specifically so
// a whole line fits in one machine word; uint32 is the smallest stdlib
// integer type that holds 25 (and up to 32) bits without padding.
package bitline
