// Package probe implements the 2-SAT-style case analysis of spec.md
// §4.4: for an unknown cell, trial-assign FILLED, propagate; restore;
// trial-assign EMPTY, propagate; then either report a global
// contradiction (both trials fail), commit the surviving trial (one
// fails), or commit the cell-wise intersection of both outcomes (both
// succeed).
//
// Cell ordering — fewest-remaining-unknowns-first, where a cell's count
// is the smaller of its row's and its column's, ties broken by the
// cell's ascending row and then column (the id of the tighter line is
// not used) — is grounded on the teacher's
// tsp/bb.go deterministic neighbor-ordering precompute
// (neighborOrder/buildNeighborOrder), adapted from "neighbor sorted by
// edge weight" to "unknown cell sorted by its tightest owning line's
// remaining-unknown count". search reuses BestUnknownCell for the same
// deterministic branch-cell choice, so the two layers agree on which
// cell matters most without duplicating the heuristic.
package probe
