// Package linedp implements the per-line dynamic-programming inference of
// spec.md §4.1: given one line's Clue and its current (known, filled)
// masks, compute the tightest cell-wise forced values every feasible
// run placement agrees on, or report CONTRADICTION if no placement is
// consistent with the current masks at all.
//
// Algorithm (spec.md §4.1, Θ(k·N) forward/backward tables + Θ(k·N)
// projection, Θ(N²) worst case overall):
//
//  1. Forward table f(i,p): "runs 1..i can be placed within columns
//     0..p with run i ending exactly at p", computed by DP over
//     (run index, end position) with O(1) transitions after an O(N)
//     per-run precompute of "last position a prior run could validly
//     end at or before a threshold" (a running-maximum scan, not a
//     nested loop).
//  2. Backward table, obtained by re-running the identical forward DP
//     on the bit-reversed line and run-order-reversed clue (reverseFor)
//     rather than duplicating the algorithm: g(i,p) = "runs i..k start
//     exactly at p" is f2(k-i+1, N-1-p) on the reversed problem.
//  3. For each run i, scan f(i,·) ∧ ext(i,·) (ext composes g for the
//     runs after i over every start at or after p+2 that leaves no
//     filled cell in the gap, or a direct suffix-clean check after the
//     last run) to find every end position that run i can occupy in
//     SOME fully consistent placement. If no such position exists for
//     any run, the line is CONTRADICTION.
//  4. Project: the overlap of every run's leftmost/rightmost window is
//     force-filled (spec.md's classic "every feasible placement covers
//     it" cells); a cell covered by no run at any of its feasible end
//     positions is force-empty (never covered by any run in any
//     feasible placement). This is a Θ(k·N) projection, matching the
//     Θ(N) (per-run, amortized) asymptotic spec.md §4.1 calls for.
package linedp
