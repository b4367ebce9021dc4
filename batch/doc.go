// Package batch is the thin external collaborator spec.md §4.6
// describes: it iterates over a TAAI input stream, dispatches each
// puzzle to a nonogram.SolveContext's SolveOne, and writes one result
// block per puzzle in the solve output format of spec.md §6. It knows
// nothing about line DP, propagation, or search — only about files,
// iteration order, and the two-method nonogram facade.
//
// RunSequential solves puzzles one at a time on the caller's
// goroutine. RunConcurrent fans out across independent puzzles with
// golang.org/x/sync/errgroup, giving each goroutine its own
// SolveContext (its own Board and Zobrist table) so no puzzle's solve
// state is ever shared across goroutines, per spec.md §5's
// cross-puzzle concurrency model.
//
// Diagnostics are structured zerolog events — one per puzzle outcome
// (puzzle_solved, puzzle_contradiction, puzzle_malformed) — the stream
// cmd/nonogram's legacy batch mode writes to log.txt. The schema is
// intentionally free-form (spec.md §9 leaves log.txt unspecified).
package batch
