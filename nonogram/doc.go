// Package nonogram is the solver core's public facade (SPEC_FULL.md
// §6.9): it owns one board.Board and one zobrist.Table per puzzle and
// exposes exactly two entry points, SolveOne and VerifyUnique, so that
// external collaborators (batch, cmd/nonogram) never reach into
// propagate/probe/search directly.
//
// SolveOne interleaves propagation and probing until both stall
// (spec.md §4.4: "repeated in alternation with propagation until both
// stall"), then hands any remaining unknowns to search in ModeSolve.
// VerifyUnique runs the identical pipeline in ModeVerify and reports
// whether the puzzle has zero, one, or more than one solution.
//
// A SolveContext is built once per puzzle via NewSolveContext and is
// not safe for concurrent use by more than one goroutine; batch-mode
// cross-puzzle parallelism gives each worker its own SolveContext
// (SPEC_FULL.md §3's concurrency note), mirroring how the teacher's
// builder package hands out one fresh, independently-owned value per
// caller rather than a shared mutable singleton.
package nonogram
