package nonogram

import (
	"context"

	"github.com/lineforge/nonogram/board"
	"github.com/lineforge/nonogram/probe"
	"github.com/lineforge/nonogram/propagate"
	"github.com/lineforge/nonogram/puzzle"
	"github.com/lineforge/nonogram/search"
	"github.com/lineforge/nonogram/zobrist"
)

// SolveContext owns the mutable state for solving one Puzzle: its
// Board and its Zobrist table. It is built once per puzzle via
// NewSolveContext and is not safe for concurrent use.
type SolveContext struct {
	puzzle *puzzle.Puzzle
	board  *board.Board
	table  *zobrist.Table
	ctx    context.Context

	propagations int
	probesTried  int
}

// NewSolveContext builds a SolveContext for p, applying opts over the
// default options (zobrist.DefaultCapacity, a seed from
// NONOGRAM_ZOBRIST_SEED or zobrist.DefaultSeed, no cancellation).
//
// This departs from the illustrative signature in SPEC_FULL.md §6.9 by
// returning an error: option validation (invalid capacity, nil
// context) and zobrist.New's own validation both need a path to the
// caller, following the construct-validates-and-returns-sentinel-error
// convention the rest of this module (and the teacher's builder
// package) uses throughout rather than panicking on bad input.
func NewSolveContext(p *puzzle.Puzzle, opts ...Option) (*SolveContext, error) {
	o := defaultOptions()
	for _, apply := range opts {
		apply(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	tbl, err := zobrist.New(zobrist.WithCapacity(o.ZobristCapacity), zobrist.WithSeed(o.ZobristSeed))
	if err != nil {
		return nil, err
	}

	return &SolveContext{
		puzzle: p,
		board:  board.New(),
		table:  tbl,
		ctx:    o.Context,
	}, nil
}

// SolveOne runs propagation, probing, and (if needed) first-solution
// DFS search, per spec.md §4.4–4.5.
func (sc *SolveContext) SolveOne() (Outcome, error) {
	status, err := sc.runToStall()
	if err != nil {
		return Outcome{}, err
	}

	switch status {
	case propagate.Contradiction:
		return Outcome{Propagations: sc.propagations, ProbesTried: sc.probesTried}, nil
	case propagate.Solved:
		return Outcome{
			Solved:       true,
			Grid:         sc.board.Grid(),
			Propagations: sc.propagations,
			ProbesTried:  sc.probesTried,
		}, nil
	}

	result, err := search.Run(sc.ctx, sc.board, sc.puzzle, sc.table, search.ModeSolve)
	if err != nil {
		return Outcome{}, err
	}

	out := Outcome{Nodes: result.Nodes, Propagations: sc.propagations, ProbesTried: sc.probesTried}
	if len(result.Solutions) > 0 {
		out.Solved = true
		out.Grid = result.Solutions[0]
	}

	return out, nil
}

// VerifyUnique runs the same pipeline as SolveOne in search.ModeVerify,
// reporting whether the puzzle has exactly one solution.
func (sc *SolveContext) VerifyUnique() (VerifyOutcome, error) {
	status, err := sc.runToStall()
	if err != nil {
		return VerifyOutcome{}, err
	}

	switch status {
	case propagate.Contradiction:
		return VerifyOutcome{Contradiction: true}, nil
	case propagate.Solved:
		return VerifyOutcome{Unique: true, Solution: sc.board.Grid()}, nil
	}

	result, err := search.Run(sc.ctx, sc.board, sc.puzzle, sc.table, search.ModeVerify)
	if err != nil {
		return VerifyOutcome{}, err
	}

	switch len(result.Solutions) {
	case 0:
		return VerifyOutcome{Contradiction: true, Nodes: result.Nodes}, nil
	case 1:
		return VerifyOutcome{Unique: true, Solution: result.Solutions[0], Nodes: result.Nodes}, nil
	default:
		return VerifyOutcome{Nodes: result.Nodes}, nil
	}
}

// runToStall alternates full-board propagation with probing
// (spec.md §4.4: "repeated in alternation with propagation until both
// stall") until either resolves the puzzle, finds a contradiction, or
// a full round leaves the unknown-cell count unchanged.
func (sc *SolveContext) runToStall() (propagate.Status, error) {
	status, n, err := propagate.Run(sc.board, sc.puzzle, sc.table, propagate.AllLines())
	if err != nil {
		return propagate.Contradiction, err
	}
	sc.propagations += n
	if status != propagate.Stalled {
		return status, nil
	}

	for {
		before := sc.totalUnknown()

		pstatus, tried, err := probe.Run(sc.board, sc.puzzle, sc.table)
		if err != nil {
			return propagate.Contradiction, err
		}
		sc.probesTried += tried
		if pstatus == propagate.Contradiction {
			return propagate.Contradiction, nil
		}

		status, n, err = propagate.Run(sc.board, sc.puzzle, sc.table, propagate.AllLines())
		if err != nil {
			return propagate.Contradiction, err
		}
		sc.propagations += n
		if status != propagate.Stalled {
			return status, nil
		}

		if sc.totalUnknown() == before {
			return propagate.Stalled, nil
		}
	}
}

// totalUnknown sums the remaining unknown cells over every row view
// (each cell counted exactly once).
func (sc *SolveContext) totalUnknown() int {
	total := 0
	for r := 0; r < puzzle.N; r++ {
		total += sc.board.UnknownCount(puzzle.RowID(r))
	}

	return total
}
