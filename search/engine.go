package search

import (
	"context"

	"github.com/lineforge/nonogram/board"
	"github.com/lineforge/nonogram/probe"
	"github.com/lineforge/nonogram/propagate"
	"github.com/lineforge/nonogram/puzzle"
	"github.com/lineforge/nonogram/zobrist"
)

// searchEngine holds all search data and policy for one Run, mirroring
// tsp/bb.go's bbEngine: explicit state, no closures.
type searchEngine struct {
	ctx   context.Context
	b     *board.Board
	p     *puzzle.Puzzle
	tbl   *zobrist.Table
	mode  Mode
	nodes int
	found [][puzzle.N][puzzle.N]bool
}

// trialOrder is the fixed FILLED-then-EMPTY branching tie-break of
// spec.md §4.5.
var trialOrder = [2]board.CellState{board.Filled, board.Empty}

// Run searches b (already propagated/probed to a stall) for solutions
// under mode, respecting ctx cancellation.
func Run(ctx context.Context, b *board.Board, p *puzzle.Puzzle, tbl *zobrist.Table, mode Mode) (Outcome, error) {
	e := &searchEngine{ctx: ctx, b: b, p: p, tbl: tbl, mode: mode}
	_, err := e.dfs()
	if err != nil {
		return Outcome{}, err
	}

	return Outcome{
		Solutions:     e.found,
		Nodes:         e.nodes,
		Contradiction: len(e.found) == 0,
	}, nil
}

// dfs explores from the engine's current board state. done reports
// whether the search satisfied its mode and should unwind without
// further backtracking at this level (the board is left exactly as it
// stands when done is true).
func (e *searchEngine) dfs() (done bool, err error) {
	e.nodes++
	if err := e.ctx.Err(); err != nil {
		return true, err
	}

	if e.b.Solved() {
		e.found = append(e.found, e.b.Grid())
		if e.mode == ModeSolve {
			return true, nil
		}

		return len(e.found) >= 2, nil
	}

	cell, ok := probe.BestUnknownCell(e.b)
	if !ok {
		// Every cell decided implies Board.Solved(); unreachable in
		// correct usage, but treated as a (non-)solution leaf rather
		// than a panic.
		return false, nil
	}

	for _, trial := range trialOrder {
		snap := e.b.Snapshot()
		if err := e.b.SetCell(cell.Row, cell.Col, trial); err != nil {
			e.b.Restore(snap)

			continue
		}

		consistent, err := e.propagateAndProbe(cell)
		if err != nil {
			return false, err
		}
		if consistent {
			done, err := e.dfs()
			if err != nil {
				return false, err
			}
			if done {
				return true, nil
			}
		}
		e.b.Restore(snap)
	}

	return false, nil
}

// propagateAndProbe runs propagation then probing from the lines
// touched by a just-made trial assignment, reporting whether both
// stages avoided contradiction.
func (e *searchEngine) propagateAndProbe(cell probe.Cell) (bool, error) {
	seeds := []puzzle.LineID{puzzle.RowID(cell.Row), puzzle.ColID(cell.Col)}
	status, _, err := propagate.Run(e.b, e.p, e.tbl, seeds)
	if err != nil {
		return false, err
	}
	if status == propagate.Contradiction {
		return false, nil
	}

	status, _, err = probe.Run(e.b, e.p, e.tbl)
	if err != nil {
		return false, err
	}

	return status != propagate.Contradiction, nil
}
