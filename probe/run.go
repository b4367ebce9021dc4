package probe

import (
	"github.com/lineforge/nonogram/board"
	"github.com/lineforge/nonogram/propagate"
	"github.com/lineforge/nonogram/puzzle"
	"github.com/lineforge/nonogram/zobrist"
)

// Run performs repeated probing passes over b until a full pass commits
// no new cell, per spec.md §4.4. It reports the terminal propagate
// Status and how many cells were actually trial-assigned.
func Run(b *board.Board, p *puzzle.Puzzle, tbl *zobrist.Table) (propagate.Status, int, error) {
	tried := 0
	for {
		progressed := false
		for _, cell := range OrderUnknownCells(b) {
			if b.Line(puzzle.RowID(cell.Row)).State(cell.Col) != board.Unknown {
				continue // decided by an earlier cell in this same pass
			}
			tried++

			status, changed, err := probeOne(b, p, tbl, cell)
			if err != nil {
				return propagate.Contradiction, tried, err
			}
			if status == propagate.Contradiction {
				return propagate.Contradiction, tried, nil
			}
			if changed {
				progressed = true
			}
			if b.Solved() {
				return propagate.Solved, tried, nil
			}
		}
		if !progressed {
			break
		}
	}

	if b.Solved() {
		return propagate.Solved, tried, nil
	}

	return propagate.Stalled, tried, nil
}

// probeOne runs one 2-SAT-style case analysis on cell, committing
// whatever spec.md §4.4 rules 4-6 dictate. changed reports whether the
// board gained any newly decided cell.
func probeOne(b *board.Board, p *puzzle.Puzzle, tbl *zobrist.Table, cell Cell) (propagate.Status, bool, error) {
	snap := b.Snapshot()
	seeds := []puzzle.LineID{puzzle.RowID(cell.Row), puzzle.ColID(cell.Col)}

	statusA, stateA, err := trial(b, p, tbl, cell, board.Filled, seeds)
	if err != nil {
		return propagate.Contradiction, false, err
	}
	b.Restore(snap)

	statusB, stateB, err := trial(b, p, tbl, cell, board.Empty, seeds)
	if err != nil {
		return propagate.Contradiction, false, err
	}
	b.Restore(snap)

	switch {
	case statusA == propagate.Contradiction && statusB == propagate.Contradiction:
		return propagate.Contradiction, false, nil
	case statusA == propagate.Contradiction:
		b.Restore(stateB)

		return propagate.Stalled, true, nil
	case statusB == propagate.Contradiction:
		b.Restore(stateA)

		return propagate.Stalled, true, nil
	default:
		return commitIntersection(b, p, tbl, stateA, stateB)
	}
}

// trial assigns cell to state, propagates from seeds, and returns the
// resulting status and board snapshot (snapshot is meaningless when
// status is Contradiction).
func trial(b *board.Board, p *puzzle.Puzzle, tbl *zobrist.Table, cell Cell, state board.CellState, seeds []puzzle.LineID) (propagate.Status, board.Snapshot, error) {
	if err := b.SetCell(cell.Row, cell.Col, state); err != nil {
		return propagate.Contradiction, board.Snapshot{}, err
	}
	status, _, err := propagate.Run(b, p, tbl, seeds)
	if err != nil {
		return propagate.Contradiction, board.Snapshot{}, err
	}

	return status, b.Snapshot(), nil
}

// commitIntersection merges every cell both trial outcomes agree on
// into b, then propagates from the touched lines.
func commitIntersection(b *board.Board, p *puzzle.Puzzle, tbl *zobrist.Table, stateA, stateB board.Snapshot) (propagate.Status, bool, error) {
	changed := false
	var touched []puzzle.LineID

	for r := 0; r < puzzle.N; r++ {
		for c := 0; c < puzzle.N; c++ {
			sa := stateA.Rows[r].State(c)
			sb := stateB.Rows[r].State(c)
			if sa == board.Unknown || sa != sb {
				continue
			}
			if b.Line(puzzle.RowID(r)).State(c) != board.Unknown {
				continue
			}
			if err := b.SetCell(r, c, sa); err != nil {
				return propagate.Contradiction, changed, err
			}
			changed = true
			touched = append(touched, puzzle.RowID(r), puzzle.ColID(c))
		}
	}

	if !changed {
		return propagate.Stalled, false, nil
	}

	status, _, err := propagate.Run(b, p, tbl, touched)

	return status, true, err
}
