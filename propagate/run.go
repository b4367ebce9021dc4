package propagate

import (
	"github.com/lineforge/nonogram/board"
	"github.com/lineforge/nonogram/linedp"
	"github.com/lineforge/nonogram/puzzle"
	"github.com/lineforge/nonogram/zobrist"
)

// Run drains seeds (and every cross-line they touch) to fixpoint
// against b, using tbl as the per-solve memoization cache and p for the
// clue of each line visited. It reports how many line-solves it
// performed (cache hit or miss), the metric spec.md §4.5 calls
// "propagations" when surfaced by the facade.
//
// Complexity: apart from the seeds, a line is enqueued only when a cell
// on it becomes newly known, and each cell becomes known once, bounding
// the loop at len(seeds) + N² iterations.
func Run(b *board.Board, p *puzzle.Puzzle, tbl *zobrist.Table, seeds []puzzle.LineID) (Status, int, error) {
	q := newQueue()
	for _, id := range seeds {
		q.push(int(id))
	}

	propagations := 0
	for {
		idInt, ok := q.pop()
		if !ok {
			break
		}
		id := puzzle.LineID(idInt)
		line := b.Line(id)
		clue := p.Clue(id)
		propagations++

		result, hit := tbl.Lookup(id, line.Known, line.Filled)
		if !hit {
			var err error
			result, err = linedp.Solve(clue, line.Known, line.Filled)
			if err != nil {
				return Contradiction, propagations, err
			}
			tbl.Store(id, line.Known, line.Filled, result)
		}
		if result.Contradiction {
			return Contradiction, propagations, nil
		}

		touched, err := b.ApplyLineResult(id, result.MustFill, result.MustEmpty)
		if err != nil {
			return Contradiction, propagations, err
		}
		for _, t := range touched {
			q.push(int(t))
		}
	}

	if b.Solved() {
		return Solved, propagations, nil
	}

	return Stalled, propagations, nil
}

// AllLines returns every one of the 2N line ids, the seed set for a
// fresh propagation run over an entirely unconstrained board.
func AllLines() []puzzle.LineID {
	ids := make([]puzzle.LineID, 0, 2*puzzle.N)
	for r := 0; r < puzzle.N; r++ {
		ids = append(ids, puzzle.RowID(r))
	}
	for c := 0; c < puzzle.N; c++ {
		ids = append(ids, puzzle.ColID(c))
	}

	return ids
}
