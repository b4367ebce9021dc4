package probe

import (
	"sort"

	"github.com/lineforge/nonogram/board"
	"github.com/lineforge/nonogram/puzzle"
)

// Cell identifies one board position by row and column index.
type Cell struct {
	Row int
	Col int
}

// priority returns a cell's branching priority: the fewest remaining
// unknowns on either of its two owning lines. Lower sorts first.
func priority(b *board.Board, c Cell) int {
	rowU := b.UnknownCount(puzzle.RowID(c.Row))
	colU := b.UnknownCount(puzzle.ColID(c.Col))
	if rowU < colU {
		return rowU
	}

	return colU
}

// cellOrder implements sort.Interface for a slice of unknown cells,
// ordered by ascending priority, then row, then column — the same
// deterministic order BestUnknownCell uses for DFS branch selection.
type cellOrder struct {
	cells []Cell
	b     *board.Board
}

func (o cellOrder) Len() int { return len(o.cells) }
func (o cellOrder) Less(i, j int) bool {
	ci, cj := o.cells[i], o.cells[j]
	pi, pj := priority(o.b, ci), priority(o.b, cj)
	if pi != pj {
		return pi < pj
	}
	if ci.Row != cj.Row {
		return ci.Row < cj.Row
	}

	return ci.Col < cj.Col
}
func (o cellOrder) Swap(i, j int) { o.cells[i], o.cells[j] = o.cells[j], o.cells[i] }

// OrderUnknownCells returns every Unknown cell on the board, sorted by
// branching priority.
//
// Complexity: O(N²) to scan, O(N² log N) to sort.
func OrderUnknownCells(b *board.Board) []Cell {
	var cells []Cell
	for r := 0; r < puzzle.N; r++ {
		row := b.Line(puzzle.RowID(r))
		for c := 0; c < puzzle.N; c++ {
			if row.State(c) == board.Unknown {
				cells = append(cells, Cell{Row: r, Col: c})
			}
		}
	}
	sort.Sort(cellOrder{cells: cells, b: b})

	return cells
}

// BestUnknownCell returns the single highest-priority unknown cell, or
// ok=false if the board is fully decided.
//
// Complexity: O(N²).
func BestUnknownCell(b *board.Board) (Cell, bool) {
	best := Cell{}
	bestPriority := -1
	found := false
	for r := 0; r < puzzle.N; r++ {
		row := b.Line(puzzle.RowID(r))
		for c := 0; c < puzzle.N; c++ {
			if row.State(c) != board.Unknown {
				continue
			}
			cand := Cell{Row: r, Col: c}
			p := priority(b, cand)
			// Ascending row/col scan order already gives the smallest
			// (row, col) among equal priorities, so only a strictly
			// better priority replaces the incumbent.
			if !found || p < bestPriority {
				best, bestPriority, found = cand, p, true
			}
		}
	}

	return best, found
}
