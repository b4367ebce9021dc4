package board

import (
	"github.com/lineforge/nonogram/bitline"
	"github.com/lineforge/nonogram/puzzle"
)

// CellState is the three-valued state of a single cell (spec.md §3).
type CellState int

const (
	// Unknown means neither Filled nor Empty has been decided yet.
	Unknown CellState = iota
	// Filled means the cell is decided and part of a run.
	Filled
	// Empty means the cell is decided and not part of any run.
	Empty
)

// Line is the (known, filled) mask pair for one row or column.
// Invariant (enforced by every constructor/mutator in this package):
// Filled is a subset of Known, and both are masked to puzzle.N bits.
type Line struct {
	Known  bitline.Mask
	Filled bitline.Mask
}

// EmptyMask returns the bits known to be empty: Known &^ Filled.
func (l Line) EmptyMask() bitline.Mask {
	return l.Known &^ l.Filled
}

// Solved reports whether every one of the line's N cells is decided.
func (l Line) Solved() bool {
	full, _ := bitline.Full(puzzle.N)

	return l.Known == full
}

// State returns the CellState of position i within this line.
func (l Line) State(i int) CellState {
	if !bitline.Test(l.Known, i) {
		return Unknown
	}
	if bitline.Test(l.Filled, i) {
		return Filled
	}

	return Empty
}

// Snapshot is a compact, value-type copy of an entire Board's mask
// state: two [N]Line arrays, nothing else. Copying a Snapshot is a
// plain Go value copy (no allocation, no pointer chasing), which is the
// "compact bit-copy, not structural copy" spec.md §9 calls for.
type Snapshot struct {
	Rows [puzzle.N]Line
	Cols [puzzle.N]Line
}

// Board holds the mutable partial-assignment state for one solve: the
// mirrored row-indexed and column-indexed mask views.
type Board struct {
	rows [puzzle.N]Line
	cols [puzzle.N]Line
}

// New returns a Board with every cell Unknown.
func New() *Board {
	return &Board{}
}

// Line returns the current (known, filled) pair for the given LineID.
//
// Complexity: O(1).
func (b *Board) Line(id puzzle.LineID) Line {
	if id.IsRow() {
		return b.rows[id.Index()]
	}

	return b.cols[id.Index()]
}

// SetCell assigns cell (r, c) to state (Filled or Empty), updating both
// the row view and the column view in one call. If the cell is already
// known to a different value, returns ErrCellContradiction and leaves
// the board unchanged. Setting a cell to its already-known value is a
// no-op success (idempotent).
//
// Complexity: O(1).
func (b *Board) SetCell(r, c int, state CellState) error {
	if state == Unknown {
		return nil // nothing to assign
	}
	wantFilled := state == Filled

	row := b.rows[r]
	if bitline.Test(row.Known, c) {
		if bitline.Test(row.Filled, c) != wantFilled {
			return ErrCellContradiction
		}

		return nil // already decided, consistent
	}

	row.Known = bitline.Set(row.Known, c, puzzle.N)
	if wantFilled {
		row.Filled = bitline.Set(row.Filled, c, puzzle.N)
	}
	b.rows[r] = row

	col := b.cols[c]
	col.Known = bitline.Set(col.Known, r, puzzle.N)
	if wantFilled {
		col.Filled = bitline.Set(col.Filled, r, puzzle.N)
	}
	b.cols[c] = col

	return nil
}

// ApplyLineResult assigns every newly forced cell from a line-DP result
// (mustFill/mustEmpty, restricted to bits not already known on this
// line) and returns the set of cross-line ids whose state changed as a
// result, so the caller (propagate) can enqueue them. It never
// re-decides an already-known cell, so it can never return
// ErrCellContradiction in correct usage — spec.md §4.1 guarantees
// mustFill/mustEmpty never contradict the input they were derived from.
//
// Complexity: O(N) to scan the new-bit set.
func (b *Board) ApplyLineResult(id puzzle.LineID, mustFill, mustEmpty bitline.Mask) ([]puzzle.LineID, error) {
	line := b.Line(id)
	newBits := (mustFill | mustEmpty) &^ line.Known
	if newBits == 0 {
		return nil, nil
	}

	var touched []puzzle.LineID
	for i := 0; i < puzzle.N && newBits != 0; i++ {
		bit := bitline.Mask(1) << uint(i)
		if newBits&bit == 0 {
			continue
		}
		newBits &^= bit
		state := Empty
		if bitline.Test(mustFill, i) {
			state = Filled
		}
		var r, c int
		if id.IsRow() {
			r, c = id.Index(), i
		} else {
			r, c = i, id.Index()
		}
		if err := b.SetCell(r, c, state); err != nil {
			return nil, err
		}
		if id.IsRow() {
			touched = append(touched, puzzle.ColID(c))
		} else {
			touched = append(touched, puzzle.RowID(r))
		}
	}

	return touched, nil
}

// Solved reports whether every cell on the board is decided.
//
// Complexity: O(N).
func (b *Board) Solved() bool {
	for i := 0; i < puzzle.N; i++ {
		if !b.rows[i].Solved() {
			return false
		}
	}

	return true
}

// Grid materializes the board's current Filled/Empty assignment as a
// plain [N][N]bool (true = filled). Cells still Unknown are reported as
// false; callers needing a contradiction-free, fully-solved grid should
// check Solved() first.
//
// Complexity: O(N²).
func (b *Board) Grid() [puzzle.N][puzzle.N]bool {
	var g [puzzle.N][puzzle.N]bool
	for r := 0; r < puzzle.N; r++ {
		for c := 0; c < puzzle.N; c++ {
			g[r][c] = bitline.Test(b.rows[r].Filled, c)
		}
	}

	return g
}

// Snapshot captures the entire board state as a value-type Snapshot.
//
// Complexity: O(N), no allocation (arrays are copied by value).
func (b *Board) Snapshot() Snapshot {
	return Snapshot{Rows: b.rows, Cols: b.cols}
}

// Restore rewinds the board to a previously captured Snapshot.
//
// Complexity: O(N).
func (b *Board) Restore(s Snapshot) {
	b.rows = s.Rows
	b.cols = s.Cols
}

// UnknownCount returns the number of undecided cells remaining on the
// given line.
func (b *Board) UnknownCount(id puzzle.LineID) int {
	return puzzle.N - bitline.PopCount(b.Line(id).Known)
}
