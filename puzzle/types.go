package puzzle

import "fmt"

// N is the fixed side length of every puzzle this solver handles
// (spec.md §1: "a single line of the grid fits in one machine-word
// bitmask"; the reference configuration is N = 25). It is a constant,
// not a per-puzzle field, because the bitline.Mask word width, the
// Zobrist tag tables, and every fixed-size [N]Line array in board are
// all sized against it at compile time.
const N = 25

// Clue is an ordered sequence of positive run-lengths for one line.
// A zero-length Clue is legal and means "all empty".
type Clue []int

// ValidateClue checks the feasibility invariant Σrᵢ + (k−1) ≤ width and
// that every run-length is strictly positive. It does not mutate clue.
//
// Complexity: O(k) where k = len(clue).
func ValidateClue(clue Clue, width int) error {
	if len(clue) == 0 {
		return nil // all-empty line: always feasible
	}
	sum := 0
	for _, r := range clue {
		if r <= 0 {
			return ErrNonPositiveRun
		}
		sum += r
	}
	sum += len(clue) - 1 // mandatory single-cell gaps between runs
	if sum > width {
		return ErrInfeasibleClue
	}

	return nil
}

// LineID identifies one of the 2N lines of an N×N puzzle: rows occupy
// [0, N) and columns occupy [N, 2N), so rows sort before columns at
// the same positional index.
type LineID int

// RowID returns the LineID for row r (0 <= r < N).
func RowID(r int) LineID { return LineID(r) }

// ColID returns the LineID for column c (0 <= c < N).
func ColID(c int) LineID { return LineID(N + c) }

// IsRow reports whether id identifies a row.
func (id LineID) IsRow() bool { return int(id) < N }

// Index returns the row or column index this id identifies (0..N-1),
// regardless of orientation.
func (id LineID) Index() int {
	if id.IsRow() {
		return int(id)
	}

	return int(id) - N
}

// String renders a LineID as "row<i>" or "col<i>", for logs and test
// failure messages.
func (id LineID) String() string {
	if id.IsRow() {
		return fmt.Sprintf("row%d", id.Index())
	}

	return fmt.Sprintf("col%d", id.Index())
}

// Puzzle is the immutable clue set for one N×N Nonogram: N row clues and
// N column clues, each already validated for feasibility. Construct via
// NewPuzzle; there is no exported mutator.
type Puzzle struct {
	N    int
	Rows []Clue
	Cols []Clue
}

// NewPuzzle validates rows/cols (exactly N entries each, each clue
// feasible for width N) and returns an immutable Puzzle.
//
// Complexity: O(N·k̄) where k̄ is the average clue length.
func NewPuzzle(rows, cols []Clue) (*Puzzle, error) {
	if len(rows) != N || len(cols) != N {
		return nil, ErrWrongLineCount
	}
	for _, c := range rows {
		if err := ValidateClue(c, N); err != nil {
			return nil, err
		}
	}
	for _, c := range cols {
		if err := ValidateClue(c, N); err != nil {
			return nil, err
		}
	}
	// Defensive copy: the Puzzle must stay immutable regardless of what
	// the caller does with its own slices afterward.
	rowsCopy := make([]Clue, N)
	colsCopy := make([]Clue, N)
	for i, c := range rows {
		cc := make(Clue, len(c))
		copy(cc, c)
		rowsCopy[i] = cc
	}
	for i, c := range cols {
		cc := make(Clue, len(c))
		copy(cc, c)
		colsCopy[i] = cc
	}

	return &Puzzle{N: N, Rows: rowsCopy, Cols: colsCopy}, nil
}

// Clue returns the clue for the given LineID.
func (p *Puzzle) Clue(id LineID) Clue {
	if id.IsRow() {
		return p.Rows[id.Index()]
	}

	return p.Cols[id.Index()]
}

// CluesFromGrid derives row and column run-length clues from a fully
// decided N×N boolean grid (grid[r][c] == true means filled). It is the
// inverse used by the spec.md §8 solvability/uniqueness round-trip laws:
// re-deriving clues from a solved grid must equal the puzzle's own clues.
//
// Complexity: O(N²).
func CluesFromGrid(grid [N][N]bool) (rows, cols []Clue) {
	rows = make([]Clue, N)
	for r := 0; r < N; r++ {
		rows[r] = runsOf(func(i int) bool { return grid[r][i] })
	}
	cols = make([]Clue, N)
	for c := 0; c < N; c++ {
		cols[c] = runsOf(func(i int) bool { return grid[i][c] })
	}

	return rows, cols
}

// runsOf scans a length-N boolean sequence and returns its run-lengths.
func runsOf(at func(i int) bool) Clue {
	var clue Clue
	run := 0
	for i := 0; i < N; i++ {
		if at(i) {
			run++
		} else if run > 0 {
			clue = append(clue, run)
			run = 0
		}
	}
	if run > 0 {
		clue = append(clue, run)
	}

	return clue
}
