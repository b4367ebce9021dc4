package puzzle_test

import (
	"strings"
	"testing"

	"github.com/lineforge/nonogram/puzzle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateClue(t *testing.T) {
	require.NoError(t, puzzle.ValidateClue(nil, 25))
	require.NoError(t, puzzle.ValidateClue(puzzle.Clue{25}, 25))
	require.NoError(t, puzzle.ValidateClue(puzzle.Clue{1, 1, 1}, 25))

	assert.ErrorIs(t, puzzle.ValidateClue(puzzle.Clue{26}, 25), puzzle.ErrInfeasibleClue)
	assert.ErrorIs(t, puzzle.ValidateClue(puzzle.Clue{0}, 25), puzzle.ErrNonPositiveRun)
	assert.ErrorIs(t, puzzle.ValidateClue(puzzle.Clue{-1}, 25), puzzle.ErrNonPositiveRun)
	// 12 + 12 + 1 gap = 25, exactly feasible.
	require.NoError(t, puzzle.ValidateClue(puzzle.Clue{12, 12}, 25))
	// 13 + 12 + 1 gap = 26 > 25.
	assert.ErrorIs(t, puzzle.ValidateClue(puzzle.Clue{13, 12}, 25), puzzle.ErrInfeasibleClue)
}

func allFilledRows() []puzzle.Clue {
	rows := make([]puzzle.Clue, puzzle.N)
	for i := range rows {
		rows[i] = puzzle.Clue{puzzle.N}
	}

	return rows
}

func TestNewPuzzleWrongLineCount(t *testing.T) {
	_, err := puzzle.NewPuzzle(allFilledRows()[:puzzle.N-1], allFilledRows())
	assert.ErrorIs(t, err, puzzle.ErrWrongLineCount)
}

func TestNewPuzzleImmutable(t *testing.T) {
	rows := allFilledRows()
	cols := allFilledRows()
	p, err := puzzle.NewPuzzle(rows, cols)
	require.NoError(t, err)

	rows[0][0] = 1 // mutate caller's slice after construction
	assert.Equal(t, puzzle.N, p.Clue(puzzle.RowID(0))[0], "Puzzle must defensively copy clues")
}

func TestLineIDOrientation(t *testing.T) {
	r := puzzle.RowID(3)
	c := puzzle.ColID(3)
	assert.True(t, r.IsRow())
	assert.False(t, c.IsRow())
	assert.Equal(t, 3, r.Index())
	assert.Equal(t, 3, c.Index())
	assert.Equal(t, "row3", r.String())
	assert.Equal(t, "col3", c.String())
	assert.Less(t, r, c, "rows must sort before columns at equal index")
}

func TestCluesFromGridRoundTrip(t *testing.T) {
	var grid [puzzle.N][puzzle.N]bool
	for i := 0; i < puzzle.N; i++ {
		grid[i][i] = true // diagonal: every row/col clue becomes {1}
	}
	rows, cols := puzzle.CluesFromGrid(grid)
	for i := 0; i < puzzle.N; i++ {
		assert.Equal(t, puzzle.Clue{1}, rows[i])
		assert.Equal(t, puzzle.Clue{1}, cols[i])
	}
}

func buildTAAIBlock(fill func(i int) string) string {
	var b strings.Builder
	b.WriteString("$1\n")
	for i := 0; i < 2*puzzle.N; i++ {
		b.WriteString(fill(i))
		b.WriteString("\n")
	}

	return b.String()
}

func TestParseTAAIAllEmpty(t *testing.T) {
	input := buildTAAIBlock(func(i int) string { return "" })
	puzzles, err := puzzle.ParseTAAI(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, puzzles, 1)
	for i := 0; i < puzzle.N; i++ {
		assert.Empty(t, puzzles[0].Rows[i])
		assert.Empty(t, puzzles[0].Cols[i])
	}
}

func TestParseTAAIAllFilled(t *testing.T) {
	input := buildTAAIBlock(func(i int) string { return "25" })
	puzzles, err := puzzle.ParseTAAI(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, puzzles, 1)
	assert.Equal(t, puzzle.Clue{25}, puzzles[0].Rows[0])
	assert.Equal(t, puzzle.Clue{25}, puzzles[0].Cols[puzzle.N-1])
}

func TestParseTAAIMultiplePuzzles(t *testing.T) {
	one := buildTAAIBlock(func(i int) string { return "" })
	two := strings.Replace(one, "$1", "$2", 1)
	puzzles, err := puzzle.ParseTAAI(strings.NewReader(one + two))
	require.NoError(t, err)
	assert.Len(t, puzzles, 2)
}

func TestParseTAAIShortBlock(t *testing.T) {
	input := "$1\n1 1\n"
	_, err := puzzle.ParseTAAI(strings.NewReader(input))
	assert.ErrorIs(t, err, puzzle.ErrMalformedInput)
}

func TestParseTAAINonNumeric(t *testing.T) {
	lines := make([]string, 2*puzzle.N)
	lines[0] = "abc"
	input := "$1\n" + strings.Join(lines, "\n") + "\n"
	_, err := puzzle.ParseTAAI(strings.NewReader(input))
	assert.ErrorIs(t, err, puzzle.ErrMalformedInput)
}

func TestParseTAAINoDelimiter(t *testing.T) {
	_, err := puzzle.ParseTAAI(strings.NewReader("just some text\nwith no delimiter\n"))
	assert.ErrorIs(t, err, puzzle.ErrNoPuzzles)
}

func TestParseTAAIInfeasibleClue(t *testing.T) {
	input := buildTAAIBlock(func(i int) string {
		if i == 0 {
			return "26"
		}
		return ""
	})
	_, err := puzzle.ParseTAAI(strings.NewReader(input))
	assert.ErrorIs(t, err, puzzle.ErrInfeasibleClue)
}
