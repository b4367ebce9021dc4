package search_test

import (
	"context"
	"testing"

	"github.com/lineforge/nonogram/board"
	"github.com/lineforge/nonogram/propagate"
	"github.com/lineforge/nonogram/puzzle"
	"github.com/lineforge/nonogram/search"
	"github.com/lineforge/nonogram/zobrist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildPuzzle fills every unlisted row/column with the empty clue, so
// only the rows/cols named in rowClues/colClues carry any fill.
func buildPuzzle(t *testing.T, rowClues, colClues map[int]puzzle.Clue) *puzzle.Puzzle {
	t.Helper()
	rows := make([]puzzle.Clue, puzzle.N)
	cols := make([]puzzle.Clue, puzzle.N)
	for i := 0; i < puzzle.N; i++ {
		if c, ok := rowClues[i]; ok {
			rows[i] = c
		} else {
			rows[i] = puzzle.Clue{}
		}
		if c, ok := colClues[i]; ok {
			cols[i] = c
		} else {
			cols[i] = puzzle.Clue{}
		}
	}
	p, err := puzzle.NewPuzzle(rows, cols)
	require.NoError(t, err)

	return p
}

// ambiguousPuzzle constrains every row/column to empty except a 2x2
// corner where rows 0-1 and cols 0-1 each want exactly one fill: the
// classic diagonal-vs-antidiagonal ambiguity that propagation and
// probing cannot resolve, only search can.
func ambiguousPuzzle(t *testing.T) *puzzle.Puzzle {
	t.Helper()

	return buildPuzzle(t,
		map[int]puzzle.Clue{0: {1}, 1: {1}},
		map[int]puzzle.Clue{0: {1}, 1: {1}},
	)
}

// infeasiblePuzzle demands two fills in each of columns 0-1 but only
// one fill in each of rows 0-1, a row/column sum mismatch that has no
// consistent grid.
func infeasiblePuzzle(t *testing.T) *puzzle.Puzzle {
	t.Helper()

	return buildPuzzle(t,
		map[int]puzzle.Clue{0: {1}, 1: {1}},
		map[int]puzzle.Clue{0: {2}, 1: {2}},
	)
}

func newTable(t *testing.T) *zobrist.Table {
	t.Helper()
	tbl, err := zobrist.New(zobrist.WithCapacity(1 << 14))
	require.NoError(t, err)

	return tbl
}

func TestRunModeSolveFindsOneSolution(t *testing.T) {
	p := ambiguousPuzzle(t)
	b := board.New()
	tbl := newTable(t)

	status, _, err := propagate.Run(b, p, tbl, propagate.AllLines())
	require.NoError(t, err)
	require.NotEqual(t, propagate.Contradiction, status)

	outcome, err := search.Run(context.Background(), b, p, tbl, search.ModeSolve)
	require.NoError(t, err)
	assert.False(t, outcome.Contradiction)
	require.Len(t, outcome.Solutions, 1)
	assert.Greater(t, outcome.Nodes, 0)
}

func TestRunModeVerifyFindsTwoDistinctSolutions(t *testing.T) {
	p := ambiguousPuzzle(t)
	b := board.New()
	tbl := newTable(t)

	status, _, err := propagate.Run(b, p, tbl, propagate.AllLines())
	require.NoError(t, err)
	require.NotEqual(t, propagate.Contradiction, status)

	outcome, err := search.Run(context.Background(), b, p, tbl, search.ModeVerify)
	require.NoError(t, err)
	assert.False(t, outcome.Contradiction)
	require.Len(t, outcome.Solutions, 2)
	assert.NotEqual(t, outcome.Solutions[0], outcome.Solutions[1])
}

func TestRunReportsContradictionWhenNoSolutionExists(t *testing.T) {
	p := infeasiblePuzzle(t)
	b := board.New()
	tbl := newTable(t)

	outcome, err := search.Run(context.Background(), b, p, tbl, search.ModeSolve)
	require.NoError(t, err)
	assert.True(t, outcome.Contradiction)
	assert.Empty(t, outcome.Solutions)
}

func TestRunRespectsContextCancellation(t *testing.T) {
	p := ambiguousPuzzle(t)
	b := board.New()
	tbl := newTable(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := search.Run(ctx, b, p, tbl, search.ModeSolve)
	assert.ErrorIs(t, err, context.Canceled)
}
