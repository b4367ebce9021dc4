package linedp_test

import (
	"testing"

	"github.com/lineforge/nonogram/bitline"
	"github.com/lineforge/nonogram/linedp"
	"github.com/lineforge/nonogram/puzzle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const n = puzzle.N

func full(t *testing.T) bitline.Mask {
	t.Helper()
	m, err := bitline.Full(n)
	require.NoError(t, err)

	return m
}

func rangeMask(t *testing.T, lo, hi int) bitline.Mask {
	t.Helper()
	m, err := bitline.RangeFill(lo, hi, n)
	require.NoError(t, err)

	return m
}

func TestSolveEmptyClueForcesAllEmpty(t *testing.T) {
	res, err := linedp.Solve(puzzle.Clue{}, 0, 0)
	require.NoError(t, err)
	assert.False(t, res.Contradiction)
	assert.Equal(t, full(t), res.MustEmpty)
	assert.Equal(t, bitline.Mask(0), res.MustFill)
}

func TestSolveEmptyClueContradictsFilledCell(t *testing.T) {
	filled := bitline.Set(0, 2, n)
	res, err := linedp.Solve(puzzle.Clue{}, filled, filled)
	require.NoError(t, err)
	assert.True(t, res.Contradiction)
}

func TestSolveSingleRunFillsEntireLine(t *testing.T) {
	res, err := linedp.Solve(puzzle.Clue{n}, 0, 0)
	require.NoError(t, err)
	assert.False(t, res.Contradiction)
	assert.Equal(t, full(t), res.MustFill)
}

func TestSolveExactFitDeterminesEverySeparator(t *testing.T) {
	// 12,12 in width 25: 12+12+1(gap) == 25, a unique placement.
	res, err := linedp.Solve(puzzle.Clue{12, 12}, 0, 0)
	require.NoError(t, err)
	assert.False(t, res.Contradiction)
	want := rangeMask(t, 0, 11) | rangeMask(t, 13, 24)
	assert.Equal(t, want, res.MustFill)
	assert.Equal(t, bitline.Set(0, 12, n), res.MustEmpty)
}

func TestSolveSlackLineLeavesMiddleUndetermined(t *testing.T) {
	// A single short run has room to sit anywhere: nothing is forced.
	res, err := linedp.Solve(puzzle.Clue{1}, 0, 0)
	require.NoError(t, err)
	assert.False(t, res.Contradiction)
	assert.Equal(t, bitline.Mask(0), res.MustFill)
	assert.Equal(t, bitline.Mask(0), res.MustEmpty)
}

func TestSolveOverlapForcesCoreCells(t *testing.T) {
	// 15 in width 25: leftmost [0,14], rightmost [10,24], overlap [10,14].
	res, err := linedp.Solve(puzzle.Clue{15}, 0, 0)
	require.NoError(t, err)
	assert.False(t, res.Contradiction)
	assert.Equal(t, rangeMask(t, 10, 14), res.MustFill)
}

func TestSolveRespectsAlreadyKnownCells(t *testing.T) {
	// 15 in width 25, column 0 already known Empty: leftmost shifts to
	// [1,15], rightmost stays [10,24], new overlap [10,15].
	known := bitline.Set(0, 0, n)
	res, err := linedp.Solve(puzzle.Clue{15}, known, 0)
	require.NoError(t, err)
	assert.False(t, res.Contradiction)
	assert.Equal(t, rangeMask(t, 10, 15), res.MustFill)
}

func TestSolveContradictionWhenFilledCellsUnreachable(t *testing.T) {
	// A single run of length 1 cannot cover two non-adjacent filled cells.
	known := bitline.Set(bitline.Set(0, 0, n), 2, n)
	filled := known
	res, err := linedp.Solve(puzzle.Clue{1}, known, filled)
	require.NoError(t, err)
	assert.True(t, res.Contradiction)
}

func TestSolveMultiRunWithInteriorFilledCell(t *testing.T) {
	// 1,1 in width 25 with column 1 already filled: column 1 can only be
	// covered by run 1, which pins it there; run 2 then has to start at
	// column 3 or later. Column 1 also borders run 2's earliest window
	// exactly, which is what the forward DP's gap bound must get right.
	known := bitline.Set(0, 1, n)
	filled := known
	res, err := linedp.Solve(puzzle.Clue{1, 1}, known, filled)
	require.NoError(t, err)
	require.False(t, res.Contradiction)
	assert.True(t, bitline.Test(res.MustFill, 1))
	assert.True(t, bitline.Test(res.MustEmpty, 0))
	assert.True(t, bitline.Test(res.MustEmpty, 2))
}

func TestSolveThreeRunsWithInteriorFilledCell(t *testing.T) {
	// Same pin as above, extended to a third run: run 1 still forced to
	// column 1, runs 2 and 3 both have to clear the column-1/column-2 gap.
	known := bitline.Set(0, 1, n)
	filled := known
	res, err := linedp.Solve(puzzle.Clue{1, 1, 1}, known, filled)
	require.NoError(t, err)
	require.False(t, res.Contradiction)
	assert.True(t, bitline.Test(res.MustFill, 1))
	assert.True(t, bitline.Test(res.MustEmpty, 0))
	assert.True(t, bitline.Test(res.MustEmpty, 2))
}

func TestSolveMultiRunDeterminesGaps(t *testing.T) {
	// 13 ones in width 25: 13 + 12 gaps == 25, fully alternating.
	clue := make(puzzle.Clue, 13)
	for i := range clue {
		clue[i] = 1
	}
	res, err := linedp.Solve(clue, 0, 0)
	require.NoError(t, err)
	assert.False(t, res.Contradiction)

	var wantFill, wantEmpty bitline.Mask
	for i := 0; i < n; i++ {
		if i%2 == 0 {
			wantFill = bitline.Set(wantFill, i, n)
		} else {
			wantEmpty = bitline.Set(wantEmpty, i, n)
		}
	}
	assert.Equal(t, wantFill, res.MustFill)
	assert.Equal(t, wantEmpty, res.MustEmpty)
}
