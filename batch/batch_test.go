package batch_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/lineforge/nonogram/batch"
	"github.com/lineforge/nonogram/puzzle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// taaiBlock renders one TAAI puzzle block (N column clue lines then N
// row clue lines) for an all-filled puzzle, preceded by its "$<index>"
// delimiter.
func taaiBlock(index int) string {
	var b strings.Builder
	b.WriteString("$")
	b.WriteString(string(rune('0' + index)))
	b.WriteString("\n")
	for i := 0; i < 2*puzzle.N; i++ {
		b.WriteString("25\n")
	}

	return b.String()
}

func TestParseInputParsesMultiplePuzzles(t *testing.T) {
	input := taaiBlock(0) + taaiBlock(1)
	puzzles, err := batch.ParseInput(strings.NewReader(input))
	require.NoError(t, err)
	assert.Len(t, puzzles, 2)
}

func TestRunSequentialSolvesEveryPuzzle(t *testing.T) {
	input := taaiBlock(0)
	puzzles, err := batch.ParseInput(strings.NewReader(input))
	require.NoError(t, err)

	var logBuf bytes.Buffer
	logger := batch.NewLogger(&logBuf)

	results := batch.RunSequential(puzzles, logger)
	require.Len(t, results, 1)
	assert.NoError(t, results[0].Err)
	assert.True(t, results[0].Outcome.Solved)
	assert.Contains(t, logBuf.String(), "puzzle_solved")
}

func TestRunConcurrentSolvesEveryPuzzleIndependently(t *testing.T) {
	input := taaiBlock(0) + taaiBlock(1) + taaiBlock(2)
	puzzles, err := batch.ParseInput(strings.NewReader(input))
	require.NoError(t, err)

	var logBuf bytes.Buffer
	logger := batch.NewLogger(&logBuf)

	results, err := batch.RunConcurrent(context.Background(), puzzles, logger, 2)
	require.NoError(t, err)
	require.Len(t, results, 3)
	for i, res := range results {
		assert.NoError(t, res.Err, "puzzle %d", i)
		assert.True(t, res.Outcome.Solved, "puzzle %d", i)
	}
}

func TestWriteSolutionRendersSolveFormat(t *testing.T) {
	input := taaiBlock(0)
	puzzles, err := batch.ParseInput(strings.NewReader(input))
	require.NoError(t, err)

	logger := batch.NewLogger(&bytes.Buffer{})
	results := batch.RunSequential(puzzles, logger)

	var out bytes.Buffer
	require.NoError(t, batch.WriteSolution(&out, results[0]))

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, puzzle.N+1)
	assert.Contains(t, lines[0], "\t")
	assert.Equal(t, strings.Repeat("1", puzzle.N), lines[1])
}

func TestWriteBatchSeparatesPuzzlesWithBlankLine(t *testing.T) {
	input := taaiBlock(0) + taaiBlock(1)
	puzzles, err := batch.ParseInput(strings.NewReader(input))
	require.NoError(t, err)

	logger := batch.NewLogger(&bytes.Buffer{})
	results := batch.RunSequential(puzzles, logger)

	var out bytes.Buffer
	require.NoError(t, batch.WriteBatch(&out, results))

	blocks := strings.Split(out.String(), "\n\n")
	assert.Len(t, blocks, 2)
}
