package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lineforge/nonogram/puzzle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeAllFilledPuzzleFile writes a single all-filled NxN TAAI puzzle
// block to a temp file and returns its path.
func writeAllFilledPuzzleFile(t *testing.T) string {
	t.Helper()
	var b strings.Builder
	b.WriteString("$0\n")
	for i := 0; i < 2*puzzle.N; i++ {
		b.WriteString("25\n")
	}

	path := filepath.Join(t.TempDir(), "puzzle.txt")
	require.NoError(t, os.WriteFile(path, []byte(b.String()), 0o644))

	return path
}

func TestSolveCommandPrintsSolvedGrid(t *testing.T) {
	path := writeAllFilledPuzzleFile(t)

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"solve", path})
	require.NoError(t, root.Execute())

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, puzzle.N+1)
	assert.Equal(t, strings.Repeat("1", puzzle.N), lines[1])
}

func TestGenerateCommandReportsUniqueSolution(t *testing.T) {
	path := writeAllFilledPuzzleFile(t)

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"generate", path})
	require.NoError(t, root.Execute())

	assert.Equal(t, "1", strings.TrimSpace(out.String()))
}
