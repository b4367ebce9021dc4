package batch

import (
	"fmt"
	"io"

	"github.com/lineforge/nonogram/puzzle"
)

// WriteSolution renders one Result in the solve output format of
// spec.md §6: "<node_count>\t<seconds>" on the first line, then N
// lines of N characters from {0,1}. A contradiction is rendered as
// node_count -1 and an all-empty grid, mirroring spec.md §7's
// "empty grid with marker" framing for solve-mode UNSAT.
func WriteSolution(w io.Writer, res Result) error {
	if res.Err != nil {
		return ErrNoOutcome
	}

	nodes := res.Outcome.Nodes
	if !res.Outcome.Solved {
		nodes = -1
	}
	if _, err := fmt.Fprintf(w, "%d\t%.6f\n", nodes, res.Elapsed.Seconds()); err != nil {
		return err
	}

	for r := 0; r < puzzle.N; r++ {
		row := make([]byte, puzzle.N)
		for c := 0; c < puzzle.N; c++ {
			if res.Outcome.Solved && res.Outcome.Grid[r][c] {
				row[c] = '1'
			} else {
				row[c] = '0'
			}
		}
		row = append(row, '\n')
		if _, err := w.Write(row); err != nil {
			return err
		}
	}

	return nil
}

// WriteBatch renders every Result in order, separated by a single
// blank line between puzzles, as spec.md §6 requires for batch mode.
func WriteBatch(w io.Writer, results []Result) error {
	wrote := false
	for _, res := range results {
		if res.Err != nil {
			continue // malformed puzzles contribute no output block
		}
		if wrote {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		if err := WriteSolution(w, res); err != nil {
			return err
		}
		wrote = true
	}

	return nil
}
