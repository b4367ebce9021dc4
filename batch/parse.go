package batch

import (
	"io"
	"os"

	"github.com/lineforge/nonogram/puzzle"
)

// ParseInputFile reads path as a TAAI stream (spec.md §6) and returns
// every puzzle block it contains.
func ParseInputFile(path string) ([]*puzzle.Puzzle, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ParseInput(f)
}

// ParseInput reads a TAAI stream from r. A single malformed block
// fails the whole stream: the error is returned and no puzzles are.
func ParseInput(r io.Reader) ([]*puzzle.Puzzle, error) {
	return puzzle.ParseTAAI(r)
}
