package puzzle

import (
	"bufio"
	"io"
	"regexp"
	"strconv"
	"strings"
)

// delimiterPattern matches a puzzle-block delimiter line: a literal "$"
// followed by a decimal index (spec.md §6: "lines matching $<index>").
var delimiterPattern = regexp.MustCompile(`^\$\d+$`)

// ParseTAAI reads a sequence of puzzles in the TAAI text format (spec.md
// §6): delimiter lines "$<index>" each introduce exactly 2N clue lines —
// the first N are column clues (column 0 first), the next N are row
// clues. Each clue line is whitespace-separated positive integers; an
// empty (or zero-only) line denotes an empty clue. Feasibility is
// validated, not assumed, per spec.md §6.
//
// Returns ErrMalformedInput if a block is short or a token is
// non-numeric, ErrNoPuzzles if the stream has no delimiter at all, or a
// puzzle.ErrInfeasibleClue-family error from NewPuzzle if a clue's
// invariant (Σrᵢ + (k−1) ≤ N) is violated.
//
// Complexity: O(total input size).
func ParseTAAI(r io.Reader) ([]*Puzzle, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var (
		puzzles []*Puzzle
		lines   []string
		inBlock bool
	)
	flush := func() error {
		if !inBlock {
			return nil
		}
		p, err := buildPuzzle(lines)
		if err != nil {
			return err
		}
		puzzles = append(puzzles, p)
		lines = nil

		return nil
	}

	for scanner.Scan() {
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)
		if delimiterPattern.MatchString(trimmed) {
			if err := flush(); err != nil {
				return nil, err
			}
			inBlock = true
			continue
		}
		if !inBlock {
			// Tolerate leading blank/garbage lines before the first
			// delimiter, matching a permissive line-oriented reader.
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if err := flush(); err != nil {
		return nil, err
	}
	if len(puzzles) == 0 {
		return nil, ErrNoPuzzles
	}

	return puzzles, nil
}

// buildPuzzle converts the first 2N raw clue lines (cols then rows) into
// a validated Puzzle. Fewer than 2N lines is ErrMalformedInput; lines
// after the first 2N are ignored, not rejected.
func buildPuzzle(lines []string) (*Puzzle, error) {
	if len(lines) < 2*N {
		return nil, ErrMalformedInput
	}
	cols := make([]Clue, N)
	for i := 0; i < N; i++ {
		c, err := parseClueLine(lines[i])
		if err != nil {
			return nil, err
		}
		cols[i] = c
	}
	rows := make([]Clue, N)
	for i := 0; i < N; i++ {
		c, err := parseClueLine(lines[N+i])
		if err != nil {
			return nil, err
		}
		rows[i] = c
	}

	return NewPuzzle(rows, cols)
}

// parseClueLine parses one whitespace-separated clue line. An empty or
// all-zero line means "no runs" (some TAAI producers emit "0" rather
// than a blank line).
func parseClueLine(line string) (Clue, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, nil
	}
	clue := make(Clue, 0, len(fields))
	allZero := true
	for _, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, ErrMalformedInput
		}
		if v != 0 {
			allZero = false
		}
		clue = append(clue, v)
	}
	if allZero {
		return nil, nil
	}

	return clue, nil
}
