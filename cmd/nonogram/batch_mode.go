package main

import (
	"os"

	"github.com/lineforge/nonogram/batch"
)

// Legacy batch mode file names, fixed per spec.md §6.
const (
	legacyInputFile    = "input.txt"
	legacySolutionFile = "solution.txt"
	legacyLogFile      = "log.txt"
)

// runBatchMode reproduces the original CLI's implicit no-argument
// mode: read input.txt, write solutions to solution.txt, append
// diagnostics to log.txt. Returns a non-nil error on any I/O failure,
// which main translates into a non-zero exit code.
func runBatchMode(flags *cliFlags) error {
	puzzles, err := batch.ParseInputFile(legacyInputFile)
	if err != nil {
		return err
	}

	logFile, err := os.OpenFile(legacyLogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer logFile.Close()
	logger := batch.NewLogger(logFile)

	results := batch.RunSequential(puzzles, logger, solveOptions(flags)...)

	out, err := os.Create(legacySolutionFile)
	if err != nil {
		return err
	}
	defer out.Close()

	return batch.WriteBatch(out, results)
}
