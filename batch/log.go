package batch

import (
	"io"

	"github.com/rs/zerolog"
)

// NewLogger builds the plain-JSON zerolog.Logger batch mode appends to
// log.txt (SPEC_FULL.md §3; schema is free-form per spec.md §9).
func NewLogger(w io.Writer) zerolog.Logger {
	return zerolog.New(w).With().Timestamp().Logger()
}

// logOutcome emits exactly one structured event for res: solved,
// contradiction, or, when res.Err is set (a SolveContext or solve
// failure), puzzle_malformed.
func logOutcome(logger zerolog.Logger, res Result) {
	entry := logger.Info().Int("index", res.Index)

	switch {
	case res.Err != nil:
		entry.Str("event", "puzzle_malformed").Err(res.Err).Msg("puzzle skipped")
	case res.Outcome.Solved:
		entry.Str("event", "puzzle_solved").
			Int("nodes", res.Outcome.Nodes).
			Int("propagations", res.Outcome.Propagations).
			Int("probes_tried", res.Outcome.ProbesTried).
			Dur("elapsed", res.Elapsed).
			Msg("puzzle solved")
	default:
		entry.Str("event", "puzzle_contradiction").Dur("elapsed", res.Elapsed).Msg("no solution")
	}
}
