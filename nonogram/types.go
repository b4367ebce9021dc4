package nonogram

import (
	"context"
	"os"
	"strconv"

	"github.com/lineforge/nonogram/puzzle"
	"github.com/lineforge/nonogram/zobrist"
)

// seedEnvVar is the reproducibility override spec.md §6 names.
const seedEnvVar = "NONOGRAM_ZOBRIST_SEED"

// Options configures a SolveContext.
type Options struct {
	ZobristCapacity int
	ZobristSeed     int64
	Context         context.Context

	err error
}

// defaultOptions returns zobrist.DefaultCapacity and a seed drawn from
// NONOGRAM_ZOBRIST_SEED when set, falling back to zobrist.DefaultSeed.
func defaultOptions() Options {
	seed := zobrist.DefaultSeed
	if raw, ok := os.LookupEnv(seedEnvVar); ok {
		if parsed, err := strconv.ParseInt(raw, 10, 64); err == nil {
			seed = parsed
		}
	}

	return Options{ZobristCapacity: zobrist.DefaultCapacity, ZobristSeed: seed, Context: context.Background()}
}

// Option configures SolveContext construction via functional arguments.
type Option func(*Options)

// WithZobristCapacity overrides the memoization table's bucket count.
func WithZobristCapacity(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = ErrOptionViolation

			return
		}
		o.ZobristCapacity = n
	}
}

// WithZobristSeed overrides the deterministic tag-generation seed,
// taking precedence over NONOGRAM_ZOBRIST_SEED.
func WithZobristSeed(seed int64) Option {
	return func(o *Options) {
		o.ZobristSeed = seed
	}
}

// WithContext supplies the context checked for cancellation during DFS
// search (spec.md §5's cooperative-cancellation hook). Defaults to
// context.Background(), i.e. no cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx == nil {
			o.err = ErrOptionViolation

			return
		}
		o.Context = ctx
	}
}

// Outcome is the result of SolveOne.
type Outcome struct {
	// Solved reports whether a fully-decided, contradiction-free grid
	// was found.
	Solved bool
	// Grid is the solution, valid only when Solved is true.
	Grid [puzzle.N][puzzle.N]bool
	// Nodes counts DFS entries (zero when propagation+probing alone
	// solved the puzzle).
	Nodes int
	// Propagations counts line-DP applications performed by the
	// propagate.Run calls made before search (SPEC_FULL.md §7 metric);
	// line solves inside probe trials and inside search are not counted.
	Propagations int
	// ProbesTried counts cells trial-assigned by the probe.Run calls
	// made before search (SPEC_FULL.md §7 metric); probing inside
	// search is not counted.
	ProbesTried int
}

// VerifyOutcome is the result of VerifyUnique.
type VerifyOutcome struct {
	// Unique is true iff exactly one solution exists.
	Unique bool
	// Solution holds the single solution when Unique is true.
	Solution [puzzle.N][puzzle.N]bool
	// Nodes counts DFS entries, as in Outcome.
	Nodes int
	// Contradiction is true when zero solutions exist.
	Contradiction bool
}
