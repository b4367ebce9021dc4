package zobrist

import (
	"math/rand"

	"github.com/lineforge/nonogram/bitline"
	"github.com/lineforge/nonogram/linedp"
	"github.com/lineforge/nonogram/puzzle"
)

// DefaultCapacity is the default bucket count (SPEC_FULL.md §8 Open
// Question resolution: 1<<20 entries for N=25).
const DefaultCapacity = 1 << 20

// DefaultSeed is used when no WithSeed option is given and no
// NONOGRAM_ZOBRIST_SEED override reaches the caller.
const DefaultSeed int64 = 0x5eed1e55

// Options configures a Table.
type Options struct {
	Capacity int
	Seed     int64

	err error
}

// DefaultOptions returns the option set New uses when no Option is
// given: DefaultCapacity buckets, DefaultSeed.
func DefaultOptions() Options {
	return Options{Capacity: DefaultCapacity, Seed: DefaultSeed}
}

// Option configures Table construction via functional arguments.
type Option func(*Options)

// WithCapacity overrides the bucket count. Non-positive values record
// ErrOptionViolation, surfaced when New is called.
func WithCapacity(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = ErrOptionViolation

			return
		}
		o.Capacity = n
	}
}

// WithSeed overrides the deterministic tag-generation seed.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// entry is one occupied or empty slot of the open-addressed table.
type entry struct {
	used   bool
	line   puzzle.LineID
	known  bitline.Mask
	filled bitline.Mask
	result linedp.Result
}

// tagSet holds the per-(line, bit, value) and per-line random tags used
// to fingerprint a (line, known, filled) query, per spec.md §4.2.
type tagSet struct {
	line   []uint64   // [2N]
	known  [][]uint64 // [2N][N]
	filled [][]uint64 // [2N][N]
}

func newTagSet(seed int64) tagSet {
	r := rand.New(rand.NewSource(seed))
	lines := 2 * puzzle.N

	ts := tagSet{
		line:   make([]uint64, lines),
		known:  make([][]uint64, lines),
		filled: make([][]uint64, lines),
	}
	for l := 0; l < lines; l++ {
		ts.line[l] = r.Uint64()
		ts.known[l] = make([]uint64, puzzle.N)
		ts.filled[l] = make([]uint64, puzzle.N)
		for i := 0; i < puzzle.N; i++ {
			ts.known[l][i] = r.Uint64()
			ts.filled[l][i] = r.Uint64()
		}
	}

	return ts
}

// Table is the fixed-capacity, open-addressed memoization table.
type Table struct {
	tags     tagSet
	buckets  []entry
	capacity int
	size     int
}

// New builds a Table per the given Options, applying DefaultOptions
// first.
func New(opts ...Option) (*Table, error) {
	o := DefaultOptions()
	for _, apply := range opts {
		apply(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return &Table{
		tags:     newTagSet(o.Seed),
		buckets:  make([]entry, o.Capacity),
		capacity: o.Capacity,
	}, nil
}

// fingerprint computes the 64-bit XOR key for (line, known, filled).
func (t *Table) fingerprint(line puzzle.LineID, known, filled bitline.Mask) uint64 {
	key := t.tags.line[int(line)]
	for i := 0; i < puzzle.N; i++ {
		if bitline.Test(known, i) {
			key ^= t.tags.known[int(line)][i]
		}
		if bitline.Test(filled, i) {
			key ^= t.tags.filled[int(line)][i]
		}
	}

	return key
}

// Lookup returns the cached Result for (line, known, filled), verifying
// the full key on every hit so a hash collision can never return a
// wrong answer.
//
// Complexity: O(N) to fingerprint, O(1) amortized probing.
func (t *Table) Lookup(line puzzle.LineID, known, filled bitline.Mask) (linedp.Result, bool) {
	key := t.fingerprint(line, known, filled)
	start := int(key % uint64(t.capacity))
	for probe := 0; probe < t.capacity; probe++ {
		pos := (start + probe) % t.capacity
		e := &t.buckets[pos]
		if !e.used {
			return linedp.Result{}, false
		}
		if e.line == line && e.known == known && e.filled == filled {
			return e.result, true
		}
	}

	return linedp.Result{}, false
}

// Store caches result under (line, known, filled). If the table is at
// capacity, Store silently skips caching (spec.md §4.2's "simplest
// correct" eviction-free overflow policy) and reports false.
//
// Complexity: O(N) to fingerprint, O(1) amortized probing.
func (t *Table) Store(line puzzle.LineID, known, filled bitline.Mask, result linedp.Result) bool {
	key := t.fingerprint(line, known, filled)
	start := int(key % uint64(t.capacity))
	for probe := 0; probe < t.capacity; probe++ {
		pos := (start + probe) % t.capacity
		e := &t.buckets[pos]
		if !e.used {
			if t.size >= t.capacity {
				return false
			}
			*e = entry{used: true, line: line, known: known, filled: filled, result: result}
			t.size++

			return true
		}
		if e.line == line && e.known == known && e.filled == filled {
			e.result = result

			return true
		}
	}

	return false
}

// Clear empties the table, as spec.md §4.2 requires between
// independent puzzle solves.
func (t *Table) Clear() {
	for i := range t.buckets {
		t.buckets[i] = entry{}
	}
	t.size = 0
}

// Len returns the number of occupied buckets.
func (t *Table) Len() int { return t.size }

// Capacity returns the table's fixed bucket count.
func (t *Table) Capacity() int { return t.capacity }
