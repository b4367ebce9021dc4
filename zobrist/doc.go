// Package zobrist implements the memoization table of spec.md §4.2: a
// fixed-capacity, open-addressed cache of linedp.Result keyed by a
// 64-bit XOR fingerprint over (line identity, known mask, filled mask).
//
// Tags are drawn from a deterministic seeded source at construction, so
// two Tables built with the same seed produce identical keys for the
// same inputs — required for the determinism law in spec.md §8. Every
// entry stores its full (line, known, filled) triple alongside the
// cached Result and verifies it on lookup, so a 64-bit hash collision
// can never return a wrong answer (spec.md §4.2's "never trust the hash
// alone"). When the table is full, Store silently skips caching rather
// than evicting — the "simplest correct policy" spec.md names.
package zobrist
