// Command nonogram's cobra.Command tree is grounded on the
// spf13/cobra dependency named in SPEC_FULL.md §3/§4 (pulled from the
// pack's operator-framework-olm, AKJUS-bsc-erigon, and dfbb-im2code
// manifests): one root command with persistent --seed/-v flags, two
// leaf subcommands (solve, generate), and a RunE fallback on the root
// itself for the legacy no-argument batch mode. zerolog backs both the
// batch diagnostics log and the -v/--verbose console output, the same
// dependency batch/log.go uses for its structured events.
package main
