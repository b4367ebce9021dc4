// Command nonogram is the CLI entrypoint (SPEC_FULL.md §6.11): a
// cobra.Command root exposing solve and generate subcommands, plus a
// zero-arg fallback that reproduces the legacy batch mode of spec.md
// §6 (input.txt → solution.txt + log.txt).
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
