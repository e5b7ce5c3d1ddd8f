// Command slig is the reference CLI for the Regional Intersection Graph
// toolkit: it generates random region sets, converts between the regions
// and RIG JSON forms, and enumerates multi-way intersections.
//
// Exit codes, per spec.md §6.4: 0 on success; 1 on I/O failure; 2 on
// malformed JSON; 3 on dimension mismatch.
package main

import (
	"fmt"
	"os"
)

const (
	exitOK             = 0
	exitIOFailure      = 1
	exitMalformedJSON  = 2
	exitDimensionError = 3
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "usage: slig <generate|convert|enumerate> [flags]")
		return exitIOFailure
	}

	sub, rest := args[0], args[1:]
	switch sub {
	case "generate":
		return runGenerate(rest)
	case "convert":
		return runConvert(rest)
	case "enumerate":
		return runEnumerate(rest)
	default:
		fmt.Fprintf(os.Stderr, "slig: unknown subcommand %q\n", sub)
		return exitIOFailure
	}
}
