// Command nfacli builds an NFA from a small textual script, feeds it
// an input symbol sequence, and reports whether the result is
// accepting, with optional graph dumps and CPU/heap profiling.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"runtime/pprof"
	"strings"

	"github.com/google/uuid"

	"github.com/jacoelho/nfa"
	"github.com/jacoelho/nfa/internal/script"
	"github.com/jacoelho/nfa/internal/symbols"
)

func main() {
	os.Exit(runWithArgs(os.Args[1:], os.Stdout, os.Stderr))
}

func runWithArgs(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("nfacli", flag.ContinueOnError)
	fs.SetOutput(stderr)

	scriptPath := fs.String("script", "", "path to a .nfa construction script")
	input := fs.String("input", "", "space separated input symbols to feed")
	dumpMode := fs.String("dump", "", "print a graph dump: compact, multiline, dot, dotcompact")
	cpuProfile := fs.String("cpuprofile", "", "write a CPU profile to this file")
	memProfile := fs.String("memprofile", "", "write a heap profile to this file")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *scriptPath == "" {
		writeln(stderr, "nfacli: -script is required")
		return 2
	}

	if *cpuProfile != "" {
		stop, err := startCPUProfile(*cpuProfile)
		if err != nil {
			writef(stderr, "nfacli: %v\n", err)
			return 1
		}
		defer stop()
	}

	src, err := os.ReadFile(*scriptPath)
	if err != nil {
		writef(stderr, "nfacli: reading script: %v\n", err)
		return 1
	}

	g, _, err := script.Build(string(src))
	if err != nil {
		writef(stderr, "nfacli: %v\n", err)
		return 1
	}

	if *dumpMode != "" {
		mode, err := parseDumpMode(*dumpMode)
		if err != nil {
			writef(stderr, "nfacli: %v\n", err)
			return 2
		}
		writeln(stdout, renderDump(g, mode))
	}

	accepted := true
	if *input != "" {
		accepted = runInput(g, *input, stdout)
	}
	if *memProfile != "" {
		if err := writeMemProfile(*memProfile); err != nil {
			writef(stderr, "nfacli: %v\n", err)
			return 1
		}
	}
	if !accepted {
		return 1
	}
	return 0
}

func runInput(g *nfa.NFA[symbols.Symbol, string], input string, stdout io.Writer) bool {
	m := nfa.StartMatch(g, symbols.Match, symbols.Image)
	for _, tok := range strings.Fields(input) {
		if !m.Process(symbols.Input(tok)) {
			writef(stdout, "reject: no transition for %q (expected %s)\n", tok, m.Expected())
			return false
		}
	}
	if m.InFinal() {
		writeln(stdout, "accept")
		return true
	}
	writef(stdout, "reject: not in an accepting state (expected %s)\n", m.Expected())
	return false
}

func parseDumpMode(s string) (nfa.DumpMode, error) {
	switch s {
	case "compact":
		return nfa.Compact, nil
	case "multiline":
		return nfa.Multiline, nil
	case "dot":
		return nfa.Dot, nil
	case "dotcompact":
		return nfa.DotCompact, nil
	default:
		return 0, fmt.Errorf("unknown dump mode %q", s)
	}
}

func renderDump(g *nfa.NFA[symbols.Symbol, string], mode nfa.DumpMode) string {
	out := nfa.Dump(g, symbols.Image, mode)
	if mode == nfa.Dot || mode == nfa.DotCompact {
		return fmt.Sprintf("// run %s\n%s", uuid.New(), out)
	}
	return out
}

func startCPUProfile(path string) (stop func(), err error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create cpu profile: %w", err)
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		f.Close()
		return nil, fmt.Errorf("start cpu profile: %w", err)
	}
	return func() {
		pprof.StopCPUProfile()
		f.Close()
	}, nil
}

func writeMemProfile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create mem profile: %w", err)
	}
	defer f.Close()
	if err := pprof.WriteHeapProfile(f); err != nil {
		return fmt.Errorf("write mem profile: %w", err)
	}
	return nil
}

func writef(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, format, args...)
}

func writeln(w io.Writer, s string) {
	fmt.Fprintln(w, s)
}
