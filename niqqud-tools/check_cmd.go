package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"cloudeng.io/errors"
	"github.com/npillmayer/niqqud"
	"github.com/thatisuday/commando"
)

func runCheckCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	setupTracing(flags["trace"])
	mode, err := modeFromFlags(flags)
	if err != nil {
		fatalf("%v", err)
	}
	found, err := checkFiles(splitVariadic(args["files"]), mode, os.Stdin, os.Stdout)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "niqqud-tools: %v\n", err)
		os.Exit(2)
	}
	if found > 0 {
		os.Exit(1)
	}
}

// checkFiles reports every line of the given files which Strip would change
// under mode, as "path:line: text". It returns the number of lines reported.
// With no paths, stdin is checked and reported as "-".
func checkFiles(paths []string, mode niqqud.Mode, stdin io.Reader, w io.Writer) (int, error) {
	if len(paths) == 0 {
		return checkReader("-", stdin, mode, w)
	}
	errs := &errors.M{}
	total := 0
	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			errs.Append(err)
			continue
		}
		n, err := checkReader(path, f, mode, w)
		f.Close()
		total += n
		errs.Append(err)
	}
	return total, errs.Err()
}

func checkReader(name string, r io.Reader, mode niqqud.Mode, w io.Writer) (int, error) {
	found := 0
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for lineno := 1; scanner.Scan(); lineno++ {
		line := scanner.Text()
		if !mode.Has(line) {
			continue
		}
		found++
		if _, err := fmt.Fprintf(w, "%s:%d: %s\n", name, lineno, line); err != nil {
			return found, err
		}
	}
	if err := scanner.Err(); err != nil {
		return found, fmt.Errorf("%s: %w", name, err)
	}
	tracer().Infof("%s: %d line(s) with %s removals", name, found, mode)
	return found, nil
}
