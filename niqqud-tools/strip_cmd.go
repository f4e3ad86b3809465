package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"cloudeng.io/errors"
	"github.com/npillmayer/niqqud"
	"github.com/thatisuday/commando"
)

func runStripCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	setupTracing(flags["trace"])
	mode, err := modeFromFlags(flags)
	if err != nil {
		fatalf("%v", err)
	}
	outPath, err := flags["output"].GetString()
	if err != nil {
		fatalf("invalid --output flag: %v", err)
	}
	if err := stripToPath(splitVariadic(args["files"]), mode, os.Stdin, outPath); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "niqqud-tools: %v\n", err)
		os.Exit(1)
	}
}

// stripToPath strips the inputs and writes the result to outPath, or to
// stdout for "" and "-". All inputs are read before the output is created,
// so outPath may name one of the inputs. Output of the readable inputs is
// written even if others failed.
func stripToPath(paths []string, mode niqqud.Mode, stdin io.Reader, outPath string) error {
	if outPath == "" || outPath == "-" {
		return stripFiles(paths, mode, stdin, os.Stdout)
	}
	var buf bytes.Buffer
	errs := &errors.M{}
	errs.Append(stripFiles(paths, mode, stdin, &buf))
	errs.Append(writeOutput(outPath, buf.Bytes()))
	return errs.Err()
}

func writeOutput(path string, data []byte) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create output file: %w", err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	tracer().Debugf("wrote %d bytes to %s", len(data), path)
	return nil
}

// stripFiles writes the stripped contents of each file in paths to w, in
// order. If paths is empty, stdin is stripped instead. A file which cannot
// be read is skipped; all such failures are reported together.
func stripFiles(paths []string, mode niqqud.Mode, stdin io.Reader, w io.Writer) error {
	if len(paths) == 0 {
		tracer().Debugf("stripping stdin, mode %s", mode)
		return stripReader(stdin, mode, w)
	}
	errs := &errors.M{}
	for _, path := range paths {
		tracer().Debugf("stripping %s, mode %s", path, mode)
		data, err := os.ReadFile(path)
		if err != nil {
			tracer().Errorf("cannot read %s: %v", path, err)
			errs.Append(err)
			continue
		}
		if _, err := io.WriteString(w, niqqud.Strip(string(data), mode)); err != nil {
			// the output is gone, no point in carrying on
			errs.Append(fmt.Errorf("writing output for %s: %w", path, err))
			break
		}
	}
	return errs.Err()
}

func stripReader(r io.Reader, mode niqqud.Mode, w io.Writer) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	_, err = io.WriteString(w, niqqud.Strip(string(data), mode))
	return err
}
