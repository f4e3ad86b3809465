package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/npillmayer/niqqud"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
	"github.com/thatisuday/commando"
)

// tracer traces with key 'niqqud'
func tracer() tracing.Trace {
	return tracing.Select("niqqud")
}

func main() {
	initDisplay()

	commando.
		SetExecutableName("niqqud-tools").
		SetVersion("v0.1.0").
		SetDescription("Remove Hebrew diacritics (niqqud) and, optionally, Hebrew quotes from text.")

	commando.
		Register("strip").
		SetDescription("Strip diacritics from files (or stdin) and write the result to stdout or --output.").
		SetShortDescription("strip diacritics").
		AddArgument("files...", "input files; stdin if none (variadic argument parts joined by comma by commando, so file names must not contain commas)", "").
		AddFlag("thorough,t", "also remove Hebrew quotes (geresh, gershayim)", commando.Bool, nil).
		AddFlag("mode,m", "removal mode: plain|thorough", commando.String, "plain").
		AddFlag("output,o", "output file", commando.String, "-").
		AddFlag("trace,T", "trace level: Debug|Info|Error", commando.String, "Error").
		SetAction(runStripCommand)

	commando.
		Register("check").
		SetDescription("Report lines containing diacritics. Exits with status 1 if any are found.").
		SetShortDescription("find diacritics").
		AddArgument("files...", "input files; stdin if none (variadic argument parts joined by comma by commando, so file names must not contain commas)", "").
		AddFlag("thorough,t", "report Hebrew quotes as well", commando.Bool, nil).
		AddFlag("trace,T", "trace level: Debug|Info|Error", commando.String, "Error").
		SetAction(runCheckCommand)

	commando.
		Register("explain").
		SetDescription("Print a table of the codepoints of a text and whether they are removed.").
		SetShortDescription("classify codepoints").
		AddArgument("text...", "text to explain (variadic argument parts joined by comma by commando)", "").
		AddFlag("codepoints,c", "codepoints instead of text (comma/space separated, e.g. U+05D0,U+05B8)", commando.String, "-").
		AddFlag("trace,T", "trace level: Debug|Info|Error", commando.String, "Error").
		SetAction(runExplainCommand)

	commando.
		Register("repl").
		SetDescription("Strip diacritics interactively. Quit with <ctrl>D or :quit.").
		SetShortDescription("interactive mode").
		AddFlag("thorough,t", "start in thorough mode", commando.Bool, nil).
		AddFlag("trace,T", "trace level: Debug|Info|Error", commando.String, "Info").
		SetAction(runReplCommand)

	commando.Parse(nil)
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// setupTracing routes the 'niqqud' tracer to Go's log package, writing to
// stderr, and sets its level.
func setupTracing(flag commando.FlagValue) {
	level, err := flag.GetString()
	if err != nil {
		fatalf("invalid --trace flag: %v", err)
	}
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter": "go",
		"trace.niqqud":    "Error",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fatalf("error configuring tracing: %v", err)
	}
	tracing.SetTraceSelector(trace2go.Selector())
	if err := setTraceLevel(level); err != nil {
		fatalf("%v", err)
	}
	tracer().Debugf("trace level is %s", level)
}

func setTraceLevel(level string) error {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		tracer().SetTraceLevel(tracing.LevelDebug)
	case "info":
		tracer().SetTraceLevel(tracing.LevelInfo)
	case "error", "":
		tracer().SetTraceLevel(tracing.LevelError)
	default:
		return fmt.Errorf("invalid trace level: %s", level)
	}
	return nil
}

// modeFromFlags combines --mode and --thorough; --thorough wins.
func modeFromFlags(flags map[string]commando.FlagValue) (niqqud.Mode, error) {
	mode := niqqud.Plain
	if f, ok := flags["mode"]; ok {
		name, err := f.GetString()
		if err != nil {
			return mode, fmt.Errorf("invalid --mode flag: %w", err)
		}
		if mode, err = niqqud.ParseMode(name); err != nil {
			return mode, err
		}
	}
	if mustFlagBool(flags["thorough"], "thorough") {
		mode = niqqud.Thorough
	}
	return mode, nil
}

// splitVariadic undoes commando's joining of variadic arguments. A comma
// inside an argument cannot be told apart from a separator.
func splitVariadic(arg commando.ArgValue) []string {
	if strings.TrimSpace(arg.Value) == "" {
		return nil
	}
	parts := strings.Split(arg.Value, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func mustFlagBool(flag commando.FlagValue, name string) bool {
	b, err := flag.GetBool()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	return b
}

func fatalf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(os.Stderr, "niqqud-tools: "+format+"\n", args...)
	os.Exit(1)
}
