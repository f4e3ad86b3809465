package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/niqqud"
	"github.com/pterm/pterm"
	"github.com/thatisuday/commando"
)

func runReplCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	setupTracing(flags["trace"])
	mode := niqqud.Plain
	if mustFlagBool(flags["thorough"], "thorough") {
		mode = niqqud.Thorough
	}
	pterm.Info.Println("Welcome to the niqqud REPL")
	repl, err := readline.New("niqqud > ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	defer repl.Close()
	intp := &Intp{repl: repl, mode: mode, out: os.Stdout}
	pterm.Info.Println("Quit with <ctrl>D") // inform user how to stop the CLI
	intp.REPL()
}

// Intp is our interpreter object
type Intp struct {
	repl *readline.Instance
	mode niqqud.Mode
	out  io.Writer
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF or interrupt
			break
		}
		quit, err := intp.handle(line)
		if err != nil {
			pterm.Error.Println(err)
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

// handle processes one input line. Lines starting with ':' are commands,
// everything else is stripped and echoed.
func (intp *Intp) handle(line string) (quit bool, err error) {
	if strings.TrimSpace(line) == "" {
		return false, nil
	}
	if !strings.HasPrefix(strings.TrimSpace(line), ":") {
		_, err = fmt.Fprintln(intp.out, niqqud.Strip(line, intp.mode))
		return false, err
	}
	op, err := parseOp(strings.TrimSpace(line))
	if err != nil {
		return false, err
	}
	tracer().Debugf("op = %s %q", opNames[op.code], op.arg)
	return commandFn[op.code](intp, op)
}

type Op struct {
	code int
	arg  string
}

const (
	QUIT int = iota
	HELP
	PLAIN
	THOROUGH
	MODE
	EXPLAIN
)

var opMap = map[string]int{
	"quit":     QUIT,
	"q":        QUIT,
	"help":     HELP,
	"plain":    PLAIN,
	"thorough": THOROUGH,
	"mode":     MODE,
	"explain":  EXPLAIN,
}

var opNames = []string{
	"quit",
	"help",
	"plain",
	"thorough",
	"mode",
	"explain",
}

var errNoCommand = errors.New("missing command after ':'")

// parseOp parses ":command [argument]".
func parseOp(line string) (*Op, error) {
	line = strings.TrimPrefix(line, ":")
	name, arg, _ := strings.Cut(line, " ")
	if name == "" {
		return nil, errNoCommand
	}
	code, ok := opMap[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown command %q, try :help", name)
	}
	return &Op{code: code, arg: strings.TrimSpace(arg)}, nil
}

var commandFn = map[int]func(*Intp, *Op) (bool, error){
	QUIT:     quitOp,
	HELP:     helpOp,
	PLAIN:    plainOp,
	THOROUGH: thoroughOp,
	MODE:     modeOp,
	EXPLAIN:  explainOp,
}

func quitOp(intp *Intp, op *Op) (bool, error) {
	return true, nil
}

func helpOp(intp *Intp, op *Op) (bool, error) {
	_, err := fmt.Fprint(intp.out, `Lines are echoed with diacritics removed. Commands:
  :plain           remove diacritics only
  :thorough        remove diacritics and Hebrew quotes
  :mode            show the current mode
  :explain <text>  list the codepoints of <text>
  :quit            leave (or <ctrl>D)
`)
	return false, err
}

func plainOp(intp *Intp, op *Op) (bool, error) {
	intp.mode = niqqud.Plain
	tracer().Infof("mode is %s", intp.mode)
	return false, nil
}

func thoroughOp(intp *Intp, op *Op) (bool, error) {
	intp.mode = niqqud.Thorough
	tracer().Infof("mode is %s", intp.mode)
	return false, nil
}

func modeOp(intp *Intp, op *Op) (bool, error) {
	_, err := fmt.Fprintf(intp.out, "mode: %s\n", intp.mode)
	return false, err
}

func explainOp(intp *Intp, op *Op) (bool, error) {
	if op.arg == "" {
		return false, errors.New("nothing to explain")
	}
	table, err := pterm.DefaultTable.WithHasHeader().WithData(explainRows(op.arg)).Srender()
	if err != nil {
		return false, err
	}
	_, err = fmt.Fprintln(intp.out, table)
	return false, err
}
