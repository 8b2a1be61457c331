// Package repl implements a Read-Evaluate-Print Loop over an interp.Runtime,
// grounded on original_source/stackscript/repl.py: a `;`-terminated
// multi-line statement reader and a small set of `/`-prefixed
// metacommands.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gostacklang/stacklang/interp"
)

const (
	promptDefault   = ">>> "
	promptMultiline = "... "
	inputTerminator = ";"
	cmdPrefix       = "/"
)

var intro = "Stack language interactive mode.\n" +
	"Type /help or /? to list metacommands.\n"

// REPL drives an interp.Runtime from a line-oriented input/output pair.
type REPL struct {
	runtime *interp.Runtime
	in      *bufio.Scanner
	out     io.Writer
	exit    bool
}

// New creates a REPL reading lines from in and writing to out.
func New(runtime *interp.Runtime, in io.Reader, out io.Writer) *REPL {
	return &REPL{runtime: runtime, in: bufio.NewScanner(in), out: out}
}

// Run prints the intro banner and loops until input is exhausted or
// `/quit` is issued.
func (r *REPL) Run() {
	r.print(intro)

	for !r.exit {
		stmt, ok := r.readStatement()
		if !ok {
			continue
		}

		if err := r.runtime.RunScript(stmt); err != nil {
			// The stack is left as-is on error: a failed statement may have
			// partially evaluated, and clearing would destroy state the user
			// can still inspect or recover from on the next statement.
			r.print(err.Error())
			continue
		}

		for _, v := range r.runtime.IterStack() {
			r.print("] " + v.Format())
		}
		r.runtime.ClearStack()
	}
}

// readStatement reads lines until one ends with the input terminator
// (ignoring trailing whitespace), stripping the terminator and joining
// the accumulated lines with newlines.
func (r *REPL) readStatement() (string, bool) {
	var lines []string

	for !r.exit {
		prompt := promptDefault
		if len(lines) > 0 {
			prompt = promptMultiline
		}
		line, ok := r.readInput(prompt)
		if !ok {
			continue
		}

		if strings.HasSuffix(line, inputTerminator) {
			lines = append(lines, strings.TrimSuffix(line, inputTerminator))
			return strings.Join(lines, "\n"), true
		}
		lines = append(lines, line)
	}
	return "", false
}

// readInput reads one line, dispatching it as a metacommand if it starts
// with cmdPrefix. It returns ok=false when the line was consumed as a
// metacommand (or input ended) rather than produced script text.
func (r *REPL) readInput(prompt string) (string, bool) {
	fmt.Fprint(r.out, prompt)
	if !r.in.Scan() {
		r.exit = true
		return "", false
	}
	line := strings.TrimRight(r.in.Text(), " \t\r")

	if strings.HasPrefix(line, cmdPrefix) {
		r.dispatchMetacommand(strings.TrimPrefix(line, cmdPrefix))
		return "", false
	}
	return line, true
}

func (r *REPL) dispatchMetacommand(rest string) {
	fields := strings.Fields(rest)
	if len(fields) == 0 {
		return
	}
	cmd, args := fields[0], fields[1:]
	if cmd == "?" {
		cmd = "help"
	}

	switch cmd {
	case "help":
		r.cmdHelp(args)
	case "quit":
		r.exit = true
	case "clear":
		r.runtime.ClearStack()
	case "env":
		r.cmdEnv()
	default:
		r.print(fmt.Sprintf("*** Unrecognized command %q", cmd))
	}
}

func (r *REPL) cmdHelp(args []string) {
	topics := map[string]string{
		"help":  "List available commands with '/help' or detailed help with '/help cmd'.",
		"quit":  "Quit the interpreter.",
		"clear": "Discard the current stack contents.",
		"env":   "Dump the global namespace as YAML.",
	}
	if len(args) == 0 {
		for _, name := range []string{"help", "quit", "clear", "env"} {
			r.print(fmt.Sprintf("%s - %s", name, topics[name]))
		}
		return
	}
	doc, ok := topics[args[0]]
	if !ok {
		r.print(fmt.Sprintf("*** No help on %q", args[0]))
		return
	}
	r.print(doc)
}

func (r *REPL) cmdEnv() {
	out, err := yaml.Marshal(interp.DumpGlobals(r.runtime.Globals()))
	if err != nil {
		r.print("*** " + err.Error())
		return
	}
	r.print(strings.TrimRight(string(out), "\n"))
}

func (r *REPL) print(s string) {
	fmt.Fprintln(r.out, s)
}
