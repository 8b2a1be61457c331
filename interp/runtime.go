// Package interp is the public façade over the lexer/parser/runtime
// triad: the only surface the REPL and CLI are meant to use, grounded on
// original_source/stackscript/runtime.py's ScriptRuntime.
package interp

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gostacklang/stacklang/ast"
	"github.com/gostacklang/stacklang/lexer"
	"github.com/gostacklang/stacklang/object"
	"github.com/gostacklang/stacklang/parser"
	"github.com/gostacklang/stacklang/runtime"
	"github.com/gostacklang/stacklang/scripterr"

	_ "github.com/gostacklang/stacklang/operators"
)

// Runtime owns the root evaluation context and is the entry point
// external collaborators (REPL, CLI) drive the interpreter through.
type Runtime struct {
	root *runtime.Context
}

// New creates a Runtime with an empty root stack and global namespace.
func New() *Runtime {
	rt := &Runtime{}
	rt.root = runtime.NewRootContext(parseText)
	return rt
}

func parseText(text string) ([]ast.Symbol, error) {
	l := lexer.New(text)
	p := parser.New(l)
	return p.Parse()
}

// Globals exposes the root namespace for external reads and writes
// between (never during) script runs.
func (r *Runtime) Globals() *object.Namespace {
	return r.root.Namespace()
}

// RunScript parses and executes text against the root context. A
// *scripterr.ScriptError carries the originating source position.
func (r *Runtime) RunScript(text string) error {
	symbols, err := parseText(text)
	if err != nil {
		return err
	}
	return r.root.Exec(symbols)
}

// IterStack returns the root stack's contents, top-down.
func (r *Runtime) IterStack() []object.Value {
	return r.root.IterStack()
}

// ClearStack discards every value on the root stack.
func (r *Runtime) ClearStack() {
	r.root.Clear()
}

// FormatStack renders the root stack as a sequence of lines, one per
// value, top-down. format uses {idx} (1-based, left-padded to the stack's
// width) and {value} substitutions; formatSingle, if non-empty, replaces
// format when the stack holds exactly one value.
func FormatStack(values []object.Value, format, formatSingle string) []string {
	if len(values) == 1 && formatSingle != "" {
		format = formatSingle
	}
	width := len(strconv.Itoa(len(values)))
	lines := make([]string, len(values))
	for i, v := range values {
		idx := fmt.Sprintf("%0*d", width, i+1)
		line := strings.ReplaceAll(format, "{idx}", idx)
		line = strings.ReplaceAll(line, "{value}", v.Format())
		lines[i] = line
	}
	return lines
}

// FormatStack renders this Runtime's current stack; see the package-level
// FormatStack for the substitution rules.
func (r *Runtime) FormatStack(format, formatSingle string) []string {
	return FormatStack(r.IterStack(), format, formatSingle)
}

// DumpGlobals returns a snapshot of the global namespace's own bindings,
// rendered as source text, suitable for YAML marshalling by callers (the
// REPL's /env command and the CLI's --dump-env flag both use this).
func DumpGlobals(ns *object.Namespace) map[string]string {
	snap := ns.Snapshot()
	out := make(map[string]string, len(snap))
	for name, v := range snap {
		out[name] = v.Format()
	}
	return out
}

// AsScriptError reports whether err is a script-level error, for callers
// that want to distinguish it from a host/internal failure.
func AsScriptError(err error) (*scripterr.ScriptError, bool) {
	return scripterr.As(err)
}
