package interp

import (
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
)

func runOK(t *testing.T, src string) *Runtime {
	t.Helper()
	rt := New()
	if err := rt.RunScript(src); err != nil {
		t.Fatalf("RunScript(%q) failed: %v", src, err)
	}
	return rt
}

func stackStrings(rt *Runtime) []string {
	values := rt.IterStack()
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = v.Format()
	}
	return out
}

// TestEndToEnd_Scenarios snapshots the formatted top-down stack produced by
// running a handful of representative scripts, covering integer and array
// arithmetic, array concatenation, recursion through the invoke operator,
// block mapping, a countdown loop, and set union.
func TestEndToEnd_Scenarios(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"AddIntegers", "1 1 +"},
		{"ArrayArithmetic", "[ 1 2 3 - 4 5 6 7 + ]"},
		{"ArrayConcat", "['a' 'b'] ['c'] +"},
		{"RecursiveFactorialViaInvoke", "{ :n; n 0 <= {1} {n 1 - factorial % n *} if }: factorial; 5 factorial %"},
		{"MapThenUnpack", "[ 1 2 3 ] {2*}/ ~"},
		{"CountdownDo", "5 { 1 - .. 0 > } do,"},
		{"SetUnion", "[ 1 3 4 ] [ 7 3 1 2 ] |"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rt := runOK(t, tt.src)
			snaps.MatchSnapshot(t, strings.Join(stackStrings(rt), "\n"))
		})
	}
}

func TestEndToEnd_UnmatchedDelimiterIsSyntaxError(t *testing.T) {
	rt := New()
	err := rt.RunScript("[ 1 2")
	if err == nil {
		t.Fatal("expected a syntax error for an unmatched '['")
	}
	se, ok := AsScriptError(err)
	if !ok {
		t.Fatalf("expected a *scripterr.ScriptError, got %T", err)
	}
	if se.Pos == nil {
		t.Fatal("expected the error to carry the opening delimiter's position")
	}
}

func TestEndToEnd_ArrayIdentitySharedThroughAssignment(t *testing.T) {
	rt := runOK(t, "[ 1 2 ]: a; a: b;")
	a, ok := rt.Globals().Lookup("a")
	if !ok {
		t.Fatal("expected a to be bound")
	}
	b, ok := rt.Globals().Lookup("b")
	if !ok {
		t.Fatal("expected b to be bound")
	}
	if a != b {
		t.Fatal("assigning an Array to another name must share identity, not copy")
	}
}

func TestEndToEnd_IndexZeroIsIndexError(t *testing.T) {
	rt := New()
	err := rt.RunScript("[ 1 2 3 ] 0 $")
	se, ok := AsScriptError(err)
	if !ok || se.Kind.String() != "IndexError" {
		t.Fatalf("expected an IndexError, got %v", err)
	}
}

func TestEndToEnd_UnboundNameIsNameError(t *testing.T) {
	rt := New()
	err := rt.RunScript("doesNotExist")
	se, ok := AsScriptError(err)
	if !ok || se.Kind.String() != "NameError" {
		t.Fatalf("expected a NameError, got %v", err)
	}
}

func TestEndToEnd_DivisionByZeroIsOperandError(t *testing.T) {
	rt := New()
	err := rt.RunScript("1 0 /")
	se, ok := AsScriptError(err)
	if !ok || se.Kind.String() != "OperandError" {
		t.Fatalf("expected an OperandError, got %v", err)
	}
}

func TestEndToEnd_DestructuringMismatchIsAssignmentError(t *testing.T) {
	rt := New()
	err := rt.RunScript("[ 1 2 3 ]: { x y };")
	se, ok := AsScriptError(err)
	if !ok || se.Kind.String() != "AssignmentError" {
		t.Fatalf("expected an AssignmentError, got %v", err)
	}
}

func TestEndToEnd_NamespaceIsolation(t *testing.T) {
	// Invoking a block binds its own copy of x in a fresh child namespace;
	// the binding must not leak back into the caller's namespace.
	rt := runOK(t, "10: x; 5 { 20: x; } %;")
	x, ok := rt.Globals().Lookup("x")
	if !ok || x.Format() != "10" {
		t.Fatalf("expected the caller's x to remain 10, got %v (bound=%v)", x, ok)
	}
}

func TestEndToEnd_GlobalsRoundTrip(t *testing.T) {
	rt := New()
	if err := rt.RunScript("42: answer;"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	dump := DumpGlobals(rt.Globals())
	if dump["answer"] != "42" {
		t.Fatalf("expected answer=42 in globals dump, got %v", dump)
	}
}

func TestFormatStack_Substitutions(t *testing.T) {
	rt := runOK(t, "[ 1 2 3 ] ~")
	lines := rt.FormatStack("{idx}: {value}", "")
	want := []string{"1: 3", "2: 2", "3: 1"}
	if len(lines) != len(want) {
		t.Fatalf("got %v, want %v", lines, want)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d: got %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestFormatStack_SingleFormatOverride(t *testing.T) {
	rt := runOK(t, "7")
	lines := rt.FormatStack("{idx}: {value}", "=> {value}")
	if len(lines) != 1 || lines[0] != "=> 7" {
		t.Fatalf("expected the single-value format to win, got %v", lines)
	}
}
