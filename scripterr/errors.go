// Package scripterr defines the script-level error taxonomy: a closed set
// of categories (Syntax, Name, Operand, Index, Assignment, Generic), each
// carrying an optional source position that the evaluator backfills if the
// raising site didn't know one.
package scripterr

import (
	"fmt"

	"github.com/gostacklang/stacklang/token"
)

// Kind is the category of a script-level error.
type Kind string

const (
	Syntax     Kind = "SyntaxError"
	Name       Kind = "NameError"
	Operand    Kind = "OperandError"
	Index      Kind = "IndexError"
	Assignment Kind = "AssignmentError"
	Generic    Kind = "ScriptError"
)

func (k Kind) String() string { return string(k) }

// ScriptError is the concrete error type every script-level failure is
// represented as. It satisfies error and supports Unwrap for a wrapped
// cause (e.g. a host-level error surfaced while loading a script).
type ScriptError struct {
	Kind    Kind
	Message string
	Pos     *token.Position
	Err     error
}

func (e *ScriptError) Error() string {
	if e.Pos != nil {
		return fmt.Sprintf("%s at %s: %s", e.Kind, e.Pos, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *ScriptError) Unwrap() error { return e.Err }

// WithPos attaches a position if the error doesn't already carry one. The
// evaluator calls this on the way back up from a failed symbol so the
// first (innermost) position wins.
func (e *ScriptError) WithPos(pos token.Position) *ScriptError {
	if e.Pos != nil {
		return e
	}
	cp := *e
	cp.Pos = &pos
	return &cp
}

func newf(kind Kind, format string, args ...any) *ScriptError {
	return &ScriptError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func NewSyntax(format string, args ...any) *ScriptError { return newf(Syntax, format, args...) }

func NewName(name string) *ScriptError {
	return newf(Name, "name %q is not defined", name)
}

func NewOperand(format string, args ...any) *ScriptError { return newf(Operand, format, args...) }

func NewIndex(format string, args ...any) *ScriptError { return newf(Index, format, args...) }

func NewAssignment(format string, args ...any) *ScriptError {
	return newf(Assignment, format, args...)
}

func NewGeneric(format string, args ...any) *ScriptError { return newf(Generic, format, args...) }

// Wrap turns a non-script host error into a Generic ScriptError, preserving
// it as the Unwrap cause.
func Wrap(err error) *ScriptError {
	if err == nil {
		return nil
	}
	if se, ok := err.(*ScriptError); ok {
		return se
	}
	return &ScriptError{Kind: Generic, Message: err.Error(), Err: err}
}

// As reports whether err is a *ScriptError.
func As(err error) (*ScriptError, bool) {
	se, ok := err.(*ScriptError)
	return se, ok
}
