// Package ast defines the parsed symbol tree the parser produces and the
// runtime consumes: identifiers, literals (including nested Array/Tuple/
// Block literals) and operator occurrences, each carrying enough source
// position metadata to let the runtime attach positions to errors.
package ast

import "github.com/gostacklang/stacklang/token"

// Meta carries the source position of a symbol. Start is set on a
// closing delimiter to the position of its matching opener, so error
// messages about a malformed literal can point at where it began.
type Meta struct {
	Pos   token.Position
	Start *token.Position
}

// Symbol is any element of a parsed symbol stream: an Identifier, a
// Literal, or an OperatorSym.
type Symbol interface {
	Meta() Meta
	symbolNode()
}

// Identifier names a value binding. Evaluating one normally looks it up
// in the current namespace; inside a block-assignment sub-context it
// instead yields a NameTarget pseudo-value (see the runtime package).
type Identifier struct {
	Name string
	M    Meta
}

func (i Identifier) Meta() Meta { return i.M }
func (Identifier) symbolNode()  {}

// LiteralKind distinguishes the shape of a Literal's payload.
type LiteralKind int

const (
	BoolLiteral LiteralKind = iota
	IntLiteral
	FloatLiteral
	StringLiteral
	ArrayLiteral
	TupleLiteral
	BlockLiteral
)

// Literal is either a simple scalar token (Bool/Int/Float/String,
// carried in Text) or a structured literal (Array/Tuple/Block, carried
// as a nested Symbol sequence in Contents).
type Literal struct {
	Kind     LiteralKind
	Text     string // raw source text for scalar literals
	Contents []Symbol
	M        Meta
}

func (l Literal) Meta() Meta { return l.M }
func (Literal) symbolNode()  {}

// OperatorSym is a single operator occurrence, symbol or keyword spelled.
type OperatorSym struct {
	Op token.Operator
	M  Meta
}

func (o OperatorSym) Meta() Meta { return o.M }
func (OperatorSym) symbolNode()  {}
