package object

import (
	"strings"

	"github.com/gostacklang/stacklang/ast"
	"github.com/gostacklang/stacklang/token"
)

// Block is an executable sequence of parsed symbols — a value that can
// also be exec'd by the runtime.
type Block struct{ Symbols []ast.Symbol }

func NewBlock(symbols []ast.Symbol) *Block { return &Block{Symbols: symbols} }

func (b *Block) Class() Class   { return ClassExec }
func (b *Block) Truthy() bool   { return true }
func (b *Block) Format() string { return "{" + FormatSymbols(b.Symbols) + "}" }

// FormatSymbols renders a parsed symbol sequence back to source text,
// used by Block.Format and by nested Array/Tuple literal symbols that
// haven't been evaluated yet.
func FormatSymbols(symbols []ast.Symbol) string {
	parts := make([]string, len(symbols))
	for i, s := range symbols {
		parts[i] = FormatSymbol(s)
	}
	return strings.Join(parts, " ")
}

// FormatSymbol renders a single parsed symbol back to source text.
func FormatSymbol(s ast.Symbol) string {
	switch sym := s.(type) {
	case ast.Identifier:
		return sym.Name
	case ast.OperatorSym:
		return token.Text(sym.Op)
	case ast.Literal:
		switch sym.Kind {
		case ast.BoolLiteral, ast.IntLiteral, ast.FloatLiteral:
			return sym.Text
		case ast.StringLiteral:
			return "\"" + sym.Text + "\""
		case ast.ArrayLiteral:
			return "[" + FormatSymbols(sym.Contents) + "]"
		case ast.TupleLiteral:
			return "(" + FormatSymbols(sym.Contents) + ")"
		case ast.BlockLiteral:
			return "{" + FormatSymbols(sym.Contents) + "}"
		}
	}
	return ""
}
