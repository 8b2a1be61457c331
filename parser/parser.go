// Package parser consumes the lexer's token stream and builds the parsed
// symbol tree (ast.Symbol): a flat pass that recursively resolves
// delimiter pairs ({} [] ()) into structured Literal symbols.
package parser

import (
	"github.com/gostacklang/stacklang/ast"
	"github.com/gostacklang/stacklang/lexer"
	"github.com/gostacklang/stacklang/scripterr"
	"github.com/gostacklang/stacklang/token"
)

// Parser turns a lexer's token stream into a []ast.Symbol.
type Parser struct {
	lex *lexer.Lexer
}

// New creates a Parser reading from l.
func New(l *lexer.Lexer) *Parser {
	return &Parser{lex: l}
}

// Parse reads the entire token stream and returns the top-level symbol
// sequence, or the first syntax error encountered.
func (p *Parser) Parse() ([]ast.Symbol, error) {
	var symbols []ast.Symbol
	for {
		tok, err := p.next()
		if err != nil {
			return nil, err
		}
		if tok.Kind == token.EOF {
			return symbols, nil
		}
		sym, err := p.parseFromToken(tok)
		if err != nil {
			return nil, err
		}
		symbols = append(symbols, sym)
	}
}

func (p *Parser) next() (token.Token, error) {
	tok, err := p.lex.NextToken()
	if err != nil {
		return tok, scripterr.NewSyntax("%s", err.Error()).WithPos(tok.Pos)
	}
	return tok, nil
}

var closeOf = map[token.Kind]token.Kind{
	token.StartBlock: token.EndBlock,
	token.StartArray: token.EndArray,
	token.StartTuple: token.EndTuple,
}

var literalKindOf = map[token.Kind]ast.LiteralKind{
	token.StartBlock: ast.BlockLiteral,
	token.StartArray: ast.ArrayLiteral,
	token.StartTuple: ast.TupleLiteral,
}

var closingDelimiters = map[token.Kind]bool{
	token.EndBlock: true,
	token.EndArray: true,
	token.EndTuple: true,
}

// parseFromToken converts an already-lexed token into a Symbol, recursing
// into parseDelimited for opening delimiters.
func (p *Parser) parseFromToken(tok token.Token) (ast.Symbol, error) {
	switch tok.Kind {
	case token.StartBlock, token.StartArray, token.StartTuple:
		return p.parseDelimited(tok)
	case token.EndBlock, token.EndArray, token.EndTuple:
		return nil, scripterr.NewSyntax("closing delimiter %q without matching start", token.Kind(tok.Kind)).WithPos(tok.Pos)
	case token.Operator:
		return ast.OperatorSym{Op: tok.Op, M: ast.Meta{Pos: tok.Pos}}, nil
	case token.Bool:
		return ast.Literal{Kind: ast.BoolLiteral, Text: tok.Literal, M: ast.Meta{Pos: tok.Pos}}, nil
	case token.Integer:
		return ast.Literal{Kind: ast.IntLiteral, Text: tok.Literal, M: ast.Meta{Pos: tok.Pos}}, nil
	case token.Float:
		return ast.Literal{Kind: ast.FloatLiteral, Text: tok.Literal, M: ast.Meta{Pos: tok.Pos}}, nil
	case token.String:
		return ast.Literal{Kind: ast.StringLiteral, Text: tok.Literal, M: ast.Meta{Pos: tok.Pos}}, nil
	case token.Identifier:
		return ast.Identifier{Name: tok.Literal, M: ast.Meta{Pos: tok.Pos}}, nil
	default:
		return nil, scripterr.NewSyntax("unexpected token %v", tok.Kind).WithPos(tok.Pos)
	}
}

// parseDelimited recursively consumes tokens until it finds the closing
// delimiter matching open, building the structured literal in between.
// Non-matching closers are errors, exhausting the stream before finding
// the match is an error, and the opening position is recorded on the
// closing symbol's metadata.
func (p *Parser) parseDelimited(open token.Token) (ast.Symbol, error) {
	closeKind, ok := closeOf[open.Kind]
	if !ok {
		return nil, scripterr.NewSyntax("unknown opening delimiter %v", open.Kind).WithPos(open.Pos)
	}

	var contents []ast.Symbol
	for {
		tok, err := p.next()
		if err != nil {
			return nil, err
		}
		if tok.Kind == token.EOF {
			return nil, scripterr.NewSyntax("could not find closing delimiter for %q opened at %s",
				closeKind, open.Pos).WithPos(open.Pos)
		}
		if tok.Kind == closeKind {
			openPos := open.Pos
			return ast.Literal{
				Kind:     literalKindOf[open.Kind],
				Contents: contents,
				M:        ast.Meta{Pos: tok.Pos, Start: &openPos},
			}, nil
		}
		if closingDelimiters[tok.Kind] {
			return nil, scripterr.NewSyntax("closing delimiter %q without matching start", tok.Kind).WithPos(tok.Pos)
		}
		sym, err := p.parseFromToken(tok)
		if err != nil {
			return nil, err
		}
		contents = append(contents, sym)
	}
}

