package operators

import (
	"math/big"

	"github.com/gostacklang/stacklang/object"
	"github.com/gostacklang/stacklang/runtime"
	"github.com/gostacklang/stacklang/scripterr"
	"github.com/gostacklang/stacklang/token"
)

func init() {
	runtime.RegisterUntyped(token.Quote, 1, handleQuote)
	runtime.RegisterZeroAry(token.Dup, handleDup)
	runtime.RegisterUntyped(token.Drop, 1, handleDrop)
	runtime.RegisterZeroAry(token.Break, handleBreak)

	runtime.RegisterTyped(token.Unpack, []object.Class{object.ClassNumber}, handleBitwiseNot)
	runtime.RegisterTyped(token.Unpack, []object.Class{object.ClassArray}, handleUnpackSequence)
	runtime.RegisterTyped(token.Unpack, []object.Class{object.ClassString}, handleUnpackSequence)
	runtime.RegisterTyped(token.Unpack, []object.Class{object.ClassExec}, handleExecBlock)

	runtime.RegisterTyped(token.Eval, []object.Class{object.ClassExec}, handleExecBlock)
	runtime.RegisterTyped(token.Eval, []object.Class{object.ClassString}, handleEvalString)

	runtime.RegisterTyped(token.Size, []object.Class{object.ClassArray}, handleSize)
	runtime.RegisterTyped(token.Size, []object.Class{object.ClassString}, handleSize)

	// Equal/NotEqual generic fallback: the Number,Number typed handlers
	// in arithmetic.go win whenever both operands are numbers (tolerance
	// comparison); every other pairing falls through to this untyped
	// arity-2 handler, which is just object.Equal's by-content/identity
	// rule.
	runtime.RegisterUntyped(token.Equal, 2, handleGenericEqual)
	runtime.RegisterUntyped(token.NotEqual, 2, handleGenericNotEqual)
}

// handleQuote implements Inspect (`` ` ``): push the operand's Format()
// as a String, regardless of its type.
func handleQuote(ctx *runtime.Context, args []object.Value) ([]object.Value, error) {
	return []object.Value{object.NewString(args[0].Format())}, nil
}

// handleDup implements Dup (".."): duplicate the top of the current
// stack; if this context's own stack is empty but it has a parent,
// duplicate the parent's top instead.
func handleDup(ctx *runtime.Context, _ []object.Value) ([]object.Value, error) {
	if ctx.Size() > 0 {
		v, _ := ctx.Peek(0)
		return []object.Value{v}, nil
	}
	if parent := ctx.Parent(); parent != nil {
		if v, ok := parent.Peek(0); ok {
			return []object.Value{v}, nil
		}
	}
	return nil, scripterr.NewOperand("not enough operands")
}

// handleDrop implements Drop (","): pop and discard.
func handleDrop(ctx *runtime.Context, args []object.Value) ([]object.Value, error) {
	return nil, nil
}

// handleBreak implements Break (";"): clear the current stack.
func handleBreak(ctx *runtime.Context, _ []object.Value) ([]object.Value, error) {
	ctx.Clear()
	return nil, nil
}

// handleBitwiseNot supplements the Unpack/Invert token with the
// bitwise-not reading original_source/stackscript/operators/arithmetic.py
// registers for Operand.Number, so the token's "Invert" half of its
// "Invert/Unpack" name has a concrete meaning on numbers.
func handleBitwiseNot(ctx *runtime.Context, args []object.Value) ([]object.Value, error) {
	i, ok := args[0].(*object.Int)
	if !ok {
		return nil, scripterr.NewOperand("~ on a number requires Int")
	}
	return []object.Value{&object.Int{V: new(big.Int).Not(i.V)}}, nil
}

// handleUnpackSequence implements Unpack on Array/String: push each
// element onto the current stack in order.
func handleUnpackSequence(ctx *runtime.Context, args []object.Value) ([]object.Value, error) {
	switch seq := args[0].(type) {
	case *object.Array:
		return append([]object.Value{}, seq.Elems...), nil
	case *object.Tuple:
		return append([]object.Value{}, seq.Elems...), nil
	case *object.String:
		runes := seq.Runes()
		out := make([]object.Value, len(runes))
		for i, r := range runes {
			out[i] = object.NewString(r)
		}
		return out, nil
	}
	return nil, scripterr.NewOperand("unsupported operand for unpack")
}

// handleExecBlock implements Unpack/Eval on a Block: run its symbols in
// the current context directly (side effects and pushes land on ctx).
func handleExecBlock(ctx *runtime.Context, args []object.Value) ([]object.Value, error) {
	block, ok := args[0].(*object.Block)
	if !ok {
		return nil, scripterr.NewOperand("expected a Block")
	}
	return nil, ctx.Exec(block.Symbols)
}

// handleEvalString implements Eval on a String: parse it as source text
// and execute the resulting symbols in the current context.
func handleEvalString(ctx *runtime.Context, args []object.Value) ([]object.Value, error) {
	s, ok := args[0].(*object.String)
	if !ok {
		return nil, scripterr.NewOperand("expected a String")
	}
	return nil, ctx.Execs(s.V)
}

func handleSize(ctx *runtime.Context, args []object.Value) ([]object.Value, error) {
	switch seq := args[0].(type) {
	case *object.Array:
		return []object.Value{object.NewInt(int64(seq.Len()))}, nil
	case *object.Tuple:
		return []object.Value{object.NewInt(int64(seq.Len()))}, nil
	case *object.String:
		return []object.Value{object.NewInt(int64(seq.Len()))}, nil
	}
	return nil, scripterr.NewOperand("unsupported operand for #")
}

func handleGenericEqual(ctx *runtime.Context, args []object.Value) ([]object.Value, error) {
	return []object.Value{object.NewBool(object.Equal(args[0], args[1]))}, nil
}

func handleGenericNotEqual(ctx *runtime.Context, args []object.Value) ([]object.Value, error) {
	return []object.Value{object.NewBool(!object.Equal(args[0], args[1]))}, nil
}
