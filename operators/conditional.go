package operators

import (
	"github.com/gostacklang/stacklang/object"
	"github.com/gostacklang/stacklang/runtime"
	"github.com/gostacklang/stacklang/scripterr"
	"github.com/gostacklang/stacklang/token"
)

func init() {
	runtime.RegisterUntyped(token.KeywordAnd, 2, handleAnd)
	runtime.RegisterUntyped(token.KeywordOr, 2, handleOr)
	runtime.RegisterUntyped(token.KeywordIf, 3, handleIf)

	runtime.RegisterTyped(token.KeywordWhile, []object.Class{object.ClassExec, object.ClassExec}, handleWhile)
	runtime.RegisterTyped(token.KeywordDo, []object.Class{object.ClassExec}, handleDo)

	runtime.RegisterUntyped(token.Mod, 2, handleInvoke)
	runtime.RegisterUntyped(token.BitOr, 2, handleCompose)
}

// shortCircuitEval evaluates a conditional operand: if it is a Block, run
// it in a namespace-sharing child and require it settle to exactly one
// value; any other value is used as-is. Grounded on
// original_source/stackscript/operators/conditional.py's
// _shortcircuit_eval.
func shortCircuitEval(ctx *runtime.Context, v object.Value, name string) (object.Value, error) {
	block, ok := v.(*object.Block)
	if !ok {
		return v, nil
	}
	sub := ctx.CreateChild(runtime.ShareNamespace)
	if err := sub.Exec(block.Symbols); err != nil {
		return nil, err
	}
	if sub.Size() != 1 {
		return nil, scripterr.NewOperand("%s did not evaluate to a single value", name)
	}
	result, _ := sub.Peek(0)
	return result, nil
}

func handleAnd(ctx *runtime.Context, args []object.Value) ([]object.Value, error) {
	a, err := shortCircuitEval(ctx, args[0], "left expression")
	if err != nil {
		return nil, err
	}
	if !a.Truthy() {
		return []object.Value{a}, nil
	}
	b, err := shortCircuitEval(ctx, args[1], "right expression")
	if err != nil {
		return nil, err
	}
	return []object.Value{b}, nil
}

func handleOr(ctx *runtime.Context, args []object.Value) ([]object.Value, error) {
	a, err := shortCircuitEval(ctx, args[0], "left expression")
	if err != nil {
		return nil, err
	}
	if a.Truthy() {
		return []object.Value{a}, nil
	}
	b, err := shortCircuitEval(ctx, args[1], "right expression")
	if err != nil {
		return nil, err
	}
	return []object.Value{b}, nil
}

func handleIf(ctx *runtime.Context, args []object.Value) ([]object.Value, error) {
	cond, err := shortCircuitEval(ctx, args[0], "conditional expression")
	if err != nil {
		return nil, err
	}
	branch := args[2]
	if cond.Truthy() {
		branch = args[1]
	}
	if block, ok := branch.(*object.Block); ok {
		return nil, ctx.Exec(block.Symbols)
	}
	return []object.Value{branch}, nil
}

func handleWhile(ctx *runtime.Context, args []object.Value) ([]object.Value, error) {
	cond, body := args[0].(*object.Block), args[1].(*object.Block)
	for {
		v, err := shortCircuitEval(ctx, cond, "conditional expression")
		if err != nil {
			return nil, err
		}
		if !v.Truthy() {
			return nil, nil
		}
		if err := ctx.Exec(body.Symbols); err != nil {
			return nil, err
		}
	}
}

// handleDo runs body at least once, then keeps repeating as long as the
// value it leaves on top of the stack is truthy (and consumes it).
func handleDo(ctx *runtime.Context, args []object.Value) ([]object.Value, error) {
	body := args[0].(*object.Block)
	for {
		if err := ctx.Exec(body.Symbols); err != nil {
			return nil, err
		}
		v, ok := ctx.Pop()
		if !ok {
			return nil, scripterr.NewOperand("not enough operands")
		}
		if !v.Truthy() {
			return nil, nil
		}
	}
}

// handleInvoke implements Invoke ('%' at arity 2): push arg into a fresh
// child context, run the block there, and splice its results onto the
// caller's stack.
func handleInvoke(ctx *runtime.Context, args []object.Value) ([]object.Value, error) {
	arg, block := args[0], args[1]
	b, ok := block.(*object.Block)
	if !ok {
		return nil, scripterr.NewOperand("unsupported operand type")
	}
	sub := ctx.CreateChild(0)
	sub.Push(arg)
	if err := sub.Exec(b.Symbols); err != nil {
		return nil, err
	}
	return sub.IterStackResult(), nil
}

// handleCompose is Invoke, but the results are collected into a Tuple
// instead of spliced onto the caller's stack.
func handleCompose(ctx *runtime.Context, args []object.Value) ([]object.Value, error) {
	arg, block := args[0], args[1]
	b, ok := block.(*object.Block)
	if !ok {
		return nil, scripterr.NewOperand("unsupported operand type")
	}
	sub := ctx.CreateChild(0)
	sub.Push(arg)
	if err := sub.Exec(b.Symbols); err != nil {
		return nil, err
	}
	return []object.Value{object.NewTuple(sub.IterStackResult())}, nil
}
