package runtime

import (
	"testing"

	"github.com/gostacklang/stacklang/object"
	"github.com/gostacklang/stacklang/token"
)

// Using token.Sub/token.Mul/token.Div as scratch operators here is safe:
// this test binary never imports the operators package, so the registry
// starts empty and these registrations don't collide with anything.

func TestDispatch_TypedWinsOverUntypedAtSameArity(t *testing.T) {
	const op = token.Sub
	var gotTyped, gotUntyped bool
	RegisterTyped(op, []object.Class{object.ClassNumber, object.ClassNumber}, func(c *Context, args []object.Value) ([]object.Value, error) {
		gotTyped = true
		return nil, nil
	})
	RegisterUntyped(op, 2, func(c *Context, args []object.Value) ([]object.Value, error) {
		gotUntyped = true
		return nil, nil
	})

	ctx := NewRootContext(nil)
	ctx.Push(object.NewInt(1))
	ctx.Push(object.NewInt(2))
	if err := Dispatch(ctx, op); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !gotTyped || gotUntyped {
		t.Fatalf("expected the typed handler to win, got typed=%v untyped=%v", gotTyped, gotUntyped)
	}
}

func TestDispatch_UntypedFallsBackWhenTypesDontMatch(t *testing.T) {
	const op = token.Mul
	var gotUntyped bool
	RegisterTyped(op, []object.Class{object.ClassNumber, object.ClassNumber}, func(c *Context, args []object.Value) ([]object.Value, error) {
		t.Fatal("typed handler should not run for a String operand")
		return nil, nil
	})
	RegisterUntyped(op, 2, func(c *Context, args []object.Value) ([]object.Value, error) {
		gotUntyped = true
		return nil, nil
	})

	ctx := NewRootContext(nil)
	ctx.Push(object.NewString("x"))
	ctx.Push(object.NewInt(2))
	if err := Dispatch(ctx, op); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !gotUntyped {
		t.Fatal("expected the untyped arity-2 fallback to run")
	}
}

func TestDispatch_SmallerArityCheckedFirst(t *testing.T) {
	const op = token.Div
	var arity1Ran, arity2Ran bool
	RegisterTyped(op, []object.Class{object.ClassNumber}, func(c *Context, args []object.Value) ([]object.Value, error) {
		arity1Ran = true
		return nil, nil
	})
	RegisterTyped(op, []object.Class{object.ClassNumber, object.ClassNumber}, func(c *Context, args []object.Value) ([]object.Value, error) {
		arity2Ran = true
		return nil, nil
	})

	ctx := NewRootContext(nil)
	ctx.Push(object.NewInt(1))
	ctx.Push(object.NewInt(2))
	if err := Dispatch(ctx, op); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !arity1Ran || arity2Ran {
		t.Fatalf("expected the arity-1 match to win since it's checked first, got arity1=%v arity2=%v", arity1Ran, arity2Ran)
	}
}

func TestDispatch_NotEnoughOperandsIsOperandError(t *testing.T) {
	const op = token.Pow
	RegisterTyped(op, []object.Class{object.ClassNumber, object.ClassNumber}, func(c *Context, args []object.Value) ([]object.Value, error) {
		return nil, nil
	})

	ctx := NewRootContext(nil)
	ctx.Push(object.NewInt(1))
	err := Dispatch(ctx, op)
	if err == nil {
		t.Fatal("expected an error when too few operands are on the stack")
	}
}

func TestDispatch_NoRegistrationIsOperandError(t *testing.T) {
	ctx := NewRootContext(nil)
	ctx.Push(object.NewInt(1))
	if err := Dispatch(ctx, token.BitXor); err == nil {
		t.Fatal("expected an error for an operator with no registered handler")
	}
}

func TestDispatch_ZeroArySkipsStackEntirely(t *testing.T) {
	const op = token.Quote
	var ran bool
	RegisterZeroAry(op, func(c *Context, args []object.Value) ([]object.Value, error) {
		ran = true
		return nil, nil
	})

	ctx := NewRootContext(nil) // empty stack
	if err := Dispatch(ctx, op); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ran {
		t.Fatal("expected the zero-ary handler to run even with an empty stack")
	}
}

func TestRegisterPermute_MatchesEitherStackOrder(t *testing.T) {
	const op = token.ShiftRight
	var seen [][2]string
	RegisterPermute(op, []object.Class{object.ClassNumber, object.ClassString}, func(c *Context, args []object.Value) ([]object.Value, error) {
		seen = append(seen, [2]string{args[0].Class().String(), args[1].Class().String()})
		return nil, nil
	})

	ctx := NewRootContext(nil)
	ctx.Push(object.NewInt(1))
	ctx.Push(object.NewString("a"))
	if err := Dispatch(ctx, op); err != nil {
		t.Fatalf("unexpected error (Number,String order): %v", err)
	}

	ctx2 := NewRootContext(nil)
	ctx2.Push(object.NewString("a"))
	ctx2.Push(object.NewInt(1))
	if err := Dispatch(ctx2, op); err != nil {
		t.Fatalf("unexpected error (String,Number order): %v", err)
	}

	if len(seen) != 2 {
		t.Fatalf("expected both permutations to dispatch, got %v", seen)
	}
	for _, order := range seen {
		if order[0] != "Number" || order[1] != "String" {
			t.Fatalf("expected the handler to always see (Number, String) regardless of stack order, got %v", order)
		}
	}
}

func TestInvokeHandler_PushesResultsInOrder(t *testing.T) {
	const op = token.Size
	RegisterZeroAry(op, func(c *Context, args []object.Value) ([]object.Value, error) {
		return []object.Value{object.NewInt(1), object.NewInt(2)}, nil
	})

	ctx := NewRootContext(nil)
	if err := Dispatch(ctx, op); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	top, _ := ctx.Peek(0)
	if top.(*object.Int).V.Int64() != 2 {
		t.Fatalf("expected the last returned value on top, got %v", top)
	}
}
