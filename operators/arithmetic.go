package operators

import (
	"math"
	"math/big"

	"github.com/gostacklang/stacklang/object"
	"github.com/gostacklang/stacklang/runtime"
	"github.com/gostacklang/stacklang/scripterr"
	"github.com/gostacklang/stacklang/token"
)

var numberNumber = []object.Class{object.ClassNumber, object.ClassNumber}

func init() {
	runtime.RegisterTyped(token.Add, numberNumber, handleAdd)
	runtime.RegisterTyped(token.Sub, numberNumber, handleSub)
	runtime.RegisterTyped(token.Mul, numberNumber, handleMul)
	runtime.RegisterTyped(token.Div, numberNumber, handleDiv)
	runtime.RegisterTyped(token.Pow, numberNumber, handlePow)
	runtime.RegisterTyped(token.Mod, numberNumber, handleMod)

	runtime.RegisterTyped(token.Equal, numberNumber, handleNumberEqual)
	runtime.RegisterTyped(token.NotEqual, numberNumber, handleNumberNotEqual)
	runtime.RegisterTyped(token.Less, numberNumber, handleLess)
	runtime.RegisterTyped(token.LessEqual, numberNumber, handleLessEqual)
	runtime.RegisterTyped(token.Greater, numberNumber, handleGreater)
	runtime.RegisterTyped(token.GreaterEqual, numberNumber, handleGreaterEqual)

	runtime.RegisterTyped(token.BitAnd, numberNumber, handleBitAnd)
	runtime.RegisterTyped(token.BitOr, numberNumber, handleBitOr)
	runtime.RegisterTyped(token.BitXor, numberNumber, handleBitXor)
	runtime.RegisterTyped(token.ShiftLeft, numberNumber, handleShiftLeft)
	runtime.RegisterTyped(token.ShiftRight, numberNumber, handleShiftRight)
}

func handleAdd(ctx *runtime.Context, args []object.Value) ([]object.Value, error) {
	a, b := args[0], args[1]
	if coerceNumberIsFloat(a, b) {
		return []object.Value{object.NewFloat(asFloat(a) + asFloat(b))}, nil
	}
	ai, bi := a.(*object.Int), b.(*object.Int)
	return []object.Value{&object.Int{V: new(big.Int).Add(ai.V, bi.V)}}, nil
}

func handleSub(ctx *runtime.Context, args []object.Value) ([]object.Value, error) {
	a, b := args[0], args[1]
	if coerceNumberIsFloat(a, b) {
		return []object.Value{object.NewFloat(asFloat(a) - asFloat(b))}, nil
	}
	ai, bi := a.(*object.Int), b.(*object.Int)
	return []object.Value{&object.Int{V: new(big.Int).Sub(ai.V, bi.V)}}, nil
}

func handleMul(ctx *runtime.Context, args []object.Value) ([]object.Value, error) {
	a, b := args[0], args[1]
	if coerceNumberIsFloat(a, b) {
		return []object.Value{object.NewFloat(asFloat(a) * asFloat(b))}, nil
	}
	ai, bi := a.(*object.Int), b.(*object.Int)
	return []object.Value{&object.Int{V: new(big.Int).Mul(ai.V, bi.V)}}, nil
}

func handleDiv(ctx *runtime.Context, args []object.Value) ([]object.Value, error) {
	a, b := args[0], args[1]
	if coerceNumberIsFloat(a, b) {
		if asFloat(b) == 0 {
			return nil, scripterr.NewOperand("division by zero")
		}
		return []object.Value{object.NewFloat(asFloat(a) / asFloat(b))}, nil
	}
	ai, bi := a.(*object.Int), b.(*object.Int)
	if bi.V.Sign() == 0 {
		return nil, scripterr.NewOperand("division by zero")
	}
	return []object.Value{&object.Int{V: new(big.Int).Quo(ai.V, bi.V)}}, nil
}

func handlePow(ctx *runtime.Context, args []object.Value) ([]object.Value, error) {
	a, b := args[0], args[1]
	ai, aIsInt := a.(*object.Int)
	bi, bIsInt := b.(*object.Int)
	if aIsInt && bIsInt && bi.V.Sign() >= 0 {
		return []object.Value{&object.Int{V: new(big.Int).Exp(ai.V, bi.V, nil)}}, nil
	}
	return []object.Value{object.NewFloat(math.Pow(asFloat(a), asFloat(b)))}, nil
}

func handleMod(ctx *runtime.Context, args []object.Value) ([]object.Value, error) {
	ai, aOk := args[0].(*object.Int)
	bi, bOk := args[1].(*object.Int)
	if !aOk || !bOk {
		return nil, scripterr.NewOperand("mod requires Int operands")
	}
	if bi.V.Sign() == 0 {
		return nil, scripterr.NewOperand("modulo by zero")
	}
	return []object.Value{&object.Int{V: new(big.Int).Mod(ai.V, bi.V)}}, nil
}

func handleNumberEqual(ctx *runtime.Context, args []object.Value) ([]object.Value, error) {
	return []object.Value{object.NewBool(object.Equal(args[0], args[1]))}, nil
}

func handleNumberNotEqual(ctx *runtime.Context, args []object.Value) ([]object.Value, error) {
	return []object.Value{object.NewBool(!object.Equal(args[0], args[1]))}, nil
}

func handleLess(ctx *runtime.Context, args []object.Value) ([]object.Value, error) {
	return []object.Value{object.NewBool(compareNumbers(args[0], args[1]) < 0)}, nil
}

func handleLessEqual(ctx *runtime.Context, args []object.Value) ([]object.Value, error) {
	return []object.Value{object.NewBool(compareNumbers(args[0], args[1]) <= 0)}, nil
}

func handleGreater(ctx *runtime.Context, args []object.Value) ([]object.Value, error) {
	return []object.Value{object.NewBool(compareNumbers(args[0], args[1]) > 0)}, nil
}

func handleGreaterEqual(ctx *runtime.Context, args []object.Value) ([]object.Value, error) {
	return []object.Value{object.NewBool(compareNumbers(args[0], args[1]) >= 0)}, nil
}

// compareNumbers orders a and b as Ints when both are Int (exact,
// arbitrary precision), otherwise by float64 approximation.
func compareNumbers(a, b object.Value) int {
	if ai, ok := a.(*object.Int); ok {
		if bi, ok := b.(*object.Int); ok {
			return ai.V.Cmp(bi.V)
		}
	}
	af, bf := asFloat(a), asFloat(b)
	switch {
	case af < bf:
		return -1
	case af > bf:
		return 1
	default:
		return 0
	}
}

func requireInts(a, b object.Value) (*object.Int, *object.Int, bool) {
	ai, aOk := a.(*object.Int)
	bi, bOk := b.(*object.Int)
	return ai, bi, aOk && bOk
}

func handleBitAnd(ctx *runtime.Context, args []object.Value) ([]object.Value, error) {
	ai, bi, ok := requireInts(args[0], args[1])
	if !ok {
		return nil, scripterr.NewOperand("& on numbers requires Int operands")
	}
	return []object.Value{&object.Int{V: new(big.Int).And(ai.V, bi.V)}}, nil
}

func handleBitOr(ctx *runtime.Context, args []object.Value) ([]object.Value, error) {
	ai, bi, ok := requireInts(args[0], args[1])
	if !ok {
		return nil, scripterr.NewOperand("| on numbers requires Int operands")
	}
	return []object.Value{&object.Int{V: new(big.Int).Or(ai.V, bi.V)}}, nil
}

func handleBitXor(ctx *runtime.Context, args []object.Value) ([]object.Value, error) {
	ai, bi, ok := requireInts(args[0], args[1])
	if !ok {
		return nil, scripterr.NewOperand("^ on numbers requires Int operands")
	}
	return []object.Value{&object.Int{V: new(big.Int).Xor(ai.V, bi.V)}}, nil
}

// handleShiftLeft implements LShift (Number x Number), kept registered
// for the documented dual meaning of '<<' even though Collect (the
// typed arity-1 Number handler in sequences.go) always wins at dispatch
// time when the top of stack is a Number. See sequences.go.
func handleShiftLeft(ctx *runtime.Context, args []object.Value) ([]object.Value, error) {
	ai, bi, ok := requireInts(args[0], args[1])
	if !ok {
		return nil, scripterr.NewOperand("<< on numbers requires Int operands")
	}
	if bi.V.Sign() < 0 || !bi.V.IsUint64() {
		return nil, scripterr.NewOperand("invalid shift amount")
	}
	return []object.Value{&object.Int{V: new(big.Int).Lsh(ai.V, uint(bi.V.Uint64()))}}, nil
}

func handleShiftRight(ctx *runtime.Context, args []object.Value) ([]object.Value, error) {
	ai, bi, ok := requireInts(args[0], args[1])
	if !ok {
		return nil, scripterr.NewOperand(">> on numbers requires Int operands")
	}
	if bi.V.Sign() < 0 || !bi.V.IsUint64() {
		return nil, scripterr.NewOperand("invalid shift amount")
	}
	return []object.Value{&object.Int{V: new(big.Int).Rsh(ai.V, uint(bi.V.Uint64()))}}, nil
}
