package operators

import (
	"github.com/gostacklang/stacklang/object"
	"github.com/gostacklang/stacklang/runtime"
	"github.com/gostacklang/stacklang/token"
)

var boolBool = []object.Class{object.ClassBool, object.ClassBool}

func init() {
	runtime.RegisterTyped(token.BitAnd, boolBool, handleBoolAnd)
	runtime.RegisterTyped(token.BitOr, boolBool, handleBoolOr)
	runtime.RegisterTyped(token.BitXor, boolBool, handleBoolXor)

	runtime.RegisterUntyped(token.KeywordNot, 1, handleNot)
}

func handleBoolAnd(ctx *runtime.Context, args []object.Value) ([]object.Value, error) {
	a, b := args[0].(*object.Bool), args[1].(*object.Bool)
	return []object.Value{object.NewBool(a.Value() && b.Value())}, nil
}

func handleBoolOr(ctx *runtime.Context, args []object.Value) ([]object.Value, error) {
	a, b := args[0].(*object.Bool), args[1].(*object.Bool)
	return []object.Value{object.NewBool(a.Value() || b.Value())}, nil
}

func handleBoolXor(ctx *runtime.Context, args []object.Value) ([]object.Value, error) {
	a, b := args[0].(*object.Bool), args[1].(*object.Bool)
	return []object.Value{object.NewBool(a.Value() != b.Value())}, nil
}

func handleNot(ctx *runtime.Context, args []object.Value) ([]object.Value, error) {
	return []object.Value{object.NewBool(!args[0].Truthy())}, nil
}
