package operators

import (
	"github.com/gostacklang/stacklang/object"
	"github.com/gostacklang/stacklang/runtime"
	"github.com/gostacklang/stacklang/token"
)

func init() {
	runtime.RegisterPermute(token.Div, []object.Class{object.ClassExec, object.ClassArray}, handleMap)
	runtime.RegisterPermute(token.Div, []object.Class{object.ClassExec, object.ClassString}, handleMap)
}

// handleMap implements '/' as a mapping combinator over a sequence: each
// element is pushed into its own fresh child context, the block runs
// there, and every value the block leaves behind is collected into the
// result (a Tuple if the source was a Tuple, an Array otherwise — a
// String source always yields an Array). Grounded on the map-over-Div
// variant in original_source/stackscript/ophandlers.py, which registers
// this alongside Div's plain Number×Number arithmetic.
func handleMap(ctx *runtime.Context, args []object.Value) ([]object.Value, error) {
	block := args[0].(*object.Block)

	var items []object.Value
	_, isTuple := args[1].(*object.Tuple)
	switch seq := args[1].(type) {
	case *object.Array:
		items = seq.Elems
	case *object.Tuple:
		items = seq.Elems
	case *object.String:
		runes := seq.Runes()
		items = make([]object.Value, len(runes))
		for i, r := range runes {
			items[i] = object.NewString(r)
		}
	}

	var result []object.Value
	for _, item := range items {
		sub := ctx.CreateChild(0)
		sub.Push(item)
		if err := sub.Exec(block.Symbols); err != nil {
			return nil, err
		}
		result = append(result, sub.IterStackResult()...)
	}

	if isTuple {
		return []object.Value{object.NewTuple(result)}, nil
	}
	return []object.Value{object.NewArray(result)}, nil
}
