package operators

import (
	"github.com/gostacklang/stacklang/object"
	"github.com/gostacklang/stacklang/runtime"
	"github.com/gostacklang/stacklang/scripterr"
	"github.com/gostacklang/stacklang/token"
)

func init() {
	runtime.RegisterTyped(token.Add, []object.Class{object.ClassArray, object.ClassArray}, handleConcatArray)
	runtime.RegisterTyped(token.Add, []object.Class{object.ClassString, object.ClassString}, handleConcatString)

	runtime.RegisterPermute(token.Mul, []object.Class{object.ClassNumber, object.ClassArray}, handleRepeatArray)
	runtime.RegisterPermute(token.Mul, []object.Class{object.ClassNumber, object.ClassString}, handleRepeatString)
	runtime.RegisterPermute(token.Mul, []object.Class{object.ClassNumber, object.ClassExec}, handleRepeatBlock)

	runtime.RegisterTyped(token.Sub, []object.Class{object.ClassArray, object.ClassArray}, handleArrayDiff)

	runtime.RegisterTyped(token.BitOr, []object.Class{object.ClassArray, object.ClassArray}, handleSetUnion)
	runtime.RegisterTyped(token.BitAnd, []object.Class{object.ClassArray, object.ClassArray}, handleSetIntersect)
	runtime.RegisterTyped(token.BitXor, []object.Class{object.ClassArray, object.ClassArray}, handleSetSymDiff)

	runtime.RegisterTyped(token.Index, []object.Class{object.ClassArray, object.ClassNumber}, handleIndexGet)
	runtime.RegisterTyped(token.Index, []object.Class{object.ClassString, object.ClassNumber}, handleIndexGet)
	runtime.RegisterTyped(token.Index, []object.Class{object.ClassName, object.ClassName}, handleIndexTarget)

	// Collect: a typed arity-1 handler on the same token ('<<') that
	// LShift (arithmetic.go) registers arity-2 on. Dispatch peeks the
	// stack one value at a time and checks arity-1 before arity-2, so
	// whenever the top of stack is a Number, Collect always matches
	// first and LShift (Number x Number) is never reached.
	runtime.RegisterTyped(token.ShiftLeft, []object.Class{object.ClassNumber}, handleCollect)
}

func handleConcatArray(ctx *runtime.Context, args []object.Value) ([]object.Value, error) {
	a, b := args[0], args[1]
	elems := append(append([]object.Value{}, elementsOf(a)...), elementsOf(b)...)
	if coerceArrayIsArray(a, b) {
		return []object.Value{object.NewArray(elems)}, nil
	}
	return []object.Value{object.NewTuple(elems)}, nil
}

func handleConcatString(ctx *runtime.Context, args []object.Value) ([]object.Value, error) {
	a, b := args[0].(*object.String), args[1].(*object.String)
	return []object.Value{object.NewString(a.V + b.V)}, nil
}

// repeatCount extracts a non-negative repeat count from a Number
// operand; a negative count is treated as zero, matching Python's
// range(negative) producing no iterations.
func repeatCount(n object.Value) (int, error) {
	i, ok := n.(*object.Int)
	if !ok {
		return 0, scripterr.NewOperand("repeat count must be an Int")
	}
	if !i.V.IsInt64() {
		return 0, scripterr.NewOperand("repeat count out of range")
	}
	count := i.V.Int64()
	if count < 0 {
		return 0, nil
	}
	return int(count), nil
}

// handleRepeatArray tiles the whole sequence count times, preserving
// its concrete type (Array stays Array, Tuple stays Tuple).
func handleRepeatArray(ctx *runtime.Context, args []object.Value) ([]object.Value, error) {
	count, err := repeatCount(args[0])
	if err != nil {
		return nil, err
	}
	src := elementsOf(args[1])
	out := make([]object.Value, 0, len(src)*count)
	for i := 0; i < count; i++ {
		out = append(out, src...)
	}
	if _, ok := args[1].(*object.Array); ok {
		return []object.Value{object.NewArray(out)}, nil
	}
	return []object.Value{object.NewTuple(out)}, nil
}

func handleRepeatString(ctx *runtime.Context, args []object.Value) ([]object.Value, error) {
	count, err := repeatCount(args[0])
	if err != nil {
		return nil, err
	}
	s := args[1].(*object.String)
	out := ""
	for i := 0; i < count; i++ {
		out += s.V
	}
	return []object.Value{object.NewString(out)}, nil
}

// handleRepeatBlock executes the block count times in the current
// context (side effects accumulate directly on ctx's stack).
func handleRepeatBlock(ctx *runtime.Context, args []object.Value) ([]object.Value, error) {
	count, err := repeatCount(args[0])
	if err != nil {
		return nil, err
	}
	block := args[1].(*object.Block)
	for i := 0; i < count; i++ {
		if err := ctx.Exec(block.Symbols); err != nil {
			return nil, err
		}
	}
	return nil, nil
}

// handleArrayDiff implements Sub on Array-class pairs: a Tuple produces
// a new filtered Tuple (duplicates in a are preserved); a mutable Array
// is mutated in place, removing one occurrence per element of b.
func handleArrayDiff(ctx *runtime.Context, args []object.Value) ([]object.Value, error) {
	switch a := args[0].(type) {
	case *object.Tuple:
		bElems := elementsOf(args[1])
		out := make([]object.Value, 0, len(a.Elems))
		for _, item := range a.Elems {
			if !object.Contains(bElems, item) {
				out = append(out, item)
			}
		}
		return []object.Value{object.NewTuple(out)}, nil
	case *object.Array:
		for _, item := range elementsOf(args[1]) {
			a.Remove(item)
		}
		return []object.Value{a}, nil
	}
	return nil, scripterr.NewOperand("unsupported operand types for -")
}

func handleSetUnion(ctx *runtime.Context, args []object.Value) ([]object.Value, error) {
	a, b := args[0], args[1]
	merged := append(append([]object.Value{}, elementsOf(a)...), elementsOf(b)...)
	return setResult(a, b, object.Dedup(merged)), nil
}

func handleSetIntersect(ctx *runtime.Context, args []object.Value) ([]object.Value, error) {
	a, b := args[0], args[1]
	bElems := elementsOf(b)
	var out []object.Value
	for _, item := range object.Dedup(elementsOf(a)) {
		if object.Contains(bElems, item) {
			out = append(out, item)
		}
	}
	return setResult(a, b, out), nil
}

func handleSetSymDiff(ctx *runtime.Context, args []object.Value) ([]object.Value, error) {
	a, b := args[0], args[1]
	aElems, bElems := object.Dedup(elementsOf(a)), object.Dedup(elementsOf(b))
	var out []object.Value
	for _, item := range aElems {
		if !object.Contains(bElems, item) {
			out = append(out, item)
		}
	}
	for _, item := range bElems {
		if !object.Contains(aElems, item) {
			out = append(out, item)
		}
	}
	return setResult(a, b, out), nil
}

func setResult(a, b object.Value, elems []object.Value) []object.Value {
	if coerceArrayIsArray(a, b) {
		return []object.Value{object.NewArray(elems)}
	}
	return []object.Value{object.NewTuple(elems)}
}

func handleIndexGet(ctx *runtime.Context, args []object.Value) ([]object.Value, error) {
	idx, ok := args[1].(*object.Int)
	if !ok {
		return nil, scripterr.NewOperand("$ requires an Int index")
	}
	switch seq := args[0].(type) {
	case *object.Array:
		v, ok := seq.Index(idx)
		if !ok {
			return nil, scripterr.NewIndex("index %s out of range", idx.Format())
		}
		return []object.Value{v}, nil
	case *object.Tuple:
		v, ok := seq.Index(idx)
		if !ok {
			return nil, scripterr.NewIndex("index %s out of range", idx.Format())
		}
		return []object.Value{v}, nil
	case *object.String:
		v, ok := seq.Index(idx)
		if !ok {
			return nil, scripterr.NewIndex("index %s out of range", idx.Format())
		}
		return []object.Value{v}, nil
	}
	return nil, scripterr.NewOperand("unsupported operand for $")
}

// handleIndexTarget implements '$' inside a BlockAssignExpr sub-context:
// both operands arrive as NameTarget pseudo-values, since Identifier
// evaluation always yields one there. Resolve both to
// concrete values, require the array to be a real mutable Array, and
// produce an IndexTarget pseudo-value rather than an ordinary indexed
// read.
func handleIndexTarget(ctx *runtime.Context, args []object.Value) ([]object.Value, error) {
	arrayTarget, ok := args[0].(runtime.BindingTarget)
	if !ok {
		return nil, scripterr.NewOperand("$ target requires a name")
	}
	indexTarget, ok := args[1].(runtime.BindingTarget)
	if !ok {
		return nil, scripterr.NewOperand("$ target requires a name")
	}
	arrayVal, ok := arrayTarget.Resolve()
	if !ok {
		return nil, scripterr.NewName("array")
	}
	array, ok := arrayVal.(*object.Array)
	if !ok {
		return nil, scripterr.NewOperand("$ assignment target requires an Array")
	}
	idxVal, ok := indexTarget.Resolve()
	if !ok {
		return nil, scripterr.NewName("index")
	}
	idx, ok := idxVal.(*object.Int)
	if !ok {
		return nil, scripterr.NewOperand("$ assignment index must be an Int")
	}
	return []object.Value{runtime.NewIndexTarget(array, idx)}, nil
}

func handleCollect(ctx *runtime.Context, args []object.Value) ([]object.Value, error) {
	n, ok := args[0].(*object.Int)
	if !ok || !n.V.IsInt64() {
		return nil, scripterr.NewOperand("<< requires an Int count")
	}
	count := n.V.Int64()
	if count < 0 {
		return nil, scripterr.NewOperand("<< requires a non-negative count")
	}
	collected := make([]object.Value, count)
	for i := int(count) - 1; i >= 0; i-- {
		v, ok := ctx.Pop()
		if !ok {
			return nil, scripterr.NewOperand("not enough operands for <<")
		}
		collected[i] = v
	}
	return []object.Value{object.NewTuple(collected)}, nil
}
