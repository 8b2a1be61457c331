package runtime

import (
	"fmt"
	"strings"

	"github.com/gostacklang/stacklang/object"
	"github.com/gostacklang/stacklang/scripterr"
	"github.com/gostacklang/stacklang/token"
)

// Handler implements an operator signature or arity. It receives the
// popped operands in bottom-to-top order and returns the values to push
// back, in order. A handler that drives the context directly (clearing
// the stack, executing a block) returns a nil slice.
type Handler func(ctx *Context, args []object.Value) ([]object.Value, error)

type signatureKey string

func typedKey(classes []object.Class) signatureKey {
	var b strings.Builder
	b.WriteString("t")
	for _, c := range classes {
		b.WriteByte('|')
		b.WriteString(c.String())
	}
	return signatureKey(b.String())
}

func untypedKey(n int) signatureKey {
	return signatureKey(fmt.Sprintf("u|%d", n))
}

type registration struct {
	arity   int
	handler Handler
}

var (
	registry  = map[token.Operator]map[signatureKey]registration{}
	maxArity  = map[token.Operator]int{}
	zeroAryFn = map[token.Operator]Handler{}
)

func register(op token.Operator, key signatureKey, arity int, h Handler) {
	if registry[op] == nil {
		registry[op] = map[signatureKey]registration{}
	}
	if _, exists := registry[op][key]; exists {
		panic(fmt.Sprintf("duplicate operator registration for %v %v", op, key))
	}
	registry[op][key] = registration{arity: arity, handler: h}
	if arity > maxArity[op] {
		maxArity[op] = arity
	}
}

// RegisterTyped registers h for the exact operand-class signature
// classes (bottom-to-top order).
func RegisterTyped(op token.Operator, classes []object.Class, h Handler) {
	register(op, typedKey(classes), len(classes), h)
}

// RegisterUntyped registers h for any n operands regardless of class.
func RegisterUntyped(op token.Operator, n int, h Handler) {
	register(op, untypedKey(n), n, h)
}

// RegisterZeroAry registers a 0-ary handler for op, checked before any
// stack peeking happens.
func RegisterZeroAry(op token.Operator, h Handler) {
	zeroAryFn[op] = h
}

// RegisterPermute registers h for every permutation of classes; an
// adapter reorders the popped arguments back to the declared order
// before calling h, so commutative-by-type operators (e.g. Number×Block
// repeat, in either stack order) only need one handler body.
func RegisterPermute(op token.Operator, classes []object.Class, h Handler) {
	for _, perm := range permutations(len(classes)) {
		perm := perm
		permClasses := make([]object.Class, len(classes))
		for i, srcIdx := range perm {
			permClasses[i] = classes[srcIdx]
		}
		adapter := func(ctx *Context, args []object.Value) ([]object.Value, error) {
			reordered := make([]object.Value, len(args))
			for i, srcIdx := range perm {
				reordered[srcIdx] = args[i]
			}
			return h(ctx, reordered)
		}
		register(op, typedKey(permClasses), len(classes), adapter)
	}
}

func permutations(n int) [][]int {
	if n == 0 {
		return [][]int{{}}
	}
	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}
	var result [][]int
	var permute func(prefix, rest []int)
	permute = func(prefix, rest []int) {
		if len(rest) == 0 {
			cp := make([]int, len(prefix))
			copy(cp, prefix)
			result = append(result, cp)
			return
		}
		for i, v := range rest {
			nextRest := make([]int, 0, len(rest)-1)
			nextRest = append(nextRest, rest[:i]...)
			nextRest = append(nextRest, rest[i+1:]...)
			permute(append(prefix, v), nextRest)
		}
	}
	permute(nil, indices)
	return result
}

// Dispatch runs the operator registry/dispatch algorithm for op against
// ctx's stack: a 0-ary handler short-circuits; otherwise the stack is
// peeked top-down, one value at a time, and after each peek the
// accumulated bottom-to-top signature is checked for a typed match, then
// an untyped match at that arity. A typed match always wins over an
// untyped match of the same arity, because it is checked first.
func Dispatch(ctx *Context, op token.Operator) error {
	if h, ok := zeroAryFn[op]; ok {
		return invokeHandler(ctx, h, nil)
	}

	max := maxArity[op]
	if max == 0 {
		return scripterr.NewOperand("operator %v has no registered handler", op)
	}

	peeked := make([]object.Value, 0, max)
	for n := 1; n <= max; n++ {
		v, ok := ctx.Peek(n - 1)
		if !ok {
			return scripterr.NewOperand("not enough operands for %v", op)
		}
		peeked = append([]object.Value{v}, peeked...)

		classes := make([]object.Class, len(peeked))
		for i, pv := range peeked {
			classes[i] = pv.Class()
		}
		if reg, ok := registry[op][typedKey(classes)]; ok {
			return popAndInvoke(ctx, reg, n)
		}
		if reg, ok := registry[op][untypedKey(n)]; ok {
			return popAndInvoke(ctx, reg, n)
		}
	}
	return scripterr.NewOperand("invalid operands for %v", op)
}

func popAndInvoke(ctx *Context, reg registration, n int) error {
	args := make([]object.Value, n)
	for i := n - 1; i >= 0; i-- {
		v, _ := ctx.Pop()
		args[i] = v
	}
	return invokeHandler(ctx, reg.handler, args)
}

func invokeHandler(ctx *Context, h Handler, args []object.Value) error {
	results, err := h(ctx, args)
	if err != nil {
		return err
	}
	for _, r := range results {
		ctx.Push(r)
	}
	return nil
}
