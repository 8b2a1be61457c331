// Package operators registers every operator handler into the runtime
// registry via init(), one file per operator family. Grounded on
// original_source/stackscript/operators/*.py: the same family split
// (arithmetic, sequences, general, conditional) and the same coercion
// rule (priority type wins when either operand carries it).
package operators

import "github.com/gostacklang/stacklang/object"

// coerceNumberIsFloat returns whether the result of a Number op should be
// Float (true) or Int (false): Float wins if either operand is one.
func coerceNumberIsFloat(a, b object.Value) bool {
	_, af := a.(*object.Float)
	_, bf := b.(*object.Float)
	return af || bf
}

// coerceArrayIsArray returns whether the result of an Array-class op
// should be a mutable Array (true) or a Tuple (false): Array wins if
// either operand is one.
func coerceArrayIsArray(a, b object.Value) bool {
	_, aa := a.(*object.Array)
	_, ba := b.(*object.Array)
	return aa || ba
}

func asFloat(v object.Value) float64 {
	switch n := v.(type) {
	case *object.Int:
		return n.Float64()
	case *object.Float:
		return n.V
	}
	return 0
}

func elementsOf(v object.Value) []object.Value {
	switch s := v.(type) {
	case *object.Array:
		return s.Elems
	case *object.Tuple:
		return s.Elems
	}
	return nil
}
