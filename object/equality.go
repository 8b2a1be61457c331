package object

import "math"

const floatEpsilon = 1e-9

// Equal implements the value-equality rule: Bool/Int/Float/String/Tuple/
// Block compare by content (Number compares across Int/Float with a
// tolerance for Float), Array compares only by identity.
func Equal(a, b Value) bool {
	switch av := a.(type) {
	case *Bool:
		bv, ok := b.(*Bool)
		return ok && av.val == bv.val
	case *Int:
		switch bv := b.(type) {
		case *Int:
			return av.V.Cmp(bv.V) == 0
		case *Float:
			return math.Abs(av.Float64()-bv.V) < floatEpsilon
		}
		return false
	case *Float:
		switch bv := b.(type) {
		case *Float:
			return math.Abs(av.V-bv.V) < floatEpsilon
		case *Int:
			return math.Abs(av.V-bv.Float64()) < floatEpsilon
		}
		return false
	case *String:
		bv, ok := b.(*String)
		return ok && av.V == bv.V
	case *Tuple:
		bv, ok := b.(*Tuple)
		if !ok || len(av.Elems) != len(bv.Elems) {
			return false
		}
		for i := range av.Elems {
			if !Equal(av.Elems[i], bv.Elems[i]) {
				return false
			}
		}
		return true
	case *Block:
		bv, ok := b.(*Block)
		return ok && av.Format() == bv.Format()
	case *Array:
		bv, ok := b.(*Array)
		return ok && av == bv
	}
	return false
}

// Contains reports whether v occurs (by Equal) in elems.
func Contains(elems []Value, v Value) bool {
	for _, e := range elems {
		if Equal(e, v) {
			return true
		}
	}
	return false
}

// Dedup returns elems with later duplicates (by Equal) removed, preserving
// first-occurrence order. Used by the set operators; a linear scan is
// used rather than a hash set because Array — one of the operand-class
// members that may appear as an element — is not Hashable.
func Dedup(elems []Value) []Value {
	out := make([]Value, 0, len(elems))
	for _, e := range elems {
		if !Contains(out, e) {
			out = append(out, e)
		}
	}
	return out
}
