package object

import "strings"

// Sequence is implemented by Array and Tuple: the two ordered-collection
// value types that share the Array operand class.
type Sequence interface {
	Value
	Elements() []Value
}

// Tuple is an immutable ordered sequence, value-equal by content.
type Tuple struct{ Elems []Value }

func NewTuple(elems []Value) *Tuple { return &Tuple{Elems: elems} }

func (t *Tuple) Class() Class        { return ClassArray }
func (t *Tuple) Truthy() bool        { return len(t.Elems) > 0 }
func (t *Tuple) Elements() []Value   { return t.Elems }
func (t *Tuple) Len() int            { return len(t.Elems) }
func (t *Tuple) Format() string      { return "(" + formatElements(t.Elems) + ")" }

// Index returns the element at the given 1-based index.
func (t *Tuple) Index(i *Int) (Value, bool) {
	idx, ok := i.AsIndex(len(t.Elems))
	if !ok {
		return nil, false
	}
	return t.Elems[idx], true
}

// Array is a mutable ordered sequence, identity-equal (never by content).
type Array struct{ Elems []Value }

func NewArray(elems []Value) *Array { return &Array{Elems: elems} }

func (a *Array) Class() Class      { return ClassArray }
func (a *Array) Truthy() bool      { return len(a.Elems) > 0 }
func (a *Array) Elements() []Value { return a.Elems }
func (a *Array) Len() int          { return len(a.Elems) }
func (a *Array) Format() string    { return "[" + formatElements(a.Elems) + "]" }

// Index returns the element at the given 1-based index.
func (a *Array) Index(i *Int) (Value, bool) {
	idx, ok := i.AsIndex(len(a.Elems))
	if !ok {
		return nil, false
	}
	return a.Elems[idx], true
}

// SetIndex replaces the element at the given 1-based index, or appends
// when the index names exactly one past the end (index len+1).
func (a *Array) SetIndex(i *Int, v Value) bool {
	if i.V.IsInt64() && i.V.Int64() == int64(len(a.Elems))+1 {
		a.Elems = append(a.Elems, v)
		return true
	}
	if idx, ok := i.AsIndex(len(a.Elems)); ok {
		a.Elems[idx] = v
		return true
	}
	return false
}

// Remove deletes the first element equal to v, if any, mutating in place.
func (a *Array) Remove(v Value) {
	for i, e := range a.Elems {
		if Equal(e, v) {
			a.Elems = append(a.Elems[:i], a.Elems[i+1:]...)
			return
		}
	}
}

func formatElements(elems []Value) string {
	parts := make([]string, len(elems))
	for i, e := range elems {
		parts[i] = e.Format()
	}
	return strings.Join(parts, " ")
}
