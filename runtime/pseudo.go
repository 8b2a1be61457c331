package runtime

import (
	"github.com/gostacklang/stacklang/object"
	"github.com/gostacklang/stacklang/scripterr"
)

// BindingTarget is produced only inside a BlockAssignExpr sub-context,
// standing in for a value until the Assign operator binds something to
// it. It must never be operated on outside that sub-context.
type BindingTarget interface {
	object.Value
	Bind(value object.Value) error
	Resolve() (object.Value, bool)
}

// NameTarget resolves/binds an identifier in the context it was created
// in.
type NameTarget struct {
	ctx  *Context
	name string
}

func NewNameTarget(ctx *Context, name string) *NameTarget {
	return &NameTarget{ctx: ctx, name: name}
}

func (t *NameTarget) Class() object.Class { return object.ClassName }
func (t *NameTarget) Truthy() bool        { return true }
func (t *NameTarget) Format() string      { return "<name target " + t.name + ">" }

func (t *NameTarget) Bind(v object.Value) error {
	t.ctx.Namespace().Bind(t.name, v)
	return nil
}

func (t *NameTarget) Resolve() (object.Value, bool) {
	return t.ctx.Namespace().Lookup(t.name)
}

// IndexTarget binds/resolves a single slot of a mutable Array.
type IndexTarget struct {
	array *object.Array
	index *object.Int
}

func NewIndexTarget(array *object.Array, index *object.Int) *IndexTarget {
	return &IndexTarget{array: array, index: index}
}

func (t *IndexTarget) Class() object.Class { return object.ClassName }
func (t *IndexTarget) Truthy() bool        { return true }
func (t *IndexTarget) Format() string      { return "<index target>" }

func (t *IndexTarget) Bind(v object.Value) error {
	if !t.array.SetIndex(t.index, v) {
		return scripterr.NewIndex("index %s out of range", t.index.Format())
	}
	return nil
}

func (t *IndexTarget) Resolve() (object.Value, bool) {
	return t.array.Index(t.index)
}
