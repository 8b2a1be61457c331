package runtime

import (
	"testing"

	"github.com/gostacklang/stacklang/ast"
	"github.com/gostacklang/stacklang/object"
	"github.com/gostacklang/stacklang/token"
)

func TestContext_PushPopPeek(t *testing.T) {
	ctx := NewRootContext(nil)
	ctx.Push(object.NewInt(1))
	ctx.Push(object.NewInt(2))
	if ctx.Size() != 2 {
		t.Fatalf("expected size 2, got %d", ctx.Size())
	}
	top, ok := ctx.Peek(0)
	if !ok || top.(*object.Int).V.Int64() != 2 {
		t.Fatalf("expected top=2, got %v", top)
	}
	v, ok := ctx.Pop()
	if !ok || v.(*object.Int).V.Int64() != 2 {
		t.Fatalf("expected pop=2, got %v", v)
	}
	if ctx.Size() != 1 {
		t.Fatalf("expected size 1 after pop, got %d", ctx.Size())
	}
}

func TestContext_ClearDiscardsEverything(t *testing.T) {
	ctx := NewRootContext(nil)
	ctx.Push(object.NewInt(1))
	ctx.Push(object.NewInt(2))
	ctx.Clear()
	if ctx.Size() != 0 {
		t.Fatalf("expected empty stack after Clear, got size %d", ctx.Size())
	}
}

func TestContext_IterStackOrdering(t *testing.T) {
	ctx := NewRootContext(nil)
	ctx.Push(object.NewInt(1))
	ctx.Push(object.NewInt(2))
	ctx.Push(object.NewInt(3))

	topDown := ctx.IterStack()
	if len(topDown) != 3 || topDown[0].(*object.Int).V.Int64() != 3 || topDown[2].(*object.Int).V.Int64() != 1 {
		t.Fatalf("IterStack should be top-down, got %v", topDown)
	}

	bottomUp := ctx.IterStackResult()
	if len(bottomUp) != 3 || bottomUp[0].(*object.Int).V.Int64() != 1 || bottomUp[2].(*object.Int).V.Int64() != 3 {
		t.Fatalf("IterStackResult should be bottom-up, got %v", bottomUp)
	}
}

func TestContext_CreateChild_DefaultNamespaceIsolated(t *testing.T) {
	root := NewRootContext(nil)
	root.Namespace().Bind("x", object.NewInt(1))

	child := root.CreateChild(0)
	v, ok := child.Namespace().Lookup("x")
	if !ok || v.(*object.Int).V.Int64() != 1 {
		t.Fatalf("expected child to read through to parent's x, got %v", v)
	}

	child.Namespace().Bind("x", object.NewInt(2))
	parentX, _ := root.Namespace().Lookup("x")
	if parentX.(*object.Int).V.Int64() != 1 {
		t.Fatalf("a default child must not write through to the parent's namespace, got %v", parentX)
	}
}

func TestContext_CreateChild_ShareNamespaceWritesThrough(t *testing.T) {
	root := NewRootContext(nil)
	root.Namespace().Bind("x", object.NewInt(1))

	child := root.CreateChild(ShareNamespace)
	if child.Namespace() != root.Namespace() {
		t.Fatal("ShareNamespace must give the child the exact same namespace object")
	}
	child.Namespace().Bind("x", object.NewInt(2))
	parentX, _ := root.Namespace().Lookup("x")
	if parentX.(*object.Int).V.Int64() != 2 {
		t.Fatalf("a ShareNamespace child's writes must be visible to the parent, got %v", parentX)
	}
}

func TestContext_CreateChild_DefaultStackIsSeparate(t *testing.T) {
	root := NewRootContext(nil)
	root.Push(object.NewInt(1))

	child := root.CreateChild(0)
	if child.Size() != 0 {
		t.Fatalf("expected a fresh child stack, got size %d", child.Size())
	}
	child.Push(object.NewInt(2))
	if root.Size() != 1 {
		t.Fatalf("pushing to a non-shared child must not affect the parent stack, got size %d", root.Size())
	}
}

func TestContext_CreateChild_ShareStackWritesThrough(t *testing.T) {
	root := NewRootContext(nil)
	root.Push(object.NewInt(1))

	child := root.CreateChild(ShareStack)
	child.Push(object.NewInt(2))
	if root.Size() != 2 {
		t.Fatalf("a ShareStack child must push onto the parent's stack, got size %d", root.Size())
	}
}

// a reentrancyOp is a test-only operator that, when dispatched, execs a
// nested symbol sequence against the same context, then records whatever
// NextSymbol returns on the OUTER cursor — proving a nested Exec call
// doesn't corrupt the enclosing Exec's position.
const reentrancyOp = token.Add

func TestContext_ExecIsReentrant(t *testing.T) {
	ctx := NewRootContext(nil)
	ctx.Namespace().Bind("inner", object.NewInt(9))

	var nextAfterNested ast.Symbol
	RegisterZeroAry(reentrancyOp, func(c *Context, _ []object.Value) ([]object.Value, error) {
		if err := c.Exec([]ast.Symbol{ast.Identifier{Name: "inner"}}); err != nil {
			return nil, err
		}
		nextAfterNested, _ = c.NextSymbol()
		return nil, nil
	})
	defer delete(zeroAryFn, reentrancyOp)

	outer := []ast.Symbol{
		ast.OperatorSym{Op: reentrancyOp},
		ast.Identifier{Name: "after"},
	}
	ctx.Namespace().Bind("after", object.NewInt(42))

	if err := ctx.Exec(outer); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	id, ok := nextAfterNested.(ast.Identifier)
	if !ok || id.Name != "after" {
		t.Fatalf("expected the outer cursor to resume at 'after', got %v", nextAfterNested)
	}
	// The nested exec pushed inner's value; NextSymbol consumed "after", so
	// the outer loop never evaluated it: only the nested push is on the stack.
	if ctx.Size() != 1 {
		t.Fatalf("expected only the nested push on the stack, got size %d", ctx.Size())
	}
}

func TestContext_NextSymbolEmptyOutsideExec(t *testing.T) {
	ctx := NewRootContext(nil)
	if _, ok := ctx.NextSymbol(); ok {
		t.Fatal("expected no symbol available outside of an Exec call")
	}
}
