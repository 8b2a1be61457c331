package operators

import (
	"github.com/gostacklang/stacklang/ast"
	"github.com/gostacklang/stacklang/object"
	"github.com/gostacklang/stacklang/runtime"
	"github.com/gostacklang/stacklang/scripterr"
	"github.com/gostacklang/stacklang/token"
)

func init() {
	runtime.RegisterZeroAry(token.Assign, handleAssign)
}

// handleAssign implements Assign (':'), grounded on
// original_source/stackscript/operators/general.py's operator_assign /
// _do_block_assignment: it reads its target from the parser stream, not
// the stack. An Identifier target binds the current top-of-stack value
// without popping it; a Block-literal target is evaluated in a
// BlockAssignExpr sub-context, and the resulting NameTarget/IndexTarget
// pseudo-values are bound pairwise against the (still unpopped) top
// value, which must be a sequence when there is more than one target.
func handleAssign(ctx *runtime.Context, _ []object.Value) ([]object.Value, error) {
	value, ok := ctx.Peek(0)
	if !ok {
		return nil, scripterr.NewOperand("not enough operands")
	}

	sym, ok := ctx.NextSymbol()
	if !ok {
		return nil, scripterr.NewSyntax("invalid syntax")
	}

	switch s := sym.(type) {
	case ast.Identifier:
		ctx.Namespace().Bind(s.Name, value)
		return nil, nil
	case ast.Literal:
		if s.Kind != ast.BlockLiteral {
			return nil, scripterr.NewOperand("invalid operands for assignment")
		}
		return nil, assignBlockTargets(ctx, value, s.Contents)
	}
	return nil, scripterr.NewOperand("invalid operands for assignment")
}

func assignBlockTargets(ctx *runtime.Context, value object.Value, contents []ast.Symbol) error {
	sub := ctx.CreateChild(runtime.ShareNamespace | runtime.BlockAssignExpr)
	if err := sub.Exec(contents); err != nil {
		return err
	}
	results := sub.IterStackResult()

	targets := make([]runtime.BindingTarget, len(results))
	for i, r := range results {
		bt, ok := r.(runtime.BindingTarget)
		if !ok {
			return scripterr.NewAssignment("cannot assign to a non-identifier")
		}
		targets[i] = bt
	}

	switch len(targets) {
	case 0:
		return nil
	case 1:
		return targets[0].Bind(value)
	}

	seq, ok := value.(object.Sequence)
	if !ok {
		return scripterr.NewAssignment("value %q does not support multiple assignment", value.Format())
	}
	values := seq.Elements()
	if len(values) != len(targets) {
		msg := "too many"
		if len(values) < len(targets) {
			msg = "not enough"
		}
		return scripterr.NewAssignment("%s values to unpack (expected %d, got %d)", msg, len(targets), len(values))
	}
	for i, t := range targets {
		if err := t.Bind(values[i]); err != nil {
			return err
		}
	}
	return nil
}
