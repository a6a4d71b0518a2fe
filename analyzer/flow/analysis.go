// Package flow implements forward definite assignment analysis over a member body.
//
// The analysis answers a single question for one variable at a time: after the
// body completes, has the variable been written on every path? Writes are
// assignment targets, increment and decrement operands and ref/out arguments.
// Nested lambdas, anonymous methods and local functions are not executed where
// they are declared, so they are opaque to the enclosing body.
package flow

import (
	"context"

	"github.com/viant/readonly/syntax"
)

// Target reports whether a write reference denotes the analysed variable
type Target func(ref syntax.Expr) bool

// Analysis computes definite assignment status for variables written in a body
type Analysis struct {
	body   *syntax.Block
	writes []syntax.Expr
}

// New creates an analysis for body, collecting its write references up front
func New(body *syntax.Block) *Analysis {
	return &Analysis{body: body, writes: WriteRefs(body)}
}

// Writes returns write references found in the body, excluding nested functions
func (a *Analysis) Writes() []syntax.Expr {
	return a.writes
}

// Analyze returns the status of the target variable after the body, seeded with initial.
// The status after the body joins every completing exit: falling off the end, return
// and yield break. A throw ends its path without contributing. A body with no completing
// exit keeps the initial status.
func (a *Analysis) Analyze(ctx context.Context, target Target, initial Status) (Status, error) {
	if err := ctx.Err(); err != nil {
		return initial, err
	}
	if a.body == nil || target == nil || !a.writesTarget(target) {
		return initial, nil
	}
	p := &propagation{ctx: ctx, target: target, initial: initial, exits: Unreachable}
	end := p.stmt(a.body, initial)
	if p.err != nil {
		return initial, p.err
	}
	result := Join(p.exits, end)
	if result == Unreachable {
		return initial, nil
	}
	return result, nil
}

func (a *Analysis) writesTarget(target Target) bool {
	for _, ref := range a.writes {
		if target(ref) {
			return true
		}
	}
	return false
}

// WriteRefs collects write references in node, without descending into nested functions
func WriteRefs(node syntax.Node) []syntax.Expr {
	if node == nil {
		return nil
	}
	var result []syntax.Expr
	syntax.Inspect(node, func(n syntax.Node) bool {
		switch actual := n.(type) {
		case *syntax.Lambda, *syntax.LocalFuncStmt:
			return false
		case *syntax.Assign:
			result = append(result, targets(actual.Left)...)
		case *syntax.Unary:
			if syntax.IsIncDec(actual.Op) {
				result = append(result, targets(actual.X)...)
			}
		case *syntax.Argument:
			if isByRef(actual.Modifier) {
				result = append(result, targets(actual.X)...)
			}
		case *syntax.ForeachStmt:
			if actual.Target != nil {
				result = append(result, targets(actual.Target)...)
			}
		}
		return true
	})
	return result
}

// targets flattens a write target, deconstruction tuples yield their elements
func targets(e syntax.Expr) []syntax.Expr {
	switch actual := syntax.Unparen(e).(type) {
	case nil:
		return nil
	case *syntax.Tuple:
		var result []syntax.Expr
		for _, elem := range actual.Elems {
			result = append(result, targets(elem)...)
		}
		return result
	case *syntax.DeclExpr:
		return nil
	default:
		return []syntax.Expr{actual}
	}
}

func isByRef(modifier string) bool {
	return modifier == "out" || modifier == "ref"
}
