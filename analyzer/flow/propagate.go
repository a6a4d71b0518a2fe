package flow

import (
	"context"

	"github.com/viant/readonly/syntax"
)

// maxLoopPasses bounds loop fixpoint iteration, the lattice settles within three passes
const maxLoopPasses = 4

type frameKind int

const (
	loopFrame frameKind = iota
	switchFrame
	finallyFrame
)

// frame tracks jump targets and finally blocks enclosing the current statement
type frame struct {
	kind      frameKind
	breaks    Status
	continues Status
	assigns   bool
}

type propagation struct {
	ctx     context.Context
	target  Target
	initial Status
	exits   Status
	frames  []*frame
	err     error
}

func (p *propagation) push(kind frameKind) *frame {
	f := &frame{kind: kind, breaks: Unreachable, continues: Unreachable}
	p.frames = append(p.frames, f)
	return f
}

func (p *propagation) pop() {
	p.frames = p.frames[:len(p.frames)-1]
}

// exit records a path leaving the body
func (p *propagation) exit(s Status) {
	for i := len(p.frames) - 1; i >= 0; i-- {
		if f := p.frames[i]; f.kind == finallyFrame && f.assigns {
			s = assign(s)
		}
	}
	p.exits = Join(p.exits, s)
}

func (p *propagation) jump(s Status, isContinue bool) {
	for i := len(p.frames) - 1; i >= 0; i-- {
		f := p.frames[i]
		switch f.kind {
		case finallyFrame:
			if f.assigns {
				s = assign(s)
			}
		case switchFrame:
			if !isContinue {
				f.breaks = Join(f.breaks, s)
				return
			}
		case loopFrame:
			if isContinue {
				f.continues = Join(f.continues, s)
			} else {
				f.breaks = Join(f.breaks, s)
			}
			return
		}
	}
	p.exit(s)
}

func (p *propagation) write(ref syntax.Expr, s Status) Status {
	for _, t := range targets(ref) {
		if p.target(t) {
			s = assign(s)
		}
	}
	return s
}

func (p *propagation) stmts(list []syntax.Stmt, in Status) Status {
	for _, s := range list {
		in = p.stmt(s, in)
	}
	return in
}

func (p *propagation) stmt(s syntax.Stmt, in Status) Status {
	if p.err != nil {
		return Unreachable
	}
	if err := p.ctx.Err(); err != nil {
		p.err = err
		return Unreachable
	}
	switch actual := s.(type) {
	case nil:
		return in
	case *syntax.Block:
		if actual == nil {
			return in
		}
		return p.stmts(actual.Stmts, in)
	case *syntax.ExprStmt:
		return p.expr(actual.X, in)
	case *syntax.LocalVarDecl:
		return p.locals(actual, in)
	case *syntax.LocalFuncStmt:
		return in
	case *syntax.IfStmt:
		whenTrue, whenFalse := p.cond(actual.Cond, in)
		out := p.stmt(actual.Then, whenTrue)
		if actual.Else != nil {
			return Join(out, p.stmt(actual.Else, whenFalse))
		}
		return Join(out, whenFalse)
	case *syntax.WhileStmt:
		return p.loop(in, func(head Status) (Status, Status) {
			return p.cond(actual.Cond, head)
		}, func(entry Status) Status {
			return p.stmt(actual.Body, entry)
		}, nil)
	case *syntax.DoStmt:
		return p.doLoop(actual, in)
	case *syntax.ForStmt:
		in = p.stmts(actual.Init, in)
		return p.loop(in, func(head Status) (Status, Status) {
			if actual.Cond == nil {
				return head, Unreachable
			}
			return p.cond(actual.Cond, head)
		}, func(entry Status) Status {
			return p.stmt(actual.Body, entry)
		}, actual.Update)
	case *syntax.ForeachStmt:
		in = p.expr(actual.Collection, in)
		return p.loop(in, func(head Status) (Status, Status) {
			return head, head
		}, func(entry Status) Status {
			if actual.Target != nil {
				entry = p.write(actual.Target, entry)
			}
			return p.stmt(actual.Body, entry)
		}, nil)
	case *syntax.SwitchStmt:
		return p.switchStmt(actual, in)
	case *syntax.ReturnStmt:
		p.exit(p.expr(actual.Result, in))
		return Unreachable
	case *syntax.ThrowStmt:
		// a thrown exception does not complete the member
		p.expr(actual.X, in)
		return Unreachable
	case *syntax.YieldStmt:
		if actual.Break {
			p.exit(in)
			return Unreachable
		}
		return p.expr(actual.X, in)
	case *syntax.BreakStmt:
		p.jump(in, false)
		return Unreachable
	case *syntax.ContinueStmt:
		p.jump(in, true)
		return Unreachable
	case *syntax.GotoStmt:
		p.expr(actual.Case, in)
		return Unreachable
	case *syntax.TryStmt:
		return p.tryStmt(actual, in)
	case *syntax.UsingStmt:
		if actual.Decl != nil {
			in = p.locals(actual.Decl, in)
		}
		in = p.expr(actual.X, in)
		return p.stmt(actual.Body, in)
	case *syntax.LabeledStmt:
		// a label may be reached by goto from any point, assume the least assigned state
		return p.stmt(actual.Stmt, Join(in, p.initial))
	case *syntax.EmptyStmt:
		return in
	}
	return in
}

func (p *propagation) locals(decl *syntax.LocalVarDecl, in Status) Status {
	for _, v := range decl.Vars {
		if v != nil {
			in = p.expr(v.Initializer, in)
		}
	}
	return in
}

// loop runs a pre-tested loop to a fixpoint, cond returns states when the condition holds and when it fails
func (p *propagation) loop(in Status, cond func(Status) (Status, Status), body func(Status) Status, update []syntax.Expr) Status {
	head := in
	for pass := 0; pass < maxLoopPasses; pass++ {
		f := p.push(loopFrame)
		whenTrue, whenFalse := cond(head)
		out := body(whenTrue)
		p.pop()
		back := Join(out, f.continues)
		for _, u := range update {
			back = p.expr(u, back)
		}
		next := Join(in, back)
		if next == head || p.err != nil {
			return Join(whenFalse, f.breaks)
		}
		head = next
	}
	return PotentiallyAssigned
}

func (p *propagation) doLoop(stmt *syntax.DoStmt, in Status) Status {
	head := in
	for pass := 0; pass < maxLoopPasses; pass++ {
		f := p.push(loopFrame)
		out := p.stmt(stmt.Body, head)
		p.pop()
		whenTrue, whenFalse := p.cond(stmt.Cond, Join(out, f.continues))
		next := Join(in, whenTrue)
		if next == head || p.err != nil {
			return Join(whenFalse, f.breaks)
		}
		head = next
	}
	return PotentiallyAssigned
}

func (p *propagation) switchStmt(stmt *syntax.SwitchStmt, in Status) Status {
	value := p.expr(stmt.Value, in)
	f := p.push(switchFrame)
	out := Unreachable
	hasDefault := false
	for _, section := range stmt.Sections {
		entry := value
		for _, label := range section.Labels {
			entry = p.expr(label, entry)
		}
		if len(section.Guards) > 0 {
			guarded := Unreachable
			for _, guard := range section.Guards {
				whenTrue, _ := p.cond(guard, entry)
				guarded = Join(guarded, whenTrue)
			}
			entry = guarded
		}
		hasDefault = hasDefault || section.HasDefault
		out = Join(out, p.stmts(section.Stmts, entry))
	}
	p.pop()
	out = Join(out, f.breaks)
	if !hasDefault {
		out = Join(out, value)
	}
	return out
}

func (p *propagation) tryStmt(stmt *syntax.TryStmt, in Status) Status {
	finallyAssigns := false
	if stmt.Finally != nil {
		nested := &propagation{ctx: p.ctx, target: p.target, initial: Unassigned, exits: Unreachable}
		finallyAssigns = nested.stmt(stmt.Finally, Unassigned) == DefinitelyAssigned
		if nested.err != nil {
			p.err = nested.err
			return Unreachable
		}
	}
	f := p.push(finallyFrame)
	f.assigns = finallyAssigns
	out := p.stmt(stmt.Body, in)
	for _, catch := range stmt.Catches {
		// an exception may be raised before any statement of the try block completes
		entry := in
		if catch.Filter != nil {
			entry, _ = p.cond(catch.Filter, entry)
		}
		out = Join(out, p.stmt(catch.Body, entry))
	}
	p.pop()
	if stmt.Finally != nil {
		out = p.stmt(stmt.Finally, out)
	}
	return out
}

// cond evaluates a boolean expression, returning the states when it is true and when it is false
func (p *propagation) cond(e syntax.Expr, in Status) (Status, Status) {
	if value, ok := syntax.BoolValue(e); ok {
		if value {
			return in, Unreachable
		}
		return Unreachable, in
	}
	switch actual := e.(type) {
	case *syntax.Paren:
		return p.cond(actual.X, in)
	case *syntax.Unary:
		if actual.Op == "!" {
			whenTrue, whenFalse := p.cond(actual.X, in)
			return whenFalse, whenTrue
		}
	case *syntax.Binary:
		switch actual.Op {
		case "&&":
			leftTrue, leftFalse := p.cond(actual.Left, in)
			rightTrue, rightFalse := p.cond(actual.Right, leftTrue)
			return rightTrue, Join(leftFalse, rightFalse)
		case "||":
			leftTrue, leftFalse := p.cond(actual.Left, in)
			rightTrue, rightFalse := p.cond(actual.Right, leftFalse)
			return Join(leftTrue, rightTrue), rightFalse
		}
	}
	out := p.expr(e, in)
	return out, out
}

func (p *propagation) args(args []*syntax.Argument, in Status) Status {
	for _, arg := range args {
		if arg == nil {
			continue
		}
		if isByRef(arg.Modifier) {
			in = p.receiver(arg.X, in)
			in = p.write(arg.X, in)
			continue
		}
		in = p.expr(arg.X, in)
	}
	return in
}

// receiver evaluates the parts of a write target that are read before the write
func (p *propagation) receiver(e syntax.Expr, in Status) Status {
	switch actual := syntax.Unparen(e).(type) {
	case *syntax.MemberAccess:
		return p.expr(actual.X, in)
	case *syntax.ElementAccess:
		return p.args(actual.Args, p.expr(actual.X, in))
	case *syntax.Tuple:
		for _, elem := range actual.Elems {
			in = p.receiver(elem, in)
		}
		return in
	}
	return in
}

func (p *propagation) exprs(list []syntax.Expr, in Status) Status {
	for _, e := range list {
		in = p.expr(e, in)
	}
	return in
}

func (p *propagation) expr(e syntax.Expr, in Status) Status {
	if p.err != nil {
		return Unreachable
	}
	switch actual := e.(type) {
	case nil:
		return in
	case *syntax.Ident, *syntax.ThisExpr, *syntax.BaseExpr, *syntax.Literal, *syntax.DeclExpr, *syntax.Lambda:
		return in
	case *syntax.MemberAccess:
		return p.expr(actual.X, in)
	case *syntax.ElementAccess:
		receiver := p.expr(actual.X, in)
		out := p.args(actual.Args, receiver)
		if actual.Conditional {
			return Join(receiver, out)
		}
		return out
	case *syntax.Call:
		receiver := p.expr(actual.Fun, in)
		out := p.args(actual.Args, receiver)
		if isConditionalAccess(actual.Fun) {
			return Join(receiver, out)
		}
		return out
	case *syntax.Assign:
		before := p.expr(actual.Right, p.receiver(actual.Left, in))
		after := p.write(actual.Left, before)
		if actual.Op == "??=" {
			return Join(before, after)
		}
		return after
	case *syntax.Unary:
		if syntax.IsIncDec(actual.Op) {
			return p.write(actual.X, p.receiver(actual.X, in))
		}
		return p.expr(actual.X, in)
	case *syntax.Binary:
		switch actual.Op {
		case "&&", "||":
			whenTrue, whenFalse := p.cond(actual, in)
			return Join(whenTrue, whenFalse)
		case "??":
			left := p.expr(actual.Left, in)
			return Join(left, p.expr(actual.Right, left))
		}
		return p.expr(actual.Right, p.expr(actual.Left, in))
	case *syntax.Conditional:
		whenTrue, whenFalse := p.cond(actual.Cond, in)
		return Join(p.expr(actual.Then, whenTrue), p.expr(actual.Else, whenFalse))
	case *syntax.Paren:
		return p.expr(actual.X, in)
	case *syntax.Tuple:
		return p.exprs(actual.Elems, in)
	case *syntax.New:
		return p.exprs(actual.Init, p.args(actual.Args, in))
	case *syntax.InitializerEntry:
		return p.expr(actual.Value, p.args(actual.Index, in))
	case *syntax.IsPattern:
		return p.exprs(actual.Parts, p.expr(actual.X, in))
	case *syntax.SwitchExpr:
		value := p.expr(actual.Value, in)
		if len(actual.Arms) == 0 {
			return value
		}
		out := Unreachable
		for _, arm := range actual.Arms {
			entry := value
			if arm.Guard != nil {
				entry, _ = p.cond(arm.Guard, entry)
			}
			out = Join(out, p.expr(arm.Value, entry))
		}
		return out
	case *syntax.ThrowExpr:
		p.expr(actual.X, in)
		return Unreachable
	case *syntax.Cast:
		return p.expr(actual.X, in)
	case *syntax.Compound:
		return p.exprs(actual.Parts, in)
	}
	return in
}

// isConditionalAccess reports whether a receiver chain contains a null conditional access
func isConditionalAccess(e syntax.Expr) bool {
	for e != nil {
		switch actual := e.(type) {
		case *syntax.MemberAccess:
			if actual.Conditional {
				return true
			}
			e = actual.X
		case *syntax.ElementAccess:
			if actual.Conditional {
				return true
			}
			e = actual.X
		case *syntax.Call:
			e = actual.Fun
		case *syntax.Paren:
			return false
		default:
			return false
		}
	}
	return false
}
