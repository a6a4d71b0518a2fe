package syntax

// Inspect traverses node depth first calling fn for each visited node.
// If fn returns false, children of that node are skipped.
func Inspect(node Node, fn func(Node) bool) {
	if isNil(node) || !fn(node) {
		return
	}
	for _, child := range Children(node) {
		Inspect(child, fn)
	}
}

// Children returns direct children of node in source order
func Children(node Node) []Node {
	var c children
	switch n := node.(type) {
	case *Unit:
		for _, t := range n.Types {
			c.add(t)
		}
	case *TypeDecl:
		for _, p := range n.Params {
			c.add(p)
		}
		for _, m := range n.Members {
			c.add(m)
		}
	case *FieldDecl:
		for _, v := range n.Variables {
			c.add(v)
		}
	case *VariableDecl:
		c.add(n.Initializer)
	case *MethodDecl:
		c.params(n.Params)
		c.add(n.Body)
	case *ConstructorDecl:
		c.params(n.Params)
		c.args(n.Initializer)
		c.add(n.Body)
	case *DestructorDecl:
		c.add(n.Body)
	case *OperatorDecl:
		c.params(n.Params)
		c.add(n.Body)
	case *IndexerDecl:
		c.params(n.Params)
		for _, a := range n.Accessors {
			c.add(a)
		}
	case *PropertyDecl:
		for _, a := range n.Accessors {
			c.add(a)
		}
		c.add(n.Initializer)
	case *EventDecl:
		for _, a := range n.Accessors {
			c.add(a)
		}
		for _, v := range n.Values {
			c.add(v)
		}
	case *EnumMemberDecl:
		c.add(n.Value)
	case *Accessor:
		c.add(n.Body)
	case *Parameter:
		c.add(n.Default)

	case *Block:
		for _, s := range n.Stmts {
			c.add(s)
		}
	case *ExprStmt:
		c.add(n.X)
	case *LocalVarDecl:
		for _, v := range n.Vars {
			c.add(v)
		}
	case *LocalFuncStmt:
		c.params(n.Params)
		c.add(n.Body)
	case *IfStmt:
		c.add(n.Cond)
		c.add(n.Then)
		c.add(n.Else)
	case *WhileStmt:
		c.add(n.Cond)
		c.add(n.Body)
	case *DoStmt:
		c.add(n.Body)
		c.add(n.Cond)
	case *ForStmt:
		for _, s := range n.Init {
			c.add(s)
		}
		c.add(n.Cond)
		for _, e := range n.Update {
			c.add(e)
		}
		c.add(n.Body)
	case *ForeachStmt:
		for _, v := range n.Vars {
			c.add(v)
		}
		c.add(n.Target)
		c.add(n.Collection)
		c.add(n.Body)
	case *SwitchStmt:
		c.add(n.Value)
		for _, s := range n.Sections {
			c.add(s)
		}
	case *SwitchSection:
		for _, l := range n.Labels {
			c.add(l)
		}
		for _, g := range n.Guards {
			c.add(g)
		}
		for _, s := range n.Stmts {
			c.add(s)
		}
	case *ReturnStmt:
		c.add(n.Result)
	case *ThrowStmt:
		c.add(n.X)
	case *GotoStmt:
		c.add(n.Case)
	case *YieldStmt:
		c.add(n.X)
	case *TryStmt:
		c.add(n.Body)
		for _, cc := range n.Catches {
			c.add(cc)
		}
		c.add(n.Finally)
	case *CatchClause:
		c.add(n.Var)
		c.add(n.Filter)
		c.add(n.Body)
	case *UsingStmt:
		c.add(n.Decl)
		c.add(n.X)
		c.add(n.Body)
	case *LabeledStmt:
		c.add(n.Stmt)

	case *MemberAccess:
		c.add(n.X)
	case *ElementAccess:
		c.add(n.X)
		c.args(n.Args)
	case *Call:
		c.add(n.Fun)
		c.args(n.Args)
	case *Argument:
		c.add(n.X)
	case *Assign:
		c.add(n.Left)
		c.add(n.Right)
	case *Unary:
		c.add(n.X)
	case *Binary:
		c.add(n.Left)
		c.add(n.Right)
	case *Conditional:
		c.add(n.Cond)
		c.add(n.Then)
		c.add(n.Else)
	case *Paren:
		c.add(n.X)
	case *Tuple:
		for _, e := range n.Elems {
			c.add(e)
		}
	case *DeclExpr:
		for _, v := range n.Vars {
			c.add(v)
		}
	case *Lambda:
		c.params(n.Params)
		c.add(n.Body)
	case *New:
		c.args(n.Args)
		for _, e := range n.Init {
			c.add(e)
		}
	case *InitializerEntry:
		c.args(n.Index)
		c.add(n.Value)
	case *IsPattern:
		c.add(n.X)
		for _, v := range n.Vars {
			c.add(v)
		}
		for _, p := range n.Parts {
			c.add(p)
		}
	case *SwitchExpr:
		c.add(n.Value)
		for _, a := range n.Arms {
			c.add(a)
		}
	case *SwitchArm:
		for _, v := range n.Vars {
			c.add(v)
		}
		c.add(n.Guard)
		c.add(n.Value)
	case *ThrowExpr:
		c.add(n.X)
	case *Cast:
		c.add(n.X)
	case *Compound:
		for _, p := range n.Parts {
			c.add(p)
		}
	}
	return c.nodes
}

type children struct {
	nodes []Node
}

func (c *children) add(n Node) {
	if !isNil(n) {
		c.nodes = append(c.nodes, n)
	}
}

func (c *children) params(params []*Parameter) {
	for _, p := range params {
		c.add(p)
	}
}

func (c *children) args(args []*Argument) {
	for _, a := range args {
		c.add(a)
	}
}

// isNil detects both untyped nil and typed nil pointers stored in an interface
func isNil(n Node) bool {
	if n == nil {
		return true
	}
	switch v := n.(type) {
	case *Block:
		return v == nil
	case *VariableDecl:
		return v == nil
	case *LocalVarDecl:
		return v == nil
	case *TypeDecl:
		return v == nil
	case *Parameter:
		return v == nil
	case *Argument:
		return v == nil
	case *CatchClause:
		return v == nil
	case *Accessor:
		return v == nil
	}
	return false
}
