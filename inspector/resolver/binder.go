package resolver

import "github.com/viant/readonly/syntax"

// binder records symbols for references while walking declarations with lexical scopes
type binder struct {
	*Resolver
	typ *syntax.TypeDecl
}

func (b *binder) typeDecl(typ *syntax.TypeDecl) {
	prev := b.typ
	b.typ = typ
	defer func() { b.typ = prev }()
	root := &env{names: map[string]entry{}}
	for _, m := range typ.Members {
		b.member(m, root)
	}
}

func (b *binder) member(m syntax.Member, s *env) {
	switch actual := m.(type) {
	case *syntax.TypeDecl:
		b.typeDecl(actual)
	case *syntax.FieldDecl:
		for _, v := range actual.Variables {
			b.expr(v.Initializer, s)
		}
	case *syntax.MethodDecl:
		ps := b.params(actual.Params, s)
		b.block(actual.Body, ps)
	case *syntax.ConstructorDecl:
		ps := b.params(actual.Params, s)
		b.args(actual.Initializer, ps)
		b.block(actual.Body, ps)
	case *syntax.DestructorDecl:
		b.block(actual.Body, s)
	case *syntax.OperatorDecl:
		b.block(actual.Body, b.params(actual.Params, s))
	case *syntax.IndexerDecl:
		b.accessors(actual.Accessors, b.params(actual.Params, s), actual.Type)
	case *syntax.PropertyDecl:
		b.accessors(actual.Accessors, s, actual.Type)
		b.expr(actual.Initializer, s)
	case *syntax.EventDecl:
		b.accessors(actual.Accessors, s, actual.Type)
		for _, value := range actual.Values {
			b.expr(value, s)
		}
	case *syntax.EnumMemberDecl:
		b.expr(actual.Value, s)
	}
}

func (b *binder) params(params []*syntax.Parameter, s *env) *env {
	for _, p := range params {
		b.expr(p.Default, s)
	}
	return s.params(params)
}

func (b *binder) accessors(accessors []*syntax.Accessor, s *env, typ *syntax.TypeRef) {
	for _, accessor := range accessors {
		scope := s
		switch accessor.Kind {
		case "set", "init", "add", "remove":
			scope = s.child()
			scope.declare("value", syntax.Symbol{Kind: syntax.SymParameter, Name: "value", Decl: accessor}, typ)
		}
		b.block(accessor.Body, scope)
	}
}

func (b *binder) block(block *syntax.Block, s *env) {
	if block == nil {
		return
	}
	scope := s.child()
	for _, stmt := range block.Stmts {
		b.declare(stmt, scope)
	}
	for _, stmt := range block.Stmts {
		b.stmt(stmt, scope)
	}
}

// declare adds names a statement introduces into the enclosing block scope
func (b *binder) declare(stmt syntax.Stmt, s *env) {
	switch actual := stmt.(type) {
	case *syntax.LocalVarDecl:
		s.locals(actual.Vars, actual, actual.Type)
		for _, v := range actual.Vars {
			b.declareIn(v.Initializer, s)
		}
	case *syntax.LocalFuncStmt:
		s.declare(actual.Name, syntax.Symbol{Kind: syntax.SymMethod, Name: actual.Name, Decl: actual}, nil)
	case *syntax.LabeledStmt:
		b.declare(actual.Stmt, s)
	case *syntax.ExprStmt:
		b.declareIn(actual.X, s)
	case *syntax.ReturnStmt:
		b.declareIn(actual.Result, s)
	case *syntax.ThrowStmt:
		b.declareIn(actual.X, s)
	case *syntax.YieldStmt:
		b.declareIn(actual.X, s)
	case *syntax.IfStmt:
		b.declareIn(actual.Cond, s)
	case *syntax.SwitchStmt:
		b.declareIn(actual.Value, s)
	}
}

// declareIn adds out variables and pattern variables declared by an expression
func (b *binder) declareIn(e syntax.Expr, s *env) {
	if e == nil {
		return
	}
	syntax.Inspect(e, func(n syntax.Node) bool {
		switch actual := n.(type) {
		case *syntax.Lambda:
			return false
		case *syntax.SwitchExpr:
			b.declareIn(actual.Value, s)
			return false
		case *syntax.DeclExpr:
			s.locals(actual.Vars, actual, actual.Type)
		case *syntax.IsPattern:
			s.locals(actual.Vars, actual, nil)
		}
		return true
	})
}

// embedded binds a statement that forms its own scope, such as a loop body
func (b *binder) embedded(stmt syntax.Stmt, s *env) {
	if stmt == nil {
		return
	}
	scope := s.child()
	b.declare(stmt, scope)
	b.stmt(stmt, scope)
}

func (b *binder) stmt(stmt syntax.Stmt, s *env) {
	switch actual := stmt.(type) {
	case *syntax.Block:
		b.block(actual, s)
	case *syntax.ExprStmt:
		b.expr(actual.X, s)
	case *syntax.LocalVarDecl:
		for _, v := range actual.Vars {
			b.expr(v.Initializer, s)
		}
	case *syntax.LocalFuncStmt:
		b.block(actual.Body, b.params(actual.Params, s))
	case *syntax.IfStmt:
		b.expr(actual.Cond, s)
		b.embedded(actual.Then, s)
		b.embedded(actual.Else, s)
	case *syntax.WhileStmt:
		scope := s.child()
		b.declareIn(actual.Cond, scope)
		b.expr(actual.Cond, scope)
		b.embedded(actual.Body, scope)
	case *syntax.DoStmt:
		b.embedded(actual.Body, s)
		scope := s.child()
		b.declareIn(actual.Cond, scope)
		b.expr(actual.Cond, scope)
	case *syntax.ForStmt:
		scope := s.child()
		for _, init := range actual.Init {
			b.declare(init, scope)
			b.stmt(init, scope)
		}
		b.declareIn(actual.Cond, scope)
		b.expr(actual.Cond, scope)
		for _, update := range actual.Update {
			b.expr(update, scope)
		}
		b.embedded(actual.Body, scope)
	case *syntax.ForeachStmt:
		b.expr(actual.Collection, s)
		scope := s.child()
		scope.locals(actual.Vars, actual, nil)
		if actual.Target != nil {
			b.declareIn(actual.Target, scope)
			b.expr(actual.Target, scope)
		}
		b.embedded(actual.Body, scope)
	case *syntax.SwitchStmt:
		b.expr(actual.Value, s)
		block := s.child()
		for _, section := range actual.Sections {
			for _, st := range section.Stmts {
				b.declare(st, block)
			}
		}
		for _, section := range actual.Sections {
			scope := block.child()
			scope.locals(section.Vars, section, nil)
			for _, label := range section.Labels {
				b.expr(label, scope)
			}
			for _, guard := range section.Guards {
				b.expr(guard, scope)
			}
			for _, st := range section.Stmts {
				b.stmt(st, scope)
			}
		}
	case *syntax.ReturnStmt:
		b.expr(actual.Result, s)
	case *syntax.ThrowStmt:
		b.expr(actual.X, s)
	case *syntax.YieldStmt:
		b.expr(actual.X, s)
	case *syntax.GotoStmt:
		b.expr(actual.Case, s)
	case *syntax.TryStmt:
		b.block(actual.Body, s)
		for _, catch := range actual.Catches {
			scope := s.child()
			if catch.Var != nil {
				scope.locals([]*syntax.VariableDecl{catch.Var}, catch, catch.Type)
			}
			b.expr(catch.Filter, scope)
			b.block(catch.Body, scope)
		}
		b.block(actual.Finally, s)
	case *syntax.UsingStmt:
		scope := s.child()
		if actual.Decl != nil {
			b.declare(actual.Decl, scope)
			b.stmt(actual.Decl, scope)
		}
		b.declareIn(actual.X, scope)
		b.expr(actual.X, scope)
		b.embedded(actual.Body, scope)
	case *syntax.LabeledStmt:
		b.stmt(actual.Stmt, s)
	}
}

func (b *binder) args(args []*syntax.Argument, s *env) {
	for _, arg := range args {
		if arg != nil {
			b.expr(arg.X, s)
		}
	}
}

func (b *binder) expr(e syntax.Expr, s *env) {
	switch actual := e.(type) {
	case nil:
		return
	case *syntax.Ident:
		b.symbols[actual] = b.resolveName(actual.Name, s)
	case *syntax.MemberAccess:
		b.expr(actual.X, s)
		b.symbols[actual] = b.resolveAccess(actual, s)
	case *syntax.Lambda:
		b.block(actual.Body, b.params(actual.Params, s))
	case *syntax.SwitchExpr:
		b.expr(actual.Value, s)
		for _, arm := range actual.Arms {
			scope := s.child()
			scope.locals(arm.Vars, arm, nil)
			b.declareIn(arm.Guard, scope)
			b.expr(arm.Guard, scope)
			b.expr(arm.Value, scope)
		}
	default:
		for _, child := range syntax.Children(e) {
			switch node := child.(type) {
			case syntax.Expr:
				b.expr(node, s)
			case *syntax.Argument:
				b.expr(node.X, s)
			}
		}
	}
}

// resolveName binds a simple name: locals and parameters, then members of the enclosing
// types, then primary constructor parameters, then type names
func (b *binder) resolveName(name string, s *env) syntax.Symbol {
	if en, ok := s.lookup(name); ok {
		return en.symbol
	}
	for t := b.typ; t != nil; t = t.Parent {
		symbol, ok := memberOf(t, name)
		if !ok {
			continue
		}
		// a nested type reaches only static and const fields of its enclosing types
		if t != b.typ && symbol.Field != nil && !symbol.Field.Modifiers.Any(syntax.Static|syntax.Const) {
			continue
		}
		return symbol
	}
	for t := b.typ; t != nil; t = t.Parent {
		for _, p := range t.Params {
			if p.Name == name {
				return syntax.Symbol{Kind: syntax.SymParameter, Name: name, Decl: p}
			}
		}
	}
	if types := b.types[name]; len(types) == 1 {
		return syntax.Symbol{Kind: syntax.SymType, Name: name, Owner: types[0].Parent, Decl: types[0]}
	}
	return syntax.Unresolved
}

// resolveAccess binds x.Name when x denotes this, a type declared in the unit, or an
// instance whose declared type is declared in the unit
func (b *binder) resolveAccess(access *syntax.MemberAccess, s *env) syntax.Symbol {
	var owner *syntax.TypeDecl
	switch x := syntax.Unparen(access.X).(type) {
	case *syntax.ThisExpr:
		owner = b.typ
	case *syntax.BaseExpr:
		return syntax.Unresolved
	case *syntax.Ident, *syntax.MemberAccess:
		symbol := b.symbols[x]
		switch symbol.Kind {
		case syntax.SymType:
			owner, _ = symbol.Decl.(*syntax.TypeDecl)
		case syntax.SymLocal, syntax.SymParameter:
			if ident, ok := x.(*syntax.Ident); ok {
				if en, found := s.lookup(ident.Name); found {
					owner = b.declaredType(en.typ)
				} else if p, isParam := symbol.Decl.(*syntax.Parameter); isParam {
					owner = b.declaredType(p.Type)
				}
			}
		case syntax.SymField:
			if symbol.Field != nil {
				owner = b.declaredType(symbol.Field.Type)
			}
		}
	}
	if owner == nil {
		return syntax.Unresolved
	}
	if symbol, ok := memberOf(owner, access.Name); ok {
		return symbol
	}
	return syntax.Unresolved
}

func (b *binder) declaredType(typ *syntax.TypeRef) *syntax.TypeDecl {
	if typ == nil || typ.Kind != syntax.NamedType {
		return nil
	}
	if decls := b.types[typ.Name]; len(decls) == 1 {
		return decls[0]
	}
	return nil
}

// memberOf looks up a member declared directly in typ
func memberOf(typ *syntax.TypeDecl, name string) (syntax.Symbol, bool) {
	for _, m := range typ.Members {
		switch actual := m.(type) {
		case *syntax.FieldDecl:
			for _, v := range actual.Variables {
				if v.Name == name {
					return syntax.Symbol{Kind: syntax.SymField, Name: name, Owner: typ, Var: v, Field: actual}, true
				}
			}
		case *syntax.PropertyDecl:
			if actual.Name == name {
				return syntax.Symbol{Kind: syntax.SymProperty, Name: name, Owner: typ, Decl: actual}, true
			}
		case *syntax.MethodDecl:
			if actual.Name == name {
				return syntax.Symbol{Kind: syntax.SymMethod, Name: name, Owner: typ, Decl: actual}, true
			}
		case *syntax.EventDecl:
			for _, eventName := range actual.Names {
				if eventName == name {
					return syntax.Symbol{Kind: syntax.SymEvent, Name: name, Owner: typ, Decl: actual}, true
				}
			}
		case *syntax.EnumMemberDecl:
			if actual.Name == name {
				return syntax.Symbol{Kind: syntax.SymField, Name: name, Owner: typ, Decl: actual}, true
			}
		case *syntax.TypeDecl:
			if actual.Name == name {
				return syntax.Symbol{Kind: syntax.SymType, Name: name, Owner: typ, Decl: actual}, true
			}
		}
	}
	return syntax.Symbol{}, false
}
