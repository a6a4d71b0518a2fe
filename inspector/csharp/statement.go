package csharp

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/viant/readonly/syntax"
)

func (b *builder) block(n *sitter.Node) *syntax.Block {
	if n == nil {
		return nil
	}
	if n.Type() != "block" {
		stmt := b.stmt(n)
		if block, ok := stmt.(*syntax.Block); ok {
			return block
		}
		return &syntax.Block{Span: b.span(n), Stmts: []syntax.Stmt{stmt}}
	}
	ret := &syntax.Block{Span: b.span(n)}
	for _, child := range namedChildren(n) {
		if stmt := b.stmt(child); stmt != nil {
			ret.Stmts = append(ret.Stmts, stmt)
		}
	}
	return ret
}

func isStatement(n *sitter.Node) bool {
	return n.Type() == "block" || strings.HasSuffix(n.Type(), "_statement")
}

// lastStatement returns the embedded statement of loops and guarded statements
func lastStatement(n *sitter.Node) *sitter.Node {
	nodes := namedChildren(n)
	for i := len(nodes) - 1; i >= 0; i-- {
		if isStatement(nodes[i]) {
			return nodes[i]
		}
	}
	return nil
}

func (b *builder) stmt(n *sitter.Node) syntax.Stmt {
	if n == nil {
		return nil
	}
	span := b.span(n)
	switch n.Type() {
	case "block":
		return b.block(n)
	case "expression_statement":
		if values := namedChildren(n); len(values) > 0 {
			return &syntax.ExprStmt{Span: span, X: b.expr(values[0])}
		}
		return &syntax.EmptyStmt{Span: span}
	case "empty_statement":
		return &syntax.EmptyStmt{Span: span}
	case "local_declaration_statement":
		decl := b.localVarDecl(firstOfType(n, "variable_declaration"))
		decl.Span = span
		decl.Const = hasToken(n, "const") || b.hasModifier(n, "const")
		decl.Using = hasToken(n, "using")
		return decl
	case "local_function_statement":
		name := field(n, "name")
		return &syntax.LocalFuncStmt{
			Span:    span,
			Name:    b.text(name),
			NameLoc: b.location(name),
			Params:  b.parameters(field(n, "parameters")),
			Body:    b.body(n),
		}
	case "if_statement":
		ret := &syntax.IfStmt{
			Span: span,
			Cond: b.expr(field(n, "condition")),
			Then: b.stmt(field(n, "consequence")),
		}
		if alternative := field(n, "alternative"); alternative != nil {
			ret.Else = b.stmt(alternative)
		}
		return ret
	case "while_statement":
		return &syntax.WhileStmt{Span: span, Cond: b.expr(field(n, "condition")), Body: b.stmt(field(n, "body"))}
	case "do_statement":
		return &syntax.DoStmt{Span: span, Body: b.stmt(field(n, "body")), Cond: b.expr(field(n, "condition"))}
	case "for_statement":
		return b.forStmt(n)
	case "for_each_statement", "foreach_statement":
		return b.foreachStmt(n)
	case "switch_statement":
		return b.switchStmt(n)
	case "return_statement":
		ret := &syntax.ReturnStmt{Span: span}
		if values := namedChildren(n); len(values) > 0 {
			ret.Result = b.expr(values[0])
		}
		return ret
	case "throw_statement":
		ret := &syntax.ThrowStmt{Span: span}
		if values := namedChildren(n); len(values) > 0 {
			ret.X = b.expr(values[0])
		}
		return ret
	case "break_statement":
		return &syntax.BreakStmt{Span: span}
	case "continue_statement":
		return &syntax.ContinueStmt{Span: span}
	case "goto_statement":
		ret := &syntax.GotoStmt{Span: span}
		values := namedChildren(n)
		switch {
		case hasToken(n, "case") && len(values) > 0:
			ret.Case = b.expr(values[0])
		case hasToken(n, "default"):
			ret.Label = "default"
		case len(values) > 0:
			ret.Label = b.text(values[0])
		}
		return ret
	case "yield_statement":
		ret := &syntax.YieldStmt{Span: span, Break: hasToken(n, "break")}
		if values := namedChildren(n); len(values) > 0 && !ret.Break {
			ret.X = b.expr(values[0])
		}
		return ret
	case "try_statement":
		return b.tryStmt(n)
	case "using_statement", "lock_statement", "fixed_statement":
		ret := &syntax.UsingStmt{Span: span, Keyword: strings.TrimSuffix(n.Type(), "_statement")}
		body := lastStatement(n)
		for _, child := range namedChildren(n) {
			if same(child, body) {
				continue
			}
			if child.Type() == "variable_declaration" {
				ret.Decl = b.localVarDecl(child)
			} else if ret.X == nil {
				ret.X = b.expr(child)
			}
		}
		ret.Body = b.stmt(body)
		return ret
	case "checked_statement", "unsafe_statement":
		if body := firstOfType(n, "block"); body != nil {
			return b.block(body)
		}
		return &syntax.EmptyStmt{Span: span}
	case "labeled_statement":
		ret := &syntax.LabeledStmt{Span: span}
		for _, child := range namedChildren(n) {
			if child.Type() == "identifier" && ret.Label == "" {
				ret.Label = b.text(child)
				continue
			}
			ret.Stmt = b.stmt(child)
		}
		return ret
	}
	if isStatement(n) {
		// statements this front end does not model are kept for their expressions
		return &syntax.ExprStmt{Span: span, X: b.compound(n)}
	}
	return &syntax.ExprStmt{Span: span, X: b.expr(n)}
}

func (b *builder) hasModifier(n *sitter.Node, keyword string) bool {
	for _, child := range namedChildren(n) {
		if child.Type() == "modifier" && strings.TrimSpace(b.text(child)) == keyword {
			return true
		}
	}
	return false
}

func (b *builder) localVarDecl(n *sitter.Node) *syntax.LocalVarDecl {
	ret := &syntax.LocalVarDecl{Span: b.span(n)}
	if n == nil {
		return ret
	}
	ret.Type = b.typeRef(field(n, "type"))
	ret.Vars = b.declarators(n)
	return ret
}

// forStmt splits the for header on its semicolons, grammar revisions disagree on field names
func (b *builder) forStmt(n *sitter.Node) *syntax.ForStmt {
	ret := &syntax.ForStmt{Span: b.span(n)}
	body := field(n, "body")
	if body == nil {
		body = lastStatement(n)
	}
	section := 0
	for _, child := range children(n) {
		if !child.IsNamed() {
			switch child.Type() {
			case ";":
				section++
			case ")":
				section = 3
			}
			continue
		}
		if child.Type() == "comment" || same(child, body) {
			continue
		}
		switch section {
		case 0:
			if child.Type() == "variable_declaration" {
				ret.Init = append(ret.Init, b.localVarDecl(child))
			} else {
				x := b.expr(child)
				ret.Init = append(ret.Init, &syntax.ExprStmt{Span: x.Bounds(), X: x})
			}
		case 1:
			ret.Cond = b.expr(child)
		case 2:
			ret.Update = append(ret.Update, b.expr(child))
		}
	}
	ret.Body = b.stmt(body)
	return ret
}

func (b *builder) foreachStmt(n *sitter.Node) *syntax.ForeachStmt {
	ret := &syntax.ForeachStmt{Span: b.span(n)}
	left := field(n, "left")
	right := field(n, "right")
	body := field(n, "body")
	if body == nil {
		body = lastStatement(n)
	}
	if right == nil {
		// foreach (T name in collection): the collection follows the in keyword
		afterIn := false
		for _, child := range children(n) {
			if !child.IsNamed() && child.Type() == "in" {
				afterIn = true
				continue
			}
			if afterIn && child.IsNamed() && child.Type() != "comment" {
				right = child
				break
			}
		}
	}
	if left == nil {
		left = field(n, "name")
	}
	if left != nil {
		switch {
		case field(n, "type") != nil && left.Type() == "identifier":
			ret.Vars = []*syntax.VariableDecl{{Span: b.span(left), Name: b.text(left), NameLoc: b.location(left)}}
		case left.Type() == "identifier":
			ret.Target = b.ident(left)
		default:
			vars := b.designations(left)
			if len(vars) > 0 && field(n, "type") != nil {
				ret.Vars = vars
			} else {
				ret.Target = b.expr(left)
			}
		}
	}
	ret.Collection = b.expr(right)
	ret.Body = b.stmt(body)
	return ret
}

func (b *builder) switchStmt(n *sitter.Node) *syntax.SwitchStmt {
	ret := &syntax.SwitchStmt{Span: b.span(n)}
	value := field(n, "value")
	body := field(n, "body")
	if body == nil {
		body = firstOfType(n, "switch_body")
	}
	if value == nil {
		for _, child := range namedChildren(n) {
			if !same(child, body) {
				value = child
				break
			}
		}
	}
	ret.Value = b.expr(value)
	for _, child := range namedChildren(body) {
		if child.Type() == "switch_section" {
			ret.Sections = append(ret.Sections, b.switchSection(child))
		}
	}
	return ret
}

func (b *builder) switchSection(n *sitter.Node) *syntax.SwitchSection {
	ret := &syntax.SwitchSection{Span: b.span(n)}
	if hasToken(n, "default") {
		ret.HasDefault = true
	}
	for _, child := range namedChildren(n) {
		switch {
		case isStatement(child):
			ret.Stmts = append(ret.Stmts, b.stmt(child))
		case child.Type() == "default_switch_label":
			ret.HasDefault = true
		case child.Type() == "when_clause":
			ret.Guards = append(ret.Guards, b.whenClause(child))
		case child.Type() == "case_switch_label" || child.Type() == "case_pattern_switch_label":
			for _, label := range namedChildren(child) {
				if label.Type() == "when_clause" {
					ret.Guards = append(ret.Guards, b.whenClause(label))
					continue
				}
				ret.Vars = append(ret.Vars, b.designations(label)...)
				ret.Labels = append(ret.Labels, b.pattern(label))
			}
		default:
			ret.Vars = append(ret.Vars, b.designations(child)...)
			ret.Labels = append(ret.Labels, b.pattern(child))
		}
	}
	return ret
}

func (b *builder) whenClause(n *sitter.Node) syntax.Expr {
	if values := namedChildren(n); len(values) > 0 {
		return b.expr(values[0])
	}
	return &syntax.Compound{Span: b.span(n), Kind: "when"}
}

func (b *builder) tryStmt(n *sitter.Node) *syntax.TryStmt {
	ret := &syntax.TryStmt{Span: b.span(n)}
	for _, child := range namedChildren(n) {
		switch child.Type() {
		case "block":
			ret.Body = b.block(child)
		case "catch_clause":
			ret.Catches = append(ret.Catches, b.catchClause(child))
		case "finally_clause":
			ret.Finally = b.block(firstOfType(child, "block"))
		}
	}
	return ret
}

func (b *builder) catchClause(n *sitter.Node) *syntax.CatchClause {
	ret := &syntax.CatchClause{Span: b.span(n)}
	for _, child := range namedChildren(n) {
		switch child.Type() {
		case "catch_declaration":
			ret.Type = b.typeRef(field(child, "type"))
			if name := field(child, "name"); name != nil {
				ret.Var = &syntax.VariableDecl{Span: b.span(name), Name: b.text(name), NameLoc: b.location(name)}
			}
		case "catch_filter_clause":
			if values := namedChildren(child); len(values) > 0 {
				ret.Filter = b.expr(values[0])
			}
		case "block":
			ret.Body = b.block(child)
		}
	}
	return ret
}
