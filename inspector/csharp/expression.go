package csharp

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/viant/readonly/syntax"
)

var literalKinds = map[string]syntax.LiteralKind{
	"null_literal":            syntax.NullLiteral,
	"boolean_literal":         syntax.BoolLiteral,
	"integer_literal":         syntax.NumberLiteral,
	"real_literal":            syntax.NumberLiteral,
	"string_literal":          syntax.StringLiteral,
	"verbatim_string_literal": syntax.StringLiteral,
	"raw_string_literal":      syntax.StringLiteral,
	"character_literal":       syntax.CharLiteral,
}

func (b *builder) expr(n *sitter.Node) syntax.Expr {
	if n == nil {
		return nil
	}
	span := b.span(n)
	if kind, ok := literalKinds[n.Type()]; ok {
		return &syntax.Literal{Span: span, Kind: kind, Value: b.text(n)}
	}
	switch n.Type() {
	case "identifier", "predefined_type", "qualified_name", "alias_qualified_name":
		return b.ident(n)
	case "generic_name":
		ret := b.ident(n)
		if name := firstOfType(n, "identifier"); name != nil {
			ret.Name = b.text(name)
		}
		return ret
	case "this_expression", "this":
		return &syntax.ThisExpr{Span: span}
	case "base_expression", "base":
		return &syntax.BaseExpr{Span: span}
	case "parenthesized_expression":
		ret := &syntax.Paren{Span: span}
		if values := namedChildren(n); len(values) > 0 {
			ret.X = b.expr(values[0])
		}
		return ret
	case "member_access_expression":
		name := field(n, "name")
		return &syntax.MemberAccess{
			Span:    span,
			X:       b.expr(field(n, "expression")),
			Name:    b.simpleName(name),
			NameLoc: b.location(name),
		}
	case "element_access_expression":
		return &syntax.ElementAccess{
			Span: span,
			X:    b.expr(field(n, "expression")),
			Args: b.arguments(field(n, "subscript")),
		}
	case "invocation_expression":
		return &syntax.Call{
			Span: span,
			Fun:  b.expr(field(n, "function")),
			Args: b.arguments(field(n, "arguments")),
		}
	case "conditional_access_expression":
		return b.conditionalAccess(n)
	case "member_binding_expression":
		name := field(n, "name")
		if name == nil {
			name = firstOfType(n, "identifier", "generic_name")
		}
		return &syntax.MemberAccess{
			Span:        span,
			X:           b.binding(n),
			Name:        b.simpleName(name),
			NameLoc:     b.location(name),
			Conditional: true,
		}
	case "element_binding_expression":
		return &syntax.ElementAccess{
			Span:        span,
			X:           b.binding(n),
			Args:        b.arguments(firstOfType(n, "bracketed_argument_list")),
			Conditional: true,
		}
	case "assignment_expression":
		left, right := field(n, "left"), field(n, "right")
		return &syntax.Assign{Span: span, Op: b.between(left, right), Left: b.expr(left), Right: b.expr(right)}
	case "binary_expression":
		left, right := field(n, "left"), field(n, "right")
		op := b.text(field(n, "operator"))
		if op == "" {
			op = b.between(left, right)
		}
		return &syntax.Binary{Span: span, Op: op, Left: b.expr(left), Right: b.expr(right)}
	case "prefix_unary_expression", "postfix_unary_expression":
		return b.unary(n)
	case "conditional_expression":
		return &syntax.Conditional{
			Span: span,
			Cond: b.expr(field(n, "condition")),
			Then: b.expr(field(n, "consequence")),
			Else: b.expr(field(n, "alternative")),
		}
	case "tuple_expression":
		ret := &syntax.Tuple{Span: span}
		for _, child := range namedChildren(n) {
			if child.Type() == "argument" {
				ret.Elems = append(ret.Elems, b.argument(child).X)
				continue
			}
			ret.Elems = append(ret.Elems, b.expr(child))
		}
		return ret
	case "declaration_expression":
		ret := &syntax.DeclExpr{Span: span, Type: b.typeRef(field(n, "type"))}
		ret.Vars = b.designations(field(n, "name"))
		if len(ret.Vars) == 0 {
			ret.Vars = b.designations(n)
		}
		return ret
	case "lambda_expression":
		return b.lambda(n)
	case "anonymous_method_expression":
		return &syntax.Lambda{
			Span:      span,
			Params:    b.parameters(firstOfType(n, "parameter_list")),
			Body:      b.block(firstOfType(n, "block")),
			Anonymous: true,
		}
	case "object_creation_expression", "implicit_object_creation_expression",
		"array_creation_expression", "implicit_array_creation_expression",
		"stackalloc_expression", "implicit_stackalloc_expression":
		ret := &syntax.New{Span: span, Type: b.typeRef(field(n, "type"))}
		ret.Args = b.arguments(firstOfType(n, "argument_list"))
		ret.Init = b.initializer(firstOfType(n, "initializer_expression"))
		return ret
	case "anonymous_object_creation_expression":
		return &syntax.New{Span: span, Init: b.anonymousMembers(n)}
	case "initializer_expression":
		return &syntax.Compound{Span: span, Kind: "initializer", Parts: b.initializer(n)}
	case "with_expression":
		ret := &syntax.Compound{Span: span, Kind: "with"}
		for _, child := range namedChildren(n) {
			if strings.HasPrefix(child.Type(), "with_initializer") || child.Type() == "initializer_expression" {
				ret.Parts = append(ret.Parts, b.initializer(child)...)
				continue
			}
			ret.Parts = append(ret.Parts, b.expr(child))
		}
		return ret
	case "is_pattern_expression", "is_expression":
		value, pattern := field(n, "expression", "left"), field(n, "pattern", "right", "type")
		if value == nil || pattern == nil {
			values := namedChildren(n)
			if len(values) < 2 {
				return b.compound(n)
			}
			value, pattern = values[0], values[len(values)-1]
		}
		return &syntax.IsPattern{
			Span:    span,
			X:       b.expr(value),
			Pattern: b.text(pattern),
			Vars:    b.designations(pattern),
			Parts:   b.patternParts(pattern),
		}
	case "as_expression", "cast_expression":
		return b.cast(n)
	case "switch_expression":
		return b.switchExpr(n)
	case "throw_expression":
		ret := &syntax.ThrowExpr{Span: span}
		if values := namedChildren(n); len(values) > 0 {
			ret.X = b.expr(values[0])
		}
		return ret
	case "argument":
		return b.argument(n).X
	}
	return b.compound(n)
}

// compound keeps sub expressions of node kinds without a dedicated syntax node
func (b *builder) compound(n *sitter.Node) syntax.Expr {
	ret := &syntax.Compound{Span: b.span(n), Kind: n.Type()}
	for _, child := range namedChildren(n) {
		if isStatement(child) {
			continue
		}
		if x := b.expr(child); x != nil {
			ret.Parts = append(ret.Parts, x)
		}
	}
	return ret
}

// simpleName returns the identifier of a simple or generic name
func (b *builder) simpleName(n *sitter.Node) string {
	if n == nil {
		return ""
	}
	if n.Type() == "generic_name" {
		if name := firstOfType(n, "identifier"); name != nil {
			return b.text(name)
		}
	}
	return b.text(n)
}

func (b *builder) unary(n *sitter.Node) syntax.Expr {
	operand := field(n, "operand", "argument")
	if operand == nil {
		if values := namedChildren(n); len(values) > 0 {
			operand = values[0]
		}
	}
	ret := &syntax.Unary{Span: b.span(n), Postfix: n.Type() == "postfix_unary_expression", X: b.expr(operand)}
	if operand == nil {
		return ret
	}
	if ret.Postfix {
		ret.Op = strings.TrimSpace(string(b.src[operand.EndByte():n.EndByte()]))
	} else {
		ret.Op = strings.TrimSpace(string(b.src[n.StartByte():operand.StartByte()]))
	}
	return ret
}

func (b *builder) cast(n *sitter.Node) syntax.Expr {
	ret := &syntax.Cast{Span: b.span(n), Op: "cast"}
	if n.Type() == "as_expression" {
		ret.Op = "as"
	}
	typ, value := field(n, "type"), field(n, "value")
	if ret.Op == "as" {
		value, typ = field(n, "left", "expression"), field(n, "right", "type")
	}
	if typ == nil || value == nil {
		values := namedChildren(n)
		if len(values) < 2 {
			return b.compound(n)
		}
		if ret.Op == "as" {
			value, typ = values[0], values[len(values)-1]
		} else {
			typ, value = values[0], values[len(values)-1]
		}
	}
	ret.Type = b.typeRef(typ)
	ret.X = b.expr(value)
	return ret
}

// conditionalAccess converts a?.b chains, bindings inside the chain refer to the receiver
func (b *builder) conditionalAccess(n *sitter.Node) syntax.Expr {
	receiver := field(n, "condition", "expression")
	values := namedChildren(n)
	if receiver == nil && len(values) > 0 {
		receiver = values[0]
	}
	b.bindings = append(b.bindings, b.expr(receiver))
	defer func() { b.bindings = b.bindings[:len(b.bindings)-1] }()
	var ret syntax.Expr
	for _, child := range values {
		if same(child, receiver) {
			continue
		}
		ret = b.expr(child)
	}
	if ret == nil {
		return b.bindings[len(b.bindings)-1]
	}
	return ret
}

func (b *builder) binding(n *sitter.Node) syntax.Expr {
	if len(b.bindings) == 0 {
		return &syntax.Compound{Span: syntax.Span{Start: int(n.StartByte()), End: int(n.StartByte())}, Kind: "binding"}
	}
	return b.bindings[len(b.bindings)-1]
}

func (b *builder) lambda(n *sitter.Node) syntax.Expr {
	ret := &syntax.Lambda{Span: b.span(n)}
	params := field(n, "parameters")
	body := field(n, "body")
	if params == nil || body == nil {
		beforeArrow := true
		for _, child := range children(n) {
			if !child.IsNamed() {
				if child.Type() == "=>" {
					beforeArrow = false
				}
				continue
			}
			if child.Type() == "comment" || child.Type() == "modifier" {
				continue
			}
			if beforeArrow && params == nil {
				params = child
			} else if !beforeArrow && body == nil {
				body = child
			}
		}
	}
	if params != nil {
		switch params.Type() {
		case "identifier", "implicit_parameter":
			ret.Params = []*syntax.Parameter{{Span: b.span(params), Name: b.text(params), NameLoc: b.location(params)}}
		default:
			ret.Params = b.parameters(params)
		}
	}
	if body == nil {
		ret.Body = &syntax.Block{Span: ret.Span}
		return ret
	}
	if body.Type() == "block" {
		ret.Body = b.block(body)
		return ret
	}
	value := b.expr(body)
	ret.Body = &syntax.Block{Span: value.Bounds(), Stmts: []syntax.Stmt{&syntax.ExprStmt{Span: value.Bounds(), X: value}}}
	return ret
}

func (b *builder) switchExpr(n *sitter.Node) syntax.Expr {
	ret := &syntax.SwitchExpr{Span: b.span(n)}
	for _, child := range namedChildren(n) {
		if child.Type() != "switch_expression_arm" {
			if ret.Value == nil {
				ret.Value = b.expr(child)
			}
			continue
		}
		arm := &syntax.SwitchArm{Span: b.span(child)}
		parts := namedChildren(child)
		if len(parts) == 0 {
			continue
		}
		pattern, value := parts[0], parts[len(parts)-1]
		arm.Pattern = b.text(pattern)
		arm.Vars = b.designations(pattern)
		if guard := firstOfType(child, "when_clause"); guard != nil {
			arm.Guard = b.whenClause(guard)
		}
		arm.Value = b.expr(value)
		ret.Arms = append(ret.Arms, arm)
	}
	return ret
}

func (b *builder) arguments(list *sitter.Node) []*syntax.Argument {
	var result []*syntax.Argument
	for _, child := range namedChildren(list) {
		if child.Type() == "argument" {
			result = append(result, b.argument(child))
			continue
		}
		x := b.expr(child)
		result = append(result, &syntax.Argument{Span: x.Bounds(), X: x})
	}
	return result
}

func (b *builder) argument(n *sitter.Node) *syntax.Argument {
	ret := &syntax.Argument{Span: b.span(n)}
	for _, child := range children(n) {
		switch {
		case !child.IsNamed():
			switch child.Type() {
			case "ref", "out", "in":
				ret.Modifier = child.Type()
			}
		case child.Type() == "name_colon":
			ret.Name = strings.TrimSpace(strings.TrimSuffix(b.text(child), ":"))
		case child.Type() == "comment":
		default:
			ret.X = b.expr(child)
		}
	}
	return ret
}

// initializer converts object and collection initializer entries
func (b *builder) initializer(n *sitter.Node) []syntax.Expr {
	var result []syntax.Expr
	for _, child := range namedChildren(n) {
		switch child.Type() {
		case "assignment_expression", "simple_assignment_expression", "with_initializer":
			left, right := field(child, "left"), field(child, "right")
			if left == nil || right == nil {
				values := namedChildren(child)
				if len(values) < 2 {
					result = append(result, b.expr(child))
					continue
				}
				left, right = values[0], values[len(values)-1]
			}
			entry := &syntax.InitializerEntry{Span: b.span(child), Value: b.expr(right)}
			switch left.Type() {
			case "identifier":
				entry.Name = b.text(left)
			default:
				entry.Index = b.arguments(firstOfType(left, "bracketed_argument_list"))
				if entry.Index == nil && left.Type() == "bracketed_argument_list" {
					entry.Index = b.arguments(left)
				}
			}
			result = append(result, entry)
		default:
			result = append(result, b.expr(child))
		}
	}
	return result
}

func (b *builder) anonymousMembers(n *sitter.Node) []syntax.Expr {
	var result []syntax.Expr
	name := ""
	for _, child := range namedChildren(n) {
		switch child.Type() {
		case "name_equals":
			name = strings.TrimSpace(strings.TrimSuffix(b.text(child), "="))
		case "anonymous_object_member_declarator":
			result = append(result, b.anonymousMembers(child)...)
		default:
			value := b.expr(child)
			if name != "" {
				result = append(result, &syntax.InitializerEntry{Span: b.span(child), Name: name, Value: value})
				name = ""
				continue
			}
			result = append(result, value)
		}
	}
	return result
}

// designations collects variables introduced by patterns and deconstructions
func (b *builder) designations(n *sitter.Node) []*syntax.VariableDecl {
	if n == nil {
		return nil
	}
	var result []*syntax.VariableDecl
	declare := func(name *sitter.Node) {
		result = append(result, &syntax.VariableDecl{Span: b.span(name), Name: b.text(name), NameLoc: b.location(name)})
	}
	var visit func(n *sitter.Node)
	visit = func(n *sitter.Node) {
		switch n.Type() {
		case "lambda_expression", "anonymous_method_expression", "discard":
			return
		case "single_variable_designation":
			if name := firstOfType(n, "identifier"); name != nil {
				declare(name)
			} else {
				declare(n)
			}
			return
		case "declaration_pattern", "declaration_expression", "var_pattern", "recursive_pattern":
			if name := field(n, "name", "designation"); name != nil && name.Type() == "identifier" {
				declare(name)
				return
			}
		case "parenthesized_variable_designation":
			for _, child := range namedChildren(n) {
				if child.Type() == "identifier" {
					declare(child)
					continue
				}
				visit(child)
			}
			return
		}
		for _, child := range namedChildren(n) {
			visit(child)
		}
	}
	visit(n)
	return result
}

// pattern converts a case label: constant patterns become expressions
func (b *builder) pattern(n *sitter.Node) syntax.Expr {
	if n.Type() == "constant_pattern" {
		if values := namedChildren(n); len(values) > 0 {
			return b.expr(values[0])
		}
	}
	if !strings.HasSuffix(n.Type(), "_pattern") {
		return b.expr(n)
	}
	return &syntax.Compound{Span: b.span(n), Kind: n.Type(), Parts: b.patternParts(n)}
}

// patternParts returns the expressions a pattern evaluates
func (b *builder) patternParts(n *sitter.Node) []syntax.Expr {
	var result []syntax.Expr
	var visit func(n *sitter.Node)
	visit = func(n *sitter.Node) {
		switch n.Type() {
		case "constant_pattern":
			for _, child := range namedChildren(n) {
				result = append(result, b.expr(child))
			}
			return
		case "relational_pattern":
			if values := namedChildren(n); len(values) > 0 {
				result = append(result, b.expr(values[len(values)-1]))
			}
			return
		}
		for _, child := range namedChildren(n) {
			visit(child)
		}
	}
	visit(n)
	return result
}
