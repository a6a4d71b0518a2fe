package csharp

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/viant/readonly/syntax"
)

func (b *builder) compilationUnit(root *sitter.Node) {
	b.unit.Types = b.namespaceMembers(root, "")
}

// namespaceMembers returns types declared in a compilation unit or namespace body
func (b *builder) namespaceMembers(n *sitter.Node, namespace string) []*syntax.TypeDecl {
	var result []*syntax.TypeDecl
	for _, child := range namedChildren(n) {
		switch child.Type() {
		case "namespace_declaration":
			name := joinNamespace(namespace, b.text(field(child, "name")))
			result = append(result, b.namespaceMembers(field(child, "body"), name)...)
		case "file_scoped_namespace_declaration":
			// later grammar revisions nest members, earlier ones leave them as siblings
			namespace = joinNamespace(namespace, b.text(field(child, "name")))
			result = append(result, b.namespaceMembers(child, namespace)...)
		case "declaration_list":
			result = append(result, b.namespaceMembers(child, namespace)...)
		default:
			if typ := b.typeDecl(child, nil); typ != nil {
				typ.Namespace = namespace
				result = append(result, typ)
			}
		}
	}
	return result
}

func joinNamespace(outer, inner string) string {
	inner = strings.Join(strings.Fields(inner), "")
	if outer == "" {
		return inner
	}
	if inner == "" {
		return outer
	}
	return outer + "." + inner
}

func typeKind(n *sitter.Node) (syntax.TypeKind, bool) {
	switch n.Type() {
	case "class_declaration":
		return syntax.ClassKind, true
	case "struct_declaration":
		return syntax.StructKind, true
	case "interface_declaration":
		return syntax.InterfaceKind, true
	case "enum_declaration":
		return syntax.EnumKind, true
	case "delegate_declaration":
		return syntax.DelegateKind, true
	case "record_struct_declaration":
		return syntax.RecordStructKind, true
	case "record_declaration":
		if hasToken(n, "struct") {
			return syntax.RecordStructKind, true
		}
		return syntax.RecordKind, true
	}
	return 0, false
}

func (b *builder) typeDecl(n *sitter.Node, parent *syntax.TypeDecl) *syntax.TypeDecl {
	kind, ok := typeKind(n)
	if !ok {
		return nil
	}
	name := field(n, "name")
	ret := &syntax.TypeDecl{
		Span:    b.span(n),
		Kind:    kind,
		Name:    b.text(name),
		NameLoc: b.location(name),
		Parent:  parent,
	}
	ret.Modifiers, _ = b.modifiers(n)
	if bases := field(n, "bases"); bases != nil {
		for _, base := range namedChildren(bases) {
			if base.Type() == "argument_list" {
				continue
			}
			ret.BaseTypes = append(ret.BaseTypes, b.typeRef(base))
		}
	} else if bases := firstOfType(n, "base_list"); bases != nil {
		for _, base := range namedChildren(bases) {
			ret.BaseTypes = append(ret.BaseTypes, b.typeRef(base))
		}
	}
	if params := field(n, "parameters"); params != nil && kind != syntax.DelegateKind {
		ret.Params = b.parameters(params)
	} else if params := firstOfType(n, "parameter_list"); params != nil && kind != syntax.DelegateKind {
		ret.Params = b.parameters(params)
	}
	body := field(n, "body")
	if body == nil {
		body = firstOfType(n, "declaration_list", "enum_member_declaration_list")
	}
	for _, child := range namedChildren(body) {
		ret.Members = append(ret.Members, b.members(child, ret)...)
	}
	return ret
}

func (b *builder) members(n *sitter.Node, owner *syntax.TypeDecl) []syntax.Member {
	if nested := b.typeDecl(n, owner); nested != nil {
		return []syntax.Member{nested}
	}
	switch n.Type() {
	case "field_declaration":
		return []syntax.Member{b.fieldDecl(n)}
	case "event_field_declaration":
		return []syntax.Member{b.eventFieldDecl(n)}
	case "method_declaration":
		return []syntax.Member{b.methodDecl(n)}
	case "constructor_declaration":
		return []syntax.Member{b.constructorDecl(n)}
	case "destructor_declaration":
		name := field(n, "name")
		if name == nil {
			name = firstOfType(n, "identifier")
		}
		return []syntax.Member{&syntax.DestructorDecl{
			Span:    b.span(n),
			Name:    b.text(name),
			NameLoc: b.location(name),
			Body:    b.body(n),
		}}
	case "operator_declaration", "conversion_operator_declaration":
		return []syntax.Member{b.operatorDecl(n)}
	case "indexer_declaration":
		return []syntax.Member{b.indexerDecl(n)}
	case "property_declaration":
		return []syntax.Member{b.propertyDecl(n)}
	case "event_declaration":
		return []syntax.Member{b.eventDecl(n)}
	case "enum_member_declaration":
		name := field(n, "name")
		if name == nil {
			name = firstOfType(n, "identifier")
		}
		return []syntax.Member{&syntax.EnumMemberDecl{
			Span:    b.span(n),
			Name:    b.text(name),
			NameLoc: b.location(name),
			Value:   b.expr(field(n, "value")),
		}}
	}
	return nil
}

func (b *builder) fieldDecl(n *sitter.Node) *syntax.FieldDecl {
	ret := &syntax.FieldDecl{Span: b.span(n), Location: b.location(n)}
	var modifierNodes []*sitter.Node
	ret.Modifiers, modifierNodes = b.modifiers(n)
	declaration := firstOfType(n, "variable_declaration")
	if declaration != nil {
		ret.Type = b.typeRef(field(declaration, "type"))
		ret.Variables = b.declarators(declaration)
	}
	start, end := int(n.StartByte()), int(n.EndByte())
	switch {
	case len(modifierNodes) > 0:
		first, last := modifierNodes[0], modifierNodes[len(modifierNodes)-1]
		ret.Leading = string(b.src[start:first.StartByte()])
		ret.Tail = strings.TrimLeft(string(b.src[last.EndByte():end]), " \t")
	case declaration != nil:
		ret.Leading = string(b.src[start:declaration.StartByte()])
		ret.Tail = string(b.src[declaration.StartByte():end])
	}
	return ret
}

func (b *builder) eventFieldDecl(n *sitter.Node) *syntax.EventDecl {
	ret := &syntax.EventDecl{Span: b.span(n)}
	ret.Modifiers, _ = b.modifiers(n)
	if declaration := firstOfType(n, "variable_declaration"); declaration != nil {
		ret.Type = b.typeRef(field(declaration, "type"))
		for _, v := range b.declarators(declaration) {
			if ret.NameLoc.Line == 0 {
				ret.NameLoc = v.NameLoc
			}
			ret.Names = append(ret.Names, v.Name)
			if v.Initializer != nil {
				ret.Values = append(ret.Values, v.Initializer)
			}
		}
	}
	return ret
}

// declarators converts variable_declarator children of a variable declaration
func (b *builder) declarators(declaration *sitter.Node) []*syntax.VariableDecl {
	var result []*syntax.VariableDecl
	for _, child := range namedChildren(declaration) {
		if child.Type() != "variable_declarator" {
			continue
		}
		result = append(result, b.declarator(child))
	}
	return result
}

func (b *builder) declarator(n *sitter.Node) *syntax.VariableDecl {
	name := field(n, "name")
	if name == nil {
		name = firstOfType(n, "identifier")
	}
	ret := &syntax.VariableDecl{Span: b.span(n), Name: b.text(name), NameLoc: b.location(name)}
	if clause := firstOfType(n, "equals_value_clause"); clause != nil {
		if values := namedChildren(clause); len(values) > 0 {
			ret.Initializer = b.expr(values[len(values)-1])
		}
		return ret
	}
	afterEquals := false
	for _, child := range children(n) {
		if !child.IsNamed() && child.Type() == "=" {
			afterEquals = true
			continue
		}
		if afterEquals && child.IsNamed() && child.Type() != "comment" {
			ret.Initializer = b.expr(child)
			break
		}
	}
	return ret
}

func (b *builder) methodDecl(n *sitter.Node) *syntax.MethodDecl {
	name := field(n, "name")
	ret := &syntax.MethodDecl{
		Span:       b.span(n),
		Name:       b.text(name),
		NameLoc:    b.location(name),
		ReturnType: b.typeRef(field(n, "returns", "type")),
		Params:     b.parameters(field(n, "parameters")),
		Body:       b.body(n),
	}
	ret.Modifiers, _ = b.modifiers(n)
	return ret
}

func (b *builder) constructorDecl(n *sitter.Node) *syntax.ConstructorDecl {
	name := field(n, "name")
	ret := &syntax.ConstructorDecl{
		Span:    b.span(n),
		Name:    b.text(name),
		NameLoc: b.location(name),
		Params:  b.parameters(field(n, "parameters")),
		Body:    b.body(n),
	}
	ret.Modifiers, _ = b.modifiers(n)
	if initializer := firstOfType(n, "constructor_initializer"); initializer != nil {
		ret.Initializer = b.arguments(firstOfType(initializer, "argument_list"))
	}
	return ret
}

func (b *builder) operatorDecl(n *sitter.Node) *syntax.OperatorDecl {
	ret := &syntax.OperatorDecl{
		Span:   b.span(n),
		Params: b.parameters(field(n, "parameters")),
		Body:   b.body(n),
	}
	ret.Modifiers, _ = b.modifiers(n)
	if n.Type() == "conversion_operator_declaration" {
		ret.Conversion = true
		ret.Operator = "explicit"
		if hasToken(n, "implicit") {
			ret.Operator = "implicit"
		}
		ret.NameLoc = b.location(n)
		return ret
	}
	if operator := field(n, "operator"); operator != nil {
		ret.Operator = b.text(operator)
		ret.NameLoc = b.location(operator)
	}
	return ret
}

func (b *builder) indexerDecl(n *sitter.Node) *syntax.IndexerDecl {
	ret := &syntax.IndexerDecl{
		Span:    b.span(n),
		NameLoc: b.location(n),
		Type:    b.typeRef(field(n, "type")),
		Params:  b.parameters(firstOfType(n, "bracketed_parameter_list")),
	}
	ret.Modifiers, _ = b.modifiers(n)
	ret.Accessors = b.accessors(n)
	return ret
}

func (b *builder) propertyDecl(n *sitter.Node) *syntax.PropertyDecl {
	name := field(n, "name")
	ret := &syntax.PropertyDecl{
		Span:    b.span(n),
		Name:    b.text(name),
		NameLoc: b.location(name),
		Type:    b.typeRef(field(n, "type")),
	}
	ret.Modifiers, _ = b.modifiers(n)
	ret.Accessors = b.accessors(n)
	if value := field(n, "value"); value != nil && value.Type() != "arrow_expression_clause" {
		ret.Initializer = b.expr(value)
	}
	return ret
}

func (b *builder) eventDecl(n *sitter.Node) *syntax.EventDecl {
	name := field(n, "name")
	ret := &syntax.EventDecl{
		Span:    b.span(n),
		Names:   []string{b.text(name)},
		NameLoc: b.location(name),
		Type:    b.typeRef(field(n, "type")),
	}
	ret.Modifiers, _ = b.modifiers(n)
	ret.Accessors = b.accessors(n)
	return ret
}

var accessorKinds = map[string]bool{"get": true, "set": true, "init": true, "add": true, "remove": true}

// accessors converts an accessor list, an expression bodied member becomes a get accessor
func (b *builder) accessors(n *sitter.Node) []*syntax.Accessor {
	if arrow := firstOfType(n, "arrow_expression_clause"); arrow != nil {
		return []*syntax.Accessor{{Span: b.span(arrow), Kind: "get", Body: b.arrowBody(arrow)}}
	}
	list := field(n, "accessors")
	if list == nil {
		list = firstOfType(n, "accessor_list")
	}
	var result []*syntax.Accessor
	for _, child := range namedChildren(list) {
		if child.Type() != "accessor_declaration" {
			continue
		}
		accessor := &syntax.Accessor{Span: b.span(child)}
		accessor.Modifiers, _ = b.modifiers(child)
		for _, token := range children(child) {
			if accessorKinds[token.Type()] || (token.Type() == "identifier" && accessorKinds[b.text(token)]) {
				accessor.Kind = b.text(token)
				break
			}
		}
		if accessor.Kind == "" {
			accessor.Kind = b.text(field(child, "name"))
		}
		accessor.Body = b.body(child)
		result = append(result, accessor)
	}
	return result
}

// body returns the block body of a member, expression bodies become a single statement block
func (b *builder) body(n *sitter.Node) *syntax.Block {
	if body := field(n, "body"); body != nil {
		if body.Type() == "arrow_expression_clause" {
			return b.arrowBody(body)
		}
		return b.block(body)
	}
	if body := firstOfType(n, "block"); body != nil {
		return b.block(body)
	}
	if arrow := firstOfType(n, "arrow_expression_clause"); arrow != nil {
		return b.arrowBody(arrow)
	}
	return nil
}

func (b *builder) arrowBody(arrow *sitter.Node) *syntax.Block {
	values := namedChildren(arrow)
	if len(values) == 0 {
		return &syntax.Block{Span: b.span(arrow)}
	}
	value := b.expr(values[0])
	return &syntax.Block{Span: b.span(arrow), Stmts: []syntax.Stmt{&syntax.ExprStmt{Span: value.Bounds(), X: value}}}
}

var parameterModifiers = map[string]bool{"ref": true, "out": true, "in": true, "params": true, "this": true, "scoped": true}

func (b *builder) parameters(list *sitter.Node) []*syntax.Parameter {
	var result []*syntax.Parameter
	for _, child := range namedChildren(list) {
		switch child.Type() {
		case "parameter":
			result = append(result, b.parameter(child))
		case "implicit_parameter", "identifier":
			result = append(result, &syntax.Parameter{Span: b.span(child), Name: b.text(child), NameLoc: b.location(child)})
		}
	}
	return result
}

func (b *builder) parameter(n *sitter.Node) *syntax.Parameter {
	name := field(n, "name")
	ret := &syntax.Parameter{
		Span:    b.span(n),
		Name:    b.text(name),
		NameLoc: b.location(name),
		Type:    b.typeRef(field(n, "type")),
	}
	for _, child := range children(n) {
		keyword := child.Type()
		if child.Type() == "parameter_modifier" || child.Type() == "modifier" {
			keyword = strings.TrimSpace(b.text(child))
		} else if child.IsNamed() {
			continue
		}
		if parameterModifiers[keyword] && ret.Modifier == "" {
			ret.Modifier = keyword
		}
	}
	if clause := firstOfType(n, "equals_value_clause"); clause != nil {
		if values := namedChildren(clause); len(values) > 0 {
			ret.Default = b.expr(values[0])
		}
	}
	return ret
}
