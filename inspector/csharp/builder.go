package csharp

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/viant/readonly/syntax"
)

// builder converts tree-sitter nodes of one file into syntax nodes
type builder struct {
	src  []byte
	unit *syntax.Unit
	// receivers of enclosing conditional accesses, consumed by member and element bindings
	bindings []syntax.Expr
}

func newBuilder(filename string, src []byte) *builder {
	return &builder{src: src, unit: &syntax.Unit{Path: filename, Source: src}}
}

func (b *builder) text(n *sitter.Node) string {
	if n == nil {
		return ""
	}
	return n.Content(b.src)
}

func (b *builder) span(n *sitter.Node) syntax.Span {
	if n == nil {
		return syntax.Span{}
	}
	return syntax.Span{Start: int(n.StartByte()), End: int(n.EndByte())}
}

func (b *builder) location(n *sitter.Node) syntax.Location {
	if n == nil {
		return syntax.Location{}
	}
	point := n.StartPoint()
	return syntax.Location{
		File:   b.unit.Path,
		Line:   int(point.Row) + 1,
		Column: int(point.Column) + 1,
		Offset: int(n.StartByte()),
	}
}

// between returns trimmed source text between two nodes
func (b *builder) between(left, right *sitter.Node) string {
	if left == nil || right == nil || left.EndByte() > right.StartByte() {
		return ""
	}
	return strings.TrimSpace(string(b.src[left.EndByte():right.StartByte()]))
}

// children returns all children of n, named and anonymous
func children(n *sitter.Node) []*sitter.Node {
	if n == nil {
		return nil
	}
	count := int(n.ChildCount())
	result := make([]*sitter.Node, 0, count)
	for i := 0; i < count; i++ {
		if child := n.Child(i); child != nil {
			result = append(result, child)
		}
	}
	return result
}

// namedChildren returns named children of n, skipping comments
func namedChildren(n *sitter.Node) []*sitter.Node {
	if n == nil {
		return nil
	}
	count := int(n.NamedChildCount())
	result := make([]*sitter.Node, 0, count)
	for i := 0; i < count; i++ {
		child := n.NamedChild(i)
		if child == nil || child.Type() == "comment" {
			continue
		}
		result = append(result, child)
	}
	return result
}

// firstOfType returns the first named child whose type is one of types
func firstOfType(n *sitter.Node, types ...string) *sitter.Node {
	for _, child := range namedChildren(n) {
		for _, t := range types {
			if child.Type() == t {
				return child
			}
		}
	}
	return nil
}

// field returns a child by field name, trying alternatives used by grammar revisions
func field(n *sitter.Node, names ...string) *sitter.Node {
	if n == nil {
		return nil
	}
	for _, name := range names {
		if child := n.ChildByFieldName(name); child != nil {
			return child
		}
	}
	return nil
}

// hasToken reports whether n has an anonymous child token with the given text
func hasToken(n *sitter.Node, token string) bool {
	for _, child := range children(n) {
		if !child.IsNamed() && child.Type() == token {
			return true
		}
	}
	return false
}

// modifiers collects declaration modifiers, either modifier nodes or bare keyword tokens
func (b *builder) modifiers(n *sitter.Node) (syntax.Modifiers, []*sitter.Node) {
	var result syntax.Modifiers
	var nodes []*sitter.Node
	for _, child := range children(n) {
		keyword := ""
		switch {
		case child.Type() == "modifier":
			keyword = strings.TrimSpace(b.text(child))
		case !child.IsNamed():
			keyword = child.Type()
		default:
			continue
		}
		if flag, ok := syntax.ParseModifier(keyword); ok {
			result |= flag
			nodes = append(nodes, child)
		}
	}
	return result, nodes
}

func (b *builder) comments(root *sitter.Node) {
	var visit func(n *sitter.Node)
	visit = func(n *sitter.Node) {
		if n.Type() == "comment" {
			end := n.EndPoint()
			b.unit.Comments = append(b.unit.Comments, &syntax.Comment{
				Span:     b.span(n),
				Text:     b.text(n),
				Location: b.location(n),
				EndLine:  int(end.Row) + 1,
			})
			return
		}
		for _, child := range children(n) {
			visit(child)
		}
	}
	visit(root)
}

func (b *builder) typeRef(n *sitter.Node) *syntax.TypeRef {
	if n == nil {
		return nil
	}
	ref := syntax.NewTypeRef(b.text(n))
	ref.Span = b.span(n)
	return ref
}

func (b *builder) ident(n *sitter.Node) *syntax.Ident {
	return &syntax.Ident{Span: b.span(n), Name: b.text(n), Loc: b.location(n)}
}

// same reports whether two nodes cover the same source range with the same type
func same(a, b *sitter.Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.StartByte() == b.StartByte() && a.EndByte() == b.EndByte() && a.Type() == b.Type()
}
