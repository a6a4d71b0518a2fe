// Package syntax defines the closed set of declaration, statement and expression
// nodes the readonly field analyzer works on. Front ends (see inspector/csharp)
// produce these trees; the analyzer only reads them.
//
// Every node kind is a concrete struct. The Member, Stmt and Expr interfaces are
// sealed with unexported marker methods so that consumers can switch over them
// exhaustively.
package syntax

// Node is implemented by every syntax node
type Node interface {
	Bounds() Span
}

// Member is a declaration inside a type body
type Member interface {
	Node
	member()
}

// Stmt is a statement node
type Stmt interface {
	Node
	stmt()
}

// Expr is an expression node
type Expr interface {
	Node
	expr()
}

// Unit represents one parsed source file
type Unit struct {
	Path     string
	Source   []byte
	Types    []*TypeDecl // top level types in declaration order
	Comments []*Comment
	// Incomplete is set when the parser recovered from syntax errors
	Incomplete bool
}

// Comment represents a line or block comment
type Comment struct {
	Span
	Text     string
	Location Location
	EndLine  int
}

// Text returns the source text covered by span, or empty string if span is out of range
func (u *Unit) Text(span Span) string {
	if u == nil || span.Start < 0 || span.End > len(u.Source) || span.Start > span.End {
		return ""
	}
	return string(u.Source[span.Start:span.End])
}

// AllTypes returns all types declared in the unit, nested types following their parent
func (u *Unit) AllTypes() []*TypeDecl {
	var result []*TypeDecl
	var visit func(types []*TypeDecl)
	visit = func(types []*TypeDecl) {
		for _, t := range types {
			result = append(result, t)
			visit(t.NestedTypes())
		}
	}
	visit(u.Types)
	return result
}

// Bounds returns the whole source range
func (u *Unit) Bounds() Span {
	return Span{Start: 0, End: len(u.Source)}
}
