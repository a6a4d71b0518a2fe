package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInspect(t *testing.T) {
	lambda := &Lambda{
		Params: []*Parameter{{Name: "v"}},
		Body:   &Block{Stmts: []Stmt{&ExprStmt{X: &Assign{Op: "=", Left: &Ident{Name: "x"}, Right: &Ident{Name: "v"}}}}},
	}
	body := &Block{Stmts: []Stmt{
		&IfStmt{
			Cond: &Binary{Op: "&&", Left: &Ident{Name: "a"}, Right: &Ident{Name: "b"}},
			Then: &ExprStmt{X: &Call{Fun: &Ident{Name: "Run"}, Args: []*Argument{{X: lambda}}}},
		},
		&ReturnStmt{},
	}}

	var names []string
	Inspect(body, func(n Node) bool {
		if ident, ok := n.(*Ident); ok {
			names = append(names, ident.Name)
		}
		return true
	})
	assert.Equal(t, []string{"a", "b", "Run", "x", "v"}, names)

	names = nil
	Inspect(body, func(n Node) bool {
		if _, ok := n.(*Lambda); ok {
			return false
		}
		if ident, ok := n.(*Ident); ok {
			names = append(names, ident.Name)
		}
		return true
	})
	assert.Equal(t, []string{"a", "b", "Run"}, names)
}

func TestUnit_AllTypes(t *testing.T) {
	inner := &TypeDecl{Name: "Inner"}
	outer := &TypeDecl{Name: "Outer", Members: []Member{&FieldDecl{}, inner}}
	inner.Parent = outer
	outer.Namespace = "App"
	unit := &Unit{Types: []*TypeDecl{outer, {Name: "Other"}}}

	var names []string
	for _, typeDecl := range unit.AllTypes() {
		names = append(names, typeDecl.QualifiedName())
	}
	assert.Equal(t, []string{"App.Outer", "App.Outer.Inner", "Other"}, names)
}
