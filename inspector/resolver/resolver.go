// Package resolver provides a single unit, name based semantic resolver for C# syntax trees.
//
// The resolver binds every simple name and member access of a unit when it is created.
// It knows locals, parameters, the implicit accessor value parameter and members of types
// declared in the unit. Anything else, such as members inherited from base types or
// declared in other files, stays unresolved.
package resolver

import (
	"github.com/viant/readonly/syntax"
)

// Resolver represents a unit resolver
type Resolver struct {
	unit    *syntax.Unit
	types   map[string][]*syntax.TypeDecl
	symbols map[syntax.Expr]syntax.Symbol
}

// ResolveMember returns the symbol bound to ref, or syntax.Unresolved
func (r *Resolver) ResolveMember(ref syntax.Expr) syntax.Symbol {
	if symbol, ok := r.symbols[syntax.Unparen(ref)]; ok {
		return symbol
	}
	return syntax.Unresolved
}

// Lookup returns types declared in the unit with the given simple name
func (r *Resolver) Lookup(name string) []*syntax.TypeDecl {
	return r.types[name]
}

// New creates a resolver binding all references of unit
func New(unit *syntax.Unit) *Resolver {
	ret := &Resolver{
		unit:    unit,
		types:   map[string][]*syntax.TypeDecl{},
		symbols: map[syntax.Expr]syntax.Symbol{},
	}
	if unit == nil {
		return ret
	}
	for _, typ := range unit.AllTypes() {
		ret.types[typ.Name] = append(ret.types[typ.Name], typ)
	}
	b := &binder{Resolver: ret}
	for _, typ := range unit.Types {
		b.typeDecl(typ)
	}
	return ret
}
