package resolver

import "github.com/viant/readonly/syntax"

type entry struct {
	symbol syntax.Symbol
	typ    *syntax.TypeRef
}

// env represents a lexical scope of locals and parameters
type env struct {
	parent *env
	names  map[string]entry
}

func (e *env) child() *env {
	return &env{parent: e, names: map[string]entry{}}
}

func (e *env) declare(name string, symbol syntax.Symbol, typ *syntax.TypeRef) {
	if name == "" || name == "_" {
		return
	}
	e.names[name] = entry{symbol: symbol, typ: typ}
}

func (e *env) lookup(name string) (entry, bool) {
	for s := e; s != nil; s = s.parent {
		if en, ok := s.names[name]; ok {
			return en, true
		}
	}
	return entry{}, false
}

func (e *env) params(params []*syntax.Parameter) *env {
	ret := e.child()
	for _, p := range params {
		ret.declare(p.Name, syntax.Symbol{Kind: syntax.SymParameter, Name: p.Name, Decl: p}, p.Type)
	}
	return ret
}

func (e *env) locals(vars []*syntax.VariableDecl, decl syntax.Node, typ *syntax.TypeRef) {
	for _, v := range vars {
		if v == nil {
			continue
		}
		e.declare(v.Name, syntax.Symbol{Kind: syntax.SymLocal, Name: v.Name, Var: v, Decl: decl}, localType(typ, v.Initializer))
	}
}

// localType returns declared type, for var declarations it is taken from a new expression initializer
func localType(typ *syntax.TypeRef, init syntax.Expr) *syntax.TypeRef {
	if typ != nil && typ.Kind != syntax.ImplicitType {
		return typ
	}
	if created, ok := syntax.Unparen(init).(*syntax.New); ok && created.Type != nil {
		return created.Type
	}
	return typ
}
