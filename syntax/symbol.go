package syntax

// SymbolKind classifies what a name refers to
type SymbolKind int

const (
	SymUnresolved SymbolKind = iota
	SymLocal
	SymParameter
	SymField
	SymProperty
	SymMethod
	SymEvent
	SymType
	SymNamespace
)

// String returns the symbol kind name
func (k SymbolKind) String() string {
	switch k {
	case SymUnresolved:
		return "unresolved"
	case SymLocal:
		return "local"
	case SymParameter:
		return "parameter"
	case SymField:
		return "field"
	case SymProperty:
		return "property"
	case SymMethod:
		return "method"
	case SymEvent:
		return "event"
	case SymType:
		return "type"
	case SymNamespace:
		return "namespace"
	}
	return "unknown"
}

// Symbol is the result of resolving a reference
type Symbol struct {
	Kind  SymbolKind
	Name  string
	Owner *TypeDecl     // declaring type for members
	Var   *VariableDecl // declarator for fields and locals
	Field *FieldDecl    // declaration statement for fields
	Decl  Node          // any other declaration
}

// Unresolved is the zero symbol
var Unresolved = Symbol{}

// IsField reports whether the symbol denotes the given field declarator
func (s Symbol) IsField(v *VariableDecl) bool {
	return s.Kind == SymField && v != nil && s.Var == v
}
