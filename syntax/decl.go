package syntax

// TypeKind classifies a type declaration
type TypeKind int

const (
	ClassKind TypeKind = iota
	StructKind
	InterfaceKind
	RecordKind
	RecordStructKind
	EnumKind
	DelegateKind
)

// String returns the declaring keyword
func (k TypeKind) String() string {
	switch k {
	case ClassKind:
		return "class"
	case StructKind:
		return "struct"
	case InterfaceKind:
		return "interface"
	case RecordKind:
		return "record"
	case RecordStructKind:
		return "record struct"
	case EnumKind:
		return "enum"
	case DelegateKind:
		return "delegate"
	}
	return "unknown"
}

// IsValueType reports whether instances of the kind are values
func (k TypeKind) IsValueType() bool {
	return k == StructKind || k == RecordStructKind || k == EnumKind
}

type (
	// TypeDecl represents a class, struct, interface, record, enum or delegate declaration
	TypeDecl struct {
		Span
		Kind      TypeKind
		Name      string
		NameLoc   Location
		Namespace string
		Modifiers Modifiers
		BaseTypes []*TypeRef
		Params    []*Parameter // primary constructor parameters
		Members   []Member
		Parent    *TypeDecl
	}

	// FieldDecl represents a field declaration statement with one or more declarators
	FieldDecl struct {
		Span
		Location  Location // start of the declaration, including attributes
		Modifiers Modifiers
		Type      *TypeRef
		Variables []*VariableDecl
		// Leading holds the source text preceding the modifiers (attributes and line breaks)
		Leading string
		// Tail holds the source text from the type to the end of the declaration
		Tail string
	}

	// VariableDecl represents a single declarator: a name and its optional initializer
	VariableDecl struct {
		Span
		Name        string
		NameLoc     Location
		Initializer Expr
	}

	// MethodDecl represents a method declaration
	MethodDecl struct {
		Span
		Name       string
		NameLoc    Location
		Modifiers  Modifiers
		ReturnType *TypeRef
		Params     []*Parameter
		Body       *Block // nil for abstract, extern or interface methods
	}

	// ConstructorDecl represents an instance or static constructor
	ConstructorDecl struct {
		Span
		Name        string
		NameLoc     Location
		Modifiers   Modifiers
		Params      []*Parameter
		Initializer []*Argument // base(...) or this(...) arguments
		Body        *Block
	}

	// DestructorDecl represents a finalizer
	DestructorDecl struct {
		Span
		Name    string
		NameLoc Location
		Body    *Block
	}

	// OperatorDecl represents a user defined operator or conversion operator
	OperatorDecl struct {
		Span
		Operator   string // operator token, or "implicit"/"explicit" for conversions
		NameLoc    Location
		Modifiers  Modifiers
		Conversion bool
		Params     []*Parameter
		Body       *Block
	}

	// IndexerDecl represents an indexer
	IndexerDecl struct {
		Span
		NameLoc   Location
		Modifiers Modifiers
		Type      *TypeRef
		Params    []*Parameter
		Accessors []*Accessor
	}

	// PropertyDecl represents a property
	PropertyDecl struct {
		Span
		Name        string
		NameLoc     Location
		Modifiers   Modifiers
		Type        *TypeRef
		Accessors   []*Accessor
		Initializer Expr
	}

	// EventDecl represents an event, either with accessors or field like
	EventDecl struct {
		Span
		Names     []string
		NameLoc   Location
		Modifiers Modifiers
		Type      *TypeRef
		Accessors []*Accessor
		Values    []Expr // field like event initializers
	}

	// EnumMemberDecl represents an enum constant
	EnumMemberDecl struct {
		Span
		Name    string
		NameLoc Location
		Value   Expr
	}

	// Accessor represents get, set, init, add or remove accessor
	Accessor struct {
		Span
		Kind      string
		Modifiers Modifiers
		Body      *Block // nil for auto accessors
	}

	// Parameter represents a formal parameter
	Parameter struct {
		Span
		Name     string
		NameLoc  Location
		Modifier string // ref, out, in, params, this
		Type     *TypeRef
		Default  Expr
	}
)

func (*TypeDecl) member()        {}
func (*FieldDecl) member()       {}
func (*MethodDecl) member()      {}
func (*ConstructorDecl) member() {}
func (*DestructorDecl) member()  {}
func (*OperatorDecl) member()    {}
func (*IndexerDecl) member()     {}
func (*PropertyDecl) member()    {}
func (*EventDecl) member()       {}
func (*EnumMemberDecl) member()  {}

// NestedTypes returns types declared directly inside t
func (t *TypeDecl) NestedTypes() []*TypeDecl {
	var result []*TypeDecl
	for _, m := range t.Members {
		if nested, ok := m.(*TypeDecl); ok {
			result = append(result, nested)
		}
	}
	return result
}

// Fields returns field declarations of t in declaration order
func (t *TypeDecl) Fields() []*FieldDecl {
	var result []*FieldDecl
	for _, m := range t.Members {
		if field, ok := m.(*FieldDecl); ok {
			result = append(result, field)
		}
	}
	return result
}

// QualifiedName returns namespace and enclosing type qualified name
func (t *TypeDecl) QualifiedName() string {
	name := t.Name
	for p := t.Parent; p != nil; p = p.Parent {
		name = p.Name + "." + name
	}
	root := t
	for root.Parent != nil {
		root = root.Parent
	}
	if root.Namespace != "" {
		name = root.Namespace + "." + name
	}
	return name
}

// ParamNames returns names of the given parameters
func ParamNames(params []*Parameter) []string {
	result := make([]string, 0, len(params))
	for _, p := range params {
		if p.Name != "" {
			result = append(result, p.Name)
		}
	}
	return result
}
