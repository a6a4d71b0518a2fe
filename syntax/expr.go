package syntax

// LiteralKind classifies literals
type LiteralKind int

const (
	NullLiteral LiteralKind = iota
	BoolLiteral
	NumberLiteral
	StringLiteral
	CharLiteral
)

type (
	// Ident represents a simple name
	Ident struct {
		Span
		Name string
		Loc  Location
	}

	// ThisExpr represents this
	ThisExpr struct {
		Span
	}

	// BaseExpr represents base
	BaseExpr struct {
		Span
	}

	// Literal represents a literal constant
	Literal struct {
		Span
		Kind  LiteralKind
		Value string
	}

	// MemberAccess represents X.Name, or X?.Name when Conditional is set
	MemberAccess struct {
		Span
		X           Expr
		Name        string
		NameLoc     Location
		Conditional bool
	}

	// ElementAccess represents X[Args], or X?[Args] when Conditional is set
	ElementAccess struct {
		Span
		X           Expr
		Args        []*Argument
		Conditional bool
	}

	// Call represents an invocation
	Call struct {
		Span
		Fun  Expr
		Args []*Argument
	}

	// Argument represents a call argument with an optional ref, out or in modifier
	Argument struct {
		Span
		Name     string
		Modifier string
		X        Expr
	}

	// Assign represents simple or compound assignment, Op holds the operator token
	Assign struct {
		Span
		Op    string
		Left  Expr
		Right Expr
	}

	// Unary represents a prefix or postfix operator application
	Unary struct {
		Span
		Op      string
		X       Expr
		Postfix bool
	}

	// Binary represents a binary operator application
	Binary struct {
		Span
		Op    string
		Left  Expr
		Right Expr
	}

	// Conditional represents cond ? then : else
	Conditional struct {
		Span
		Cond Expr
		Then Expr
		Else Expr
	}

	// Paren represents a parenthesized expression
	Paren struct {
		Span
		X Expr
	}

	// Tuple represents a tuple literal or a deconstruction target
	Tuple struct {
		Span
		Elems []Expr
	}

	// DeclExpr declares variables inline: out var x, var (a, b)
	DeclExpr struct {
		Span
		Type *TypeRef
		Vars []*VariableDecl
	}

	// Lambda represents lambda expressions and anonymous methods.
	// Expression bodies are normalised to a single statement block.
	Lambda struct {
		Span
		Params    []*Parameter
		Body      *Block
		Anonymous bool // delegate (...) { }
	}

	// New represents object, array and anonymous object creation
	New struct {
		Span
		Type *TypeRef
		Args []*Argument
		Init []Expr
	}

	// InitializerEntry represents Name = Value inside an object or anonymous object
	// initializer. It writes a member of the created object, never a member of this.
	InitializerEntry struct {
		Span
		Name  string
		Index []*Argument // [key] = value entries
		Value Expr
	}

	// IsPattern represents X is pattern, Vars holds pattern variables
	IsPattern struct {
		Span
		X       Expr
		Pattern string
		Vars    []*VariableDecl
		Parts   []Expr // expressions embedded in the pattern
	}

	// SwitchExpr represents a switch expression
	SwitchExpr struct {
		Span
		Value Expr
		Arms  []*SwitchArm
	}

	// SwitchArm represents one arm of a switch expression
	SwitchArm struct {
		Span
		Pattern string
		Vars    []*VariableDecl
		Guard   Expr
		Value   Expr
	}

	// ThrowExpr represents a throw expression
	ThrowExpr struct {
		Span
		X Expr
	}

	// Cast represents (T)X, X as T and similar type operations
	Cast struct {
		Span
		Op   string
		Type *TypeRef
		X    Expr
	}

	// Compound represents any other expression, its parts are evaluated in order
	Compound struct {
		Span
		Kind  string
		Parts []Expr
	}
)

func (*Ident) expr()            {}
func (*ThisExpr) expr()         {}
func (*BaseExpr) expr()         {}
func (*Literal) expr()          {}
func (*MemberAccess) expr()     {}
func (*ElementAccess) expr()    {}
func (*Call) expr()             {}
func (*Assign) expr()           {}
func (*Unary) expr()            {}
func (*Binary) expr()           {}
func (*Conditional) expr()      {}
func (*Paren) expr()            {}
func (*Tuple) expr()            {}
func (*DeclExpr) expr()         {}
func (*Lambda) expr()           {}
func (*New) expr()              {}
func (*InitializerEntry) expr() {}
func (*IsPattern) expr()        {}
func (*SwitchExpr) expr()       {}
func (*ThrowExpr) expr()        {}
func (*Cast) expr()             {}
func (*Compound) expr()         {}

// Unparen strips enclosing parentheses
func Unparen(e Expr) Expr {
	for {
		p, ok := e.(*Paren)
		if !ok {
			return e
		}
		e = p.X
	}
}

// IsIncDec reports whether op is ++ or --
func IsIncDec(op string) bool {
	return op == "++" || op == "--"
}

// BoolValue returns the constant value of a boolean literal
func BoolValue(e Expr) (value bool, ok bool) {
	lit, isLit := Unparen(e).(*Literal)
	if !isLit || lit.Kind != BoolLiteral {
		return false, false
	}
	return lit.Value == "true", true
}
