package syntax

type (
	// Block represents a braced statement list
	Block struct {
		Span
		Stmts []Stmt
	}

	// ExprStmt represents an expression evaluated for its side effects
	ExprStmt struct {
		Span
		X Expr
	}

	// LocalVarDecl represents a local variable or local constant declaration
	LocalVarDecl struct {
		Span
		Const bool
		Using bool // using var x = ...
		Type  *TypeRef
		Vars  []*VariableDecl
	}

	// LocalFuncStmt represents a local function declaration
	LocalFuncStmt struct {
		Span
		Name    string
		NameLoc Location
		Params  []*Parameter
		Body    *Block
	}

	// IfStmt represents if/else
	IfStmt struct {
		Span
		Cond Expr
		Then Stmt
		Else Stmt // nil without else branch
	}

	// WhileStmt represents a while loop
	WhileStmt struct {
		Span
		Cond Expr
		Body Stmt
	}

	// DoStmt represents a do/while loop
	DoStmt struct {
		Span
		Body Stmt
		Cond Expr
	}

	// ForStmt represents a for loop
	ForStmt struct {
		Span
		Init   []Stmt
		Cond   Expr // nil means forever
		Update []Expr
		Body   Stmt
	}

	// ForeachStmt represents a foreach loop
	ForeachStmt struct {
		Span
		Vars       []*VariableDecl
		Target     Expr // foreach over an existing variable or deconstruction target
		Collection Expr
		Body       Stmt
	}

	// SwitchStmt represents a switch statement
	SwitchStmt struct {
		Span
		Value    Expr
		Sections []*SwitchSection
	}

	// SwitchSection groups labels with their statements
	SwitchSection struct {
		Span
		Labels     []Expr // case values and patterns
		Guards     []Expr // when clauses
		HasDefault bool
		Vars       []*VariableDecl // pattern variables
		Stmts      []Stmt
	}

	// ReturnStmt represents return with an optional result
	ReturnStmt struct {
		Span
		Result Expr
	}

	// ThrowStmt represents throw, X is nil for rethrow
	ThrowStmt struct {
		Span
		X Expr
	}

	// BreakStmt represents break
	BreakStmt struct {
		Span
	}

	// ContinueStmt represents continue
	ContinueStmt struct {
		Span
	}

	// GotoStmt represents goto label, goto case and goto default
	GotoStmt struct {
		Span
		Label string
		Case  Expr
	}

	// YieldStmt represents yield return or yield break
	YieldStmt struct {
		Span
		Break bool
		X     Expr
	}

	// TryStmt represents try/catch/finally
	TryStmt struct {
		Span
		Body    *Block
		Catches []*CatchClause
		Finally *Block
	}

	// CatchClause represents a single catch
	CatchClause struct {
		Span
		Type   *TypeRef
		Var    *VariableDecl
		Filter Expr
		Body   *Block
	}

	// UsingStmt represents using, lock and fixed statements guarding a body
	UsingStmt struct {
		Span
		Keyword string // using, lock, fixed
		Decl    *LocalVarDecl
		X       Expr
		Body    Stmt
	}

	// LabeledStmt represents a labelled statement
	LabeledStmt struct {
		Span
		Label string
		Stmt  Stmt
	}

	// EmptyStmt represents a lone semicolon
	EmptyStmt struct {
		Span
	}
)

func (*Block) stmt()         {}
func (*ExprStmt) stmt()      {}
func (*LocalVarDecl) stmt()  {}
func (*LocalFuncStmt) stmt() {}
func (*IfStmt) stmt()        {}
func (*WhileStmt) stmt()     {}
func (*DoStmt) stmt()        {}
func (*ForStmt) stmt()       {}
func (*ForeachStmt) stmt()   {}
func (*SwitchStmt) stmt()    {}
func (*ReturnStmt) stmt()    {}
func (*ThrowStmt) stmt()     {}
func (*BreakStmt) stmt()     {}
func (*ContinueStmt) stmt()  {}
func (*GotoStmt) stmt()      {}
func (*YieldStmt) stmt()     {}
func (*TryStmt) stmt()       {}
func (*UsingStmt) stmt()     {}
func (*LabeledStmt) stmt()   {}
func (*EmptyStmt) stmt()     {}
