package analyzer

import "github.com/viant/readonly/syntax"

// FieldCandidate represents a field that may be declared readonly
type FieldCandidate struct {
	Owner *syntax.TypeDecl
	Field *syntax.FieldDecl
	Var   *syntax.VariableDecl
}

// Name returns field name
func (c *FieldCandidate) Name() string {
	return c.Var.Name
}

// Symbol returns qualified field name
func (c *FieldCandidate) Symbol() string {
	return c.Owner.QualifiedName() + "." + c.Var.Name
}

// session holds analysis state of one type declaration traversal
type session struct {
	typ        *syntax.TypeDecl
	candidates []*FieldCandidate
	scope      scope
}

func (s *session) names() []string {
	result := make([]string, 0, len(s.candidates))
	for _, c := range s.candidates {
		result = append(result, c.Name())
	}
	return result
}

func (s *session) reset() {
	s.candidates = nil
	s.scope.reset()
}
