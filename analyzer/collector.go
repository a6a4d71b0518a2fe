package analyzer

import "github.com/viant/readonly/syntax"

// collectCandidates returns fields of typ eligible for readonly, in declaration order
func collectCandidates(typ *syntax.TypeDecl, resolver Resolver, suppressor Suppressor) []*FieldCandidate {
	var result []*FieldCandidate
	for _, field := range typ.Fields() {
		if suppressor.IsSuppressed(field.Location) {
			continue
		}
		if field.Modifiers.Any(syntax.Const | syntax.Readonly) {
			continue
		}
		if field.Modifiers.IsExposed() {
			continue
		}
		if value, known := resolver.IsValueType(field.Type); known && value {
			continue
		}
		if len(field.Variables) != 1 {
			continue
		}
		result = append(result, &FieldCandidate{Owner: typ, Field: field, Var: field.Variables[0]})
	}
	return result
}
