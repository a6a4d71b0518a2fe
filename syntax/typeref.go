package syntax

import "strings"

// TypeRefKind classifies the shape of a type reference
type TypeRefKind int

const (
	NamedType TypeRefKind = iota
	PredefinedType
	ArrayType
	NullableType
	TupleType
	PointerType
	FunctionPointerType
	ImplicitType // var
)

// TypeRef represents a type as written in source
type TypeRef struct {
	Span
	Kind TypeRefKind
	Text string     // source text
	Name string     // simple name without qualifier and type arguments
	Args []*TypeRef // type arguments or tuple elements
	Elem *TypeRef   // element type for arrays, nullables and pointers
}

// NewTypeRef creates a type reference from its textual form. It is used by tests and by
// front ends that cannot provide a structured type node.
func NewTypeRef(text string) *TypeRef {
	text = strings.TrimSpace(text)
	ref := &TypeRef{Text: text}
	switch {
	case strings.HasSuffix(text, "]") && strings.Contains(text, "["):
		ref.Kind = ArrayType
		ref.Elem = NewTypeRef(text[:strings.LastIndex(text, "[")])
	case strings.HasSuffix(text, "?"):
		ref.Kind = NullableType
		ref.Elem = NewTypeRef(strings.TrimSuffix(text, "?"))
	case strings.HasSuffix(text, "*"):
		ref.Kind = PointerType
		ref.Elem = NewTypeRef(strings.TrimSuffix(text, "*"))
	case strings.HasPrefix(text, "(") && strings.HasSuffix(text, ")"):
		ref.Kind = TupleType
		for _, part := range splitTopLevel(text[1:len(text)-1], ',') {
			fields := strings.Fields(part)
			if len(fields) > 1 && !strings.ContainsAny(fields[len(fields)-1], "<>[]?") {
				part = strings.Join(fields[:len(fields)-1], " ")
			}
			ref.Args = append(ref.Args, NewTypeRef(part))
		}
	case text == "var":
		ref.Kind = ImplicitType
		ref.Name = text
	default:
		name := text
		if idx := strings.Index(name, "<"); idx != -1 && strings.HasSuffix(name, ">") {
			for _, arg := range splitTopLevel(name[idx+1:len(name)-1], ',') {
				ref.Args = append(ref.Args, NewTypeRef(arg))
			}
			name = name[:idx]
		}
		if idx := strings.LastIndex(name, "."); idx != -1 {
			name = name[idx+1:]
		}
		if idx := strings.LastIndex(name, "::"); idx != -1 {
			name = name[idx+2:]
		}
		ref.Name = strings.TrimSpace(name)
		if _, ok := PredefinedTypes[ref.Name]; ok && ref.Name == text {
			ref.Kind = PredefinedType
		}
	}
	return ref
}

// PredefinedTypes maps C# keyword types to whether they are value types
var PredefinedTypes = map[string]bool{
	"bool":    true,
	"byte":    true,
	"sbyte":   true,
	"char":    true,
	"short":   true,
	"ushort":  true,
	"int":     true,
	"uint":    true,
	"long":    true,
	"ulong":   true,
	"float":   true,
	"double":  true,
	"decimal": true,
	"nint":    true,
	"nuint":   true,
	"string":  false,
	"object":  false,
	"dynamic": false,
	"void":    false,
}

// splitTopLevel splits text on sep, ignoring separators nested in brackets
func splitTopLevel(text string, sep byte) []string {
	var parts []string
	depth, start := 0, 0
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '<', '(', '[':
			depth++
		case '>', ')', ']':
			depth--
		case sep:
			if depth == 0 {
				parts = append(parts, strings.TrimSpace(text[start:i]))
				start = i + 1
			}
		}
	}
	if rest := strings.TrimSpace(text[start:]); rest != "" {
		parts = append(parts, rest)
	}
	return parts
}
