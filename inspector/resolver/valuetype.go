package resolver

import "github.com/viant/readonly/syntax"

// wellKnownTypes maps common framework type names to whether they are value types
var wellKnownTypes = map[string]bool{
	"Boolean":           true,
	"Byte":              true,
	"SByte":             true,
	"Char":              true,
	"Int16":             true,
	"UInt16":            true,
	"Int32":             true,
	"UInt32":            true,
	"Int64":             true,
	"UInt64":            true,
	"IntPtr":            true,
	"UIntPtr":           true,
	"Single":            true,
	"Double":            true,
	"Decimal":           true,
	"Guid":              true,
	"DateTime":          true,
	"DateTimeOffset":    true,
	"DateOnly":          true,
	"TimeOnly":          true,
	"TimeSpan":          true,
	"Nullable":          true,
	"ValueTuple":        true,
	"KeyValuePair":      true,
	"CancellationToken": true,
	"Span":              true,
	"ReadOnlySpan":      true,
	"Memory":            true,
	"ReadOnlyMemory":    true,
	"ValueTask":         true,
	"String":            false,
	"Object":            false,
	"Action":            false,
	"Func":              false,
	"EventHandler":      false,
	"Exception":         false,
	"List":              false,
	"Dictionary":        false,
	"HashSet":           false,
	"Queue":             false,
	"Stack":             false,
	"StringBuilder":     false,
	"Task":              false,
	"Type":              false,
	"Uri":               false,
	"Stream":            false,
	"Lazy":              false,
}

// IsValueType reports whether typ is a value type, known is false when it cannot be decided
func (r *Resolver) IsValueType(typ *syntax.TypeRef) (value bool, known bool) {
	if typ == nil {
		return false, false
	}
	switch typ.Kind {
	case syntax.PredefinedType:
		value, known = syntax.PredefinedTypes[typ.Name]
		return value, known
	case syntax.NullableType:
		// T? is Nullable<T> for value types and an annotation for reference types
		return r.IsValueType(typ.Elem)
	case syntax.TupleType, syntax.PointerType, syntax.FunctionPointerType:
		return true, true
	case syntax.ArrayType:
		return false, true
	case syntax.ImplicitType:
		return false, false
	}
	if decls := r.types[typ.Name]; len(decls) > 0 {
		value = decls[0].Kind.IsValueType()
		for _, decl := range decls[1:] {
			if decl.Kind.IsValueType() != value {
				return false, false
			}
		}
		return value, true
	}
	if value, ok := wellKnownTypes[typ.Name]; ok {
		return value, true
	}
	return false, false
}
