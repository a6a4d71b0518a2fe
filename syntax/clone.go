package syntax

import "strings"

// CloneField returns a copy of a field declaration that can be modified without
// affecting the original. Declarators are copied, initializer expressions are shared
// since they are never modified.
func CloneField(field *FieldDecl) *FieldDecl {
	if field == nil {
		return nil
	}
	clone := *field
	if field.Type != nil {
		typeRef := *field.Type
		clone.Type = &typeRef
	}
	clone.Variables = make([]*VariableDecl, len(field.Variables))
	for i, v := range field.Variables {
		variable := *v
		clone.Variables[i] = &variable
	}
	return &clone
}

// FormatField renders a field declaration. Source text captured by the front end
// (Leading and Tail) is preserved, modifiers are rendered in canonical order.
func FormatField(field *FieldDecl, unit *Unit) string {
	builder := strings.Builder{}
	builder.WriteString(field.Leading)
	if mods := field.Modifiers.String(); mods != "" {
		builder.WriteString(mods)
		builder.WriteByte(' ')
	}
	if field.Tail != "" {
		builder.WriteString(field.Tail)
		return builder.String()
	}
	if field.Type != nil {
		builder.WriteString(field.Type.Text)
		builder.WriteByte(' ')
	}
	for i, v := range field.Variables {
		if i > 0 {
			builder.WriteString(", ")
		}
		builder.WriteString(v.Name)
		if v.Initializer != nil {
			if text := unit.Text(v.Initializer.Bounds()); text != "" {
				builder.WriteString(" = ")
				builder.WriteString(text)
			}
		}
	}
	builder.WriteByte(';')
	return builder.String()
}
