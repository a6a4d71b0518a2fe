package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCloneField(t *testing.T) {
	original := &FieldDecl{
		Modifiers: Private,
		Type:      NewTypeRef("List<int>"),
		Variables: []*VariableDecl{{Name: "items"}},
	}
	clone := CloneField(original)
	require.NotNil(t, clone)
	clone.Modifiers = clone.Modifiers.With(Readonly)
	clone.Variables[0].Name = "renamed"
	clone.Type.Text = "IList<int>"

	assert.Equal(t, Private, original.Modifiers)
	assert.Equal(t, "items", original.Variables[0].Name)
	assert.Equal(t, "List<int>", original.Type.Text)
	assert.Nil(t, CloneField(nil))
}

func TestFormatField(t *testing.T) {
	source := []byte("class C { [NonSerialized]\n    private List<int> items = new List<int>(); }")
	unit := &Unit{Source: source}
	initStart := len("class C { [NonSerialized]\n    private List<int> items = ")
	initEnd := initStart + len("new List<int>()")

	tests := []struct {
		name     string
		field    *FieldDecl
		expected string
	}{
		{
			name: "tail preserved",
			field: &FieldDecl{
				Leading:   "[NonSerialized]\n    ",
				Modifiers: Private | Readonly,
				Tail:      "List<int> items = new List<int>();",
			},
			expected: "[NonSerialized]\n    private readonly List<int> items = new List<int>();",
		},
		{
			name: "rendered from parts",
			field: &FieldDecl{
				Modifiers: Readonly,
				Type:      NewTypeRef("List<int>"),
				Variables: []*VariableDecl{{
					Name:        "items",
					Initializer: &New{Span: Span{Start: initStart, End: initEnd}, Type: NewTypeRef("List<int>")},
				}},
			},
			expected: "readonly List<int> items = new List<int>();",
		},
		{
			name: "no modifiers no initializer",
			field: &FieldDecl{
				Type:      NewTypeRef("object"),
				Variables: []*VariableDecl{{Name: "gate"}},
			},
			expected: "object gate;",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, FormatField(tc.field, unit))
		})
	}
}
