package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModifiers_String(t *testing.T) {
	tests := []struct {
		name      string
		modifiers Modifiers
		expected  string
	}{
		{name: "empty", modifiers: 0, expected: ""},
		{name: "private readonly", modifiers: Readonly | Private, expected: "private readonly"},
		{name: "static readonly keeps access first", modifiers: Static | Readonly | Internal, expected: "internal static readonly"},
		{name: "new modifier", modifiers: NewModifier | Private | Volatile, expected: "private new volatile"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.modifiers.String())
		})
	}
}

func TestParseModifier(t *testing.T) {
	flag, ok := ParseModifier("readonly")
	assert.True(t, ok)
	assert.Equal(t, Readonly, flag)

	flag, ok = ParseModifier(" protected ")
	assert.True(t, ok)
	assert.Equal(t, Protected, flag)

	_, ok = ParseModifier("sealed-ish")
	assert.False(t, ok)
}

func TestModifiers_IsExposed(t *testing.T) {
	assert.False(t, Modifiers(0).IsExposed())
	assert.False(t, (Private | Static).IsExposed())
	assert.True(t, (Protected | Internal).IsExposed())
	assert.True(t, Public.IsExposed())
}

func TestModifiers_HasWith(t *testing.T) {
	m := Private.With(Static)
	assert.True(t, m.Has(Private|Static))
	assert.False(t, m.Has(Readonly))
	assert.False(t, m.Has(0))
	assert.True(t, m.Without(Static).Has(Private))
	assert.False(t, m.Without(Static).Has(Static))
}
