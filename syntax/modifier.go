package syntax

import "strings"

// Modifiers is a bitmask of declaration modifiers
type Modifiers uint32

const (
	Public Modifiers = 1 << iota
	Protected
	Internal
	Private
	File
	NewModifier
	Static
	Extern
	Abstract
	Virtual
	Override
	Sealed
	Unsafe
	Const
	Readonly
	Volatile
	Required
	Partial
	Async
	Ref
	Fixed
)

// modifierOrder lists keywords in the order they are rendered
var modifierOrder = []struct {
	flag    Modifiers
	keyword string
}{
	{Public, "public"},
	{Protected, "protected"},
	{Internal, "internal"},
	{Private, "private"},
	{File, "file"},
	{NewModifier, "new"},
	{Static, "static"},
	{Extern, "extern"},
	{Abstract, "abstract"},
	{Virtual, "virtual"},
	{Override, "override"},
	{Sealed, "sealed"},
	{Unsafe, "unsafe"},
	{Const, "const"},
	{Readonly, "readonly"},
	{Volatile, "volatile"},
	{Required, "required"},
	{Partial, "partial"},
	{Async, "async"},
	{Ref, "ref"},
	{Fixed, "fixed"},
}

// Accessibility groups the modifiers that expose a member outside of its declaring type
const Accessibility = Public | Protected | Internal

// ParseModifier returns the flag for a modifier keyword
func ParseModifier(keyword string) (Modifiers, bool) {
	keyword = strings.TrimSpace(keyword)
	for _, m := range modifierOrder {
		if m.keyword == keyword {
			return m.flag, true
		}
	}
	return 0, false
}

// Has reports whether all flags in m are set
func (m Modifiers) Has(flag Modifiers) bool {
	return flag != 0 && m&flag == flag
}

// Any reports whether any flag in m is set
func (m Modifiers) Any(flags Modifiers) bool {
	return m&flags != 0
}

// With returns modifiers with flag added
func (m Modifiers) With(flag Modifiers) Modifiers {
	return m | flag
}

// Without returns modifiers with flag removed
func (m Modifiers) Without(flag Modifiers) Modifiers {
	return m &^ flag
}

// IsExposed reports whether a member with these modifiers is visible outside its type.
// Members without explicit accessibility are private in classes and structs.
func (m Modifiers) IsExposed() bool {
	return m.Any(Accessibility)
}

// Keywords returns the modifier keywords in rendering order
func (m Modifiers) Keywords() []string {
	var result []string
	for _, item := range modifierOrder {
		if m&item.flag != 0 {
			result = append(result, item.keyword)
		}
	}
	return result
}

// String returns space separated keywords
func (m Modifiers) String() string {
	return strings.Join(m.Keywords(), " ")
}
