package syntax

import "fmt"

// Location identifies a position in a source file
type Location struct {
	File   string `yaml:"file,omitempty"`
	Line   int    `yaml:"line"`   // 1-based line
	Column int    `yaml:"column"` // 1-based byte column
	Offset int    `yaml:"offset"` // 0-based byte offset
}

// IsValid reports whether the location points into a source
func (l Location) IsValid() bool {
	return l.Line > 0
}

// String returns file:line:column
func (l Location) String() string {
	if l.File == "" {
		return fmt.Sprintf("%d:%d", l.Line, l.Column)
	}
	return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
}

// Span is a half-open byte range [Start, End) within a source
type Span struct {
	Start int
	End   int
}

// Bounds returns the span itself, it lets node types embed Span to satisfy Node
func (s Span) Bounds() Span {
	return s
}

// Len returns span length in bytes
func (s Span) Len() int {
	return s.End - s.Start
}

// Contains reports whether offset falls within the span
func (s Span) Contains(offset int) bool {
	return offset >= s.Start && offset < s.End
}

// Overlaps reports whether two spans share at least one byte
func (s Span) Overlaps(o Span) bool {
	return s.Start < o.End && o.Start < s.End
}
