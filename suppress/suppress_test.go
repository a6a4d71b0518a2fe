package suppress_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/readonly/suppress"
	"github.com/viant/readonly/syntax"
)

// unitWithComments creates a unit with every // comment of src registered
func unitWithComments(src string) *syntax.Unit {
	unit := &syntax.Unit{Source: []byte(src)}
	offset := 0
	for i, line := range strings.SplitAfter(src, "\n") {
		if idx := strings.Index(line, "//"); idx != -1 {
			text := strings.TrimRight(line[idx:], "\n")
			start := offset + idx
			unit.Comments = append(unit.Comments, &syntax.Comment{
				Span:     syntax.Span{Start: start, End: start + len(text)},
				Text:     text,
				Location: syntax.Location{Line: i + 1, Column: idx + 1, Offset: start},
				EndLine:  i + 1,
			})
		}
		offset += len(line)
	}
	return unit
}

func TestSuppressor_IsSuppressed(t *testing.T) {
	src := `class C
{
    // ReSharper disable once FieldCanBeMadeReadOnly.Local
    // explains the field below
    private List<int> a;
    private List<int> b;
    // ReSharper disable FieldCanBeMadeReadOnly.Local
    private List<int> c;
    private List<int> d;
    // ReSharper restore FieldCanBeMadeReadOnly.Local
    private List<int> e;
    // ReSharper disable once UnusedMember.Local
    private List<int> f;
    // ReSharper disable once RedundantDefault, FieldCanBeMadeReadOnly.Local
    private List<int> g;
    // ReSharper disable All
    private List<int> h;
}`
	s := suppress.New(unitWithComments(src), "FieldCanBeMadeReadOnly.Local")
	testCases := []struct {
		line   int
		expect bool
	}{
		{line: 5, expect: true},
		{line: 6},
		{line: 8, expect: true},
		{line: 9, expect: true},
		{line: 11},
		{line: 13},
		{line: 15, expect: true},
		{line: 17, expect: true},
	}
	for _, testCase := range testCases {
		assert.Equal(t, testCase.expect, s.IsSuppressed(syntax.Location{Line: testCase.line}), "line %d", testCase.line)
	}
}

func TestSuppressor_Empty(t *testing.T) {
	assert.False(t, suppress.New(nil, "X").IsSuppressed(syntax.Location{Line: 1}))
	assert.False(t, suppress.New(&syntax.Unit{}, "X").IsSuppressed(syntax.Location{Line: 1}))
}

func TestIsGenerated(t *testing.T) {
	testCases := []struct {
		name   string
		src    string
		expect bool
	}{
		{name: "Form1.Designer.cs", expect: true},
		{name: "src/Api.g.cs", expect: true},
		{name: "Model.cs", src: "// <auto-generated>\n// tool\n// </auto-generated>\nclass A {}", expect: true},
		{name: "Model.cs", src: "class A {}"},
	}
	for _, testCase := range testCases {
		assert.Equal(t, testCase.expect, suppress.IsGenerated(testCase.name, []byte(testCase.src)), testCase.name)
	}
}
