package issue_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/readonly/issue"
	"github.com/viant/readonly/syntax"
)

func TestApplyEdits(t *testing.T) {
	src := []byte("private int a; private int b;")
	testCases := []struct {
		description string
		edits       []issue.Edit
		expect      string
		expectErr   error
	}{
		{
			description: "no edits",
			expect:      "private int a; private int b;",
		},
		{
			description: "single edit",
			edits:       []issue.Edit{{Span: syntax.Span{Start: 0, End: 14}, NewText: "private readonly int a;"}},
			expect:      "private readonly int a; private int b;",
		},
		{
			description: "unordered edits",
			edits: []issue.Edit{
				{Span: syntax.Span{Start: 15, End: 29}, NewText: "private readonly int b;"},
				{Span: syntax.Span{Start: 0, End: 14}, NewText: "private readonly int a;"},
			},
			expect: "private readonly int a; private readonly int b;",
		},
		{
			description: "insertion",
			edits:       []issue.Edit{{Span: syntax.Span{Start: 8, End: 8}, NewText: "readonly "}},
			expect:      "private readonly int a; private int b;",
		},
		{
			description: "overlap",
			edits: []issue.Edit{
				{Span: syntax.Span{Start: 0, End: 14}, NewText: "x"},
				{Span: syntax.Span{Start: 10, End: 20}, NewText: "y"},
			},
			expectErr: issue.ErrOverlappingEdits,
		},
	}
	for _, testCase := range testCases {
		actual, err := issue.ApplyEdits(src, testCase.edits)
		if testCase.expectErr != nil {
			assert.ErrorIs(t, err, testCase.expectErr, testCase.description)
			continue
		}
		require.NoError(t, err, testCase.description)
		assert.Equal(t, testCase.expect, string(actual), testCase.description)
	}

	_, err := issue.ApplyEdits(src, []issue.Edit{{Span: syntax.Span{Start: 20, End: 100}}})
	assert.Error(t, err)
}

func TestFingerprint(t *testing.T) {
	base := issue.Issue{Rule: "FieldCanBeMadeReadOnly.Local", Symbol: "App.Service._name", Location: syntax.Location{File: "Service.cs", Line: 3}}
	first, err := issue.Fingerprint(base)
	require.NoError(t, err)
	assert.NotEmpty(t, first)

	moved := base
	moved.Location.Line = 10
	second, err := issue.Fingerprint(moved)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	other := base
	other.Symbol = "App.Service._id"
	third, err := issue.Fingerprint(other)
	require.NoError(t, err)
	assert.NotEqual(t, first, third)
}

func TestParseSeverity(t *testing.T) {
	severity, ok := issue.ParseSeverity(" Warning ")
	assert.True(t, ok)
	assert.Equal(t, issue.Warning, severity)
	_, ok = issue.ParseSeverity("fatal")
	assert.False(t, ok)
}

func TestCollector(t *testing.T) {
	collector := &issue.Collector{}
	var sink issue.Sink = collector
	sink.Report(issue.Issue{Rule: "a", Fix: &issue.Fix{Edits: []issue.Edit{{NewText: "x"}}}})
	sink.Report(issue.Issue{Rule: "b"})
	assert.Len(t, collector.Issues, 2)
	assert.Len(t, collector.Edits(), 1)

	var rules []string
	issue.SinkFunc(func(i issue.Issue) { rules = append(rules, i.Rule) }).Report(issue.Issue{Rule: "c"})
	assert.Equal(t, []string{"c"}, rules)
}
