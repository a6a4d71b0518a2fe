package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/afs"
)

func TestRun(t *testing.T) {
	ctx := context.Background()
	fs := afs.New()
	require.NoError(t, fs.Upload(ctx, "mem://localhost/cli/issues/A.cs", 0644,
		strings.NewReader("class A\n{\n    private object a = new object();\n}\n")))
	require.NoError(t, fs.Upload(ctx, "mem://localhost/cli/clean/B.cs", 0644,
		strings.NewReader("class B\n{\n    private readonly object b = new object();\n}\n")))
	require.NoError(t, fs.Upload(ctx, "mem://localhost/cli/config.yaml", 0644,
		strings.NewReader("severity: warning\nformat: yaml\n")))

	var testCases = []struct {
		description  string
		args         []string
		expectCode   int
		expectOutput string
	}{
		{
			description:  "issues found",
			args:         []string{"mem://localhost/cli/issues"},
			expectCode:   exitIssues,
			expectOutput: "A.cs:3:20: suggestion: Convert to readonly [FieldCanBeMadeReadOnly.Local]",
		},
		{
			description: "clean sources",
			args:        []string{"mem://localhost/cli/clean"},
			expectCode:  exitOK,
		},
		{
			description:  "yaml config",
			args:         []string{"-config", "mem://localhost/cli/config.yaml", "mem://localhost/cli/issues"},
			expectCode:   exitIssues,
			expectOutput: "severity: warning",
		},
		{
			description: "invalid format",
			args:        []string{"-format", "xml", "mem://localhost/cli/issues"},
			expectCode:  exitError,
		},
		{
			description: "unknown flag",
			args:        []string{"-unknown"},
			expectCode:  exitError,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
			code := run(ctx, fs, testCase.args, stdout, stderr)
			assert.Equal(t, testCase.expectCode, code, stderr.String())
			if testCase.expectOutput != "" {
				assert.Contains(t, stdout.String(), testCase.expectOutput)
			}
		})
	}
}

func TestLocation(t *testing.T) {
	assert.Equal(t, "mem://localhost/a", location("mem://localhost/a"))
	assert.True(t, strings.HasPrefix(location("src"), "/"))
}
