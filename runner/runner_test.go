package runner_test

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/afs"
	"github.com/viant/readonly/config"
	"github.com/viant/readonly/issue"
	"github.com/viant/readonly/report"
	"github.com/viant/readonly/runner"
	"golang.org/x/tools/txtar"
)

func TestRunner_Run(t *testing.T) {
	archives, err := filepath.Glob(filepath.Join("testdata", "*.txtar"))
	require.NoError(t, err)
	require.NotEmpty(t, archives)

	for _, archivePath := range archives {
		name := strings.TrimSuffix(filepath.Base(archivePath), ".txtar")
		t.Run(name, func(t *testing.T) {
			archive, err := txtar.ParseFile(archivePath)
			require.NoError(t, err)
			files := map[string][]byte{}
			for _, f := range archive.Files {
				files[f.Name] = f.Data
			}
			require.Contains(t, files, "input.cs")

			ctx := context.Background()
			fs := afs.New()
			root := "mem://localhost/runner/" + name
			URL := root + "/input.cs"
			require.NoError(t, fs.Upload(ctx, URL, 0644, bytes.NewReader(files["input.cs"])))

			cfg := config.Default()
			fixed, hasFix := files["fixed.cs"]
			cfg.Fix = hasFix
			result, err := runner.New(cfg, runner.WithFS(fs)).Run(ctx, root)
			require.NoError(t, err)
			assert.Equal(t, []string{"input.cs"}, result.Files)
			assert.Equal(t, wantLines(files["want"]), lines(result.Issues))
			for _, item := range result.Issues {
				assert.NotEmpty(t, item.ID)
			}
			if !hasFix {
				return
			}

			assert.Equal(t, []string{"input.cs"}, result.Fixed)
			actual, err := fs.DownloadWithURL(ctx, URL)
			require.NoError(t, err)
			assert.Equal(t, string(fixed), string(actual))

			again, err := runner.New(cfg, runner.WithFS(fs)).Run(ctx, root)
			require.NoError(t, err)
			assert.Empty(t, again.Issues)
			assert.Empty(t, again.Fixed)
		})
	}
}

func TestRunner_Config(t *testing.T) {
	ctx := context.Background()
	fs := afs.New()
	sources := map[string]string{
		"mem://localhost/runner_config/src/A.cs":          "class A { private object a = new object(); }",
		"mem://localhost/runner_config/src/B.Designer.cs": "class B { private object b = new object(); }",
		"mem://localhost/runner_config/obj/C.cs":          "class C { private object c = new object(); }",
		"mem://localhost/runner_config/readme.md":         "docs",
	}
	for URL, content := range sources {
		require.NoError(t, fs.Upload(ctx, URL, 0644, strings.NewReader(content)))
	}

	var testCases = []struct {
		description string
		configure   func(cfg *config.Config)
		expectFiles []string
	}{
		{
			description: "defaults skip generated and build output",
			expectFiles: []string{"src/A.cs"},
		},
		{
			description: "generated files included",
			configure:   func(cfg *config.Config) { cfg.SkipGenerated = false },
			expectFiles: []string{"src/A.cs", "src/B.Designer.cs"},
		},
		{
			description: "no exclusions",
			configure: func(cfg *config.Config) {
				cfg.Exclude = nil
			},
			expectFiles: []string{"obj/C.cs", "src/A.cs"},
		},
		{
			description: "disabled rule",
			configure:   func(cfg *config.Config) { cfg.Enabled = false },
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			cfg := config.Default()
			if testCase.configure != nil {
				testCase.configure(cfg)
			}
			result, err := runner.New(cfg, runner.WithFS(fs)).Run(ctx, "mem://localhost/runner_config")
			require.NoError(t, err)
			assert.Equal(t, testCase.expectFiles, result.Files)
			assert.Len(t, result.Issues, len(testCase.expectFiles))
		})
	}
}

func TestRunner_AnalyzeSource_Cached(t *testing.T) {
	ctx := context.Background()
	r := runner.New(config.Default(), runner.WithFS(afs.New()))
	src := []byte("class A\n{\n    private object a = new object();\n}\n")
	first, err := r.AnalyzeSource(ctx, "A.cs", src)
	require.NoError(t, err)
	require.Len(t, first, 1)
	second, err := r.AnalyzeSource(ctx, "A.cs", src)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	expectID, err := issue.Fingerprint(first[0])
	require.NoError(t, err)
	assert.Equal(t, expectID, first[0].ID)
	assert.Equal(t, "A.a", first[0].Symbol)
}

func TestRunner_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	fs := afs.New()
	root := "mem://localhost/runner_cancelled"
	require.NoError(t, fs.Upload(context.Background(), root+"/A.cs", 0644, strings.NewReader("class A { private object a; }")))
	_, err := runner.New(config.Default(), runner.WithFS(fs)).Run(ctx, root)
	assert.ErrorIs(t, err, context.Canceled)
}

func lines(issues []issue.Issue) []string {
	result := []string{}
	for _, item := range issues {
		item.ID = ""
		result = append(result, report.Line(item))
	}
	return result
}

func wantLines(data []byte) []string {
	result := []string{}
	for _, line := range strings.Split(string(data), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			result = append(result, line)
		}
	}
	return result
}
