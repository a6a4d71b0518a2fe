package config_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/afs"
	"github.com/viant/readonly/config"
	"github.com/viant/readonly/issue"
)

func TestLoad(t *testing.T) {
	ctx := context.Background()
	fs := afs.New()
	testCases := []struct {
		description string
		URL         string
		content     string
		expect      func(t *testing.T, cfg *config.Config)
		expectErr   error
	}{
		{
			description: "overrides defaults",
			URL:         "mem://localhost/config/readonly.yaml",
			content:     "severity: warning\nformat: yaml\nexclude:\n  - Migrations/*\nfix: true\n",
			expect: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, issue.Warning, cfg.IssueSeverity())
				assert.Equal(t, config.FormatYAML, cfg.Format)
				assert.Equal(t, []string{"Migrations/*"}, cfg.Exclude)
				assert.True(t, cfg.Fix)
				assert.True(t, cfg.Enabled)
				assert.Equal(t, "FieldCanBeMadeReadOnly.Local", cfg.SuppressionKeyword)
			},
		},
		{
			description: "invalid severity",
			URL:         "mem://localhost/config/bad.yaml",
			content:     "severity: fatal\n",
			expectErr:   config.ErrInvalidSeverity,
		},
		{
			description: "invalid format",
			URL:         "mem://localhost/config/format.yaml",
			content:     "format: json\n",
			expectErr:   config.ErrInvalidFormat,
		},
	}
	for _, testCase := range testCases {
		require.NoError(t, fs.Upload(ctx, testCase.URL, 0644, stringReader(testCase.content)), testCase.description)
		cfg, err := config.Load(ctx, fs, testCase.URL)
		if testCase.expectErr != nil {
			assert.ErrorIs(t, err, testCase.expectErr, testCase.description)
			continue
		}
		require.NoError(t, err, testCase.description)
		testCase.expect(t, cfg)
	}

	_, err := config.Load(ctx, fs, "mem://localhost/config/missing.yaml")
	assert.Error(t, err)
}

func TestConfig_Matches(t *testing.T) {
	cfg := config.Default()
	cfg.Exclude = append(cfg.Exclude, "Migrations/*", "*.Tests.cs")
	testCases := []struct {
		path   string
		expect bool
	}{
		{path: "Service.cs", expect: true},
		{path: "src/App/Service.cs", expect: true},
		{path: "src/App/obj/Debug/Service.cs"},
		{path: "bin/Service.cs"},
		{path: "Data/Migrations/Initial.cs"},
		{path: "Service.Tests.cs"},
		{path: "readme.md"},
	}
	for _, testCase := range testCases {
		assert.Equal(t, testCase.expect, cfg.Matches(testCase.path), testCase.path)
	}
}

func TestDefault(t *testing.T) {
	cfg := config.Default()
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, issue.Suggestion, cfg.IssueSeverity())
}
