package repository_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/afs"
	"github.com/viant/readonly/inspector/repository"
)

func TestDetector_DetectProject(t *testing.T) {
	ctx := context.Background()
	fs := afs.New()
	files := map[string]string{
		"mem://localhost/detector/dotnet/Shop.sln":            "",
		"mem://localhost/detector/dotnet/src/Cart.cs":         "class Cart {}",
		"mem://localhost/detector/gomod/go.mod":               "module github.com/acme/fixtures\n\ngo 1.24\n",
		"mem://localhost/detector/gomod/testdata/A.cs":        "class A {}",
		"mem://localhost/detector/csproj/Lib/Lib.csproj":      "<Project></Project>",
		"mem://localhost/detector/csproj/Lib/Models/Order.cs": "class Order {}",
	}
	for URL, content := range files {
		require.NoError(t, fs.Upload(ctx, URL, 0644, strings.NewReader(content)))
	}

	var testCases = []struct {
		description    string
		URL            string
		expectKind     repository.Kind
		expectName     string
		expectRoot     string
		expectRelative string
	}{
		{
			description:    "solution root",
			URL:            "mem://localhost/detector/dotnet/src/Cart.cs",
			expectKind:     repository.DotNet,
			expectName:     "Shop",
			expectRoot:     "mem://localhost/detector/dotnet",
			expectRelative: "src/Cart.cs",
		},
		{
			description:    "go module root",
			URL:            "mem://localhost/detector/gomod/testdata/A.cs",
			expectKind:     repository.Go,
			expectName:     "github.com/acme/fixtures",
			expectRoot:     "mem://localhost/detector/gomod",
			expectRelative: "testdata/A.cs",
		},
		{
			description:    "project file in directory",
			URL:            "mem://localhost/detector/csproj/Lib/Models",
			expectKind:     repository.DotNet,
			expectName:     "Lib",
			expectRoot:     "mem://localhost/detector/csproj/Lib",
			expectRelative: "Models",
		},
	}

	detector := repository.New(fs)
	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			project, err := detector.DetectProject(ctx, testCase.URL)
			require.NoError(t, err)
			assert.Equal(t, testCase.expectKind, project.Kind)
			assert.Equal(t, testCase.expectName, project.Name)
			assert.Equal(t, testCase.expectRoot, project.RootURL)
			assert.Equal(t, testCase.expectRelative, project.RelativePath)
		})
	}
}
