// Package csharp converts C# source into syntax trees using the tree-sitter C# grammar.
//
// The conversion is tolerant: constructs it does not model become generic compound
// expressions or blocks, and regions the parser could not recover are skipped.
package csharp

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/csharp"
	"github.com/viant/afs"
	"github.com/viant/readonly/syntax"
)

// Extension is the C# source file extension
const Extension = ".cs"

// ErrUnsupportedFile is returned for files that are not C# sources
var ErrUnsupportedFile = errors.New("unsupported file")

// Inspector provides functionality to convert C# code into syntax trees
type Inspector struct {
	fs afs.Service
}

// NewInspector creates a new C# Inspector, fs is used by InspectFile
func NewInspector(fs afs.Service) *Inspector {
	if fs == nil {
		fs = afs.New()
	}
	return &Inspector{fs: fs}
}

// IsSource reports whether name has C# source extension
func IsSource(name string) bool {
	return strings.EqualFold(path.Ext(name), Extension)
}

// InspectSource parses C# source code and builds a syntax unit
func (i *Inspector) InspectSource(ctx context.Context, filename string, src []byte) (*syntax.Unit, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(csharp.GetLanguage())
	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("failed to parse file %s: %w", filename, err)
	}
	root := tree.RootNode()
	b := newBuilder(filename, src)
	b.compilationUnit(root)
	b.unit.Incomplete = root.HasError()
	b.comments(root)
	return b.unit, nil
}

// InspectFile downloads and parses a C# source file
func (i *Inspector) InspectFile(ctx context.Context, URL string) (*syntax.Unit, error) {
	if !IsSource(URL) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFile, URL)
	}
	src, err := i.fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", URL, err)
	}
	return i.InspectSource(ctx, URL, src)
}
