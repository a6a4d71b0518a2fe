// Package inspector selects a front end converting source files into syntax units.
package inspector

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/readonly/inspector/csharp"
	"github.com/viant/readonly/syntax"
)

// Inspector provides an interface for inspecting source code
type Inspector interface {
	// InspectSource parses source code from a byte slice and builds a syntax unit
	InspectSource(ctx context.Context, filename string, src []byte) (*syntax.Unit, error)

	// InspectFile reads and parses a source file
	InspectFile(ctx context.Context, URL string) (*syntax.Unit, error)
}

// Factory creates appropriate inspectors based on file extension
type Factory struct {
	fs     afs.Service
	csharp *csharp.Inspector
}

// NewFactory creates a new inspector factory reading files with fs
func NewFactory(fs afs.Service) *Factory {
	if fs == nil {
		fs = afs.New()
	}
	return &Factory{fs: fs, csharp: csharp.NewInspector(fs)}
}

// GetInspector returns an appropriate inspector based on file extension
func (f *Factory) GetInspector(filename string) (Inspector, error) {
	switch ext := strings.ToLower(path.Ext(filename)); ext {
	case csharp.Extension:
		return f.csharp, nil
	default:
		return nil, fmt.Errorf("%w: %s", csharp.ErrUnsupportedFile, filename)
	}
}

// IsSupported reports whether some inspector handles filename
func (f *Factory) IsSupported(filename string) bool {
	_, err := f.GetInspector(filename)
	return err == nil
}

// InspectSource is a convenience method that gets the appropriate inspector and parses src
func (f *Factory) InspectSource(ctx context.Context, filename string, src []byte) (*syntax.Unit, error) {
	inspector, err := f.GetInspector(filename)
	if err != nil {
		return nil, err
	}
	return inspector.InspectSource(ctx, filename, src)
}

// InspectFile is a convenience method that gets the appropriate inspector and inspects the file
func (f *Factory) InspectFile(ctx context.Context, URL string) (*syntax.Unit, error) {
	inspector, err := f.GetInspector(URL)
	if err != nil {
		return nil, err
	}
	return inspector.InspectFile(ctx, URL)
}
