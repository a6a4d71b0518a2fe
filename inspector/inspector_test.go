package inspector_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/readonly/inspector"
	"github.com/viant/readonly/inspector/csharp"
)

func TestFactory_GetInspector(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		wantErr  bool
	}{
		{name: "C# file", filename: "Cart.cs"},
		{name: "upper case extension", filename: "src/Cart.CS"},
		{name: "project file", filename: "Shop.csproj", wantErr: true},
		{name: "Go file", filename: "main.go", wantErr: true},
	}

	factory := inspector.NewFactory(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual, err := factory.GetInspector(tt.filename)
			if tt.wantErr {
				assert.ErrorIs(t, err, csharp.ErrUnsupportedFile)
				assert.False(t, factory.IsSupported(tt.filename))
				return
			}
			require.NoError(t, err)
			assert.IsType(t, &csharp.Inspector{}, actual)
			assert.True(t, factory.IsSupported(tt.filename))
		})
	}
}

func TestFactory_InspectSource(t *testing.T) {
	factory := inspector.NewFactory(nil)
	unit, err := factory.InspectSource(context.Background(), "A.cs", []byte("class A { private object a; }"))
	require.NoError(t, err)
	require.Len(t, unit.Types, 1)
	assert.Equal(t, "A", unit.Types[0].Name)

	_, err = factory.InspectSource(context.Background(), "A.vb", []byte("Class A\nEnd Class"))
	assert.ErrorIs(t, err, csharp.ErrUnsupportedFile)
}
