package csharp_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/afs"
	"github.com/viant/readonly/inspector/csharp"
	"github.com/viant/readonly/syntax"
)

const source = `namespace App
{
    public class Registry
    {
        // ReSharper disable once FieldCanBeMadeReadOnly.Local
        private List<int> items = new List<int>();
        private int a, b;
        public const int Max = 10;

        public Registry(List<int> items)
        {
            this.items = items;
        }

        public void Add(int x)
        {
            if (x > Max)
            {
                return;
            }
            items.Add(x);
        }

        class Node
        {
            private object value;
        }
    }
}
`

func TestInspector_InspectSource(t *testing.T) {
	inspector := csharp.NewInspector(nil)
	unit, err := inspector.InspectSource(context.Background(), "Registry.cs", []byte(source))
	require.NoError(t, err)
	require.NotNil(t, unit)
	assert.False(t, unit.Incomplete)

	require.Len(t, unit.Types, 1)
	registry := unit.Types[0]
	assert.Equal(t, "Registry", registry.Name)
	assert.Equal(t, "App.Registry", registry.QualifiedName())
	assert.Equal(t, syntax.ClassKind, registry.Kind)
	assert.True(t, registry.Modifiers.Has(syntax.Public))

	fields := registry.Fields()
	require.Len(t, fields, 3)
	assert.Equal(t, "items", fields[0].Variables[0].Name)
	assert.True(t, fields[0].Modifiers.Has(syntax.Private))
	assert.Equal(t, "List<int>", fields[0].Type.Text)
	assert.NotNil(t, fields[0].Variables[0].Initializer)
	assert.Equal(t, 6, fields[0].Variables[0].NameLoc.Line)
	assert.Len(t, fields[1].Variables, 2)
	assert.True(t, fields[2].Modifiers.Has(syntax.Const))
	assert.True(t, fields[2].Modifiers.IsExposed())

	var ctor *syntax.ConstructorDecl
	var method *syntax.MethodDecl
	for _, member := range registry.Members {
		switch actual := member.(type) {
		case *syntax.ConstructorDecl:
			ctor = actual
		case *syntax.MethodDecl:
			method = actual
		}
	}
	require.NotNil(t, ctor)
	assert.Equal(t, []string{"items"}, syntax.ParamNames(ctor.Params))
	require.NotNil(t, method)
	assert.Equal(t, "Add", method.Name)
	assert.Equal(t, []string{"x"}, syntax.ParamNames(method.Params))
	require.NotNil(t, method.Body)
	require.Len(t, method.Body.Stmts, 2)
	_, isIf := method.Body.Stmts[0].(*syntax.IfStmt)
	assert.True(t, isIf)

	nested := registry.NestedTypes()
	require.Len(t, nested, 1)
	assert.Equal(t, "App.Registry.Node", nested[0].QualifiedName())

	require.NotEmpty(t, unit.Comments)
	assert.True(t, strings.Contains(unit.Comments[0].Text, "disable once"))
	assert.Equal(t, 5, unit.Comments[0].Location.Line)
}

func TestInspector_InspectSource_Assignments(t *testing.T) {
	src := `class C
{
    private List<int> x;
    void M(List<int> y)
    {
        x = y;
        x ??= new List<int>();
        Update(out x);
    }
}
`
	unit, err := csharp.NewInspector(nil).InspectSource(context.Background(), "C.cs", []byte(src))
	require.NoError(t, err)
	require.Len(t, unit.Types, 1)

	var ops []string
	var outArgs int
	syntax.Inspect(unit.Types[0], func(n syntax.Node) bool {
		switch actual := n.(type) {
		case *syntax.Assign:
			ops = append(ops, actual.Op)
		case *syntax.Argument:
			if actual.Modifier == "out" {
				outArgs++
			}
		}
		return true
	})
	assert.Equal(t, []string{"=", "??="}, ops)
	assert.Equal(t, 1, outArgs)
}

func TestInspector_FormatField(t *testing.T) {
	src := "class C\n{\n    private List<int> x = new List<int>();\n}\n"
	unit, err := csharp.NewInspector(nil).InspectSource(context.Background(), "C.cs", []byte(src))
	require.NoError(t, err)
	require.Len(t, unit.Types, 1)
	fields := unit.Types[0].Fields()
	require.Len(t, fields, 1)

	clone := syntax.CloneField(fields[0])
	clone.Modifiers = clone.Modifiers.With(syntax.Readonly)
	assert.Equal(t, "private readonly List<int> x = new List<int>();", syntax.FormatField(clone, unit))
	assert.Equal(t, "private List<int> x = new List<int>();", unit.Text(fields[0].Span))
}

func TestInspector_InspectFile(t *testing.T) {
	ctx := context.Background()
	fs := afs.New()
	URL := "mem://localhost/inspector/C.cs"
	require.NoError(t, fs.Upload(ctx, URL, 0644, strings.NewReader("class C { private object o; }")))

	inspector := csharp.NewInspector(fs)
	unit, err := inspector.InspectFile(ctx, URL)
	require.NoError(t, err)
	require.Len(t, unit.Types, 1)
	assert.Equal(t, URL, unit.Path)

	_, err = inspector.InspectFile(ctx, "mem://localhost/inspector/readme.md")
	assert.ErrorIs(t, err, csharp.ErrUnsupportedFile)
}

func TestIsSource(t *testing.T) {
	assert.True(t, csharp.IsSource("src/App.cs"))
	assert.True(t, csharp.IsSource("App.CS"))
	assert.False(t, csharp.IsSource("App.csproj"))
}
