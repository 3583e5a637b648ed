package adapter

import (
	"context"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "ifbound.dev/pkg/ifbound/internal/model"
	"ifbound.dev/pkg/ifbound/internal/syntax"
)

const goSample = `package p

func f(x int) int {
	if x > 0 {
		return 1
	} else if x < 0 {
		return -1
	} else {
		return 0
	}
}

func g(x int) {
	if x == 1 {
		if x == 2 {
		}
	}
}
`

const cSample = `int f(int x) {
    if (x > 0) {
        return 1;
    } else if (x < 0) {
        return -1;
    } else {
        return 0;
    }
}

void g(int x) {
    if (x)
        x++;
    else
        x--;
}
`

type span struct {
	kind       syntax.BranchKind
	start, end int
}

func spans(unit syntax.Unit, root syntax.Conditional) []span {
	var out []span

	for b := range syntax.Branches(root) {
		out = append(out, span{
			kind:  b.Kind,
			start: unit.Sources.Line(b.Body.Begin()),
			end:   unit.Sources.Line(b.Body.End()),
		})
	}

	return out
}

func TestFrontendRegistry(t *testing.T) {
	registry := NewDefaultFrontendRegistry()

	tests := []struct {
		path string
		want m.Language
	}{
		{"main.go", m.LanguageGo},
		{"src/lib.c", m.LanguageC},
		{"include/lib.H", m.LanguageC},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			f, err := registry.For(m.Path(tt.path))
			require.NoError(t, err)
			assert.Equal(t, tt.want, f.Language())
			assert.True(t, registry.Supports(m.Path(tt.path)))
		})
	}

	t.Run("unsupported", func(t *testing.T) {
		_, err := registry.For("script.py")
		require.ErrorIs(t, err, ErrUnsupportedLanguage)
		assert.False(t, registry.Supports("script.py"))
	})

	assert.Equal(t, []string{".c", ".go", ".h"}, registry.Extensions())
}

func TestLocalGoFileAdapter_Parse(t *testing.T) {
	adapter := NewLocalGoFileAdapter()

	unit, err := adapter.Parse(context.Background(), "p.go", []byte(goSample))
	require.NoError(t, err)
	assert.Equal(t, "p.go", unit.MainFile)

	roots := slices.Collect(unit.Conditionals)
	require.Len(t, roots, 3, "else-if links are part of their chain")

	assert.Equal(t, []span{
		{syntax.Then, 4, 6},
		{syntax.ElseIfThen, 6, 8},
		{syntax.ElseBody, 8, 10},
	}, spans(unit, roots[0]))
	assert.Equal(t, []span{{syntax.Then, 14, 17}}, spans(unit, roots[1]))
	assert.Equal(t, []span{{syntax.Then, 15, 16}}, spans(unit, roots[2]))

	assert.Equal(t, 4, unit.Sources.Line(roots[0].Begin()))
	assert.Equal(t, 10, unit.Sources.Line(roots[0].End()))

	fileID := unit.Sources.FileID(roots[0].Begin())
	assert.Equal(t, "p.go", unit.Sources.FileName(fileID))
	assert.Equal(t, []byte(goSample), unit.Sources.Buffer(fileID))
}

func TestLocalGoFileAdapter_ParseErrors(t *testing.T) {
	adapter := NewLocalGoFileAdapter()

	t.Run("syntax error", func(t *testing.T) {
		_, err := adapter.Parse(context.Background(), "bad.go", []byte("package p\nfunc {"))
		assert.Error(t, err)
	})

	t.Run("cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := adapter.Parse(ctx, "p.go", []byte(goSample))
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestLocalGoFileAdapter_StopEarly(t *testing.T) {
	unit, err := NewLocalGoFileAdapter().Parse(context.Background(), "p.go", []byte(goSample))
	require.NoError(t, err)

	count := 0
	for range unit.Conditionals {
		count++
		break
	}

	assert.Equal(t, 1, count)
}

func TestTreeSitterCAdapter_Parse(t *testing.T) {
	adapter := NewTreeSitterCAdapter()

	unit, err := adapter.Parse(context.Background(), "f.c", []byte(cSample))
	require.NoError(t, err)
	assert.Equal(t, "f.c", unit.MainFile)

	roots := slices.Collect(unit.Conditionals)
	require.Len(t, roots, 2)

	assert.Equal(t, []span{
		{syntax.Then, 2, 4},
		{syntax.ElseIfThen, 4, 6},
		{syntax.ElseBody, 6, 8},
	}, spans(unit, roots[0]))
	assert.Equal(t, []span{
		{syntax.Then, 13, 13},
		{syntax.ElseBody, 15, 15},
	}, spans(unit, roots[1]))

	fileID := unit.Sources.FileID(roots[0].Begin())
	assert.Equal(t, "f.c", unit.Sources.FileName(fileID))
	assert.Equal(t, 4, unit.Sources.FileOffset(roots[0].Begin())-len("int f(int x) {\n"))
}

func TestTreeSitterCAdapter_NestedInBody(t *testing.T) {
	src := "void f(int a, int b) {\n  if (a) {\n    if (b) {\n      a = b;\n    }\n  }\n}\n"

	unit, err := NewTreeSitterCAdapter().Parse(context.Background(), "n.c", []byte(src))
	require.NoError(t, err)

	roots := slices.Collect(unit.Conditionals)
	require.Len(t, roots, 2)
	assert.Equal(t, []span{{syntax.Then, 2, 6}}, spans(unit, roots[0]))
	assert.Equal(t, []span{{syntax.Then, 3, 5}}, spans(unit, roots[1]))
}

func TestTreeSitterCAdapter_SkipsRecoveredChains(t *testing.T) {
	src := `int f(int a)
{
    if (a) BODY else { y(); }
    if (a) {
        return 1;
    }
    return 0;
}
`

	unit, err := NewTreeSitterCAdapter().Parse(context.Background(), "r.c", []byte(src))
	require.NoError(t, err)

	roots := slices.Collect(unit.Conditionals)
	require.Len(t, roots, 1)
	assert.Equal(t, []span{{syntax.Then, 4, 6}}, spans(unit, roots[0]))
}

func TestConditionalExtents(t *testing.T) {
	tests := []struct {
		name     string
		frontend Frontend
		path     m.Path
		src      string
		want     [][2]int
	}{
		{"go", NewLocalGoFileAdapter(), "p.go", goSample, [][2]int{{4, 10}, {14, 17}, {15, 16}}},
		{"c", NewTreeSitterCAdapter(), "f.c", cSample, [][2]int{{2, 8}, {12, 15}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			unit, err := tt.frontend.Parse(context.Background(), tt.path, []byte(tt.src))
			require.NoError(t, err)

			var got [][2]int
			for root := range unit.Conditionals {
				got = append(got, [2]int{unit.Sources.Line(root.Begin()), unit.Sources.Line(root.End())})
			}

			assert.Equal(t, tt.want, got)
		})
	}
}
