package analyzer_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/go/analysis/analysistest"

	. "ifbound.dev/pkg/ifbound/analyzer"
)

func TestAnalyzer(t *testing.T) {
	t.Parallel()

	testdata := analysistest.TestData()
	a := New(WithDryRun(true), WithReport(true))

	results := analysistest.Run(t, testdata, a, "./a")
	require.Len(t, results, 1)

	result, ok := results[0].Action.Result.(*Result)
	require.True(t, ok)
	require.Len(t, result.Files, 1, "generated file is skipped")

	file := result.Files[0]
	assert.False(t, file.Written)
	assert.Len(t, file.Records, 4)
	assert.Equal(t, "a.go.ifi", filepath.Base(string(file.Companion())))

	_, err := os.Stat(string(file.Companion()))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestAnalyzerGenerated(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "go.mod"), "module test\n\ngo 1.24\n")
	writeFile(t, filepath.Join(dir, "g", "g.go"), `// Code generated by hand for tests. DO NOT EDIT.

package g

func generated(x bool) int {
	if x {
		return 1
	}

	return 0
}
`)

	tests := []struct {
		name      string
		generated bool
		want      int
	}{
		{"skipped", false, 0},
		{"included", true, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			a := New(WithDryRun(true), WithGenerated(tt.generated))

			results := analysistest.Run(t, dir, a, "./g")
			require.Len(t, results, 1)

			result, ok := results[0].Action.Result.(*Result)
			require.True(t, ok)
			assert.Len(t, result.Files, tt.want)
		})
	}
}

func TestAnalyzerWritesCompanions(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "go.mod"), "module test\n\ngo 1.24\n")
	writeFile(t, filepath.Join(dir, "b", "b.go"), `package b

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
`)
	writeFile(t, filepath.Join(dir, "b", "plain.go"), `package b

func id(x int) int { return x }
`)

	results := analysistest.Run(t, dir, New(), "./b")
	require.Len(t, results, 1)

	source := filepath.Join(dir, "b", "b.go")

	got, err := os.ReadFile(source + ".ifi")
	require.NoError(t, err)
	assert.Equal(t, source+" 4 6\n", string(got))

	_, err = os.Stat(filepath.Join(dir, "b", "plain.go.ifi"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestAnalyzerFlags(t *testing.T) {
	t.Parallel()

	a := New()

	for _, name := range []string{"dry-run", "report", "generated"} {
		f := a.Flags.Lookup(name)
		if assert.NotNil(t, f, name) {
			assert.Equal(t, "false", f.DefValue)
		}
	}

	require.NoError(t, a.Flags.Set("dry-run", "true"))
	assert.Equal(t, "true", a.Flags.Lookup("dry-run").Value.String())
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}
