package controller

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	m "ifbound.dev/pkg/ifbound/internal/model"
)

func newTestSimpleUI(t *testing.T) (*SimpleUI, *bytes.Buffer) {
	t.Helper()

	noColor := color.NoColor
	color.NoColor = true

	t.Cleanup(func() { color.NoColor = noColor })

	var out bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&out)

	return NewSimpleUI(cmd), &out
}

var testCompanions = []m.Companion{
	{
		Path: "main.c.ifi",
		Records: []m.BoundaryRecord{
			{FilePath: "main.c", StartLine: 2, EndLine: 4},
			{FilePath: "main.c", StartLine: 4, EndLine: 6},
		},
	},
}

func TestSimpleUI_DisplayScanSummary(t *testing.T) {
	ui, out := newTestSimpleUI(t)

	summary := m.ScanSummary{Outcomes: []m.FileOutcome{
		{Source: "main.c", Language: m.LanguageC, Companion: "main.c.ifi", Records: 2, Written: true},
		{Source: "empty.go", Language: m.LanguageGo},
		{Source: "broken.go", Language: m.LanguageGo, Err: errors.New("expected declaration")},
	}}

	require.NoError(t, ui.DisplayScanSummary(context.Background(), summary))

	text := out.String()
	assert.Contains(t, text, "main.c.ifi")
	assert.Contains(t, text, "TOTAL FILES 3")
	assert.Contains(t, text, "1 WRITTEN")
	assert.Contains(t, text, "error broken.go: expected declaration")
}

func TestSimpleUI_DisplayScanSummaryDryRun(t *testing.T) {
	ui, out := newTestSimpleUI(t)

	summary := m.ScanSummary{DryRun: true, Outcomes: []m.FileOutcome{
		{Source: "main.c", Language: m.LanguageC, Companion: "main.c.ifi", Records: 2},
	}}

	require.NoError(t, ui.DisplayScanSummary(context.Background(), summary))
	assert.Contains(t, out.String(), "main.c.ifi (dry run)")
}

func TestSimpleUI_DisplayCompanions(t *testing.T) {
	t.Run("table", func(t *testing.T) {
		ui, out := newTestSimpleUI(t)

		require.NoError(t, ui.DisplayCompanions(context.Background(), testCompanions, m.FormatTable))
		assert.Contains(t, out.String(), "main.c.ifi")
		assert.Contains(t, out.String(), "TOTAL FILES 1")
	})

	t.Run("yaml", func(t *testing.T) {
		ui, out := newTestSimpleUI(t)

		require.NoError(t, ui.DisplayCompanions(context.Background(), testCompanions, m.FormatYAML))

		var decoded []m.Companion
		require.NoError(t, yaml.Unmarshal(out.Bytes(), &decoded))
		assert.Equal(t, testCompanions, decoded)
	})

	t.Run("json", func(t *testing.T) {
		ui, out := newTestSimpleUI(t)

		require.NoError(t, ui.DisplayCompanions(context.Background(), testCompanions, m.FormatJSON))
		assert.Contains(t, out.String(), `"start_line": 2`)
	})

	t.Run("raw", func(t *testing.T) {
		ui, out := newTestSimpleUI(t)

		require.NoError(t, ui.DisplayCompanions(context.Background(), testCompanions, m.FormatRaw))
		assert.Equal(t, "main.c 2 4\nmain.c 4 6\n", out.String())
	})

	t.Run("unknown", func(t *testing.T) {
		ui, _ := newTestSimpleUI(t)

		assert.Error(t, ui.DisplayCompanions(context.Background(), testCompanions, "xml"))
	})
}

func TestSimpleUI_DisplayDrift(t *testing.T) {
	t.Run("none", func(t *testing.T) {
		ui, out := newTestSimpleUI(t)

		require.NoError(t, ui.DisplayDrift(context.Background(), nil))
		assert.Contains(t, out.String(), "up to date")
	})

	t.Run("drift", func(t *testing.T) {
		ui, out := newTestSimpleUI(t)

		drift := m.Drift{
			Source:    "main.c",
			Companion: "main.c.ifi",
			Diff:      "--- main.c.ifi\n+++ main.c\n@@ -1 +1 @@\n-main.c 2 4\n+main.c 3 5\n",
		}

		require.NoError(t, ui.DisplayDrift(context.Background(), []m.Drift{drift}))
		assert.Contains(t, out.String(), "main.c.ifi is out of date")
		assert.Contains(t, out.String(), "+main.c 3 5")
		assert.Contains(t, out.String(), "1 companion file(s) out of date")
	})
}

func TestSimpleUI_Browse(t *testing.T) {
	ui, out := newTestSimpleUI(t)

	view := m.SourceView{
		Path:    "main.c",
		Lines:   strings.Split("int f(int x) {\n  if (x) {\n    x++;\n  }\n}", "\n"),
		Records: []m.BoundaryRecord{{FilePath: "main.c", StartLine: 2, EndLine: 4}},
	}

	require.NoError(t, ui.Browse(context.Background(), view))
	assert.Equal(t, "[1] main.c:2-4\n    2   if (x) {\n    3     x++;\n    4   }\n", out.String())
}

func TestBranchLines(t *testing.T) {
	lines := []string{"a", "b", "c", "d", "e"}

	tests := []struct {
		name   string
		record m.BoundaryRecord
		around int
		want   []int
	}{
		{"exact", m.BoundaryRecord{StartLine: 2, EndLine: 3}, 0, []int{2, 3}},
		{"context", m.BoundaryRecord{StartLine: 2, EndLine: 3}, 1, []int{1, 2, 3, 4}},
		{"clamped", m.BoundaryRecord{StartLine: 1, EndLine: 5}, 3, []int{1, 2, 3, 4, 5}},
		{"reversed", m.BoundaryRecord{StartLine: 4, EndLine: 2}, 0, []int{4}},
		{"past end", m.BoundaryRecord{StartLine: 9, EndLine: 12}, 0, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []int
			for _, l := range branchLines(lines, tt.record, tt.around) {
				got = append(got, l.number)
			}

			assert.Equal(t, tt.want, got)
		})
	}
}
