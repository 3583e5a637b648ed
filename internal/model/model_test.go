package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompanionPath(t *testing.T) {
	assert.Equal(t, Path("src/main.c.ifi"), CompanionPath("src/main.c"))
}

func TestTranslationUnitResult_Companion(t *testing.T) {
	assert.Equal(t, Path(""), TranslationUnitResult{Source: "a.c"}.Companion())
	assert.Equal(t, Path("b.h.ifi"), TranslationUnitResult{Source: "a.c", OutputName: "b.h"}.Companion())
}

func TestScanSummary_Totals(t *testing.T) {
	summary := ScanSummary{Outcomes: []FileOutcome{
		{Source: "a.go", Records: 3, Written: true},
		{Source: "b.go", Records: 0},
		{Source: "c.c", Err: errors.New("parse")},
		{Source: "d.c", Records: 2, Written: true},
	}}

	files, records, written := summary.Totals()
	assert.Equal(t, 4, files)
	assert.Equal(t, 5, records)
	assert.Equal(t, 2, written)
}

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    OutputFormat
		wantErr bool
	}{
		{"", FormatTable, false},
		{"table", FormatTable, false},
		{"yaml", FormatYAML, false},
		{"json", FormatJSON, false},
		{"raw", FormatRaw, false},
		{"xml", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseOutputFormat(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
