package model

import "fmt"

// FileOutcome summarizes what happened to one input file during a scan.
type FileOutcome struct {
	Source    Path
	Language  Language
	Companion Path
	Records   int
	Written   bool
	Err       error
}

// ScanSummary is handed to the UI once a scan is complete.
type ScanSummary struct {
	Outcomes []FileOutcome
	DryRun   bool
}

// Totals returns the number of files, records and written companions.
func (s ScanSummary) Totals() (files, records, written int) {
	for _, o := range s.Outcomes {
		files++
		records += o.Records

		if o.Written {
			written++
		}
	}

	return files, records, written
}

// Drift describes a companion file that no longer matches its source.
type Drift struct {
	Source    Path
	Companion Path
	Diff      string
}

// OutputFormat selects how records are rendered.
type OutputFormat string

const (
	// FormatTable renders an aligned table.
	FormatTable OutputFormat = "table"
	// FormatYAML renders YAML documents.
	FormatYAML OutputFormat = "yaml"
	// FormatJSON renders a JSON array.
	FormatJSON OutputFormat = "json"
	// FormatRaw renders the companion file format.
	FormatRaw OutputFormat = "raw"
)

// ParseOutputFormat validates a user supplied format name.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(s); f {
	case FormatTable, FormatYAML, FormatJSON, FormatRaw:
		return f, nil
	case "":
		return FormatTable, nil
	default:
		return "", fmt.Errorf("unknown output format %q", s)
	}
}

// SourceView is what the branch browser shows for one file.
type SourceView struct {
	Path    Path
	Lines   []string
	Records []BoundaryRecord
}
