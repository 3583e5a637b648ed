package model

// BoundaryRecord is the persisted extent of one branch body.
type BoundaryRecord struct {
	FilePath  string `json:"file" yaml:"file"`
	StartLine uint   `json:"start_line" yaml:"start_line"`
	EndLine   uint   `json:"end_line" yaml:"end_line"`
}

// TranslationUnitResult collects the records of one input file.
type TranslationUnitResult struct {
	// Source is the input file the records were collected from.
	Source Path
	// OutputName is the first file name a branch resolved into. The
	// companion file is named after it.
	OutputName string
	Records    []BoundaryRecord
}

// Companion returns where the result is written, or "" when no branch of
// the unit resolved.
func (r TranslationUnitResult) Companion() Path {
	if r.OutputName == "" {
		return ""
	}

	return CompanionPath(r.OutputName)
}

// Companion groups records under one path: a companion file loaded back
// from disk or the index, or a source file for statement extents.
type Companion struct {
	Path    Path             `json:"path" yaml:"path"`
	Records []BoundaryRecord `json:"records" yaml:"records"`
}
