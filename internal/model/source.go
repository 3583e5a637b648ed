// Package model defines the data structures shared by the boundary pass,
// its frontends and the CLI.
package model

// Path represents a file system path.
type Path string

// CompanionSuffix is appended to a source file name to name the file its
// boundary records are written to.
const CompanionSuffix = ".ifi"

// CompanionPath returns the companion file path for a source file name.
func CompanionPath(name string) Path {
	return Path(name + CompanionSuffix)
}

// Language identifies the frontend a source file is parsed with.
type Language string

const (
	// LanguageGo is Go source parsed with go/parser.
	LanguageGo Language = "go"
	// LanguageC is C source parsed with tree-sitter.
	LanguageC Language = "c"
)
