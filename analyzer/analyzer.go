package analyzer

import (
	"reflect"

	"golang.org/x/tools/go/analysis"
)

// Public API constants for the ifbound analyzer.
const (
	name = "ifbound"
	doc  = `ifbound records the line ranges of if/else branches in companion files`
	url  = "https://pkg.go.dev/ifbound.dev/pkg/ifbound/analyzer"
)

// New creates a new instance of the ifbound analyzer.
// It allows for programmatic configuration using [Option]. For command-line
// use, the pre-configured [Analyzer] variable is typically sufficient.
func New(opts ...Option) *analysis.Analyzer {
	r := defaultOptions()
	Options(opts).apply(r)

	a := &analysis.Analyzer{
		Name:       name,
		Doc:        doc,
		URL:        url,
		Run:        r.run,
		ResultType: reflect.TypeFor[*Result](),
	}

	registerFlags(&a.Flags, r)

	return a
}

// Analyzer is a pre-configured *[analysis.Analyzer] writing companion files.
var Analyzer = New()
