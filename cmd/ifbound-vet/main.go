// Command ifbound-vet runs the ifbound analyzer as a standalone vet tool.
package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"ifbound.dev/pkg/ifbound/analyzer"
)

func main() { singlechecker.Main(analyzer.Analyzer) }
