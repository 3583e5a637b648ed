/*
Package analyzer runs the branch boundary pass as a [golang.org/x/tools/go/analysis]
analyzer, so companion files can be produced by any analysis driver.

For every Go file of a package the analyzer records the line range of each
if, else-if and else body and writes them to a companion file next to the
source (<file>.ifi), one "<file> <start> <end>" line per branch. Files
without branches get no companion file.

# Flags

	-dry-run    do not write companion files
	-report     report a diagnostic for every branch
	-generated  include generated files

# Usage

	go run ifbound.dev/pkg/ifbound/cmd/ifbound-vet@latest ./...
*/
package analyzer
