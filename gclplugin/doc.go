/*
Package gclplugin provides golangci-lint plugin integration for the ifbound analyzer.

# Usage

1. Add a file `.custom-gcl.yaml` to your source with:

	---
	version: v2.7.0

	name: golangci-lint
	destination: .

	plugins:
	  - module: ifbound.dev/pkg/ifbound
	    import: ifbound.dev/pkg/ifbound/gclplugin
	    version: v0.1.0

2. Run `golangci-lint custom` from your project root.

3. Configure the linter in `.golangci.yaml`:

	---
	version: "2"
	linters:
	  default: none
	  enable:
	    - ifbound
	  settings:
	    custom:
	      ifbound:
	        type: module
	        description: "ifbound records if/else branch line ranges."
	        settings:
	          dry-run: true
	          report: true

4. Run the linter:

	./golangci-lint run .
*/
package gclplugin
