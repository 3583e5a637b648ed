package analyzer

import "flag"

// registerFlags binds the run options to command line flag values.
// A nil flag set value defaults to the program's command line.
func registerFlags(flags *flag.FlagSet, r *runOptions) {
	if flags == nil {
		flags = flag.CommandLine
	}

	flags.BoolVar(&r.dryRun, "dry-run", r.dryRun, "do not write companion files")
	flags.BoolVar(&r.report, "report", r.report, "report a diagnostic for every branch")
	flags.BoolVar(&r.generated, "generated", r.generated, "include generated files")
}
