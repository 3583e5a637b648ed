package analyzer

import (
	"context"
	"fmt"
	"go/ast"

	"golang.org/x/tools/go/analysis"

	"ifbound.dev/pkg/ifbound/internal/adapter"
	"ifbound.dev/pkg/ifbound/internal/domain"
	m "ifbound.dev/pkg/ifbound/internal/model"
	"ifbound.dev/pkg/ifbound/internal/source"
)

// Result is the analyzer's result: one entry per analyzed file.
type Result struct {
	Files []FileResult
}

// FileResult holds the records of one file and whether its companion was
// written.
type FileResult struct {
	m.TranslationUnitResult
	Written bool
}

type runOptions struct {
	dryRun    bool
	report    bool
	generated bool
}

func defaultOptions() *runOptions {
	return &runOptions{}
}

func (r *runOptions) run(pass *analysis.Pass) (any, error) {
	var serializer *domain.Serializer
	if !r.dryRun {
		serializer = domain.NewSerializer(adapter.NewLocalSourceFSAdapter())
	}

	frontend := adapter.NewLocalGoFileAdapter()
	result := &Result{}

	for _, file := range pass.Files {
		if !r.generated && ast.IsGenerated(file) {
			continue
		}

		tf := pass.Fset.File(file.FileStart)
		if tf == nil {
			continue
		}

		content, err := pass.ReadFile(tf.Name())
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", tf.Name(), err)
		}

		sm := source.NewManagerFor(pass.Fset)
		sm.Attach(tf, content)

		unit := frontend.Unit(sm, file, tf.Name())
		res, written := domain.NewPass(serializer).Run(context.Background(), unit)

		result.Files = append(result.Files, FileResult{TranslationUnitResult: res, Written: written})

		if !r.report {
			continue
		}

		for _, rec := range res.Records {
			if rec.FilePath != tf.Name() || int(rec.StartLine) > tf.LineCount() {
				continue
			}

			pass.Reportf(tf.LineStart(int(rec.StartLine)), "branch spans lines %d-%d", rec.StartLine, rec.EndLine)
		}
	}

	return result, nil
}
