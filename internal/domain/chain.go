package domain

import (
	"context"
	"log/slog"

	m "ifbound.dev/pkg/ifbound/internal/model"
	"ifbound.dev/pkg/ifbound/internal/syntax"
)

// ChainResult holds the records of one conditional chain.
type ChainResult struct {
	Records []m.BoundaryRecord
	// FileName is the file the first recorded branch resolved into.
	FileName string
}

// ChainWalker resolves the branch bodies of conditional chains.
type ChainWalker struct {
	sources   SourceService
	resolver  *Resolver
	extractor *Extractor
}

// NewChainWalker creates a ChainWalker over the given source service.
func NewChainWalker(sources SourceService) *ChainWalker {
	return &ChainWalker{
		sources:   sources,
		resolver:  NewResolver(sources),
		extractor: NewExtractor(sources),
	}
}

// Walk records the boundary of every branch of the chain rooted at root, in
// chain order. Branches whose ends cannot be resolved, or resolve into
// different files, are left out.
func (w *ChainWalker) Walk(root syntax.Conditional) ChainResult {
	var result ChainResult

	for branch := range syntax.Branches(root) {
		record, ok := w.boundary(branch)
		if !ok {
			continue
		}

		if result.FileName == "" {
			result.FileName = record.FilePath
		}

		result.Records = append(result.Records, record)
	}

	return result
}

// Extents returns the extent of every conditional statement of the chain
// rooted at root, the root first and then each else-if link. Extents are
// resolved like branch bodies: both ends must resolve into the same file.
func (w *ChainWalker) Extents(root syntax.Conditional) []m.BoundaryRecord {
	var records []m.BoundaryRecord

	for cond := root; cond != nil; {
		if record, ok := w.record(cond, "statement"); ok {
			records = append(records, record)
		}

		link := cond.Else()
		if link.Kind != syntax.ElseIf {
			break
		}

		cond = link.If
	}

	return records
}

func (w *ChainWalker) boundary(branch syntax.Branch) (m.BoundaryRecord, bool) {
	return w.record(branch.Body, branch.Kind.String())
}

func (w *ChainWalker) record(stmt syntax.Stmt, kind string) (m.BoundaryRecord, bool) {
	if stmt == nil {
		return m.BoundaryRecord{}, false
	}

	start, ok := w.resolver.Resolve(stmt.Begin())
	if !ok {
		slog.Debug("skipping span with unresolvable start", "kind", kind)
		return m.BoundaryRecord{}, false
	}

	end, ok := w.resolver.Resolve(stmt.End())
	if !ok {
		slog.Debug("skipping span with unresolvable end", "kind", kind)
		return m.BoundaryRecord{}, false
	}

	if start.File != end.File {
		slog.Debug("skipping span across files", "kind", kind,
			"start", w.sources.FileName(start.File), "end", w.sources.FileName(end.File))

		return m.BoundaryRecord{}, false
	}

	record := m.BoundaryRecord{
		FilePath:  w.sources.FileName(start.File),
		StartLine: uint(start.Line),
		EndLine:   uint(end.Line),
	}

	if slog.Default().Enabled(context.Background(), slog.LevelDebug) {
		text := w.extractor.Extract(start.File, start.Offset, end.Offset)
		slog.Debug("found span", "kind", kind, "file", record.FilePath,
			"start", record.StartLine, "end", record.EndLine, "source", string(text))
	}

	return record, true
}
