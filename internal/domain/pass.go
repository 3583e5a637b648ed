package domain

import (
	"context"

	m "ifbound.dev/pkg/ifbound/internal/model"
	"ifbound.dev/pkg/ifbound/internal/syntax"
)

// Pass runs the boundary analysis over parsed units.
type Pass struct {
	serializer *Serializer
}

// NewPass creates a Pass writing companions through serializer. A nil
// serializer turns Run into a dry run.
func NewPass(serializer *Serializer) *Pass {
	return &Pass{serializer: serializer}
}

// Collect walks every conditional chain of unit and returns the records in
// visit order. The output name is taken from the first branch that
// resolves anywhere in the unit and kept for the rest of it.
func (p *Pass) Collect(unit syntax.Unit) m.TranslationUnitResult {
	result := m.TranslationUnitResult{Source: m.Path(unit.MainFile)}
	if unit.Sources == nil || unit.Conditionals == nil {
		return result
	}

	walker := NewChainWalker(unit.Sources)

	var collector Collector

	for cond := range unit.Conditionals {
		chain := walker.Walk(cond)
		if result.OutputName == "" {
			result.OutputName = chain.FileName
		}

		collector.Append(chain.Records...)
	}

	result.Records = collector.Drain()

	return result
}

// Statements returns the extent of every if statement of unit, else-if
// links included, in visit order.
func (p *Pass) Statements(unit syntax.Unit) []m.BoundaryRecord {
	if unit.Sources == nil || unit.Conditionals == nil {
		return nil
	}

	walker := NewChainWalker(unit.Sources)

	var collector Collector

	for cond := range unit.Conditionals {
		collector.Append(walker.Extents(cond)...)
	}

	return collector.Drain()
}

// Run collects the records of unit and writes them to the unit's companion
// file. Units without records produce no file, and a companion left over
// from an earlier run is removed. The second result reports whether a
// companion was written.
func (p *Pass) Run(ctx context.Context, unit syntax.Unit) (m.TranslationUnitResult, bool) {
	result := p.Collect(unit)
	if p.serializer == nil {
		return result, false
	}

	if len(result.Records) == 0 {
		if unit.MainFile != "" {
			p.serializer.Remove(ctx, m.CompanionPath(unit.MainFile))
		}

		return result, false
	}

	return result, p.serializer.Write(ctx, result.Companion(), result.Records)
}
