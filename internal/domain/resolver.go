package domain

import "ifbound.dev/pkg/ifbound/internal/source"

// ResolvedPosition is a position mapped to physical file coordinates.
type ResolvedPosition struct {
	File   source.FileID
	Offset int
	Line   int
}

// Resolver maps raw syntax positions to file coordinates.
type Resolver struct {
	sources SourceService
}

// NewResolver creates a Resolver over the given source service.
func NewResolver(sources SourceService) *Resolver {
	return &Resolver{sources: sources}
}

// Resolve expands pos to its outermost macro call site and returns the
// file, byte offset and line found there. The second result is false when
// pos is invalid or the expanded position has no file content behind it.
func (r *Resolver) Resolve(pos source.Pos) (ResolvedPosition, bool) {
	if !pos.IsValid() {
		return ResolvedPosition{}, false
	}

	expanded := r.sources.ExpansionLoc(pos)
	if !expanded.IsValid() || !r.sources.IsFileBacked(expanded) {
		return ResolvedPosition{}, false
	}

	return ResolvedPosition{
		File:   r.sources.FileID(expanded),
		Offset: r.sources.FileOffset(expanded),
		Line:   r.sources.Line(expanded),
	}, true
}
