package domain

import "ifbound.dev/pkg/ifbound/internal/source"

// Extractor slices branch text out of file buffers.
type Extractor struct {
	sources SourceService
}

// NewExtractor creates an Extractor over the given source service.
func NewExtractor(sources SourceService) *Extractor {
	return &Extractor{sources: sources}
}

// Extract returns the bytes [start, end) of the buffer of file. The result
// shares memory with the buffer and must not be modified. Out of range
// requests yield nil.
func (e *Extractor) Extract(file source.FileID, start, end int) []byte {
	buf := e.sources.Buffer(file)
	if start < 0 || end < start || end > len(buf) {
		return nil
	}

	return buf[start:end:end]
}
