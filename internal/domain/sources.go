package domain

import "ifbound.dev/pkg/ifbound/internal/source"

// SourceService is the source-buffer service the boundary pass resolves
// positions with. *source.Manager implements it.
type SourceService interface {
	// ExpansionLoc maps a position to the outermost macro call site, or
	// returns an invalid position.
	ExpansionLoc(pos source.Pos) source.Pos
	// IsFileBacked reports whether pos lies in a file with a buffer.
	IsFileBacked(pos source.Pos) bool
	FileID(pos source.Pos) source.FileID
	FileOffset(pos source.Pos) int
	Line(pos source.Pos) int
	Buffer(id source.FileID) []byte
	FileName(id source.FileID) string
}

var _ SourceService = (*source.Manager)(nil)
