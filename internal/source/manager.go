// Package source maps raw syntax positions to physical file coordinates.
//
// A Manager owns a location space built on top of a [token.FileSet]. Three
// kinds of entries live in that space:
//
//   - files, which carry the bytes they were parsed from;
//   - virtual files (built-in definitions, scratch space) that occupy
//     positions but have no buffer behind them;
//   - macro expansions, whose positions stand for tokens produced by a
//     macro and which remember the call site they were expanded at.
//
// Positions are plain [token.Pos] values, so trees produced by go/parser can
// be used with a Manager directly after [Manager.Attach].
package source

import (
	"go/token"
	"sync"
)

// Pos is a position in a Manager's location space.
type Pos = token.Pos

// NoPos is the invalid position.
const NoPos = token.NoPos

// FileID identifies an entry of a Manager. The zero value is invalid.
type FileID int

// NoFile is the invalid FileID.
const NoFile FileID = 0

// IsValid reports whether id refers to an entry.
func (id FileID) IsValid() bool {
	return id != NoFile
}

type entryKind int

const (
	fileEntry entryKind = iota
	virtualEntry
	macroEntry
)

type entry struct {
	kind    entryKind
	file    *token.File
	content []byte

	// macro expansions only
	callSite Pos
}

// Manager resolves positions against the files and expansions registered
// with it. It is safe for concurrent use.
type Manager struct {
	fset *token.FileSet

	mu      sync.RWMutex
	entries []*entry
	byFile  map[*token.File]FileID
}

// NewManager creates a Manager with its own file set.
func NewManager() *Manager {
	return NewManagerFor(token.NewFileSet())
}

// NewManagerFor creates a Manager on top of an existing file set, e.g. the
// one an analysis pass parsed its files into.
func NewManagerFor(fset *token.FileSet) *Manager {
	return &Manager{
		fset:   fset,
		byFile: make(map[*token.File]FileID),
	}
}

// FileSet returns the underlying file set.
func (sm *Manager) FileSet() *token.FileSet {
	return sm.fset
}

// AddFile registers a new file with its content and returns its id.
func (sm *Manager) AddFile(name string, content []byte) FileID {
	tf := sm.fset.AddFile(name, -1, len(content))
	tf.SetLinesForContent(content)

	return sm.register(&entry{kind: fileEntry, file: tf, content: content})
}

// Attach registers a file that was already added to the file set, usually
// by go/parser, together with the bytes it was parsed from. Attaching the
// same file twice returns the existing id.
func (sm *Manager) Attach(tf *token.File, content []byte) FileID {
	if tf == nil {
		return NoFile
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	if id, ok := sm.byFile[tf]; ok {
		return id
	}

	return sm.registerLocked(&entry{kind: fileEntry, file: tf, content: content})
}

// AddVirtualFile reserves size positions for a file without physical
// backing, such as the predefines buffer or macro scratch space.
func (sm *Manager) AddVirtualFile(name string, size int) FileID {
	tf := sm.fset.AddFile(name, -1, size)

	return sm.register(&entry{kind: virtualEntry, file: tf})
}

// AddExpansion records that length positions of macro output were produced
// by a macro expanded at callSite, the start of the invocation. It returns
// the first position of the reserved range.
func (sm *Manager) AddExpansion(callSite Pos, length int) Pos {
	tf := sm.fset.AddFile("<macro expansion>", -1, length)

	sm.register(&entry{kind: macroEntry, file: tf, callSite: callSite})

	return Pos(tf.Base())
}

func (sm *Manager) register(e *entry) FileID {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	return sm.registerLocked(e)
}

func (sm *Manager) registerLocked(e *entry) FileID {
	sm.entries = append(sm.entries, e)
	id := FileID(len(sm.entries))
	sm.byFile[e.file] = id

	return id
}

func (sm *Manager) lookup(pos Pos) (*entry, FileID) {
	if !pos.IsValid() {
		return nil, NoFile
	}

	tf := sm.fset.File(pos)
	if tf == nil {
		return nil, NoFile
	}

	sm.mu.RLock()
	defer sm.mu.RUnlock()

	id, ok := sm.byFile[tf]
	if !ok {
		return nil, NoFile
	}

	return sm.entries[id-1], id
}

func (sm *Manager) entry(id FileID) *entry {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if id <= NoFile || int(id) > len(sm.entries) {
		return nil
	}

	return sm.entries[id-1]
}

// ExpansionLoc follows macro expansions outwards until it reaches a position
// that is not itself macro output, and returns the start of the outermost
// call site. Positions outside any expansion are returned unchanged; unknown
// positions yield NoPos.
func (sm *Manager) ExpansionLoc(pos Pos) Pos {
	sm.mu.RLock()
	limit := len(sm.entries)
	sm.mu.RUnlock()

	for range limit + 1 {
		e, _ := sm.lookup(pos)
		if e == nil {
			return NoPos
		}

		if e.kind != macroEntry {
			return pos
		}

		pos = e.callSite
	}

	// expansion entries form a cycle
	return NoPos
}

// IsFileBacked reports whether pos lies in a file with a content buffer.
func (sm *Manager) IsFileBacked(pos Pos) bool {
	e, _ := sm.lookup(pos)

	return e != nil && e.kind == fileEntry && e.content != nil
}

// FileID returns the entry pos belongs to, or NoFile.
func (sm *Manager) FileID(pos Pos) FileID {
	_, id := sm.lookup(pos)

	return id
}

// FileOffset returns the byte offset of pos within its entry, or -1.
func (sm *Manager) FileOffset(pos Pos) int {
	e, _ := sm.lookup(pos)
	if e == nil {
		return -1
	}

	return int(pos) - e.file.Base()
}

// Line returns the physical 1-based line of pos, ignoring //line
// directives, or 0 when pos is unknown.
func (sm *Manager) Line(pos Pos) int {
	e, _ := sm.lookup(pos)
	if e == nil {
		return 0
	}

	return e.file.PositionFor(pos, false).Line
}

// Buffer returns the content of a file entry; virtual files and expansions
// have none.
func (sm *Manager) Buffer(id FileID) []byte {
	e := sm.entry(id)
	if e == nil {
		return nil
	}

	return e.content
}

// FileName returns the name the entry was registered with.
func (sm *Manager) FileName(id FileID) string {
	e := sm.entry(id)
	if e == nil {
		return ""
	}

	return e.file.Name()
}

// Pos returns the position of offset inside entry id, or NoPos when offset
// is out of range.
func (sm *Manager) Pos(id FileID, offset int) Pos {
	e := sm.entry(id)
	if e == nil || offset < 0 || offset > e.file.Size() {
		return NoPos
	}

	return Pos(e.file.Base() + offset)
}
