package domain

import (
	"context"
	"errors"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	m "ifbound.dev/pkg/ifbound/internal/model"
	"ifbound.dev/pkg/ifbound/internal/source"
	"ifbound.dev/pkg/ifbound/internal/syntax"
)

// block is a statement spanning [from, to], to being its last token.
type block struct{ from, to source.Pos }

func (b block) Begin() source.Pos { return b.from }
func (b block) End() source.Pos   { return b.to }

type ifNode struct {
	block
	then syntax.Stmt
	els  syntax.Else
}

func (n ifNode) Then() syntax.Stmt { return n.then }
func (n ifNode) Else() syntax.Else { return n.els }

// fixture locates text within a file registered with a source manager.
type fixture struct {
	t       *testing.T
	sm      *source.Manager
	id      source.FileID
	content string
}

func newFixture(t *testing.T, sm *source.Manager, name, content string) *fixture {
	t.Helper()

	return &fixture{t: t, sm: sm, id: sm.AddFile(name, []byte(content)), content: content}
}

// at returns the position of the n-th (0-based) occurrence of needle.
func (f *fixture) at(needle string, n int) source.Pos {
	f.t.Helper()

	offset := -1
	for range n + 1 {
		next := strings.Index(f.content[offset+1:], needle)
		require.GreaterOrEqual(f.t, next, 0, "%q occurrence %d not found", needle, n)

		offset += next + 1
	}

	return f.sm.Pos(f.id, offset)
}

// braces returns a block from the openIdx-th "{" to the closeIdx-th "}".
func (f *fixture) braces(openIdx, closeIdx int) block {
	return block{from: f.at("{", openIdx), to: f.at("}", closeIdx)}
}

func unitOf(name string, sm *source.Manager, roots ...syntax.Conditional) syntax.Unit {
	return syntax.Unit{
		MainFile: name,
		Sources:  sm,
		Conditionals: func(yield func(syntax.Conditional) bool) {
			for _, root := range roots {
				if !yield(root) {
					return
				}
			}
		},
	}
}

// memWriter records companion writes in memory.
type memWriter struct {
	mu    sync.Mutex
	files map[m.Path][]byte
	err   error
}

func newMemWriter() *memWriter {
	return &memWriter{files: make(map[m.Path][]byte)}
}

func (w *memWriter) WriteFileAtomic(_ context.Context, path m.Path, content []byte, _ os.FileMode) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.err != nil {
		return w.err
	}

	w.files[path] = append([]byte(nil), content...)

	return nil
}

func (w *memWriter) RemoveFile(_ context.Context, path m.Path) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.err != nil {
		return w.err
	}

	delete(w.files, path)

	return nil
}

var errReadOnly = errors.New("read-only file system")
