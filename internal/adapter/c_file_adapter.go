package adapter

import (
	"context"
	"fmt"
	"log/slog"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/c"

	m "ifbound.dev/pkg/ifbound/internal/model"
	"ifbound.dev/pkg/ifbound/internal/source"
	"ifbound.dev/pkg/ifbound/internal/syntax"
)

// TreeSitterCAdapter parses C sources with the tree-sitter C grammar. The
// preprocessor is not run: directives stay in the tree as their own nodes
// and macro invocations are parsed as ordinary calls.
type TreeSitterCAdapter struct{}

// NewTreeSitterCAdapter constructs a TreeSitterCAdapter.
func NewTreeSitterCAdapter() *TreeSitterCAdapter {
	return &TreeSitterCAdapter{}
}

// Language implements Frontend.
func (a *TreeSitterCAdapter) Language() m.Language {
	return m.LanguageC
}

// Extensions implements Frontend.
func (a *TreeSitterCAdapter) Extensions() []string {
	return []string{".c", ".h"}
}

// Parse implements Frontend. The tree is released before Parse returns;
// the unit only keeps the positions it needs.
//
// Tree-sitter recovers from syntax errors, typically unexpanded macros. A
// conditional chain containing a recovered error is left out of the unit,
// since its fields no longer describe the branches as written.
func (a *TreeSitterCAdapter) Parse(ctx context.Context, path m.Path, content []byte) (syntax.Unit, error) {
	parser := sitter.NewParser()
	defer parser.Close()

	parser.SetLanguage(c.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, content)
	if err != nil {
		return syntax.Unit{}, fmt.Errorf("parse %s: %w", path, err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		slog.Warn("source has syntax errors", "path", path)
	}

	sm := source.NewManager()
	b := &cBuilder{sm: sm, path: path, file: sm.AddFile(string(path), content)}
	b.visit(root, false)

	roots := b.roots

	return syntax.Unit{
		MainFile: string(path),
		Sources:  sm,
		Conditionals: func(yield func(syntax.Conditional) bool) {
			for _, root := range roots {
				if !yield(root) {
					return
				}
			}
		},
	}, nil
}

type cStmt struct {
	begin, end source.Pos
}

func (s cStmt) Begin() source.Pos { return s.begin }
func (s cStmt) End() source.Pos   { return s.end }

type cIf struct {
	cStmt
	then syntax.Stmt
	els  syntax.Else
}

func (s *cIf) Then() syntax.Stmt { return s.then }
func (s *cIf) Else() syntax.Else { return s.els }

type cBuilder struct {
	sm    *source.Manager
	path  m.Path
	file  source.FileID
	roots []syntax.Conditional
}

// visit walks n in preorder. elseIf is set for an if_statement that is the
// alternative of its parent if_statement.
func (b *cBuilder) visit(n *sitter.Node, elseIf bool) {
	if n == nil {
		return
	}

	var alt *sitter.Node

	if n.Type() == "if_statement" {
		switch {
		case elseIf:
		case malformed(n):
			slog.Warn("skipping conditional with syntax errors", "path", b.path,
				"line", n.StartPoint().Row+1)
		default:
			b.roots = append(b.roots, b.conditional(n))
		}

		alt = alternative(n)
	}

	for i := range int(n.ChildCount()) {
		child := n.Child(i)
		if child == nil {
			continue
		}

		if child.Type() == "else_clause" {
			for j := range int(child.ChildCount()) {
				gc := child.Child(j)
				b.visit(gc, sameNode(gc, alt) && gc.Type() == "if_statement")
			}

			continue
		}

		b.visit(child, sameNode(child, alt) && child.Type() == "if_statement")
	}
}

func (b *cBuilder) conditional(n *sitter.Node) *cIf {
	s := &cIf{
		cStmt: b.stmt(n),
		then:  b.stmt(n.ChildByFieldName("consequence")),
		els:   syntax.NoElse,
	}

	alt := alternative(n)

	switch {
	case alt == nil:
	case alt.Type() == "if_statement":
		s.els = syntax.ElseIfLink(b.conditional(alt))
	default:
		s.els = syntax.PlainElseLink(b.stmt(alt))
	}

	return s
}

func (b *cBuilder) stmt(n *sitter.Node) cStmt {
	if n == nil {
		return cStmt{}
	}

	return cStmt{
		begin: b.sm.Pos(b.file, int(n.StartByte())),
		end:   b.sm.Pos(b.file, int(lastToken(n).StartByte())),
	}
}

// alternative returns the statement following "else", accepting both the
// else_clause wrapper and a bare statement in the alternative field.
func alternative(n *sitter.Node) *sitter.Node {
	alt := n.ChildByFieldName("alternative")
	if alt == nil || alt.Type() != "else_clause" {
		return alt
	}

	for i := range int(alt.NamedChildCount()) {
		child := alt.NamedChild(i)
		if child != nil && child.Type() != "comment" {
			return child
		}
	}

	return nil
}

// malformed reports whether the chain rooted at n has a recovered error or
// missing token among its own children, else clauses included.
func malformed(n *sitter.Node) bool {
	for n != nil && n.Type() == "if_statement" {
		for i := range int(n.ChildCount()) {
			child := n.Child(i)
			if child == nil {
				continue
			}

			if broken(child) {
				return true
			}

			if child.Type() != "else_clause" {
				continue
			}

			for j := range int(child.ChildCount()) {
				if gc := child.Child(j); gc != nil && broken(gc) {
					return true
				}
			}
		}

		n = alternative(n)
	}

	return false
}

func broken(n *sitter.Node) bool {
	return n.IsError() || n.IsMissing()
}

func lastToken(n *sitter.Node) *sitter.Node {
	for n.ChildCount() > 0 {
		last := n.Child(int(n.ChildCount()) - 1)
		if last == nil {
			break
		}

		n = last
	}

	return n
}

func sameNode(a, b *sitter.Node) bool {
	if a == nil || b == nil {
		return false
	}

	return a.StartByte() == b.StartByte() && a.EndByte() == b.EndByte() && a.Type() == b.Type()
}
