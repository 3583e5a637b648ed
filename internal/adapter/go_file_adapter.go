package adapter

import (
	"context"
	"fmt"
	"go/ast"
	"go/parser"

	m "ifbound.dev/pkg/ifbound/internal/model"
	"ifbound.dev/pkg/ifbound/internal/source"
	"ifbound.dev/pkg/ifbound/internal/syntax"
)

// GoFileAdapter encapsulates Go-specific parsing so the domain layer only
// sees conditionals and positions.
type GoFileAdapter interface {
	Frontend

	// Unit wraps a file that was already parsed into sm's file set, e.g. by
	// an analysis driver.
	Unit(sm *source.Manager, file *ast.File, mainFile string) syntax.Unit
}

// LocalGoFileAdapter provides a concrete GoFileAdapter backed by go/parser.
type LocalGoFileAdapter struct{}

// NewLocalGoFileAdapter constructs a LocalGoFileAdapter.
func NewLocalGoFileAdapter() *LocalGoFileAdapter {
	return &LocalGoFileAdapter{}
}

// Language implements Frontend.
func (a *LocalGoFileAdapter) Language() m.Language {
	return m.LanguageGo
}

// Extensions implements Frontend.
func (a *LocalGoFileAdapter) Extensions() []string {
	return []string{".go"}
}

// Parse builds an AST for the provided path/content pair in a fresh location
// space.
func (a *LocalGoFileAdapter) Parse(ctx context.Context, path m.Path, content []byte) (syntax.Unit, error) {
	if err := ctx.Err(); err != nil {
		return syntax.Unit{}, err
	}

	sm := source.NewManager()

	file, err := parser.ParseFile(sm.FileSet(), string(path), content, parser.SkipObjectResolution)
	if err != nil {
		return syntax.Unit{}, fmt.Errorf("parse %s: %w", path, err)
	}

	sm.Attach(sm.FileSet().File(file.FileStart), content)

	return a.Unit(sm, file, string(path)), nil
}

// Unit yields every if statement of file that is not itself the else link
// of another one, in ast.Inspect order.
func (a *LocalGoFileAdapter) Unit(sm *source.Manager, file *ast.File, mainFile string) syntax.Unit {
	return syntax.Unit{
		MainFile: mainFile,
		Sources:  sm,
		Conditionals: func(yield func(syntax.Conditional) bool) {
			elseIfs := make(map[*ast.IfStmt]bool)
			stopped := false

			ast.Inspect(file, func(n ast.Node) bool {
				if stopped {
					return false
				}

				stmt, ok := n.(*ast.IfStmt)
				if !ok {
					return true
				}

				if next, ok := stmt.Else.(*ast.IfStmt); ok {
					elseIfs[next] = true
				}

				if elseIfs[stmt] {
					return true
				}

				if !yield(goIf{stmt}) {
					stopped = true
					return false
				}

				return true
			})
		},
	}
}

type goBlock struct {
	block *ast.BlockStmt
}

func (b goBlock) Begin() source.Pos { return b.block.Lbrace }
func (b goBlock) End() source.Pos   { return b.block.Rbrace }

type goIf struct {
	stmt *ast.IfStmt
}

func (s goIf) Begin() source.Pos { return s.stmt.If }

func (s goIf) End() source.Pos {
	switch e := s.stmt.Else.(type) {
	case *ast.IfStmt:
		return goIf{e}.End()
	case *ast.BlockStmt:
		return e.Rbrace
	default:
		return s.stmt.Body.Rbrace
	}
}

func (s goIf) Then() syntax.Stmt {
	return goBlock{s.stmt.Body}
}

func (s goIf) Else() syntax.Else {
	switch e := s.stmt.Else.(type) {
	case *ast.IfStmt:
		return syntax.ElseIfLink(goIf{e})
	case *ast.BlockStmt:
		return syntax.PlainElseLink(goBlock{e})
	default:
		return syntax.NoElse
	}
}
