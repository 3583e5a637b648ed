package adapter

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	m "ifbound.dev/pkg/ifbound/internal/model"
	"ifbound.dev/pkg/ifbound/internal/syntax"
)

// ErrUnsupportedLanguage is returned for files no frontend handles.
var ErrUnsupportedLanguage = errors.New("unsupported language")

// Frontend turns the bytes of one source file into the syntax the boundary
// pass walks. Every call to Parse builds its own location space, so units
// from different calls never share positions.
type Frontend interface {
	// Language names the frontend.
	Language() m.Language

	// Extensions lists the file extensions (with the leading dot) the
	// frontend accepts.
	Extensions() []string

	// Parse builds a syntax.Unit for path from content.
	Parse(ctx context.Context, path m.Path, content []byte) (syntax.Unit, error)
}

// FrontendRegistry selects a frontend by file extension.
type FrontendRegistry struct {
	byExt map[string]Frontend
}

// NewFrontendRegistry registers frontends in order; a later frontend claiming
// an extension replaces an earlier one.
func NewFrontendRegistry(frontends ...Frontend) *FrontendRegistry {
	r := &FrontendRegistry{byExt: make(map[string]Frontend)}

	for _, f := range frontends {
		for _, ext := range f.Extensions() {
			r.byExt[strings.ToLower(ext)] = f
		}
	}

	return r
}

// NewDefaultFrontendRegistry returns a registry with the Go and C frontends.
func NewDefaultFrontendRegistry() *FrontendRegistry {
	return NewFrontendRegistry(NewLocalGoFileAdapter(), NewTreeSitterCAdapter())
}

// For returns the frontend responsible for path.
func (r *FrontendRegistry) For(path m.Path) (Frontend, error) {
	ext := strings.ToLower(filepath.Ext(string(path)))

	f, ok := r.byExt[ext]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedLanguage, path)
	}

	return f, nil
}

// Supports reports whether some frontend accepts path.
func (r *FrontendRegistry) Supports(path m.Path) bool {
	_, ok := r.byExt[strings.ToLower(filepath.Ext(string(path)))]

	return ok
}

// Extensions returns every registered extension, sorted.
func (r *FrontendRegistry) Extensions() []string {
	exts := make([]string, 0, len(r.byExt))
	for ext := range r.byExt {
		exts = append(exts, ext)
	}

	slices.Sort(exts)

	return exts
}
