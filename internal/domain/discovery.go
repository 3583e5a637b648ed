package domain

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"ifbound.dev/pkg/ifbound/internal/adapter"
	m "ifbound.dev/pkg/ifbound/internal/model"
)

// recursiveSuffix marks a path pattern that descends into subdirectories,
// as in "./...".
const recursiveSuffix = "/..."

// ErrNoSources is returned when the given paths contain no supported files.
var ErrNoSources = errors.New("no supported source files found")

type discovery struct {
	fs        adapter.SourceFSAdapter
	frontends *adapter.FrontendRegistry
	exclude   []*regexp.Regexp
}

func newDiscovery(fs adapter.SourceFSAdapter, frontends *adapter.FrontendRegistry, exclude []string) (*discovery, error) {
	d := &discovery{fs: fs, frontends: frontends}

	for _, pattern := range exclude {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}

		d.exclude = append(d.exclude, re)
	}

	return d, nil
}

// sources expands path patterns into a sorted list of supported files.
// Files named explicitly are kept even when .gitignore matches them.
func (d *discovery) sources(ctx context.Context, paths []m.Path) ([]m.Path, error) {
	if len(paths) == 0 {
		paths = []m.Path{"."}
	}

	seen := make(map[m.Path]bool)

	var found []m.Path

	add := func(p m.Path) {
		p = m.Path(filepath.Clean(string(p)))
		if !seen[p] {
			seen[p] = true
			found = append(found, p)
		}
	}

	for _, pattern := range paths {
		root, recursive := splitPattern(pattern)

		info, err := d.fs.FileInfo(ctx, root)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", root, err)
		}

		if !info.IsDir() {
			if !d.frontends.Supports(root) {
				return nil, fmt.Errorf("%w: %s", adapter.ErrUnsupportedLanguage, root)
			}

			add(root)

			continue
		}

		files, err := d.walk(ctx, root, recursive)
		if err != nil {
			return nil, err
		}

		for _, f := range files {
			add(f)
		}
	}

	if len(found) == 0 {
		return nil, ErrNoSources
	}

	slices.Sort(found)

	return found, nil
}

func (d *discovery) walk(ctx context.Context, root m.Path, recursive bool) ([]m.Path, error) {
	ignore, err := d.fs.LoadIgnore(ctx, root)
	if err != nil {
		return nil, fmt.Errorf("load ignore rules: %w", err)
	}

	var files []m.Path

	err = d.fs.Walk(ctx, root, recursive, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		rel, relErr := filepath.Rel(string(root), path)
		if relErr != nil {
			rel = path
		}

		rel = filepath.ToSlash(rel)

		if info.IsDir() {
			if rel != "." && ignore.MatchesPath(rel+"/") {
				return filepath.SkipDir
			}

			return nil
		}

		if !d.frontends.Supports(m.Path(path)) || ignore.MatchesPath(rel) || d.excluded(path) {
			return nil
		}

		files = append(files, m.Path(path))

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}

	return files, nil
}

func (d *discovery) excluded(path string) bool {
	slashed := filepath.ToSlash(path)

	for _, re := range d.exclude {
		if re.MatchString(slashed) {
			return true
		}
	}

	return false
}

func splitPattern(p m.Path) (m.Path, bool) {
	s := filepath.ToSlash(string(p))
	if s == "..." {
		return ".", true
	}

	if strings.HasSuffix(s, recursiveSuffix) {
		root := strings.TrimSuffix(s, recursiveSuffix)
		if root == "" {
			root = "/"
		}

		return m.Path(filepath.FromSlash(root)), true
	}

	return p, false
}
