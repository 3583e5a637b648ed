package domain

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
	"golang.org/x/sync/errgroup"

	"ifbound.dev/pkg/ifbound/internal/adapter"
	"ifbound.dev/pkg/ifbound/internal/controller"
	m "ifbound.dev/pkg/ifbound/internal/model"
	"ifbound.dev/pkg/ifbound/internal/syntax"
)

// ErrDrift is returned by Check when a companion file is out of date.
var ErrDrift = errors.New("companion files out of date")

// ScanArgs contains the arguments for writing companion files.
type ScanArgs struct {
	Paths   []m.Path
	Exclude []string
	Threads int
	// Index, when set, is the sqlite database the records are also stored in.
	Index  string
	DryRun bool
}

// ShowArgs contains the arguments for displaying stored companion files.
type ShowArgs struct {
	Paths   []m.Path
	Exclude []string
	Format  m.OutputFormat
	// Index, when set, reads the records from the sqlite index instead of
	// the companion files.
	Index string
	// Statements shows the extent of every if statement, recomputed from
	// the sources, instead of stored branch records.
	Statements bool
}

// ErrConflictingSources is returned when show is asked to read records from
// more than one place.
var ErrConflictingSources = errors.New("statements cannot be read from the index")

// CheckArgs contains the arguments for comparing companions with sources.
type CheckArgs struct {
	Paths   []m.Path
	Exclude []string
	Threads int
}

// BrowseArgs contains the arguments for the interactive branch browser.
type BrowseArgs struct {
	Path m.Path
}

// Workflow defines the operations exposed to the CLI.
type Workflow interface {
	Scan(ctx context.Context, args ScanArgs) error
	Show(ctx context.Context, args ShowArgs) error
	Check(ctx context.Context, args CheckArgs) error
	Browse(ctx context.Context, args BrowseArgs) error
}

// StoreOpener opens the record index at path.
type StoreOpener func(ctx context.Context, path string) (adapter.RecordStore, error)

type workflow struct {
	adapter.SourceFSAdapter
	controller.UI

	frontends *adapter.FrontendRegistry
	openStore StoreOpener
}

// NewWorkflow creates a Workflow with the provided dependencies. openStore
// may be nil when no index is ever requested.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	frontends *adapter.FrontendRegistry,
	ui controller.UI,
	openStore StoreOpener,
) Workflow {
	return &workflow{
		SourceFSAdapter: fsAdapter,
		UI:              ui,
		frontends:       frontends,
		openStore:       openStore,
	}
}

func (w *workflow) Scan(ctx context.Context, args ScanArgs) error {
	sources, err := w.resolve(ctx, args.Paths, args.Exclude)
	if err != nil {
		return err
	}

	var serializer *Serializer
	if !args.DryRun {
		serializer = NewSerializer(w.SourceFSAdapter)
	}

	outcomes := make([]m.FileOutcome, len(sources))
	results := make([]m.TranslationUnitResult, len(sources))

	err = w.forEach(ctx, sources, args.Threads, func(ctx context.Context, i int, source m.Path) {
		outcomes[i] = m.FileOutcome{Source: source}

		unit, frontend, err := w.parse(ctx, source)
		if frontend != nil {
			outcomes[i].Language = frontend.Language()
		}

		if err != nil {
			slog.Error("failed to parse source", "path", source, "error", err)
			outcomes[i].Err = err

			return
		}

		result, written := NewPass(serializer).Run(ctx, unit)
		if written || len(result.Records) == 0 {
			results[i] = result
		}
		outcomes[i].Records = len(result.Records)
		outcomes[i].Companion = result.Companion()
		outcomes[i].Written = written
	})
	if err != nil {
		return err
	}

	if args.Index != "" && !args.DryRun {
		if err := w.index(ctx, args.Index, results); err != nil {
			slog.Error("failed to update index", "path", args.Index, "error", err)
			return fmt.Errorf("index: %w", err)
		}
	}

	return w.DisplayScanSummary(ctx, m.ScanSummary{Outcomes: outcomes, DryRun: args.DryRun})
}

func (w *workflow) index(ctx context.Context, path string, results []m.TranslationUnitResult) (err error) {
	if w.openStore == nil {
		return errors.New("no record store configured")
	}

	store, err := w.openStore(ctx, path)
	if err != nil {
		return err
	}

	defer func() {
		err = errors.Join(err, store.Close())
	}()

	for _, result := range results {
		if result.Source == "" {
			continue
		}

		if err := store.Save(ctx, result); err != nil {
			return fmt.Errorf("save %s: %w", result.Source, err)
		}
	}

	return nil
}

func (w *workflow) Show(ctx context.Context, args ShowArgs) error {
	switch {
	case args.Statements && args.Index != "":
		return ErrConflictingSources
	case args.Index != "":
		return w.showIndex(ctx, args)
	}

	sources, err := w.resolve(ctx, args.Paths, args.Exclude)
	if err != nil {
		return err
	}

	if args.Statements {
		return w.showStatements(ctx, sources, args.Format)
	}

	var companions []m.Companion

	for _, source := range sources {
		companion := m.CompanionPath(string(source))

		content, err := w.ReadFile(ctx, companion)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}

			return fmt.Errorf("read %s: %w", companion, err)
		}

		records, err := ParseRecords(content)
		if err != nil {
			return fmt.Errorf("%s: %w", companion, err)
		}

		companions = append(companions, m.Companion{Path: companion, Records: records})
	}

	return w.DisplayCompanions(ctx, companions, args.Format)
}

// showStatements displays the if statement extents of every source, keyed
// by the source itself. Sources that fail to parse are skipped.
func (w *workflow) showStatements(ctx context.Context, sources []m.Path, format m.OutputFormat) error {
	var groups []m.Companion

	for _, source := range sources {
		unit, _, err := w.parse(ctx, source)
		if err != nil {
			slog.Warn("failed to parse source", "path", source, "error", err)
			continue
		}

		if records := NewPass(nil).Statements(unit); len(records) > 0 {
			groups = append(groups, m.Companion{Path: source, Records: records})
		}
	}

	return w.DisplayCompanions(ctx, groups, format)
}

// showIndex displays the records stored in the sqlite index, limited to
// the requested paths when any were given.
func (w *workflow) showIndex(ctx context.Context, args ShowArgs) (err error) {
	if w.openStore == nil {
		return errors.New("no record store configured")
	}

	var wanted map[m.Path]bool

	if len(args.Paths) > 0 {
		sources, err := w.resolve(ctx, args.Paths, args.Exclude)
		if err != nil {
			return err
		}

		wanted = make(map[m.Path]bool, len(sources))
		for _, source := range sources {
			wanted[source] = true
		}
	}

	store, err := w.openStore(ctx, args.Index)
	if err != nil {
		return fmt.Errorf("index: %w", err)
	}

	defer func() {
		err = errors.Join(err, store.Close())
	}()

	sources, err := store.Sources(ctx)
	if err != nil {
		return fmt.Errorf("index: %w", err)
	}

	var companions []m.Companion

	for _, source := range sources {
		if wanted != nil && !wanted[source] {
			continue
		}

		records, err := store.Load(ctx, source)
		if err != nil {
			return fmt.Errorf("index %s: %w", source, err)
		}

		companions = append(companions, m.Companion{Path: m.CompanionPath(string(source)), Records: records})
	}

	return w.DisplayCompanions(ctx, companions, args.Format)
}

func (w *workflow) Check(ctx context.Context, args CheckArgs) error {
	sources, err := w.resolve(ctx, args.Paths, args.Exclude)
	if err != nil {
		return err
	}

	drifts := make([]*m.Drift, len(sources))
	failures := make([]error, len(sources))

	err = w.forEach(ctx, sources, args.Threads, func(ctx context.Context, i int, source m.Path) {
		drift, err := w.drift(ctx, source)
		if err != nil {
			failures[i] = err
			return
		}

		drifts[i] = drift
	})
	if err != nil {
		return err
	}

	if err := errors.Join(failures...); err != nil {
		return err
	}

	var found []m.Drift

	for _, d := range drifts {
		if d != nil {
			found = append(found, *d)
		}
	}

	if err := w.DisplayDrift(ctx, found); err != nil {
		return err
	}

	if len(found) > 0 {
		return fmt.Errorf("%w: %d file(s)", ErrDrift, len(found))
	}

	return nil
}

// drift recomputes the records of source and compares them with the
// companion on disk. A missing companion is the same as an empty one.
func (w *workflow) drift(ctx context.Context, source m.Path) (*m.Drift, error) {
	unit, _, err := w.parse(ctx, source)
	if err != nil {
		return nil, err
	}

	result := NewPass(nil).Collect(unit)

	companion := result.Companion()
	if companion == "" {
		companion = m.CompanionPath(string(source))
	}

	stored, err := w.ReadFile(ctx, companion)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("read %s: %w", companion, err)
	}

	current := FormatRecords(result.Records)
	if bytes.Equal(stored, current) {
		return nil, nil
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(stored)),
		B:        difflib.SplitLines(string(current)),
		FromFile: string(companion),
		ToFile:   string(source),
		Context:  1,
	})
	if err != nil {
		return nil, fmt.Errorf("diff %s: %w", companion, err)
	}

	return &m.Drift{Source: source, Companion: companion, Diff: diff}, nil
}

func (w *workflow) Browse(ctx context.Context, args BrowseArgs) error {
	unit, _, err := w.parse(ctx, args.Path)
	if err != nil {
		return err
	}

	result := NewPass(nil).Collect(unit)

	content, err := w.ReadFile(ctx, args.Path)
	if err != nil {
		return fmt.Errorf("read %s: %w", args.Path, err)
	}

	return w.UI.Browse(ctx, m.SourceView{
		Path:    args.Path,
		Lines:   strings.Split(strings.TrimSuffix(string(content), "\n"), "\n"),
		Records: result.Records,
	})
}

func (w *workflow) resolve(ctx context.Context, paths []m.Path, exclude []string) ([]m.Path, error) {
	d, err := newDiscovery(w.SourceFSAdapter, w.frontends, exclude)
	if err != nil {
		return nil, err
	}

	sources, err := d.sources(ctx, paths)
	if err != nil {
		return nil, fmt.Errorf("get sources: %w", err)
	}

	return sources, nil
}

func (w *workflow) parse(ctx context.Context, source m.Path) (syntax.Unit, adapter.Frontend, error) {
	frontend, err := w.frontends.For(source)
	if err != nil {
		return syntax.Unit{}, nil, err
	}

	content, err := w.ReadFile(ctx, source)
	if err != nil {
		return syntax.Unit{}, frontend, fmt.Errorf("read %s: %w", source, err)
	}

	unit, err := frontend.Parse(ctx, source, content)
	if err != nil {
		return syntax.Unit{}, frontend, err
	}

	return unit, frontend, nil
}

// forEach runs fn for every source with at most threads goroutines. It
// only fails when ctx is cancelled; per-file errors are fn's business.
func (w *workflow) forEach(ctx context.Context, sources []m.Path, threads int, fn func(context.Context, int, m.Path)) error {
	if threads <= 0 {
		threads = runtime.NumCPU()
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(threads)

	for i, source := range sources {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			fn(groupCtx, i, source)

			return nil
		})
	}

	return group.Wait()
}
