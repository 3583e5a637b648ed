package analyzer

import "log/slog"

// Option configures specific behavior of a [New] ifbound analyzer.
type Option interface {
	apply(r *runOptions)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *runOptions) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithDryRun is an [Option] to skip writing companion files.
func WithDryRun(dryRun bool) Option { return dryRunOption{dryRun: dryRun} }

type dryRunOption struct{ dryRun bool }

func (o dryRunOption) apply(r *runOptions) { r.dryRun = o.dryRun }

func (o dryRunOption) LogAttr() slog.Attr { return slog.Bool("dry-run", o.dryRun) }

// WithReport is an [Option] to report a diagnostic for every recorded branch.
func WithReport(report bool) Option { return reportOption{report: report} }

type reportOption struct{ report bool }

func (o reportOption) apply(r *runOptions) { r.report = o.report }

func (o reportOption) LogAttr() slog.Attr { return slog.Bool("report", o.report) }

// WithGenerated is an [Option] to include generated files.
func WithGenerated(generated bool) Option { return generatedOption{generated: generated} }

type generatedOption struct{ generated bool }

func (o generatedOption) apply(r *runOptions) { r.generated = o.generated }

func (o generatedOption) LogAttr() slog.Attr { return slog.Bool("generated", o.generated) }
