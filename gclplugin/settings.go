package gclplugin

import "ifbound.dev/pkg/ifbound/analyzer"

// Settings represents the configuration options for an instance of the [Plugin].
type Settings struct {
	// DryRun disables writing companion files.
	DryRun *bool `json:"dry-run,omitzero"`
	// Report enables a diagnostic per recorded branch.
	Report *bool `json:"report,omitzero"`
	// Generated includes generated files.
	Generated *bool `json:"generated,omitzero"`
}

// Options converts [Settings] into a list of [analyzer.Option], skipping
// settings that were not set.
func (s Settings) Options() []analyzer.Option {
	var opts []analyzer.Option

	opts = appendOption(opts, s.DryRun, analyzer.WithDryRun)
	opts = appendOption(opts, s.Report, analyzer.WithReport)
	opts = appendOption(opts, s.Generated, analyzer.WithGenerated)

	return opts
}

func appendOption[T any](opts []analyzer.Option, value *T, constructor func(T) analyzer.Option) []analyzer.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
