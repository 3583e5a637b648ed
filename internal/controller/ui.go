// Package controller provides output adapters for displaying boundary records.
package controller

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "ifbound.dev/pkg/ifbound/internal/model"
)

// UI defines the interface for presenting workflow results.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	DisplayScanSummary(ctx context.Context, summary m.ScanSummary) error
	DisplayCompanions(ctx context.Context, companions []m.Companion, format m.OutputFormat) error
	DisplayDrift(ctx context.Context, drifts []m.Drift) error
	Browse(ctx context.Context, view m.SourceView) error
}

// NewUI returns the TUI-backed UI when the command writes to a terminal and
// the plain SimpleUI otherwise.
func NewUI(cmd *cobra.Command, useTTY bool) UI {
	simple := NewSimpleUI(cmd)
	if !useTTY {
		return simple
	}

	return NewTUI(cmd.OutOrStdout(), simple)
}

// IsTTY reports whether w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}
