package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	m "ifbound.dev/pkg/ifbound/internal/model"
)

var (
	errorColor   = color.New(color.FgRed)
	okColor      = color.New(color.FgGreen)
	headerColor  = color.New(color.Bold, color.FgYellow)
	addedColor   = color.New(color.FgGreen)
	removedColor = color.New(color.FgRed)
	faintColor   = color.New(color.Faint)
)

// SimpleUI implements UI using cobra Command's output stream.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayScanSummary prints one row per scanned file.
func (s *SimpleUI) DisplayScanSummary(ctx context.Context, summary m.ScanSummary) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("\n%s", renderSummaryTable(summary))

	for _, o := range summary.Outcomes {
		if o.Err != nil {
			s.printf("%s %s: %v\n", errorColor.Sprint("error"), o.Source, o.Err)
		}
	}

	return nil
}

func renderSummaryTable(summary m.ScanSummary) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Language", "Branches", "Companion"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_LEFT,
	})

	for _, o := range summary.Outcomes {
		table.Append([]string{string(o.Source), string(o.Language), strconv.Itoa(o.Records), companionStatus(o, summary.DryRun)})
	}

	files, records, written := summary.Totals()

	footer := fmt.Sprintf("%d written", written)
	if summary.DryRun {
		footer = "dry run"
	}

	table.SetFooter([]string{fmt.Sprintf("Total Files %d", files), "", strconv.Itoa(records), footer})
	table.Render()

	return tableBuffer.String()
}

func companionStatus(o m.FileOutcome, dryRun bool) string {
	switch {
	case o.Err != nil:
		return "failed"
	case o.Records == 0:
		return "-"
	case o.Written:
		return string(o.Companion)
	case dryRun:
		return string(o.Companion) + " (dry run)"
	default:
		return string(o.Companion) + " (not written)"
	}
}

// DisplayCompanions prints grouped records in the requested format.
func (s *SimpleUI) DisplayCompanions(ctx context.Context, companions []m.Companion, format m.OutputFormat) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	switch format {
	case m.FormatYAML:
		enc := yaml.NewEncoder(s.cmd.OutOrStdout())
		enc.SetIndent(2)

		if err := enc.Encode(companions); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}

		return enc.Close()

	case m.FormatJSON:
		out, err := json.MarshalIndent(companions, "", "  ")
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}

		s.printf("%s\n", out)

		return nil

	case m.FormatRaw:
		for _, c := range companions {
			for _, r := range c.Records {
				s.printf("%s %d %d\n", r.FilePath, r.StartLine, r.EndLine)
			}
		}

		return nil

	case m.FormatTable, "":
		s.printf("%s", renderCompanionTable(companions))
		return nil

	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func renderCompanionTable(companions []m.Companion) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "File", "Start", "End"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetAutoMergeCells(true)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT,
	})

	total := 0

	for _, c := range companions {
		for _, r := range c.Records {
			table.Append([]string{
				string(c.Path), r.FilePath,
				strconv.FormatUint(uint64(r.StartLine), 10), strconv.FormatUint(uint64(r.EndLine), 10),
			})

			total++
		}
	}

	table.SetFooter([]string{fmt.Sprintf("Total Files %d", len(companions)), "", "", strconv.Itoa(total)})
	table.Render()

	return tableBuffer.String()
}

// DisplayDrift prints a unified diff for every out of date companion.
func (s *SimpleUI) DisplayDrift(ctx context.Context, drifts []m.Drift) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if len(drifts) == 0 {
		s.printf("%s\n", okColor.Sprint("all companion files are up to date"))
		return nil
	}

	for _, d := range drifts {
		s.printf("%s\n", headerColor.Sprintf("%s is out of date", d.Companion))

		for _, line := range strings.SplitAfter(d.Diff, "\n") {
			s.printf("%s", colorDiffLine(line))
		}
	}

	s.printf("%s\n", errorColor.Sprintf("%d companion file(s) out of date", len(drifts)))

	return nil
}

func colorDiffLine(line string) string {
	switch {
	case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
		return line
	case strings.HasPrefix(line, "+"):
		return addedColor.Sprint(line)
	case strings.HasPrefix(line, "-"):
		return removedColor.Sprint(line)
	case strings.HasPrefix(line, "@@"):
		return faintColor.Sprint(line)
	default:
		return line
	}
}

// Browse prints every branch with its source lines. It is the
// non-interactive rendition of the TUI browser.
func (s *SimpleUI) Browse(ctx context.Context, view m.SourceView) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if len(view.Records) == 0 {
		s.printf("%s: no branches\n", view.Path)
		return nil
	}

	for i, r := range view.Records {
		s.printf("%s\n", headerColor.Sprintf("[%d] %s:%d-%d", i+1, r.FilePath, r.StartLine, r.EndLine))

		for _, line := range branchLines(view.Lines, r, 0) {
			s.printf("%s %s\n", faintColor.Sprintf("%5d", line.number), line.text)
		}
	}

	return nil
}

type numberedLine struct {
	number int
	text   string
	inside bool
}

// branchLines returns the lines of r plus around lines of context on each side.
// A record whose end precedes its start covers its start line only.
func branchLines(lines []string, r m.BoundaryRecord, around int) []numberedLine {
	start, end := int(r.StartLine), int(r.EndLine)
	if end < start {
		end = start
	}

	var out []numberedLine

	for n := max(1, start-around); n <= min(len(lines), end+around); n++ {
		out = append(out, numberedLine{number: n, text: lines[n-1], inside: n >= start && n <= end})
	}

	return out
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
