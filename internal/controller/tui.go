package controller

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	m "ifbound.dev/pkg/ifbound/internal/model"
)

const (
	// lines of context shown around the selected branch
	browseContext = 2
	// branches listed above the source pane
	listRows = 8
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#e63948"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	dimStyle      = lipgloss.NewStyle().Faint(true)
	branchStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// TUI implements UI using Bubble Tea for the interactive browser. Everything
// else is printed the same way SimpleUI prints it.
type TUI struct {
	*SimpleUI

	output io.Writer
}

// NewTUI creates a new TUI writing to output.
func NewTUI(output io.Writer, simple *SimpleUI) *TUI {
	return &TUI{SimpleUI: simple, output: output}
}

// Browse runs the branch browser until the user quits.
func (p *TUI) Browse(ctx context.Context, view m.SourceView) error {
	if len(view.Records) == 0 {
		return p.SimpleUI.Browse(ctx, view)
	}

	model := newBrowseModel(view)

	if f, ok := p.output.(*os.File); ok {
		width, height, err := term.GetSize(int(f.Fd()))
		if err == nil {
			model = model.resize(width, height)
		}
	}

	program := tea.NewProgram(model, tea.WithContext(ctx), tea.WithOutput(p.output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("browse: %w", err)
	}

	return nil
}

// browseModel lists the branches of one file and shows the source lines of
// the selected one.
type browseModel struct {
	view     m.SourceView
	cursor   int
	width    int
	height   int
	source   viewport.Model
	keys     keyMap
	quitting bool
}

func newBrowseModel(view m.SourceView) browseModel {
	bm := browseModel{
		view:   view,
		source: viewport.New(80, 20),
		keys:   defaultKeys,
	}
	bm.refresh()

	return bm
}

func (bm browseModel) Init() tea.Cmd {
	return nil
}

func (bm browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return bm.resize(msg.Width, msg.Height), nil

	case tea.KeyMsg:
		return bm.handleKeyPress(msg)
	}

	return bm, nil
}

func (bm browseModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	last := len(bm.view.Records) - 1

	switch {
	case key.Matches(msg, bm.keys.Quit):
		bm.quitting = true
		return bm, tea.Quit

	case key.Matches(msg, bm.keys.Next):
		bm.cursor = min(bm.cursor+1, last)

	case key.Matches(msg, bm.keys.Prev):
		bm.cursor = max(bm.cursor-1, 0)

	case key.Matches(msg, bm.keys.Home):
		bm.cursor = 0

	case key.Matches(msg, bm.keys.End):
		bm.cursor = last

	case key.Matches(msg, bm.keys.PageDown):
		bm.source.PageDown()
		return bm, nil

	case key.Matches(msg, bm.keys.PageUp):
		bm.source.PageUp()
		return bm, nil

	default:
		return bm, nil
	}

	bm.refresh()

	return bm, nil
}

func (bm browseModel) resize(width, height int) browseModel {
	bm.width = width
	bm.height = height

	// title, list, separator, help
	reserved := 1 + min(len(bm.view.Records), listRows) + 1 + 1

	bm.source.Width = max(width, 20)
	bm.source.Height = max(height-reserved, 3)
	bm.refresh()

	return bm
}

func (bm *browseModel) refresh() {
	if len(bm.view.Records) == 0 {
		bm.source.SetContent("")
		return
	}

	record := bm.view.Records[bm.cursor]

	var b strings.Builder

	for _, line := range branchLines(bm.view.Lines, record, browseContext) {
		number := fmt.Sprintf("%5d ", line.number)
		if line.inside {
			b.WriteString(branchStyle.Render(number + line.text))
		} else {
			b.WriteString(dimStyle.Render(number + line.text))
		}

		b.WriteByte('\n')
	}

	bm.source.SetContent(b.String())
	bm.source.GotoTop()
}

func (bm browseModel) View() string {
	if bm.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("%s  %d branch(es)", bm.view.Path, len(bm.view.Records))))
	b.WriteByte('\n')

	first := max(0, min(bm.cursor-listRows/2, len(bm.view.Records)-listRows))
	for i := first; i < len(bm.view.Records) && i < first+listRows; i++ {
		r := bm.view.Records[i]

		row := fmt.Sprintf("%s:%d-%d", r.FilePath, r.StartLine, r.EndLine)
		if i == bm.cursor {
			b.WriteString(selectedStyle.Render("> " + row))
		} else {
			b.WriteString("  " + row)
		}

		b.WriteByte('\n')
	}

	b.WriteString(dimStyle.Render(strings.Repeat("─", max(bm.source.Width, 20))))
	b.WriteByte('\n')
	b.WriteString(bm.source.View())
	b.WriteByte('\n')

	var help []string
	for _, binding := range bm.keys.help() {
		h := binding.Help()
		help = append(help, h.Key+" "+h.Desc)
	}

	b.WriteString(helpStyle.Render(strings.Join(help, " • ")))

	return b.String()
}
