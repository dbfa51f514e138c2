package controller

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/sync/errgroup"

	m "testforge.dev/pkg/testforge/internal/model"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("78"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("197"))
	faintStyle   = lipgloss.NewStyle().Faint(true)
)

type fileStartedMsg struct {
	source m.Path
	index  int
	total  int
}

type fileFinishedMsg struct {
	entry m.BatchEntry
}

type summaryMsg struct {
	report m.BatchReport
}

// TUI implements UI using Bubble Tea for interactive display. The program
// runs concurrently with the generation pipeline and receives progress
// messages from it; the pipeline itself stays strictly sequential.
type TUI struct {
	output  io.Writer
	program *tea.Program
	group   *errgroup.Group
}

// NewTUI creates a new TUI writing to output.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Start launches the Bubble Tea program for a run over total files.
func (t *TUI) Start(ctx context.Context, total int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	t.program = tea.NewProgram(
		newBatchModel(total),
		tea.WithOutput(t.output),
		tea.WithContext(ctx),
	)

	group, _ := errgroup.WithContext(ctx)
	t.group = group

	group.Go(func() error {
		_, err := t.program.Run()
		return err
	})

	return nil
}

// Close quits the program and waits for the final frame to render.
func (t *TUI) Close(_ context.Context) {
	if t.program == nil {
		return
	}

	t.program.Quit()
	_ = t.group.Wait()
}

// DisplayStartingFile announces that generation for a file begins.
func (t *TUI) DisplayStartingFile(ctx context.Context, source m.Path, index, total int) {
	if ctx.Err() != nil || t.program == nil {
		return
	}

	t.program.Send(fileStartedMsg{source: source, index: index, total: total})
}

// DisplayFileResult shows the per-file outcome.
func (t *TUI) DisplayFileResult(ctx context.Context, entry m.BatchEntry) {
	if ctx.Err() != nil || t.program == nil {
		return
	}

	t.program.Send(fileFinishedMsg{entry: entry})
}

// DisplaySummary renders the aggregated batch report and ends the program.
func (t *TUI) DisplaySummary(ctx context.Context, report m.BatchReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if t.program == nil {
		return nil
	}

	t.program.Send(summaryMsg{report: report})

	return nil
}

type tuiState int

const (
	stateProcessing tuiState = iota
	stateSummary
)

type batchModel struct {
	spinner  spinner.Model
	state    tuiState
	total    int
	current  m.Path
	index    int
	finished []m.BatchEntry
	report   m.BatchReport
}

func newBatchModel(total int) batchModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return batchModel{
		spinner: s,
		state:   stateProcessing,
		total:   total,
	}
}

func (bm batchModel) Init() tea.Cmd {
	return bm.spinner.Tick
}

func (bm batchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return bm, tea.Quit
		}

	case fileStartedMsg:
		bm.current = msg.source
		bm.index = msg.index

		return bm, nil

	case fileFinishedMsg:
		bm.finished = append(bm.finished, msg.entry)

		return bm, nil

	case summaryMsg:
		bm.state = stateSummary
		bm.report = msg.report

		return bm, tea.Quit

	default:
		var cmd tea.Cmd
		if bm.state == stateProcessing {
			bm.spinner, cmd = bm.spinner.Update(msg)
		}

		return bm, cmd
	}

	return bm, nil
}

func (bm batchModel) View() string {
	if bm.state == stateSummary {
		return bm.renderSummary()
	}

	var b strings.Builder

	b.WriteString(headerStyle.Render("testforge"))
	b.WriteString("\n\n")

	for _, entry := range bm.finished {
		b.WriteString(renderEntryLine(entry))
	}

	if bm.current != "" {
		fmt.Fprintf(&b, "%s generating tests for %s (%d/%d)\n", bm.spinner.View(), bm.current, bm.index, bm.total)
	} else {
		fmt.Fprintf(&b, "%s scanning...\n", bm.spinner.View())
	}

	return b.String()
}

func (bm batchModel) renderSummary() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("testforge: batch complete"))
	b.WriteString("\n\n")

	successes := bm.report.Successes()
	failures := bm.report.Failures()

	if len(successes) > 0 {
		b.WriteString(successStyle.Render("Written:"))
		b.WriteString("\n")

		for _, entry := range successes {
			fmt.Fprintf(&b, "  %s\n", entry.Output)
		}
	}

	if len(failures) > 0 {
		b.WriteString(errorStyle.Render("Failed:"))
		b.WriteString("\n")

		for _, entry := range failures {
			fmt.Fprintf(&b, "  %s: %s\n", entry.Source, entry.Reason)
		}
	}

	if len(bm.report.Entries) == 0 {
		b.WriteString(faintStyle.Render("No source files found."))
		b.WriteString("\n")
	}

	return b.String()
}

func renderEntryLine(entry m.BatchEntry) string {
	if entry.Status == m.StatusWritten {
		return fmt.Sprintf("%s %s\n", successStyle.Render("✓"), entry.Output)
	}

	return fmt.Sprintf("%s %s: %s\n", errorStyle.Render("✗"), entry.Source, entry.Reason)
}
