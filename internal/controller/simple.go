package controller

import (
	"bytes"
	"context"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "testforge.dev/pkg/testforge/internal/model"
)

// SimpleUI implements UI using cobra Command's Printf. It is the
// non-interactive fallback when stdout is not a terminal.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context, total int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.cmd.Printf("Found %d source file(s)\n", total)

	return nil
}

// Close finalizes the UI (no-op for SimpleUI).
func (s *SimpleUI) Close(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
}

// DisplayStartingFile announces that generation for a file begins.
func (s *SimpleUI) DisplayStartingFile(ctx context.Context, source m.Path, index, total int) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.cmd.Printf("[%d/%d] generating tests for %s\n", index, total, source)
}

// DisplayFileResult shows the per-file outcome.
func (s *SimpleUI) DisplayFileResult(ctx context.Context, entry m.BatchEntry) {
	if err := ctx.Err(); err != nil {
		return
	}

	if entry.Status == m.StatusWritten {
		s.cmd.Printf("  ✓ %s\n", entry.Output)
		return
	}

	s.cmd.Printf("  ✗ %s: %s\n", entry.Source, entry.Reason)
}

// DisplaySummary renders the batch report as a table.
func (s *SimpleUI) DisplaySummary(ctx context.Context, report m.BatchReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.cmd.Printf("\n%s", renderSummaryTable(report))

	return nil
}

func renderSummaryTable(report m.BatchReport) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Source", "Output", "Status"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER})

	for _, entry := range report.Entries {
		status := string(entry.Status)
		output := string(entry.Output)

		if entry.Status == m.StatusFailed {
			status = fmt.Sprintf("%s (%s)", entry.Status, entry.Kind)
			output = "-"
		}

		table.Append([]string{string(entry.Source), output, status})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total %d", len(report.Entries)),
		fmt.Sprintf("written %d", len(report.Successes())),
		fmt.Sprintf("failed %d", len(report.Failures())),
	})

	table.Render()

	return tableBuffer.String()
}
