// Package controller provides output adapters for displaying generation
// progress and batch results.
package controller

import (
	"context"
	"os"

	m "testforge.dev/pkg/testforge/internal/model"
)

// UI defines the interface for displaying batch progress and results.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	// Start initializes the UI for a run over total files.
	Start(ctx context.Context, total int) error

	// Close finalizes the UI and waits for it to finish rendering.
	Close(ctx context.Context)

	// DisplayStartingFile announces that generation for a file begins.
	DisplayStartingFile(ctx context.Context, source m.Path, index, total int)

	// DisplayFileResult shows the per-file outcome as soon as it is known.
	DisplayFileResult(ctx context.Context, entry m.BatchEntry)

	// DisplaySummary renders the aggregated batch report.
	DisplaySummary(ctx context.Context, report m.BatchReport) error
}

// IsTTY reports whether the file is attached to a terminal.
func IsTTY(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}

	return info.Mode()&os.ModeCharDevice != 0
}
