package controller

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	m "testforge.dev/pkg/testforge/internal/model"
)

func TestBatchModel_ProgressView(t *testing.T) {
	model := newBatchModel(3)

	updated, _ := model.Update(fileStartedMsg{source: "example/a.py", index: 1, total: 3})
	bm := updated.(batchModel)

	view := bm.View()
	if !strings.Contains(view, "example/a.py") || !strings.Contains(view, "(1/3)") {
		t.Fatalf("progress view missing current file: %q", view)
	}
}

func TestBatchModel_RendersFinishedEntries(t *testing.T) {
	model := newBatchModel(2)

	updated, _ := model.Update(fileFinishedMsg{entry: m.BatchEntry{
		Source: "example/a.py",
		Output: "tests/test_a.py",
		Status: m.StatusWritten,
	}})
	bm := updated.(batchModel)

	updated, _ = bm.Update(fileFinishedMsg{entry: m.BatchEntry{
		Source: "example/b.py",
		Status: m.StatusFailed,
		Reason: "assistant unavailable",
	}})
	bm = updated.(batchModel)

	view := bm.View()
	if !strings.Contains(view, "tests/test_a.py") {
		t.Errorf("view missing written output: %q", view)
	}

	if !strings.Contains(view, "assistant unavailable") {
		t.Errorf("view missing failure reason: %q", view)
	}
}

func TestBatchModel_SummaryQuits(t *testing.T) {
	model := newBatchModel(1)

	report := m.BatchReport{Entries: []m.BatchEntry{
		{Source: "a.py", Output: "tests/test_a.py", Status: m.StatusWritten},
	}}

	updated, cmd := model.Update(summaryMsg{report: report})
	bm := updated.(batchModel)

	if bm.state != stateSummary {
		t.Fatal("summary message should switch state")
	}

	if cmd == nil {
		t.Fatal("summary message should quit the program")
	}

	view := bm.View()
	if !strings.Contains(view, "tests/test_a.py") {
		t.Errorf("summary view missing output: %q", view)
	}
}

func TestBatchModel_EmptyReportSummary(t *testing.T) {
	model := newBatchModel(0)

	updated, _ := model.Update(summaryMsg{report: m.BatchReport{}})
	bm := updated.(batchModel)

	if !strings.Contains(bm.View(), "No source files found") {
		t.Errorf("empty summary view = %q", bm.View())
	}
}

func TestBatchModel_QuitKeys(t *testing.T) {
	model := newBatchModel(1)

	_, cmd := model.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("ctrl+c should quit")
	}
}
