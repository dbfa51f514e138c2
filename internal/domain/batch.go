package domain

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"testforge.dev/pkg/testforge/internal/adapter"
	"testforge.dev/pkg/testforge/internal/controller"
	m "testforge.dev/pkg/testforge/internal/model"
)

const sourceFileExt = ".py"

// BatchArgs contains the arguments for a directory batch run.
type BatchArgs struct {
	Dir       m.Path
	OutputDir m.Path
	Framework string
	Recursive bool
	Exclude   []string
}

// BatchRunner generates tests for every candidate source file under a
// directory. Files are processed strictly in discovery order, one assistant
// call at a time; a single file's failure never aborts the batch.
type BatchRunner interface {
	GenerateForDirectory(ctx context.Context, args BatchArgs) (m.BatchReport, error)
}

type batchRunner struct {
	fs        adapter.SourceFSAdapter
	store     adapter.ReportStore
	generator Generator
	ui        controller.UI
}

// NewBatchRunner creates a BatchRunner with the provided dependencies.
func NewBatchRunner(
	fs adapter.SourceFSAdapter,
	store adapter.ReportStore,
	generator Generator,
	ui controller.UI,
) BatchRunner {
	return &batchRunner{
		fs:        fs,
		store:     store,
		generator: generator,
		ui:        ui,
	}
}

func (b *batchRunner) GenerateForDirectory(ctx context.Context, args BatchArgs) (m.BatchReport, error) {
	report := m.BatchReport{Root: args.Dir}

	sources, err := b.discover(args)
	if err != nil {
		return report, err
	}

	if err := b.fs.MkdirAll(args.OutputDir, 0o750); err != nil {
		return report, fmt.Errorf("%w: create output directory %s: %v", m.ErrWrite, args.OutputDir, err)
	}

	if err := b.ui.Start(ctx, len(sources)); err != nil {
		return report, err
	}

	defer b.ui.Close(ctx)

	for i, source := range sources {
		if ctx.Err() != nil {
			return report, ctx.Err()
		}

		b.ui.DisplayStartingFile(ctx, source, i+1, len(sources))

		entry := b.generateOne(ctx, source, args)
		if ctx.Err() != nil {
			// The in-flight call was abandoned; completed files keep
			// their written results, the aborted one records nothing.
			return report, ctx.Err()
		}

		report.Add(entry)
		b.ui.DisplayFileResult(ctx, entry)
	}

	reportPath := b.fs.JoinPath(string(args.OutputDir), adapter.ReportFileName)
	if err := b.store.Save(reportPath, report); err != nil {
		return report, fmt.Errorf("save batch report: %w", err)
	}

	if err := b.ui.DisplaySummary(ctx, report); err != nil {
		return report, err
	}

	return report, nil
}

// generateOne runs the single-file pipeline and writes the output, turning
// any failure into a failed report entry.
func (b *batchRunner) generateOne(ctx context.Context, source m.Path, args BatchArgs) m.BatchEntry {
	entry := m.BatchEntry{Source: source}

	text, err := b.generator.GenerateTests(ctx, source, args.Framework)
	if err != nil {
		slog.Warn("test generation failed", "source", source, "kind", m.ErrorKind(err), "error", err)

		return failedEntry(entry, err)
	}

	outPath := b.fs.JoinPath(string(args.OutputDir), TestFileName(source))

	b.logOverwriteDiff(outPath, text)

	if err := b.fs.WriteFile(outPath, []byte(text), 0o644); err != nil {
		err = fmt.Errorf("%w: %s: %v", m.ErrWrite, outPath, err)
		slog.Warn("writing test file failed", "source", source, "output", outPath, "error", err)

		return failedEntry(entry, err)
	}

	slog.Info("test file written", "source", source, "output", outPath)

	entry.Status = m.StatusWritten
	entry.Output = outPath

	return entry
}

// discover enumerates candidate source files under the directory in
// lexicographic order so output is reproducible.
func (b *batchRunner) discover(args BatchArgs) ([]m.Path, error) {
	info, err := b.fs.FileInfo(args.Dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", m.ErrNotFound, args.Dir)
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", m.ErrNotFound, args.Dir)
	}

	exclude, err := compilePatterns(args.Exclude)
	if err != nil {
		return nil, err
	}

	var sources []m.Path

	err = b.fs.Walk(args.Dir, args.Recursive, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() || !isCandidate(path) {
			return nil
		}

		for _, re := range exclude {
			if re.MatchString(path) {
				return nil
			}
		}

		sources = append(sources, m.Path(path))

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", args.Dir, err)
	}

	sort.Slice(sources, func(i, j int) bool { return sources[i] < sources[j] })

	return sources, nil
}

// isCandidate applies the source-file convention: Python files that are not
// themselves tests or package markers.
func isCandidate(path string) bool {
	if !strings.HasSuffix(path, sourceFileExt) {
		return false
	}

	base := filepath.Base(path)
	if strings.HasPrefix(base, "test_") || base == "__init__.py" {
		return false
	}

	return true
}

func compilePatterns(patterns []string) ([]*regexp.Regexp, error) {
	compiled := make([]*regexp.Regexp, 0, len(patterns))

	for _, pattern := range patterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}

		compiled = append(compiled, re)
	}

	return compiled, nil
}

func failedEntry(entry m.BatchEntry, err error) m.BatchEntry {
	entry.Status = m.StatusFailed
	entry.Kind = m.ErrorKind(err)
	entry.Reason = err.Error()
	entry.Err = err

	return entry
}

// logOverwriteDiff surfaces what changes when an output name collides with an
// existing file. Last write wins; the diff makes the overwrite visible.
func (b *batchRunner) logOverwriteDiff(outPath m.Path, text string) {
	previous, err := b.fs.ReadFile(outPath)
	if err != nil || string(previous) == text {
		return
	}

	diff, diffErr := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(previous)),
		B:        difflib.SplitLines(text),
		FromFile: string(outPath) + " (previous)",
		ToFile:   string(outPath),
		Context:  3,
	})
	if diffErr != nil {
		return
	}

	slog.Info("overwriting existing test file", "output", outPath, "diff", diff)
}
