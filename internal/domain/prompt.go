// Package domain implements the test generation pipeline: prompt building,
// single-file generation and directory batch runs.
package domain

import (
	"fmt"
	"path/filepath"
	"strings"

	m "testforge.dev/pkg/testforge/internal/model"
)

// DefaultFramework is the test framework requested when none is configured.
const DefaultFramework = "pytest"

// TestFileName derives the output test file name for a source path. The
// mapping is a pure function of the input stem: the same input name always
// maps to the same output name across runs.
func TestFileName(source m.Path) string {
	base := filepath.Base(string(source))
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)

	return "test_" + stem + ext
}

// BuildTestPrompt composes the instruction sent to the assistant for one
// source file. Deterministic given identical inputs; no side effects.
func BuildTestPrompt(req m.GenerationRequest) string {
	framework := req.Framework
	if framework == "" {
		framework = DefaultFramework
	}

	var b strings.Builder

	fmt.Fprintf(&b, "Analyze the source file at %s and generate comprehensive unit tests using %s.\n\n", req.SourcePath, framework)

	b.WriteString("The file contents are:\n\n")
	b.WriteString("```\n")
	b.WriteString(req.SourceText)

	if !strings.HasSuffix(req.SourceText, "\n") {
		b.WriteString("\n")
	}

	b.WriteString("```\n\n")

	b.WriteString("Generate tests that:\n")
	b.WriteString("1. Cover all functions and methods\n")
	b.WriteString("2. Test edge cases and error conditions\n")
	b.WriteString("3. Use appropriate assertions\n")
	fmt.Fprintf(&b, "4. Follow %s best practices\n", framework)
	b.WriteString("5. Include proper imports and setup\n\n")

	fmt.Fprintf(&b, "Reply with the complete content of a test file named %s and nothing else.\n", TestFileName(req.SourcePath))

	return b.String()
}
